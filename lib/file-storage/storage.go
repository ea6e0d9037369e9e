package filestorage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"qms-backend/config"
)

type Provider interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, key string, fileReader io.Reader, fileSize int64) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

var Instance Provider

func Connect() error {
	client, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка подключения к S3")
	}
	Instance = &impl{
		client: client,
	}
	return nil
}

type impl struct {
	client *minio.Client
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (i impl) Upload(ctx context.Context, key string, fileReader io.Reader, fileSize int64) error {
	_, err := i.client.PutObject(ctx, config.Conf.S3.BucketName, key, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	return err
}

func (i impl) Get(ctx context.Context, key string) ([]byte, error) {
	object, err := i.client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}

func (i impl) Delete(ctx context.Context, key string) error {
	return i.client.RemoveObject(ctx, config.Conf.S3.BucketName, key, minio.RemoveObjectOptions{})
}
