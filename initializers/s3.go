package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "qms-backend/lib/file-storage"
)

func InitS3(ctx context.Context) {
	err := filestorage.Connect()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	if err = filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка проверки бакета S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
