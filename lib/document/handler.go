package document

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"qms-backend/db"
	documentstore "qms-backend/lib/document/store"
	filestorage "qms-backend/lib/file-storage"
	"qms-backend/lib/sequence"
	"qms-backend/models"
	docapimodels "qms-backend/models/api/document"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(data docapimodels.DocumentData) (id string, err error)
	Edit(id string, data docapimodels.DocumentData) error
	GetByID(id string) (view docapimodels.DocumentView, err error)
	List() (list []docapimodels.DocumentView, err error)
	Approve(id, userID string) error
	// Retire документы не удаляются, устаревшие переводятся в архивный статус
	Retire(id string) error
	UploadFile(ctx context.Context, id, fileName string, fileReader io.Reader, fileSize int64) error
	DownloadFile(ctx context.Context, id string) (file []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: documentstore.NewInstance(db.DB),
		seq:   sequence.Instance,
	}
}

type impl struct {
	store documentstore.Provider
	seq   sequence.Provider
}

func (i impl) Create(data docapimodels.DocumentData) (id string, err error) {
	number, err := i.seq.Next(models.NumberFamilyDocument)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения номера документа")
	}
	version := data.Version
	if version == 0 {
		version = 1
	}
	rec := dbmodels.Document{
		Number:            number,
		Title:             data.Title,
		Version:           version,
		OwnerDepartmentID: data.OwnerDepartmentID,
		EffectiveDate:     data.EffectiveDate,
		ReviewDate:        data.ReviewDate,
		Status:            dbmodels.DocumentStatusActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания документа")
	}
	return id, nil
}

func (i impl) Edit(id string, data docapimodels.DocumentData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != dbmodels.DocumentStatusActive {
		return errors.New("архивный документ не редактируется")
	}
	return i.store.Update(id, map[string]interface{}{
		"title":               data.Title,
		"version":             data.Version,
		"owner_department_id": data.OwnerDepartmentID,
		"effective_date":      data.EffectiveDate,
		"review_date":         data.ReviewDate,
	})
}

func (i impl) GetByID(id string) (view docapimodels.DocumentView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return docapimodels.DocumentView{}, err
	}
	return docapimodels.DocumentConvert(*rec), nil
}

func (i impl) List() (list []docapimodels.DocumentView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка документов")
	}
	list = make([]docapimodels.DocumentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, docapimodels.DocumentConvert(rec))
	}
	return list, nil
}

func (i impl) Approve(id, userID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != dbmodels.DocumentStatusActive {
		return errors.New("архивный документ не утверждается")
	}
	return i.store.Update(id, map[string]interface{}{
		"approved_by_id": userID,
	})
}

func (i impl) Retire(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == dbmodels.DocumentStatusRetired {
		return errors.New("документ уже в архиве")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": dbmodels.DocumentStatusRetired,
	})
}

func (i impl) UploadFile(ctx context.Context, id, fileName string, fileReader io.Reader, fileSize int64) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	fileKey := rec.FileKey
	if fileKey == "" {
		fileKey = uuid.NewString()
	}
	err = filestorage.Instance.Upload(ctx, fileKey, fileReader, fileSize)
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла документа")
	}
	return i.store.Update(id, map[string]interface{}{
		"file_key":  fileKey,
		"file_name": fileName,
	})
}

func (i impl) DownloadFile(ctx context.Context, id string) (file []byte, fileName string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, "", err
	}
	if rec.FileKey == "" {
		return nil, "", errors.New("файл документа не загружен")
	}
	file, err = filestorage.Instance.Get(ctx, rec.FileKey)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения файла документа")
	}
	return file, rec.FileName, nil
}

func (i impl) getRec(id string) (*dbmodels.Document, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения документа")
	}
	if rec == nil {
		return nil, errors.New("документ не найден")
	}
	return rec, nil
}
