package documentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Document) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Document, err error)
	List() (list []dbmodels.Document, err error)
	// ListForReview действующие документы с датой пересмотра, кандидаты на напоминания
	ListForReview() (list []dbmodels.Document, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Document) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(dbmodels.Document{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Document, error) {
	rec := dbmodels.Document{}
	err := i.db.
		Preload("OwnerDepartment").
		Preload("ApprovedBy").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.Document, err error) {
	err = i.db.
		Preload("OwnerDepartment").
		Preload("ApprovedBy").
		Order("number").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListForReview() (list []dbmodels.Document, err error) {
	err = i.db.
		Preload("OwnerDepartment").
		Where("status = ?", dbmodels.DocumentStatusActive).
		Where("review_date IS NOT NULL").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
