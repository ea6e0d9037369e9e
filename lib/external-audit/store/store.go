package externalauditstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ExternalAudit) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.ExternalAudit, err error)
	List() (list []dbmodels.ExternalAudit, err error)
	// ListPlanned предстоящие внешние аудиты, кандидаты на напоминания
	ListPlanned() (list []dbmodels.ExternalAudit, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExternalAudit) (id string, err error) {
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
		Model(dbmodels.ExternalAudit{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.ExternalAudit{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.ExternalAudit, error) {
	rec := dbmodels.ExternalAudit{}
	err := i.db.
		Preload("Responsible").
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

func (i impl) List() (list []dbmodels.ExternalAudit, err error) {
	err = i.db.
		Preload("Responsible").
		Order("start_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPlanned() (list []dbmodels.ExternalAudit, err error) {
	err = i.db.
		Preload("Responsible").
		Where("status = ?", dbmodels.ExternalAuditStatusPlanned).
		Where("start_date IS NOT NULL").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
