package msgtemplatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"qms-backend/models"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	GetByCode(code models.NotifyCode) (rec *dbmodels.NotifyTemplate, err error)
	List() (list []dbmodels.NotifyTemplate, err error)
	Save(rec dbmodels.NotifyTemplate) (id string, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByCode(code models.NotifyCode) (*dbmodels.NotifyTemplate, error) {
	rec := dbmodels.NotifyTemplate{}
	err := i.db.
		Where("code = ?", code).
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

func (i impl) List() (list []dbmodels.NotifyTemplate, err error) {
	list = []dbmodels.NotifyTemplate{}
	err = i.db.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Save(rec dbmodels.NotifyTemplate) (id string, err error) {
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Delete(&dbmodels.NotifyTemplate{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return err
	}
	return nil
}
