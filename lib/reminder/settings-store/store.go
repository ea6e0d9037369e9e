package remindersettingsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"qms-backend/models"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	GetByKey(entityType models.ReminderEntityType, eventType models.ReminderEventType) (rec *dbmodels.ReminderSetting, err error)
	List() (list []dbmodels.ReminderSetting, err error)
	ListActive() (list []dbmodels.ReminderSetting, err error)
	Save(rec dbmodels.ReminderSetting) (id string, err error)
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

func (i impl) GetByKey(entityType models.ReminderEntityType, eventType models.ReminderEventType) (*dbmodels.ReminderSetting, error) {
	rec := dbmodels.ReminderSetting{}
	err := i.db.
		Where("entity_type = ?", entityType).
		Where("event_type = ?", eventType).
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

func (i impl) List() (list []dbmodels.ReminderSetting, err error) {
	err = i.db.
		Order("entity_type, event_type").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActive() (list []dbmodels.ReminderSetting, err error) {
	err = i.db.
		Where("active = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Save(rec dbmodels.ReminderSetting) (id string, err error) {
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entity_type"}, {Name: "event_type"}},
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
	return i.db.
		Delete(&dbmodels.ReminderSetting{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}
