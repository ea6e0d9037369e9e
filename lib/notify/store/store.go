package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	List(userID string, onlyUnviewed bool) (list []dbmodels.Notification, err error)
	GetByID(userID, id string) (rec *dbmodels.Notification, err error)
	MarkViewed(userID string, ids []string) error
	Confirm(userID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(userID string, onlyUnviewed bool) (list []dbmodels.Notification, err error) {
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID)
	if onlyUnviewed {
		tx = tx.Where("viewed = false")
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(userID, id string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
	err := i.db.
		Where("user_id = ?", userID).
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

func (i impl) MarkViewed(userID string, ids []string) error {
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID)
	if len(ids) > 0 {
		tx = tx.Where("id IN ?", ids)
	}
	return tx.
		Update("viewed", true).
		Error
}

func (i impl) Confirm(userID, id string) error {
	return i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Where("requires_confirmation = true").
		Update("confirmed_at", gorm.Expr("now()")).
		Error
}
