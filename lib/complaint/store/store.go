package complaintstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Complaint) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Complaint, err error)
	List() (list []dbmodels.Complaint, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Complaint) (id string, err error) {
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
		Model(dbmodels.Complaint{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Complaint, error) {
	rec := dbmodels.Complaint{}
	err := i.db.
		Preload("Department").
		Preload("Ticket").
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

func (i impl) List() (list []dbmodels.Complaint, err error) {
	err = i.db.
		Preload("Department").
		Preload("Ticket").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
