package ticketresponsestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"qms-backend/models"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TicketResponse) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.TicketResponse, err error)
	// GetPending черновик ответа подразделения, у запроса он не больше одного
	GetPending(ticketID string) (rec *dbmodels.TicketResponse, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TicketResponse) (id string, err error) {
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
		Model(dbmodels.TicketResponse{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.TicketResponse, error) {
	rec := dbmodels.TicketResponse{}
	err := i.db.
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

func (i impl) GetPending(ticketID string) (*dbmodels.TicketResponse, error) {
	rec := dbmodels.TicketResponse{}
	err := i.db.
		Where("ticket_id = ?", ticketID).
		Where("status = ?", models.ResponseStatusPending).
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
