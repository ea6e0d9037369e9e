package auditplanstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuditPlan) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.AuditPlan, err error)
	List() (list []dbmodels.AuditPlan, err error)
	// ListPlanned аудиты с плановой датой, кандидаты на напоминания
	ListPlanned() (list []dbmodels.AuditPlan, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditPlan) (id string, err error) {
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
		Model(dbmodels.AuditPlan{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.AuditPlan{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.AuditPlan, error) {
	rec := dbmodels.AuditPlan{}
	err := i.db.
		Preload("Department").
		Preload("LeadAuditor").
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

func (i impl) List() (list []dbmodels.AuditPlan, err error) {
	err = i.db.
		Preload("Department").
		Preload("LeadAuditor").
		Order("planned_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPlanned() (list []dbmodels.AuditPlan, err error) {
	err = i.db.
		Preload("Department").
		Preload("LeadAuditor").
		Where("status = ?", dbmodels.AuditPlanStatusPlanned).
		Where("planned_date IS NOT NULL").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
