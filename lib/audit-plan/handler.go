package auditplan

import (
	"github.com/pkg/errors"
	"qms-backend/db"
	auditplanstore "qms-backend/lib/audit-plan/store"
	"qms-backend/lib/sequence"
	"qms-backend/models"
	auditapimodels "qms-backend/models/api/audit"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(data auditapimodels.AuditPlanData) (id string, err error)
	Edit(id string, data auditapimodels.AuditPlanData) error
	GetByID(id string) (view auditapimodels.AuditPlanView, err error)
	List() (list []auditapimodels.AuditPlanView, err error)
	MarkDone(id, report string) error
	Cancel(id string) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: auditplanstore.NewInstance(db.DB),
		seq:   sequence.Instance,
	}
}

type impl struct {
	store auditplanstore.Provider
	seq   sequence.Provider
}

func (i impl) Create(data auditapimodels.AuditPlanData) (id string, err error) {
	number, err := i.seq.Next(models.NumberFamilyAuditPlan)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения номера аудита")
	}
	rec := dbmodels.AuditPlan{
		Number:        number,
		Subject:       data.Subject,
		DepartmentID:  data.DepartmentID,
		LeadAuditorID: data.LeadAuditorID,
		PlannedDate:   data.PlannedDate,
		Status:        dbmodels.AuditPlanStatusPlanned,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания плана аудита")
	}
	return id, nil
}

func (i impl) Edit(id string, data auditapimodels.AuditPlanData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != dbmodels.AuditPlanStatusPlanned {
		return errors.New("редактирование доступно только для запланированного аудита")
	}
	return i.store.Update(id, map[string]interface{}{
		"subject":         data.Subject,
		"department_id":   data.DepartmentID,
		"lead_auditor_id": data.LeadAuditorID,
		"planned_date":    data.PlannedDate,
	})
}

func (i impl) GetByID(id string) (view auditapimodels.AuditPlanView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return auditapimodels.AuditPlanView{}, err
	}
	return auditapimodels.AuditPlanConvert(*rec), nil
}

func (i impl) List() (list []auditapimodels.AuditPlanView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка аудитов")
	}
	list = make([]auditapimodels.AuditPlanView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, auditapimodels.AuditPlanConvert(rec))
	}
	return list, nil
}

func (i impl) MarkDone(id, report string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != dbmodels.AuditPlanStatusPlanned {
		return errors.New("завершить можно только запланированный аудит")
	}
	if report == "" {
		return errors.New("не заполнен отчёт по результатам аудита")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": dbmodels.AuditPlanStatusDone,
		"report": report,
	})
}

func (i impl) Cancel(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != dbmodels.AuditPlanStatusPlanned {
		return errors.New("отменить можно только запланированный аудит")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": dbmodels.AuditPlanStatusCancelled,
	})
}

func (i impl) Delete(id string) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	return i.store.Delete(id)
}

func (i impl) getRec(id string) (*dbmodels.AuditPlan, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения плана аудита")
	}
	if rec == nil {
		return nil, errors.New("план аудита не найден")
	}
	return rec, nil
}
