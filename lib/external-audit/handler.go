package externalaudit

import (
	"github.com/pkg/errors"
	"qms-backend/db"
	externalauditstore "qms-backend/lib/external-audit/store"
	"qms-backend/lib/sequence"
	"qms-backend/models"
	auditapimodels "qms-backend/models/api/audit"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(data auditapimodels.ExternalAuditData) (id string, err error)
	Edit(id string, data auditapimodels.ExternalAuditData) error
	GetByID(id string) (view auditapimodels.ExternalAuditView, err error)
	List() (list []auditapimodels.ExternalAuditView, err error)
	Finish(id, result string) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: externalauditstore.NewInstance(db.DB),
		seq:   sequence.Instance,
	}
}

type impl struct {
	store externalauditstore.Provider
	seq   sequence.Provider
}

func (i impl) Create(data auditapimodels.ExternalAuditData) (id string, err error) {
	number, err := i.seq.Next(models.NumberFamilyExternalAudit)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения номера аудита")
	}
	rec := dbmodels.ExternalAudit{
		Number:        number,
		AuditBody:     data.AuditBody,
		Standard:      data.Standard,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Status:        dbmodels.ExternalAuditStatusPlanned,
		ResponsibleID: data.ResponsibleID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания внешнего аудита")
	}
	return id, nil
}

func (i impl) Edit(id string, data auditapimodels.ExternalAuditData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != dbmodels.ExternalAuditStatusPlanned {
		return errors.New("редактирование доступно только для запланированного аудита")
	}
	return i.store.Update(id, map[string]interface{}{
		"audit_body":     data.AuditBody,
		"standard":       data.Standard,
		"start_date":     data.StartDate,
		"end_date":       data.EndDate,
		"responsible_id": data.ResponsibleID,
	})
}

func (i impl) GetByID(id string) (view auditapimodels.ExternalAuditView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return auditapimodels.ExternalAuditView{}, err
	}
	return auditapimodels.ExternalAuditConvert(*rec), nil
}

func (i impl) List() (list []auditapimodels.ExternalAuditView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка внешних аудитов")
	}
	list = make([]auditapimodels.ExternalAuditView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, auditapimodels.ExternalAuditConvert(rec))
	}
	return list, nil
}

func (i impl) Finish(id, result string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != dbmodels.ExternalAuditStatusPlanned {
		return errors.New("завершить можно только запланированный аудит")
	}
	if result == "" {
		return errors.New("не указан результат аудита")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": dbmodels.ExternalAuditStatusFinished,
		"result": result,
	})
}

func (i impl) Delete(id string) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	return i.store.Delete(id)
}

func (i impl) getRec(id string) (*dbmodels.ExternalAudit, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения внешнего аудита")
	}
	if rec == nil {
		return nil, errors.New("внешний аудит не найден")
	}
	return rec, nil
}
