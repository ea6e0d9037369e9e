package models

import "github.com/pkg/errors"

// ReminderEntityType типы сущностей, по которым планировщик рассылает напоминания
type ReminderEntityType string

const (
	ReminderEntityTicket        ReminderEntityType = "ticket"
	ReminderEntityAuditPlan     ReminderEntityType = "audit_plan"
	ReminderEntityExternalAudit ReminderEntityType = "external_audit"
	ReminderEntityCertificate   ReminderEntityType = "certificate"
	ReminderEntityDocument      ReminderEntityType = "document"
)

var reminderEntityHumanName = map[ReminderEntityType]string{
	ReminderEntityTicket:        "Запрос на корректирующее действие",
	ReminderEntityAuditPlan:     "План внутреннего аудита",
	ReminderEntityExternalAudit: "Внешний аудит",
	ReminderEntityCertificate:   "Сертификат",
	ReminderEntityDocument:      "Документ",
}

func (t ReminderEntityType) Validate() error {
	if _, exist := reminderEntityHumanName[t]; !exist {
		return errors.Errorf("неизвестный тип сущности: %v", t)
	}
	return nil
}

func (t ReminderEntityType) ToHuman() string {
	if human, exist := reminderEntityHumanName[t]; exist {
		return human
	}
	return string(t)
}

type ReminderEventType string

const (
	ReminderEventStart  ReminderEventType = "start"
	ReminderEventDue    ReminderEventType = "due"
	ReminderEventExpiry ReminderEventType = "expiry"
	ReminderEventReview ReminderEventType = "review"

	// ReminderEventNoResponse эскалация по запросу без ответа подразделения,
	// интервалы трактуются как рабочие дни с момента выдачи
	ReminderEventNoResponse ReminderEventType = "no_response"
)

func (t ReminderEventType) Validate() error {
	switch t {
	case ReminderEventStart, ReminderEventDue, ReminderEventExpiry,
		ReminderEventReview, ReminderEventNoResponse:
		return nil
	}
	return errors.Errorf("неизвестный тип события: %v", t)
}
