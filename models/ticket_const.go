package models

import "github.com/pkg/errors"

// TicketKind вид запроса: корректирующее действие или возможность улучшения
type TicketKind string

const (
	TicketKindCAR TicketKind = "CAR" // Corrective Action Request
	TicketKindIO  TicketKind = "IO"  // Improvement Opportunity
)

func (k TicketKind) Validate() error {
	if k != TicketKindCAR && k != TicketKindIO {
		return errors.Errorf("неизвестный вид запроса: %v", k)
	}
	return nil
}

// HasFollowUp этап проверки результативности есть только у CAR
func (k TicketKind) HasFollowUp() bool {
	return k == TicketKindCAR
}

type TicketStatus string

const (
	TicketStatusDraft             TicketStatus = "draft"
	TicketStatusPendingApproval   TicketStatus = "pending_approval"
	TicketStatusIssued            TicketStatus = "issued"
	TicketStatusRejectedToBeEdit  TicketStatus = "rejected_to_be_edited"
	TicketStatusInProgress        TicketStatus = "in_progress"
	TicketStatusPendingReview     TicketStatus = "pending_review"
	TicketStatusClosed            TicketStatus = "closed"
	TicketStatusCancelled         TicketStatus = "cancelled"
)

var ticketStatusHumanName = map[TicketStatus]string{
	TicketStatusDraft:            "Черновик",
	TicketStatusPendingApproval:  "На согласовании",
	TicketStatusIssued:           "Выдан",
	TicketStatusRejectedToBeEdit: "Возвращён на доработку",
	TicketStatusInProgress:       "В работе",
	TicketStatusPendingReview:    "На проверке",
	TicketStatusClosed:           "Закрыт",
	TicketStatusCancelled:        "Отменён",
}

func (s TicketStatus) ToHuman() string {
	if human, exist := ticketStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// AllowEdit редактирование доступно только в черновике и после возврата на доработку
func (s TicketStatus) AllowEdit() bool {
	return s == TicketStatusDraft || s == TicketStatusRejectedToBeEdit
}

func (s TicketStatus) AllowSubmitForApproval() bool {
	return s == TicketStatusDraft || s == TicketStatusRejectedToBeEdit
}

func (s TicketStatus) AllowApprove() bool {
	return s == TicketStatusPendingApproval
}

// AllowResponse ответ подразделения принимается после выдачи и до закрытия
func (s TicketStatus) AllowResponse() bool {
	return s == TicketStatusIssued || s == TicketStatusInProgress
}

func (s TicketStatus) IsFinal() bool {
	return s == TicketStatusClosed || s == TicketStatusCancelled
}

type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "critical"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityLow      TicketPriority = "low"
)

// Validate критичный приоритет предусмотрен только для CAR
func (p TicketPriority) Validate(kind TicketKind) error {
	switch p {
	case TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow:
		return nil
	case TicketPriorityCritical:
		if kind == TicketKindCAR {
			return nil
		}
		return errors.New("приоритет critical недоступен для возможности улучшения")
	}
	return errors.Errorf("неизвестный приоритет: %v", p)
}

type TicketSource string

const (
	TicketSourceInternalAudit TicketSource = "internal_audit"
	TicketSourceExternalAudit TicketSource = "external_audit"
	TicketSourceComplaint     TicketSource = "complaint"
	TicketSourceObservation   TicketSource = "observation"
	TicketSourceManagement    TicketSource = "management_review"
)

var ticketSourceHumanName = map[TicketSource]string{
	TicketSourceInternalAudit: "Внутренний аудит",
	TicketSourceExternalAudit: "Внешний аудит",
	TicketSourceComplaint:     "Рекламация",
	TicketSourceObservation:   "Наблюдение",
	TicketSourceManagement:    "Анализ со стороны руководства",
}

func (s TicketSource) Validate() error {
	if _, exist := ticketSourceHumanName[s]; !exist {
		return errors.Errorf("неизвестный источник запроса: %v", s)
	}
	return nil
}

func (s TicketSource) ToHuman() string {
	if human, exist := ticketSourceHumanName[s]; exist {
		return human
	}
	return string(s)
}

type ResponseStatus string

const (
	ResponseStatusPending   ResponseStatus = "pending"
	ResponseStatusSubmitted ResponseStatus = "submitted"
	ResponseStatusAccepted  ResponseStatus = "accepted"
	ResponseStatusRejected  ResponseStatus = "rejected"
)

type FollowUpStatus string

const (
	FollowUpStatusPending     FollowUpStatus = "pending"
	FollowUpStatusAccepted    FollowUpStatus = "accepted"
	FollowUpStatusNotAccepted FollowUpStatus = "not_accepted"
)

type FollowUpType string

const (
	FollowUpTypeCorrection       FollowUpType = "correction"
	FollowUpTypeCorrectiveAction FollowUpType = "corrective_action"
)

func (t FollowUpType) Validate() error {
	if t != FollowUpTypeCorrection && t != FollowUpTypeCorrectiveAction {
		return errors.Errorf("неизвестный тип проверки: %v", t)
	}
	return nil
}
