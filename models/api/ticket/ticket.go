package ticketapimodels

import (
	"time"

	"github.com/pkg/errors"
	"qms-backend/models"
	apimodels "qms-backend/models/api"
	dbmodels "qms-backend/models/db"
)

type TicketData struct {
	Priority         models.TicketPriority `json:"priority"`           // приоритет
	SourceType       models.TicketSource   `json:"source_type"`        // источник
	FromDepartmentID string                `json:"from_department_id"` // инициирующее подразделение
	ToDepartmentID   string                `json:"to_department_id"`   // ответственное подразделение
	Subject          string                `json:"subject"`            // тема
	Description      string                `json:"description"`        // описание несоответствия
}

type TicketCreateData struct {
	TicketData
	Kind models.TicketKind `json:"kind"` // вид запроса CAR/IO
}

func (t TicketCreateData) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if t.Subject == "" {
		return errors.New("не указана тема запроса")
	}
	if t.ToDepartmentID == "" {
		return errors.New("не указано ответственное подразделение")
	}
	if err := t.Priority.Validate(t.Kind); err != nil {
		return err
	}
	if err := t.SourceType.Validate(); err != nil {
		return err
	}
	return nil
}

type TicketEditData struct {
	TicketData
}

type ApproveData struct {
	Clarification string `json:"clarification"` // необязательное уточнение при выдаче
}

type RejectData struct {
	Reason string `json:"reason"` // причина возврата/отклонения
}

func (r RejectData) Validate() error {
	if r.Reason == "" {
		return errors.New("не указана причина")
	}
	return nil
}

type ResponseData struct {
	RootCause                  string     `json:"root_cause"`                    // коренная причина
	Correction                 string     `json:"correction"`                    // коррекция
	CorrectionTargetDate       *time.Time `json:"correction_target_date"`        // плановая дата коррекции
	CorrectiveAction           string     `json:"corrective_action"`             // корректирующее действие
	CorrectiveActionTargetDate *time.Time `json:"corrective_action_target_date"` // плановая дата действия
}

func (r ResponseData) Validate(kind models.TicketKind) error {
	if r.RootCause == "" {
		return errors.New("не указана коренная причина")
	}
	if r.Correction == "" {
		return errors.New("не указана коррекция")
	}
	if r.CorrectionTargetDate == nil {
		return errors.New("не указана плановая дата коррекции")
	}
	if kind == models.TicketKindCAR {
		if r.CorrectiveAction == "" {
			return errors.New("не указано корректирующее действие")
		}
		if r.CorrectiveActionTargetDate == nil {
			return errors.New("не указана плановая дата корректирующего действия")
		}
	}
	return nil
}

type ActionDoneData struct {
	CorrectionDone       bool       `json:"correction_done"`        // коррекция выполнена
	CorrectiveActionDone bool       `json:"corrective_action_done"` // действие выполнено
	ActualDate           *time.Time `json:"actual_date"`            // фактическая дата, по умолчанию текущая
}

type FollowUpData struct {
	Type models.FollowUpType `json:"type"` // что проверяется: коррекция или действие
}

func (f FollowUpData) Validate() error {
	return f.Type.Validate()
}

type TicketFilter struct {
	apimodels.Pagination
	Kind           models.TicketKind   `json:"kind"`             // вид запроса
	Status         models.TicketStatus `json:"status"`           // статус
	ToDepartmentID string              `json:"to_department_id"` // ответственное подразделение
	OnlyOverdue    bool                `json:"only_overdue"`     // только просроченные
	Search         string              `json:"search"`           // поиск по номеру/теме
}

type ResponseView struct {
	ID                         string                `json:"id"`
	RootCause                  string                `json:"root_cause"`
	Correction                 string                `json:"correction"`
	CorrectionTargetDate       *time.Time            `json:"correction_target_date"`
	CorrectionActualDate       *time.Time            `json:"correction_actual_date"`
	CorrectiveAction           string                `json:"corrective_action"`
	CorrectiveActionTargetDate *time.Time            `json:"corrective_action_target_date"`
	CorrectiveActionActualDate *time.Time            `json:"corrective_action_actual_date"`
	Status                     models.ResponseStatus `json:"status"`
	RejectionReason            string                `json:"rejection_reason,omitempty"`
	RespondedBy                string                `json:"responded_by"`
	RespondedAt                time.Time             `json:"responded_at"`
	Overdue                    bool                  `json:"overdue"`
}

type FollowUpView struct {
	ID              string                `json:"id"`
	Type            models.FollowUpType   `json:"type"`
	Status          models.FollowUpStatus `json:"status"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	FollowedUpBy    string                `json:"followed_up_by"`
	FollowedUpAt    time.Time             `json:"followed_up_at"`
}

type TicketView struct {
	TicketData
	ID                 string              `json:"id"`
	Kind               models.TicketKind   `json:"kind"`
	Number             string              `json:"number"`
	Status             models.TicketStatus `json:"status"`
	StatusName         string              `json:"status_name"`
	FromDepartmentName string              `json:"from_department_name"`
	ToDepartmentName   string              `json:"to_department_name"`
	IssuedDate         *time.Time          `json:"issued_date"`
	IssuedBy           string              `json:"issued_by"`
	Clarification      string              `json:"clarification,omitempty"`
	ApprovedAt         *time.Time          `json:"approved_at,omitempty"`
	ClosedAt           *time.Time          `json:"closed_at,omitempty"`
	Overdue            bool                `json:"overdue"` // вычисляемый признак просрочки
	Closable           bool                `json:"closable"`
	Responses          []ResponseView      `json:"responses"`
	FollowUps          []FollowUpView      `json:"follow_ups"`
	CreationDate       time.Time           `json:"creation_date"`
}

func ResponseConvert(rec dbmodels.TicketResponse, now time.Time) ResponseView {
	result := ResponseView{
		ID:                         rec.ID,
		RootCause:                  rec.RootCause,
		Correction:                 rec.Correction,
		CorrectionTargetDate:       rec.CorrectionTargetDate,
		CorrectionActualDate:       rec.CorrectionActualDate,
		CorrectiveAction:           rec.CorrectiveAction,
		CorrectiveActionTargetDate: rec.CorrectiveActionTargetDate,
		CorrectiveActionActualDate: rec.CorrectiveActionActualDate,
		Status:                     rec.Status,
		RespondedAt:                rec.RespondedAt,
		Overdue:                    rec.IsOverdue(now),
	}
	if rec.RejectionReason != nil {
		result.RejectionReason = *rec.RejectionReason
	}
	if rec.RespondedBy != nil {
		result.RespondedBy = rec.RespondedBy.GetFullName()
	}
	return result
}

func FollowUpConvert(rec dbmodels.TicketFollowUp) FollowUpView {
	result := FollowUpView{
		ID:           rec.ID,
		Type:         rec.Type,
		Status:       rec.Status,
		FollowedUpAt: rec.FollowedUpAt,
	}
	if rec.RejectionReason != nil {
		result.RejectionReason = *rec.RejectionReason
	}
	if rec.FollowedUpBy != nil {
		result.FollowedUpBy = rec.FollowedUpBy.GetFullName()
	}
	return result
}

func TicketConvert(rec dbmodels.Ticket, now time.Time) TicketView {
	result := TicketView{
		TicketData: TicketData{
			Priority:         rec.Priority,
			SourceType:       rec.SourceType,
			FromDepartmentID: rec.FromDepartmentID,
			ToDepartmentID:   rec.ToDepartmentID,
			Subject:          rec.Subject,
			Description:      rec.Description,
		},
		ID:           rec.ID,
		Kind:         rec.Kind,
		Number:       rec.Number,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		IssuedDate:   rec.IssuedDate,
		ApprovedAt:   rec.ApprovedAt,
		ClosedAt:     rec.ClosedAt,
		Overdue:      rec.IsOverdue(now),
		Closable:     rec.IsClosable(),
		CreationDate: rec.CreatedAt,
	}
	if rec.Clarification != nil {
		result.Clarification = *rec.Clarification
	}
	if rec.FromDepartment != nil {
		result.FromDepartmentName = rec.FromDepartment.Name
	}
	if rec.ToDepartment != nil {
		result.ToDepartmentName = rec.ToDepartment.Name
	}
	if rec.IssuedBy != nil {
		result.IssuedBy = rec.IssuedBy.GetFullName()
	}
	result.Responses = make([]ResponseView, 0, len(rec.Responses))
	for _, resp := range rec.Responses {
		result.Responses = append(result.Responses, ResponseConvert(resp, now))
	}
	result.FollowUps = make([]FollowUpView, 0, len(rec.FollowUps))
	for _, fu := range rec.FollowUps {
		result.FollowUps = append(result.FollowUps, FollowUpConvert(fu))
	}
	return result
}
