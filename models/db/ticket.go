package dbmodels

import (
	"time"

	"qms-backend/models"
)

// Ticket запрос на корректирующее действие (CAR) или возможность улучшения (IO).
// Обе сущности живут в одной таблице и различаются полем Kind,
// для IO этап проверки результативности отсутствует.
type Ticket struct {
	BaseModel
	Kind             models.TicketKind     `gorm:"type:varchar(10);index"`
	Number           string                `gorm:"type:varchar(20);uniqueIndex"`
	Status           models.TicketStatus   `gorm:"type:varchar(30);index"`
	Priority         models.TicketPriority `gorm:"type:varchar(10)"`
	SourceType       models.TicketSource   `gorm:"type:varchar(30)"`
	FromDepartmentID string                `gorm:"type:varchar(36)"`
	FromDepartment   *Department           `gorm:"foreignKey:FromDepartmentID"`
	ToDepartmentID   string                `gorm:"type:varchar(36);index"`
	ToDepartment     *Department           `gorm:"foreignKey:ToDepartmentID"`
	IssuedDate       *time.Time
	Subject          string
	Description      string
	Clarification    *string // причина возврата на доработку / уточнение при согласовании
	IssuedByID       string  `gorm:"type:varchar(36)"`
	IssuedBy         *User   `gorm:"foreignKey:IssuedByID"`
	ApprovedByID     *string `gorm:"type:varchar(36)"`
	ApprovedAt       *time.Time
	ClosedByID       *string `gorm:"type:varchar(36)"`
	ClosedAt         *time.Time
	Responses        []TicketResponse `gorm:"foreignKey:TicketID"`
	FollowUps        []TicketFollowUp `gorm:"foreignKey:TicketID"`
}

// TicketResponse ответ подразделения: причина, коррекция и корректирующее действие.
// Отклонённые ответы не редактируются, подразделение отправляет новый ответ.
// Для IO заполняется только пара полей Correction*.
type TicketResponse struct {
	BaseModel
	TicketID                   string `gorm:"type:varchar(36);index"`
	RootCause                  string
	Correction                 string
	CorrectionTargetDate       *time.Time
	CorrectionActualDate       *time.Time
	CorrectiveAction           string
	CorrectiveActionTargetDate *time.Time
	CorrectiveActionActualDate *time.Time
	Status                     models.ResponseStatus `gorm:"type:varchar(20);index"`
	RejectionReason            *string
	RespondedByID              string `gorm:"type:varchar(36)"`
	RespondedBy                *User  `gorm:"foreignKey:RespondedByID"`
	RespondedAt                time.Time
	ReviewedByID               *string `gorm:"type:varchar(36)"`
	ReviewedAt                 *time.Time
}

// TicketFollowUp проверка результативности после принятия ответа (только CAR)
type TicketFollowUp struct {
	BaseModel
	TicketID        string                `gorm:"type:varchar(36);index"`
	Type            models.FollowUpType   `gorm:"type:varchar(30)"`
	Status          models.FollowUpStatus `gorm:"type:varchar(20)"`
	RejectionReason *string
	FollowedUpByID  string `gorm:"type:varchar(36)"`
	FollowedUpBy    *User  `gorm:"foreignKey:FollowedUpByID"`
	FollowedUpAt    time.Time
}

func (t Ticket) HasAcceptedResponse() bool {
	for _, resp := range t.Responses {
		if resp.Status == models.ResponseStatusAccepted {
			return true
		}
	}
	return false
}

// IsClosable запрос закрывается при наличии принятого ответа и хотя бы одной
// проверки результативности, при этом все проверки должны быть приняты.
// Для IO проверки результативности не требуются.
func (t Ticket) IsClosable() bool {
	if !t.HasAcceptedResponse() {
		return false
	}
	if !t.Kind.HasFollowUp() {
		return true
	}
	if len(t.FollowUps) == 0 {
		return false
	}
	for _, fu := range t.FollowUps {
		if fu.Status != models.FollowUpStatusAccepted {
			return false
		}
	}
	return true
}

// IsOverdue признак просрочки вычисляется по датам и не хранится в статусе:
// плановая дата прошла, а фактическая не проставлена
func (t Ticket) IsOverdue(now time.Time) bool {
	if t.Status.IsFinal() {
		return false
	}
	for _, resp := range t.Responses {
		if resp.IsOverdue(now) {
			return true
		}
	}
	return false
}

func (r TicketResponse) IsOverdue(now time.Time) bool {
	if r.Status == models.ResponseStatusRejected {
		return false
	}
	if r.CorrectionTargetDate != nil && r.CorrectionActualDate == nil && r.CorrectionTargetDate.Before(now) {
		return true
	}
	if r.CorrectiveActionTargetDate != nil && r.CorrectiveActionActualDate == nil && r.CorrectiveActionTargetDate.Before(now) {
		return true
	}
	return false
}

// IsComplete обе фактические даты проставлены (для IO достаточно одной)
func (r TicketResponse) IsComplete(kind models.TicketKind) bool {
	if r.CorrectionActualDate == nil {
		return false
	}
	if kind == models.TicketKindIO {
		return true
	}
	return r.CorrectiveActionActualDate != nil
}

// NextDueDate ближайшая не закрытая плановая дата, опорная точка для напоминаний
func (t Ticket) NextDueDate() *time.Time {
	var due *time.Time
	for idx := range t.Responses {
		resp := t.Responses[idx]
		if resp.Status == models.ResponseStatusRejected {
			continue
		}
		for _, pair := range []struct {
			target *time.Time
			actual *time.Time
		}{
			{resp.CorrectionTargetDate, resp.CorrectionActualDate},
			{resp.CorrectiveActionTargetDate, resp.CorrectiveActionActualDate},
		} {
			if pair.target == nil || pair.actual != nil {
				continue
			}
			if due == nil || pair.target.Before(*due) {
				due = pair.target
			}
		}
	}
	return due
}
