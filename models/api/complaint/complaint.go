package complaintapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "qms-backend/models/db"
)

type ComplaintData struct {
	CustomerName string     `json:"customer_name"` // заказчик
	Subject      string     `json:"subject"`       // тема рекламации
	Details      string     `json:"details"`       // подробности
	ReceivedDate *time.Time `json:"received_date"` // дата получения
	DepartmentID string     `json:"department_id"` // ответственное подразделение
}

func (c ComplaintData) Validate() error {
	if c.CustomerName == "" {
		return errors.New("не указан заказчик")
	}
	if c.Subject == "" {
		return errors.New("не указана тема рекламации")
	}
	if c.DepartmentID == "" {
		return errors.New("не указано ответственное подразделение")
	}
	return nil
}

type ComplaintView struct {
	ComplaintData
	ID             string                   `json:"id"`
	Number         string                   `json:"number"`
	Status         dbmodels.ComplaintStatus `json:"status"`
	DepartmentName string                   `json:"department_name"`
	TicketID       string                   `json:"ticket_id,omitempty"`     // связанный CAR
	TicketNumber   string                   `json:"ticket_number,omitempty"` // номер связанного CAR
	CreationDate   time.Time                `json:"creation_date"`
}

func ComplaintConvert(rec dbmodels.Complaint) ComplaintView {
	result := ComplaintView{
		ComplaintData: ComplaintData{
			CustomerName: rec.CustomerName,
			Subject:      rec.Subject,
			Details:      rec.Details,
			ReceivedDate: rec.ReceivedDate,
			DepartmentID: rec.DepartmentID,
		},
		ID:           rec.ID,
		Number:       rec.Number,
		Status:       rec.Status,
		CreationDate: rec.CreatedAt,
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.TicketID != nil {
		result.TicketID = *rec.TicketID
	}
	if rec.Ticket != nil {
		result.TicketNumber = rec.Ticket.Number
	}
	return result
}
