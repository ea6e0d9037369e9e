package dbmodels

import "time"

type ComplaintStatus string

const (
	ComplaintStatusOpen   ComplaintStatus = "open"
	ComplaintStatusClosed ComplaintStatus = "closed"
)

// Complaint рекламация заказчика
type Complaint struct {
	BaseModel
	Number       string `gorm:"type:varchar(20);uniqueIndex"`
	CustomerName string `gorm:"type:varchar(255)"`
	Subject      string
	Details      string
	ReceivedDate *time.Time
	DepartmentID string          `gorm:"type:varchar(36);index"` // ответственное подразделение
	Department   *Department     `gorm:"foreignKey:DepartmentID"`
	Status       ComplaintStatus `gorm:"type:varchar(20);index"`
	TicketID     *string         `gorm:"type:varchar(36)"` // CAR, заведённый по рекламации
	Ticket       *Ticket         `gorm:"foreignKey:TicketID"`
}
