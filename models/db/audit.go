package dbmodels

import "time"

type AuditPlanStatus string

const (
	AuditPlanStatusPlanned   AuditPlanStatus = "planned"
	AuditPlanStatusDone      AuditPlanStatus = "done"
	AuditPlanStatusCancelled AuditPlanStatus = "cancelled"
)

// AuditPlan план внутреннего аудита
type AuditPlan struct {
	BaseModel
	Number       string `gorm:"type:varchar(20);uniqueIndex"`
	Subject      string
	DepartmentID string      `gorm:"type:varchar(36);index"` // проверяемое подразделение
	Department   *Department `gorm:"foreignKey:DepartmentID"`
	LeadAuditorID string     `gorm:"type:varchar(36)"`
	LeadAuditor  *User       `gorm:"foreignKey:LeadAuditorID"`
	PlannedDate  *time.Time
	Status       AuditPlanStatus `gorm:"type:varchar(20);index"`
	Report       string
}

type ExternalAuditStatus string

const (
	ExternalAuditStatusPlanned  ExternalAuditStatus = "planned"
	ExternalAuditStatusFinished ExternalAuditStatus = "finished"
)

// ExternalAudit аудит сторонним органом по сертификации
type ExternalAudit struct {
	BaseModel
	Number          string `gorm:"type:varchar(20);uniqueIndex"`
	AuditBody       string `gorm:"type:varchar(255)"` // орган по сертификации
	Standard        string `gorm:"type:varchar(100)"`
	StartDate       *time.Time
	EndDate         *time.Time
	Status          ExternalAuditStatus `gorm:"type:varchar(20);index"`
	ResponsibleID   string              `gorm:"type:varchar(36)"`
	Responsible     *User               `gorm:"foreignKey:ResponsibleID"`
	Result          string
}
