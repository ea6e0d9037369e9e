package auditapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "qms-backend/models/db"
)

type AuditPlanData struct {
	Subject       string     `json:"subject"`         // тема аудита
	DepartmentID  string     `json:"department_id"`   // проверяемое подразделение
	LeadAuditorID string     `json:"lead_auditor_id"` // ведущий аудитор
	PlannedDate   *time.Time `json:"planned_date"`    // плановая дата
	Report        string     `json:"report"`          // отчёт по результатам
}

func (a AuditPlanData) Validate() error {
	if a.Subject == "" {
		return errors.New("не указана тема аудита")
	}
	if a.DepartmentID == "" {
		return errors.New("не указано проверяемое подразделение")
	}
	if a.PlannedDate == nil {
		return errors.New("не указана плановая дата")
	}
	return nil
}

type AuditPlanView struct {
	AuditPlanData
	ID              string                   `json:"id"`
	Number          string                   `json:"number"`
	Status          dbmodels.AuditPlanStatus `json:"status"`
	DepartmentName  string                   `json:"department_name"`
	LeadAuditorName string                   `json:"lead_auditor_name"`
	CreationDate    time.Time                `json:"creation_date"`
}

func AuditPlanConvert(rec dbmodels.AuditPlan) AuditPlanView {
	result := AuditPlanView{
		AuditPlanData: AuditPlanData{
			Subject:       rec.Subject,
			DepartmentID:  rec.DepartmentID,
			LeadAuditorID: rec.LeadAuditorID,
			PlannedDate:   rec.PlannedDate,
			Report:        rec.Report,
		},
		ID:           rec.ID,
		Number:       rec.Number,
		Status:       rec.Status,
		CreationDate: rec.CreatedAt,
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.LeadAuditor != nil {
		result.LeadAuditorName = rec.LeadAuditor.GetFullName()
	}
	return result
}

type AuditReportData struct {
	Report string `json:"report"` // отчёт по результатам аудита
}

type ExternalAuditData struct {
	AuditBody     string     `json:"audit_body"`     // орган по сертификации
	Standard      string     `json:"standard"`       // стандарт
	StartDate     *time.Time `json:"start_date"`     // дата начала
	EndDate       *time.Time `json:"end_date"`       // дата окончания
	ResponsibleID string     `json:"responsible_id"` // ответственный
	Result        string     `json:"result"`         // результат
}

func (a ExternalAuditData) Validate() error {
	if a.AuditBody == "" {
		return errors.New("не указан орган по сертификации")
	}
	if a.StartDate == nil {
		return errors.New("не указана дата начала")
	}
	return nil
}

type AuditResultData struct {
	Result string `json:"result"` // итог внешнего аудита
}

type ExternalAuditView struct {
	ExternalAuditData
	ID              string                       `json:"id"`
	Number          string                       `json:"number"`
	Status          dbmodels.ExternalAuditStatus `json:"status"`
	ResponsibleName string                       `json:"responsible_name"`
	CreationDate    time.Time                    `json:"creation_date"`
}

func ExternalAuditConvert(rec dbmodels.ExternalAudit) ExternalAuditView {
	result := ExternalAuditView{
		ExternalAuditData: ExternalAuditData{
			AuditBody:     rec.AuditBody,
			Standard:      rec.Standard,
			StartDate:     rec.StartDate,
			EndDate:       rec.EndDate,
			ResponsibleID: rec.ResponsibleID,
			Result:        rec.Result,
		},
		ID:           rec.ID,
		Number:       rec.Number,
		Status:       rec.Status,
		CreationDate: rec.CreatedAt,
	}
	if rec.Responsible != nil {
		result.ResponsibleName = rec.Responsible.GetFullName()
	}
	return result
}
