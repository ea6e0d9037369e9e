package certapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "qms-backend/models/db"
)

type CertificateData struct {
	Name          string     `json:"name"`           // название сертификата
	Authority     string     `json:"authority"`      // выдавший орган
	Standard      string     `json:"standard"`       // стандарт
	IssueDate     *time.Time `json:"issue_date"`     // дата выдачи
	ExpiryDate    *time.Time `json:"expiry_date"`    // дата окончания действия
	ResponsibleID string     `json:"responsible_id"` // ответственный
}

func (c CertificateData) Validate() error {
	if c.Name == "" {
		return errors.New("не указано название сертификата")
	}
	if c.ExpiryDate == nil {
		return errors.New("не указана дата окончания действия")
	}
	return nil
}

type CertificateView struct {
	CertificateData
	ID              string                     `json:"id"`
	Number          string                     `json:"number"`
	Status          dbmodels.CertificateStatus `json:"status"`
	ResponsibleName string                     `json:"responsible_name"`
	CreationDate    time.Time                  `json:"creation_date"`
}

func CertificateConvert(rec dbmodels.Certificate) CertificateView {
	result := CertificateView{
		CertificateData: CertificateData{
			Name:          rec.Name,
			Authority:     rec.Authority,
			Standard:      rec.Standard,
			IssueDate:     rec.IssueDate,
			ExpiryDate:    rec.ExpiryDate,
			ResponsibleID: rec.ResponsibleID,
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
