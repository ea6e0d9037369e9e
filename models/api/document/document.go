package docapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "qms-backend/models/db"
)

type DocumentData struct {
	Title             string     `json:"title"`               // название документа
	Version           int        `json:"version"`             // версия
	OwnerDepartmentID string     `json:"owner_department_id"` // подразделение-владелец
	EffectiveDate     *time.Time `json:"effective_date"`      // дата ввода в действие
	ReviewDate        *time.Time `json:"review_date"`         // дата планового пересмотра
}

func (d DocumentData) Validate() error {
	if d.Title == "" {
		return errors.New("не указано название документа")
	}
	if d.OwnerDepartmentID == "" {
		return errors.New("не указано подразделение-владелец")
	}
	return nil
}

type DocumentView struct {
	DocumentData
	ID                  string                  `json:"id"`
	Number              string                  `json:"number"`
	Status              dbmodels.DocumentStatus `json:"status"`
	OwnerDepartmentName string                  `json:"owner_department_name"`
	ApprovedBy          string                  `json:"approved_by,omitempty"`
	FileName            string                  `json:"file_name,omitempty"`
	CreationDate        time.Time               `json:"creation_date"`
}

func DocumentConvert(rec dbmodels.Document) DocumentView {
	result := DocumentView{
		DocumentData: DocumentData{
			Title:             rec.Title,
			Version:           rec.Version,
			OwnerDepartmentID: rec.OwnerDepartmentID,
			EffectiveDate:     rec.EffectiveDate,
			ReviewDate:        rec.ReviewDate,
		},
		ID:           rec.ID,
		Number:       rec.Number,
		Status:       rec.Status,
		FileName:     rec.FileName,
		CreationDate: rec.CreatedAt,
	}
	if rec.OwnerDepartment != nil {
		result.OwnerDepartmentName = rec.OwnerDepartment.Name
	}
	if rec.ApprovedBy != nil {
		result.ApprovedBy = rec.ApprovedBy.GetFullName()
	}
	return result
}
