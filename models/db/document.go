package dbmodels

import "time"

type DocumentStatus string

const (
	DocumentStatusActive  DocumentStatus = "active"
	DocumentStatusRetired DocumentStatus = "retired"
)

// Document управляемый документ СМК
type Document struct {
	BaseModel
	Number            string `gorm:"type:varchar(20);uniqueIndex"`
	Title             string `gorm:"type:varchar(255)"`
	Version           int
	OwnerDepartmentID string      `gorm:"type:varchar(36);index"`
	OwnerDepartment   *Department `gorm:"foreignKey:OwnerDepartmentID"`
	ApprovedByID      *string     `gorm:"type:varchar(36)"`
	ApprovedBy        *User       `gorm:"foreignKey:ApprovedByID"`
	EffectiveDate     *time.Time
	ReviewDate        *time.Time // дата планового пересмотра
	Status            DocumentStatus `gorm:"type:varchar(20);index"`
	FileKey           string         `gorm:"type:varchar(100)"` // ключ файла в S3
	FileName          string         `gorm:"type:varchar(255)"`
}
