package dbmodels

import "time"

type CertificateStatus string

const (
	CertificateStatusActive    CertificateStatus = "active"
	CertificateStatusExpired   CertificateStatus = "expired"
	CertificateStatusWithdrawn CertificateStatus = "withdrawn"
)

// Certificate сертификат соответствия (ISO и пр.)
type Certificate struct {
	BaseModel
	Number        string `gorm:"type:varchar(20);uniqueIndex"`
	Name          string `gorm:"type:varchar(255)"`
	Authority     string `gorm:"type:varchar(255)"` // выдавший орган
	Standard      string `gorm:"type:varchar(100)"`
	IssueDate     *time.Time
	ExpiryDate    *time.Time
	Status        CertificateStatus `gorm:"type:varchar(20);index"`
	ResponsibleID string            `gorm:"type:varchar(36)"`
	Responsible   *User             `gorm:"foreignKey:ResponsibleID"`
}
