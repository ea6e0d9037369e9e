package dbmodels

import (
	"fmt"
	"qms-backend/models"
)

type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Role         models.UserRole `gorm:"type:varchar(50);index"`
	DepartmentID *string         `gorm:"type:varchar(36);index"`
	Department   *Department
	EmailEnabled bool `gorm:"default:true"` // дублировать уведомления на почту
}

func (u User) GetFullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return fmt.Sprintf("%v %v", u.LastName, u.FirstName)
}
