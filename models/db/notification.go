package dbmodels

import (
	"time"

	"qms-backend/models"
)

// Notification системное уведомление пользователя
type Notification struct {
	BaseModel
	UserID               string            `gorm:"type:varchar(36);index:idx_notify_user"`
	Code                 models.NotifyCode `gorm:"type:varchar(100);index"`
	Title                string
	Msg                  string
	ActionURL            string `gorm:"type:varchar(255)"`
	RequiresConfirmation bool   // эскалация, требует подтверждения получателем
	Viewed               bool
	ConfirmedAt          *time.Time
}

// NotifyTemplate переопределение встроенного шаблона уведомления.
// Неактивная запись равносильна отсутствующей: используется встроенный шаблон.
type NotifyTemplate struct {
	BaseModel
	Code          models.NotifyCode `gorm:"type:varchar(100);uniqueIndex"`
	Subject       string
	Body          string
	Title         string
	Msg           string
	EmailEnabled  bool
	SystemEnabled bool
	Active        bool `gorm:"default:true"`
}
