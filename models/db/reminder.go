package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"qms-backend/models"
)

// ReminderSetting настройка напоминаний для пары (тип сущности, тип события).
// Intervals — упорядоченный набор интервалов в часах до события,
// для события no_response значения трактуются как рабочие дни с даты выдачи.
type ReminderSetting struct {
	BaseModel
	EntityType    models.ReminderEntityType `gorm:"type:varchar(30);uniqueIndex:idx_reminder_setting,priority:1"`
	EventType     models.ReminderEventType  `gorm:"type:varchar(30);uniqueIndex:idx_reminder_setting,priority:2"`
	Intervals     pq.Int64Array             `gorm:"type:integer[]"`
	SystemEnabled bool
	EmailEnabled  bool
	TemplateCode  models.NotifyCode `gorm:"type:varchar(100)"`
	Active        bool              `gorm:"default:true"`
}

// SentReminder журнал отправленных напоминаний.
// Уникальный ключ по пяти полям гарантирует не более одной отправки
// на комбинацию (сущность, событие, интервал, получатель);
// повторная вставка означает, что напоминание уже ушло.
type SentReminder struct {
	BaseModel
	EntityType    models.ReminderEntityType `gorm:"type:varchar(30);uniqueIndex:idx_sent_reminder,priority:1"`
	EntityID      string                    `gorm:"type:varchar(36);uniqueIndex:idx_sent_reminder,priority:2"`
	EventType     models.ReminderEventType  `gorm:"type:varchar(30);uniqueIndex:idx_sent_reminder,priority:3"`
	IntervalHours int                       `gorm:"uniqueIndex:idx_sent_reminder,priority:4"`
	UserID        string                    `gorm:"type:varchar(36);uniqueIndex:idx_sent_reminder,priority:5"`
	SentAt        time.Time
}
