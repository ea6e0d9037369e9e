package notifyapimodels

import (
	"time"

	"github.com/pkg/errors"
	"qms-backend/models"
	dbmodels "qms-backend/models/db"
)

type NotificationView struct {
	ID                   string            `json:"id"`
	Code                 models.NotifyCode `json:"code"`
	Title                string            `json:"title"`
	Msg                  string            `json:"msg"`
	ActionURL            string            `json:"action_url,omitempty"`
	RequiresConfirmation bool              `json:"requires_confirmation"`
	Viewed               bool              `json:"viewed"`
	ConfirmedAt          *time.Time        `json:"confirmed_at,omitempty"`
	Date                 time.Time         `json:"date"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:                   rec.ID,
		Code:                 rec.Code,
		Title:                rec.Title,
		Msg:                  rec.Msg,
		ActionURL:            rec.ActionURL,
		RequiresConfirmation: rec.RequiresConfirmation,
		Viewed:               rec.Viewed,
		ConfirmedAt:          rec.ConfirmedAt,
		Date:                 rec.CreatedAt,
	}
}

type ReminderSettingData struct {
	EntityType    models.ReminderEntityType `json:"entity_type"`    // тип сущности
	EventType     models.ReminderEventType  `json:"event_type"`     // тип события
	Intervals     []int64                   `json:"intervals"`      // интервалы в часах до события
	SystemEnabled bool                      `json:"system_enabled"` // системные уведомления
	EmailEnabled  bool                      `json:"email_enabled"`  // почтовые уведомления
	TemplateCode  models.NotifyCode         `json:"template_code"`  // код шаблона
	Active        bool                      `json:"active"`
}

func (r ReminderSettingData) Validate() error {
	if err := r.EntityType.Validate(); err != nil {
		return err
	}
	if err := r.EventType.Validate(); err != nil {
		return err
	}
	if len(r.Intervals) == 0 {
		return errors.New("не указаны интервалы напоминаний")
	}
	seen := map[int64]bool{}
	for _, interval := range r.Intervals {
		if interval <= 0 {
			return errors.New("интервал должен быть положительным числом часов")
		}
		if seen[interval] {
			return errors.Errorf("интервал %v указан дважды", interval)
		}
		seen[interval] = true
	}
	return nil
}

type ReminderSettingView struct {
	ReminderSettingData
	ID             string `json:"id"`
	EntityTypeName string `json:"entity_type_name"`
}

func ReminderSettingConvert(rec dbmodels.ReminderSetting) ReminderSettingView {
	return ReminderSettingView{
		ReminderSettingData: ReminderSettingData{
			EntityType:    rec.EntityType,
			EventType:     rec.EventType,
			Intervals:     rec.Intervals,
			SystemEnabled: rec.SystemEnabled,
			EmailEnabled:  rec.EmailEnabled,
			TemplateCode:  rec.TemplateCode,
			Active:        rec.Active,
		},
		ID:             rec.ID,
		EntityTypeName: rec.EntityType.ToHuman(),
	}
}

type NotifyTemplateData struct {
	Code          models.NotifyCode `json:"code"`           // код события
	Subject       string            `json:"subject"`        // тема письма
	Body          string            `json:"body"`           // текст письма
	Title         string            `json:"title"`          // заголовок системного уведомления
	Msg           string            `json:"msg"`            // текст системного уведомления
	EmailEnabled  bool              `json:"email_enabled"`  // отправлять на почту
	SystemEnabled bool              `json:"system_enabled"` // сохранять в системе
	Active        bool              `json:"active"`
}

func (t NotifyTemplateData) Validate() error {
	if t.Code == "" {
		return errors.New("не указан код события")
	}
	if _, exist := models.NotifyCodeMap[t.Code]; !exist {
		return errors.Errorf("неизвестный код события: %v", t.Code)
	}
	return nil
}

type NotifyTemplateView struct {
	NotifyTemplateData
	ID   string `json:"id,omitempty"` // пусто для встроенного шаблона
	Name string `json:"name"`
}
