package reminder

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"qms-backend/db"
	auditplanstore "qms-backend/lib/audit-plan/store"
	certificatestore "qms-backend/lib/certificate/store"
	documentstore "qms-backend/lib/document/store"
	externalauditstore "qms-backend/lib/external-audit/store"
	msgtemplate "qms-backend/lib/msg-template"
	"qms-backend/lib/notify"
	sentreminderstore "qms-backend/lib/reminder/sent-store"
	remindersettingsstore "qms-backend/lib/reminder/settings-store"
	ticketstore "qms-backend/lib/ticket/store"
	userstore "qms-backend/lib/users/store"
	"qms-backend/lib/utils/helpers"
	"qms-backend/models"
	notifyapimodels "qms-backend/models/api/notification"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	// RunSweep один обход планировщика: напоминания о сроках и эскалации.
	// Повторный обход того же окна не приводит к повторной отправке,
	// дубликаты отсеивает журнал отправленных напоминаний.
	RunSweep(ctx context.Context, now time.Time)
	ListSettings() (list []notifyapimodels.ReminderSettingView, err error)
	SaveSetting(data notifyapimodels.ReminderSettingData) error
	DeleteSetting(id string) error
	// EnsureDefaults заполняет отсутствующие настройки значениями по умолчанию,
	// существующие записи не трогаются
	EnsureDefaults() error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		settingsStore:      remindersettingsstore.NewInstance(db.DB),
		sentStore:          sentreminderstore.NewInstance(db.DB),
		ticketStore:        ticketstore.NewInstance(db.DB),
		auditPlanStore:     auditplanstore.NewInstance(db.DB),
		externalAuditStore: externalauditstore.NewInstance(db.DB),
		certificateStore:   certificatestore.NewInstance(db.DB),
		documentStore:      documentstore.NewInstance(db.DB),
		userStore:          userstore.NewInstance(db.DB),
		tpl:                msgtemplate.Instance,
		notify:             notify.Instance,
	}
}

type impl struct {
	settingsStore      remindersettingsstore.Provider
	sentStore          sentreminderstore.Provider
	ticketStore        ticketstore.Provider
	auditPlanStore     auditplanstore.Provider
	externalAuditStore externalauditstore.Provider
	certificateStore   certificatestore.Provider
	documentStore      documentstore.Provider
	userStore          userstore.Provider
	tpl                msgtemplate.Provider
	notify             notify.Provider
}

// reminderItem событие с опорной датой, по которому рассылаются напоминания
type reminderItem struct {
	entityType  models.ReminderEntityType
	entityID    string
	anchor      time.Time
	recipients  []string
	values      map[string]string
	actionURL   string
	defaultCode models.NotifyCode
}

type settingKey struct {
	entityType models.ReminderEntityType
	eventType  models.ReminderEventType
}

func (i impl) RunSweep(ctx context.Context, now time.Time) {
	settings, err := i.settingsStore.ListActive()
	if err != nil {
		log.WithError(err).Error("ошибка получения настроек напоминаний")
		return
	}
	byKey := map[settingKey]dbmodels.ReminderSetting{}
	for _, setting := range settings {
		byKey[settingKey{setting.EntityType, setting.EventType}] = setting
	}

	collectors := []struct {
		eventType models.ReminderEventType
		collect   func() []reminderItem
	}{
		{models.ReminderEventDue, i.ticketDueItems},
		{models.ReminderEventStart, i.auditPlanItems},
		{models.ReminderEventStart, i.externalAuditItems},
		{models.ReminderEventExpiry, i.certificateItems},
		{models.ReminderEventReview, i.documentItems},
	}
	for _, c := range collectors {
		if helpers.IsContextDone(ctx) {
			return
		}
		for _, item := range c.collect() {
			setting, exist := byKey[settingKey{item.entityType, c.eventType}]
			if !exist {
				continue
			}
			i.processItem(item, c.eventType, setting, now)
		}
	}

	if setting, exist := byKey[settingKey{models.ReminderEntityTicket, models.ReminderEventNoResponse}]; exist {
		i.runEscalation(ctx, setting, now)
	}
}

// processItem напоминание по интервалу уходит один раз в окне [anchor-h, anchor)
func (i impl) processItem(item reminderItem, eventType models.ReminderEventType, setting dbmodels.ReminderSetting, now time.Time) {
	for _, hours := range setting.Intervals {
		windowStart := item.anchor.Add(-time.Duration(hours) * time.Hour)
		if now.Before(windowStart) || !now.Before(item.anchor) {
			continue
		}
		for _, userID := range item.recipients {
			i.deliver(item, eventType, setting, int(hours), userID, now, false)
		}
	}
}

func (i impl) deliver(item reminderItem, eventType models.ReminderEventType, setting dbmodels.ReminderSetting, intervalHours int, userID string, now time.Time, requiresConfirmation bool) {
	alreadySent, err := i.sentStore.Create(dbmodels.SentReminder{
		EntityType:    item.entityType,
		EntityID:      item.entityID,
		EventType:     eventType,
		IntervalHours: intervalHours,
		UserID:        userID,
		SentAt:        now,
	})
	if err != nil {
		log.
			WithError(err).
			WithField("entity_id", item.entityID).
			WithField("user_id", userID).
			Error("ошибка записи в журнал напоминаний")
		return
	}
	if alreadySent {
		return
	}
	code := item.defaultCode
	if setting.TemplateCode != "" {
		code = setting.TemplateCode
	}
	msg := i.tpl.BuildMessage(code, item.values)
	msg.System = msg.System && setting.SystemEnabled
	msg.Email = msg.Email && setting.EmailEnabled
	i.notify.Send(userID, msg, item.actionURL, requiresConfirmation)
}

func (i impl) ticketDueItems() []reminderItem {
	recList, err := i.ticketStore.ListActive()
	if err != nil {
		log.WithError(err).Error("ошибка получения запросов для напоминаний")
		return nil
	}
	items := make([]reminderItem, 0, len(recList))
	for _, rec := range recList {
		due := rec.NextDueDate()
		if due == nil {
			continue
		}
		items = append(items, reminderItem{
			entityType: models.ReminderEntityTicket,
			entityID:   rec.ID,
			anchor:     *due,
			recipients: i.departmentRecipients(rec.ToDepartment, rec.ToDepartmentID),
			values: map[string]string{
				"number":   rec.Number,
				"subject":  rec.Subject,
				"due_date": helpers.DateOnly(*due),
			},
			actionURL:   "/tickets/" + rec.ID,
			defaultCode: models.NotifyTicketDue,
		})
	}
	return items
}

func (i impl) auditPlanItems() []reminderItem {
	recList, err := i.auditPlanStore.ListPlanned()
	if err != nil {
		log.WithError(err).Error("ошибка получения планов аудита для напоминаний")
		return nil
	}
	items := make([]reminderItem, 0, len(recList))
	for _, rec := range recList {
		if rec.PlannedDate == nil {
			continue
		}
		recipients := i.departmentRecipients(rec.Department, rec.DepartmentID)
		if rec.LeadAuditorID != "" {
			recipients = append(recipients, rec.LeadAuditorID)
		}
		items = append(items, reminderItem{
			entityType: models.ReminderEntityAuditPlan,
			entityID:   rec.ID,
			anchor:     *rec.PlannedDate,
			recipients: recipients,
			values: map[string]string{
				"number":     rec.Number,
				"subject":    rec.Subject,
				"start_date": helpers.DateOnly(*rec.PlannedDate),
			},
			actionURL:   "/audit-plans/" + rec.ID,
			defaultCode: models.NotifyAuditPlanStart,
		})
	}
	return items
}

func (i impl) externalAuditItems() []reminderItem {
	recList, err := i.externalAuditStore.ListPlanned()
	if err != nil {
		log.WithError(err).Error("ошибка получения внешних аудитов для напоминаний")
		return nil
	}
	items := make([]reminderItem, 0, len(recList))
	for _, rec := range recList {
		if rec.StartDate == nil {
			continue
		}
		recipients := i.managementRecipients()
		if rec.ResponsibleID != "" {
			recipients = append(recipients, rec.ResponsibleID)
		}
		items = append(items, reminderItem{
			entityType: models.ReminderEntityExternalAudit,
			entityID:   rec.ID,
			anchor:     *rec.StartDate,
			recipients: recipients,
			values: map[string]string{
				"number":     rec.Number,
				"body":       rec.AuditBody,
				"start_date": helpers.DateOnly(*rec.StartDate),
			},
			actionURL:   "/external-audits/" + rec.ID,
			defaultCode: models.NotifyExternalAuditStart,
		})
	}
	return items
}

func (i impl) certificateItems() []reminderItem {
	recList, err := i.certificateStore.ListActive()
	if err != nil {
		log.WithError(err).Error("ошибка получения сертификатов для напоминаний")
		return nil
	}
	items := make([]reminderItem, 0, len(recList))
	for _, rec := range recList {
		if rec.ExpiryDate == nil {
			continue
		}
		recipients := []string{}
		if rec.ResponsibleID != "" {
			recipients = append(recipients, rec.ResponsibleID)
		} else {
			recipients = i.managementRecipients()
		}
		items = append(items, reminderItem{
			entityType: models.ReminderEntityCertificate,
			entityID:   rec.ID,
			anchor:     *rec.ExpiryDate,
			recipients: recipients,
			values: map[string]string{
				"number":      rec.Number,
				"name":        rec.Name,
				"expiry_date": helpers.DateOnly(*rec.ExpiryDate),
			},
			actionURL:   "/certificates/" + rec.ID,
			defaultCode: models.NotifyCertificateExpiry,
		})
	}
	return items
}

func (i impl) documentItems() []reminderItem {
	recList, err := i.documentStore.ListForReview()
	if err != nil {
		log.WithError(err).Error("ошибка получения документов для напоминаний")
		return nil
	}
	items := make([]reminderItem, 0, len(recList))
	for _, rec := range recList {
		if rec.ReviewDate == nil {
			continue
		}
		items = append(items, reminderItem{
			entityType: models.ReminderEntityDocument,
			entityID:   rec.ID,
			anchor:     *rec.ReviewDate,
			recipients: i.departmentRecipients(rec.OwnerDepartment, rec.OwnerDepartmentID),
			values: map[string]string{
				"number":      rec.Number,
				"title":       rec.Title,
				"review_date": helpers.DateOnly(*rec.ReviewDate),
			},
			actionURL:   "/documents/" + rec.ID,
			defaultCode: models.NotifyDocumentReview,
		})
	}
	return items
}

func (i impl) departmentRecipients(department *dbmodels.Department, departmentID string) []string {
	if department != nil && department.HeadID != nil {
		return []string{*department.HeadID}
	}
	users, err := i.userStore.ListByDepartment(departmentID)
	if err != nil {
		log.
			WithError(err).
			WithField("department_id", departmentID).
			Error("ошибка получения сотрудников подразделения")
		return nil
	}
	recipients := make([]string, 0, len(users))
	for _, user := range users {
		recipients = append(recipients, user.ID)
	}
	return recipients
}

func (i impl) managementRecipients() []string {
	users, err := i.userStore.ListByRole(models.UserRoleQualityManager, models.UserRoleGeneralManager)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка руководства")
		return nil
	}
	recipients := make([]string, 0, len(users))
	for _, user := range users {
		recipients = append(recipients, user.ID)
	}
	return recipients
}

func (i impl) ListSettings() (list []notifyapimodels.ReminderSettingView, err error) {
	recList, err := i.settingsStore.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения настроек напоминаний")
	}
	list = make([]notifyapimodels.ReminderSettingView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, notifyapimodels.ReminderSettingConvert(rec))
	}
	return list, nil
}

func (i impl) SaveSetting(data notifyapimodels.ReminderSettingData) error {
	rec := dbmodels.ReminderSetting{
		EntityType:    data.EntityType,
		EventType:     data.EventType,
		Intervals:     data.Intervals,
		SystemEnabled: data.SystemEnabled,
		EmailEnabled:  data.EmailEnabled,
		TemplateCode:  data.TemplateCode,
		Active:        data.Active,
	}
	_, err := i.settingsStore.Save(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения настройки напоминаний")
	}
	return nil
}

func (i impl) DeleteSetting(id string) error {
	return i.settingsStore.Delete(id)
}

var defaultSettings = []dbmodels.ReminderSetting{
	{EntityType: models.ReminderEntityTicket, EventType: models.ReminderEventDue, Intervals: []int64{72, 24}, SystemEnabled: true, EmailEnabled: true, Active: true},
	{EntityType: models.ReminderEntityTicket, EventType: models.ReminderEventNoResponse, Intervals: []int64{5, 10}, SystemEnabled: true, EmailEnabled: true, Active: true},
	{EntityType: models.ReminderEntityAuditPlan, EventType: models.ReminderEventStart, Intervals: []int64{168, 24}, SystemEnabled: true, EmailEnabled: true, Active: true},
	{EntityType: models.ReminderEntityExternalAudit, EventType: models.ReminderEventStart, Intervals: []int64{336, 72}, SystemEnabled: true, EmailEnabled: true, Active: true},
	{EntityType: models.ReminderEntityCertificate, EventType: models.ReminderEventExpiry, Intervals: []int64{2160, 720, 168}, SystemEnabled: true, EmailEnabled: true, Active: true},
	{EntityType: models.ReminderEntityDocument, EventType: models.ReminderEventReview, Intervals: []int64{720, 168}, SystemEnabled: true, EmailEnabled: true, Active: true},
}

func (i impl) EnsureDefaults() error {
	for _, def := range defaultSettings {
		exist, err := i.settingsStore.GetByKey(def.EntityType, def.EventType)
		if err != nil {
			return errors.Wrap(err, "ошибка проверки настройки напоминаний")
		}
		if exist != nil {
			continue
		}
		_, err = i.settingsStore.Save(def)
		if err != nil {
			return errors.Wrap(err, "ошибка создания настройки напоминаний по умолчанию")
		}
	}
	return nil
}
