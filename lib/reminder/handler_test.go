package reminder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	msgtemplate "qms-backend/lib/msg-template"
	"qms-backend/models"
	notifyapimodels "qms-backend/models/api/notification"
	ticketapimodels "qms-backend/models/api/ticket"
	dbmodels "qms-backend/models/db"
)

type fakeSettingsStore struct {
	settings []dbmodels.ReminderSetting
}

func (f *fakeSettingsStore) GetByKey(entityType models.ReminderEntityType, eventType models.ReminderEventType) (*dbmodels.ReminderSetting, error) {
	for idx := range f.settings {
		if f.settings[idx].EntityType == entityType && f.settings[idx].EventType == eventType {
			return &f.settings[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeSettingsStore) List() ([]dbmodels.ReminderSetting, error) { return f.settings, nil }

func (f *fakeSettingsStore) ListActive() ([]dbmodels.ReminderSetting, error) {
	list := []dbmodels.ReminderSetting{}
	for _, setting := range f.settings {
		if setting.Active {
			list = append(list, setting)
		}
	}
	return list, nil
}

func (f *fakeSettingsStore) Save(rec dbmodels.ReminderSetting) (string, error) {
	f.settings = append(f.settings, rec)
	return fmt.Sprintf("s-%v", len(f.settings)), nil
}

func (f *fakeSettingsStore) Delete(id string) error { return nil }

// fakeSentStore журнал в памяти с тем же уникальным ключом, что и в БД
type fakeSentStore struct {
	sent map[string]bool
}

func (f *fakeSentStore) Create(rec dbmodels.SentReminder) (bool, error) {
	key := fmt.Sprintf("%v|%v|%v|%v|%v", rec.EntityType, rec.EntityID, rec.EventType, rec.IntervalHours, rec.UserID)
	if f.sent[key] {
		return true, nil
	}
	f.sent[key] = true
	return false, nil
}

type fakeTicketStore struct {
	active   []dbmodels.Ticket
	awaiting []dbmodels.Ticket
}

func (f *fakeTicketStore) Create(rec dbmodels.Ticket) (string, error)          { return "", nil }
func (f *fakeTicketStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeTicketStore) GetByID(id string) (*dbmodels.Ticket, error)         { return nil, nil }

func (f *fakeTicketStore) List(filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, int64, error) {
	return nil, 0, nil
}

func (f *fakeTicketStore) ListAll(filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, error) {
	return nil, nil
}

func (f *fakeTicketStore) ListAwaitingResponse() ([]dbmodels.Ticket, error) { return f.awaiting, nil }

func (f *fakeTicketStore) ListActive() ([]dbmodels.Ticket, error) { return f.active, nil }

type fakeAuditPlanStore struct{}

func (f *fakeAuditPlanStore) Create(rec dbmodels.AuditPlan) (string, error)          { return "", nil }
func (f *fakeAuditPlanStore) Update(id string, updMap map[string]interface{}) error  { return nil }
func (f *fakeAuditPlanStore) Delete(id string) error                                 { return nil }
func (f *fakeAuditPlanStore) GetByID(id string) (*dbmodels.AuditPlan, error)         { return nil, nil }
func (f *fakeAuditPlanStore) List() ([]dbmodels.AuditPlan, error)                    { return nil, nil }
func (f *fakeAuditPlanStore) ListPlanned() ([]dbmodels.AuditPlan, error)             { return nil, nil }

type fakeExternalAuditStore struct{}

func (f *fakeExternalAuditStore) Create(rec dbmodels.ExternalAudit) (string, error)         { return "", nil }
func (f *fakeExternalAuditStore) Update(id string, updMap map[string]interface{}) error     { return nil }
func (f *fakeExternalAuditStore) Delete(id string) error                                    { return nil }
func (f *fakeExternalAuditStore) GetByID(id string) (*dbmodels.ExternalAudit, error)        { return nil, nil }
func (f *fakeExternalAuditStore) List() ([]dbmodels.ExternalAudit, error)                   { return nil, nil }
func (f *fakeExternalAuditStore) ListPlanned() ([]dbmodels.ExternalAudit, error)            { return nil, nil }

type fakeCertificateStore struct{}

func (f *fakeCertificateStore) Create(rec dbmodels.Certificate) (string, error)        { return "", nil }
func (f *fakeCertificateStore) Update(id string, updMap map[string]interface{}) error  { return nil }
func (f *fakeCertificateStore) Delete(id string) error                                 { return nil }
func (f *fakeCertificateStore) GetByID(id string) (*dbmodels.Certificate, error)       { return nil, nil }
func (f *fakeCertificateStore) List() ([]dbmodels.Certificate, error)                  { return nil, nil }
func (f *fakeCertificateStore) ListActive() ([]dbmodels.Certificate, error)            { return nil, nil }

type fakeDocumentStore struct{}

func (f *fakeDocumentStore) Create(rec dbmodels.Document) (string, error)           { return "", nil }
func (f *fakeDocumentStore) Update(id string, updMap map[string]interface{}) error  { return nil }
func (f *fakeDocumentStore) GetByID(id string) (*dbmodels.Document, error)          { return nil, nil }
func (f *fakeDocumentStore) List() ([]dbmodels.Document, error)                     { return nil, nil }
func (f *fakeDocumentStore) ListForReview() ([]dbmodels.Document, error)            { return nil, nil }

type fakeUserStore struct {
	users []dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error)               { return "", nil }
func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeUserStore) Delete(id string) error                                { return nil }

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	for idx := range f.users {
		if f.users[idx].ID == id {
			return &f.users[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*dbmodels.User, error) { return nil, nil }

func (f *fakeUserStore) List() ([]dbmodels.User, error) { return f.users, nil }

func (f *fakeUserStore) ListByRole(roles ...models.UserRole) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, user := range f.users {
		for _, role := range roles {
			if user.Role == role {
				list = append(list, user)
			}
		}
	}
	return list, nil
}

func (f *fakeUserStore) ListByDepartment(departmentID string) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, user := range f.users {
		if user.DepartmentID != nil && *user.DepartmentID == departmentID {
			list = append(list, user)
		}
	}
	return list, nil
}

type fakeTpl struct{}

func (f *fakeTpl) GetTemplate(code models.NotifyCode) models.NotifyTpl {
	return models.NotifyCodeMap[code]
}

func (f *fakeTpl) BuildMessage(code models.NotifyCode, values map[string]string) msgtemplate.RenderedMsg {
	return msgtemplate.RenderedMsg{Code: code, System: true, Email: true}
}

func (f *fakeTpl) ListTemplates() ([]notifyapimodels.NotifyTemplateView, error) { return nil, nil }

func (f *fakeTpl) SaveTemplate(data notifyapimodels.NotifyTemplateData) error { return nil }

type sentMsg struct {
	userID               string
	msg                  msgtemplate.RenderedMsg
	requiresConfirmation bool
}

type fakeNotify struct {
	sent []sentMsg
}

func (f *fakeNotify) Send(userID string, msg msgtemplate.RenderedMsg, actionURL string, requiresConfirmation bool) {
	f.sent = append(f.sent, sentMsg{userID: userID, msg: msg, requiresConfirmation: requiresConfirmation})
}

func (f *fakeNotify) List(userID string, onlyUnviewed bool) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (f *fakeNotify) MarkViewed(userID string, ids []string) error { return nil }
func (f *fakeNotify) Confirm(userID, id string) error              { return nil }

func newSweepHandler(settings []dbmodels.ReminderSetting, tickets *fakeTicketStore) (*impl, *fakeNotify, *fakeSentStore) {
	notifier := &fakeNotify{}
	sentStore := &fakeSentStore{sent: map[string]bool{}}
	headID := "head-1"
	handler := &impl{
		settingsStore:      &fakeSettingsStore{settings: settings},
		sentStore:          sentStore,
		ticketStore:        tickets,
		auditPlanStore:     &fakeAuditPlanStore{},
		externalAuditStore: &fakeExternalAuditStore{},
		certificateStore:   &fakeCertificateStore{},
		documentStore:      &fakeDocumentStore{},
		userStore: &fakeUserStore{users: []dbmodels.User{
			{BaseModel: dbmodels.BaseModel{ID: "qm-1"}, Role: models.UserRoleQualityManager},
			{BaseModel: dbmodels.BaseModel{ID: "gm-1"}, Role: models.UserRoleGeneralManager},
			{BaseModel: dbmodels.BaseModel{ID: headID}, Role: models.UserRoleEmployee},
		}},
		tpl:    &fakeTpl{},
		notify: notifier,
	}
	return handler, notifier, sentStore
}

func dueSetting(intervals []int64) dbmodels.ReminderSetting {
	return dbmodels.ReminderSetting{
		EntityType:    models.ReminderEntityTicket,
		EventType:     models.ReminderEventDue,
		Intervals:     pq.Int64Array(intervals),
		SystemEnabled: true,
		EmailEnabled:  true,
		Active:        true,
	}
}

func escalationSetting(thresholds []int64) dbmodels.ReminderSetting {
	return dbmodels.ReminderSetting{
		EntityType:    models.ReminderEntityTicket,
		EventType:     models.ReminderEventNoResponse,
		Intervals:     pq.Int64Array(thresholds),
		SystemEnabled: true,
		EmailEnabled:  true,
		Active:        true,
	}
}

func activeTicket(due time.Time) dbmodels.Ticket {
	headID := "head-1"
	return dbmodels.Ticket{
		BaseModel:      dbmodels.BaseModel{ID: "t-1"},
		Kind:           models.TicketKindCAR,
		Number:         "C25001",
		Status:         models.TicketStatusInProgress,
		ToDepartmentID: "dep-1",
		ToDepartment: &dbmodels.Department{
			BaseModel: dbmodels.BaseModel{ID: "dep-1"},
			Name:      "Производство",
			HeadID:    &headID,
		},
		Subject: "Несоответствие на линии",
		Responses: []dbmodels.TicketResponse{{
			Status:               models.ResponseStatusAccepted,
			CorrectionTargetDate: &due,
		}},
	}
}

func TestRunSweep(t *testing.T) {
	ctx := context.Background()

	t.Run(`due reminder fires inside window check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		// до срока 30 часов: попадает в окно 72, но ещё не в окно 24
		due := now.Add(30 * time.Hour)
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{dueSetting([]int64{72, 24})},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(due)}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 1)
		require.Equal(t, "head-1", notifier.sent[0].userID)
		require.Equal(t, models.NotifyTicketDue, notifier.sent[0].msg.Code)
		require.False(t, notifier.sent[0].requiresConfirmation)
	})

	t.Run(`repeat sweep does not duplicate check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		due := now.Add(30 * time.Hour)
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{dueSetting([]int64{72, 24})},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(due)}},
		)

		handler.RunSweep(ctx, now)
		handler.RunSweep(ctx, now.Add(time.Hour))
		require.Len(t, notifier.sent, 1)
	})

	t.Run(`next interval fires separately check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		due := now.Add(30 * time.Hour)
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{dueSetting([]int64{72, 24})},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(due)}},
		)

		handler.RunSweep(ctx, now)
		// спустя 8 часов до срока остаётся 22 часа: открывается окно 24
		handler.RunSweep(ctx, now.Add(8*time.Hour))
		require.Len(t, notifier.sent, 2)
	})

	t.Run(`before window nothing fires check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		due := now.Add(100 * time.Hour)
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{dueSetting([]int64{72, 24})},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(due)}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 0)
	})

	t.Run(`past anchor nothing fires check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		due := now.Add(-time.Hour)
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{dueSetting([]int64{72, 24})},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(due)}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 0)
	})

	t.Run(`inactive setting skipped check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		setting := dueSetting([]int64{72, 24})
		setting.Active = false
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{setting},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(now.Add(30 * time.Hour))}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 0)
	})

	t.Run(`disabled channels masked check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		setting := dueSetting([]int64{72})
		setting.EmailEnabled = false
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{setting},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(now.Add(30 * time.Hour))}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 1)
		require.True(t, notifier.sent[0].msg.System)
		require.False(t, notifier.sent[0].msg.Email)
	})

	t.Run(`template override check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		setting := dueSetting([]int64{72})
		setting.TemplateCode = models.NotifyTicketEscalation
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{setting},
			&fakeTicketStore{active: []dbmodels.Ticket{activeTicket(now.Add(30 * time.Hour))}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 1)
		require.Equal(t, models.NotifyTicketEscalation, notifier.sent[0].msg.Code)
	})

	t.Run(`completed response gives no anchor check`, func(t *testing.T) {
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(30 * time.Hour))
		done := now.Add(-time.Hour)
		rec.Responses[0].CorrectionActualDate = &done
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{dueSetting([]int64{72, 24})},
			&fakeTicketStore{active: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 0)
	})
}

func TestEscalation(t *testing.T) {
	ctx := context.Background()

	t.Run(`threshold reached fires with confirmation check`, func(t *testing.T) {
		// выдан в пятницу 05.09, к понедельнику 15.09 прошло 6 рабочих дней
		issued := time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(100 * time.Hour))
		rec.Status = models.TicketStatusIssued
		rec.IssuedDate = &issued
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{escalationSetting([]int64{5, 10})},
			&fakeTicketStore{awaiting: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		// порог 5 достигнут, порог 10 нет: руководство и руководитель подразделения
		require.Len(t, notifier.sent, 3)
		recipients := map[string]bool{}
		for _, sent := range notifier.sent {
			require.True(t, sent.requiresConfirmation)
			require.Equal(t, models.NotifyTicketEscalation, sent.msg.Code)
			recipients[sent.userID] = true
		}
		require.True(t, recipients["qm-1"])
		require.True(t, recipients["gm-1"])
		require.True(t, recipients["head-1"])
	})

	t.Run(`sector head receives escalation check`, func(t *testing.T) {
		issued := time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(100 * time.Hour))
		rec.Status = models.TicketStatusIssued
		rec.IssuedDate = &issued
		sectorHeadID := "sector-head-1"
		rec.ToDepartment.Sector = &dbmodels.Sector{
			BaseModel: dbmodels.BaseModel{ID: "sec-1"},
			Name:      "Производственный сектор",
			HeadID:    &sectorHeadID,
		}
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{escalationSetting([]int64{5, 10})},
			&fakeTicketStore{awaiting: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		recipients := map[string]bool{}
		for _, sent := range notifier.sent {
			recipients[sent.userID] = true
		}
		require.True(t, recipients["sector-head-1"])
		// руководство, руководитель сектора и руководитель подразделения
		require.Len(t, notifier.sent, 4)
	})

	t.Run(`both thresholds fire in one sweep check`, func(t *testing.T) {
		// выдан 25.08, к 15.09 прошло 15 рабочих дней: достигнуты оба порога
		issued := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(100 * time.Hour))
		rec.Status = models.TicketStatusIssued
		rec.IssuedDate = &issued
		handler, notifier, sentStore := newSweepHandler(
			[]dbmodels.ReminderSetting{escalationSetting([]int64{5, 10})},
			&fakeTicketStore{awaiting: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		// по каждому порогу своя запись журнала на каждого получателя
		require.Len(t, notifier.sent, 6)
		require.Len(t, sentStore.sent, 6)
		for _, interval := range []int{5, 10} {
			key := fmt.Sprintf("%v|%v|%v|%v|%v",
				models.ReminderEntityTicket, "t-1", models.ReminderEventNoResponse, interval, "qm-1")
			require.True(t, sentStore.sent[key])
		}
	})

	t.Run(`unanswered io does not escalate check`, func(t *testing.T) {
		issued := time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(100 * time.Hour))
		rec.Kind = models.TicketKindIO
		rec.Status = models.TicketStatusIssued
		rec.IssuedDate = &issued
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{escalationSetting([]int64{5, 10})},
			&fakeTicketStore{awaiting: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 0)
	})

	t.Run(`repeat sweep does not duplicate escalation check`, func(t *testing.T) {
		issued := time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(100 * time.Hour))
		rec.Status = models.TicketStatusIssued
		rec.IssuedDate = &issued
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{escalationSetting([]int64{5, 10})},
			&fakeTicketStore{awaiting: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		handler.RunSweep(ctx, now.Add(2*time.Hour))
		require.Len(t, notifier.sent, 3)
	})

	t.Run(`duplicated recipients deduped check`, func(t *testing.T) {
		issued := time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(100 * time.Hour))
		rec.Status = models.TicketStatusIssued
		rec.IssuedDate = &issued
		// руководитель подразделения сам менеджер по качеству
		qmID := "qm-1"
		rec.ToDepartment.HeadID = &qmID
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{escalationSetting([]int64{5, 10})},
			&fakeTicketStore{awaiting: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 2)
	})

	t.Run(`threshold not reached fires nothing check`, func(t *testing.T) {
		// выдан в четверг 11.09, к понедельнику 15.09 прошло 2 рабочих дня
		issued := time.Date(2025, 9, 11, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
		rec := activeTicket(now.Add(100 * time.Hour))
		rec.Status = models.TicketStatusIssued
		rec.IssuedDate = &issued
		handler, notifier, _ := newSweepHandler(
			[]dbmodels.ReminderSetting{escalationSetting([]int64{5, 10})},
			&fakeTicketStore{awaiting: []dbmodels.Ticket{rec}},
		)

		handler.RunSweep(ctx, now)
		require.Len(t, notifier.sent, 0)
	})
}

func TestEnsureDefaults(t *testing.T) {
	t.Run(`missing settings created check`, func(t *testing.T) {
		store := &fakeSettingsStore{}
		handler := &impl{settingsStore: store}

		require.Nil(t, handler.EnsureDefaults())
		require.Len(t, store.settings, len(defaultSettings))
	})

	t.Run(`existing settings untouched check`, func(t *testing.T) {
		custom := escalationSetting([]int64{3})
		store := &fakeSettingsStore{settings: []dbmodels.ReminderSetting{custom}}
		handler := &impl{settingsStore: store}

		require.Nil(t, handler.EnsureDefaults())
		require.Len(t, store.settings, len(defaultSettings))
		setting, err := store.GetByKey(models.ReminderEntityTicket, models.ReminderEventNoResponse)
		require.Nil(t, err)
		require.Equal(t, pq.Int64Array([]int64{3}), setting.Intervals)
	})
}
