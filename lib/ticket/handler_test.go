package ticket

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	msgtemplate "qms-backend/lib/msg-template"
	"qms-backend/lib/utils/helpers"
	"qms-backend/models"
	notifyapimodels "qms-backend/models/api/notification"
	ticketapimodels "qms-backend/models/api/ticket"
	dbmodels "qms-backend/models/db"
)

type fakeTicketStore struct {
	recs map[string]*dbmodels.Ticket
}

func (f *fakeTicketStore) Create(rec dbmodels.Ticket) (string, error) {
	id := fmt.Sprintf("t-%v", len(f.recs)+1)
	rec.ID = id
	f.recs[id] = &rec
	return id, nil
}

func (f *fakeTicketStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if status, ok := updMap["status"].(models.TicketStatus); ok {
		rec.Status = status
	}
	if issuedDate, ok := updMap["issued_date"].(time.Time); ok {
		rec.IssuedDate = &issuedDate
	}
	if clarification, ok := updMap["clarification"].(string); ok {
		rec.Clarification = &clarification
	}
	return nil
}

func (f *fakeTicketStore) GetByID(id string) (*dbmodels.Ticket, error) {
	return f.recs[id], nil
}

func (f *fakeTicketStore) List(filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, int64, error) {
	return nil, 0, nil
}

func (f *fakeTicketStore) ListAll(filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, error) {
	return nil, nil
}

func (f *fakeTicketStore) ListAwaitingResponse() ([]dbmodels.Ticket, error) {
	return nil, nil
}

func (f *fakeTicketStore) ListActive() ([]dbmodels.Ticket, error) {
	return nil, nil
}

type fakeResponseStore struct {
	recs map[string]*dbmodels.TicketResponse
}

func (f *fakeResponseStore) Create(rec dbmodels.TicketResponse) (string, error) {
	id := fmt.Sprintf("r-%v", len(f.recs)+1)
	rec.ID = id
	f.recs[id] = &rec
	return id, nil
}

func (f *fakeResponseStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if status, ok := updMap["status"].(models.ResponseStatus); ok {
		rec.Status = status
	}
	if reason, ok := updMap["rejection_reason"].(string); ok {
		rec.RejectionReason = &reason
	}
	if actualDate, ok := updMap["correction_actual_date"].(time.Time); ok {
		rec.CorrectionActualDate = &actualDate
	}
	if actualDate, ok := updMap["corrective_action_actual_date"].(time.Time); ok {
		rec.CorrectiveActionActualDate = &actualDate
	}
	return nil
}

func (f *fakeResponseStore) GetByID(id string) (*dbmodels.TicketResponse, error) {
	return f.recs[id], nil
}

func (f *fakeResponseStore) GetPending(ticketID string) (*dbmodels.TicketResponse, error) {
	for _, rec := range f.recs {
		if rec.TicketID == ticketID && rec.Status == models.ResponseStatusPending {
			return rec, nil
		}
	}
	return nil, nil
}

type fakeFollowUpStore struct {
	recs map[string]*dbmodels.TicketFollowUp
}

func (f *fakeFollowUpStore) Create(rec dbmodels.TicketFollowUp) (string, error) {
	id := fmt.Sprintf("f-%v", len(f.recs)+1)
	rec.ID = id
	f.recs[id] = &rec
	return id, nil
}

func (f *fakeFollowUpStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if status, ok := updMap["status"].(models.FollowUpStatus); ok {
		rec.Status = status
	}
	return nil
}

func (f *fakeFollowUpStore) GetByID(id string) (*dbmodels.TicketFollowUp, error) {
	return f.recs[id], nil
}

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

type fakeSeq struct {
	numbers []string
}

func (f *fakeSeq) Next(family models.NumberFamily) (string, error) {
	f.numbers = append(f.numbers, family.Prefix)
	return fmt.Sprintf("%v25%03d", family.Prefix, len(f.numbers)), nil
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
	code                 models.NotifyCode
	actionURL            string
	requiresConfirmation bool
}

type fakeNotify struct {
	sent []sentMsg
}

func (f *fakeNotify) Send(userID string, msg msgtemplate.RenderedMsg, actionURL string, requiresConfirmation bool) {
	f.sent = append(f.sent, sentMsg{
		userID:               userID,
		code:                 msg.Code,
		actionURL:            actionURL,
		requiresConfirmation: requiresConfirmation,
	})
}

func (f *fakeNotify) List(userID string, onlyUnviewed bool) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (f *fakeNotify) MarkViewed(userID string, ids []string) error { return nil }
func (f *fakeNotify) Confirm(userID, id string) error              { return nil }

func testNow() time.Time {
	return time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
}

func newTestHandler() (*impl, *fakeTicketStore, *fakeResponseStore, *fakeFollowUpStore, *fakeNotify) {
	store := &fakeTicketStore{recs: map[string]*dbmodels.Ticket{}}
	responseStore := &fakeResponseStore{recs: map[string]*dbmodels.TicketResponse{}}
	followUpStore := &fakeFollowUpStore{recs: map[string]*dbmodels.TicketFollowUp{}}
	headID := "head-1"
	userStore := &fakeUserStore{users: []dbmodels.User{
		{BaseModel: dbmodels.BaseModel{ID: "qm-1"}, Role: models.UserRoleQualityManager},
		{BaseModel: dbmodels.BaseModel{ID: "gm-1"}, Role: models.UserRoleGeneralManager},
		{BaseModel: dbmodels.BaseModel{ID: headID}, Role: models.UserRoleEmployee},
	}}
	notifier := &fakeNotify{}
	handler := &impl{
		store:         store,
		responseStore: responseStore,
		followUpStore: followUpStore,
		userStore:     userStore,
		seq:           &fakeSeq{},
		tpl:           &fakeTpl{},
		notify:        notifier,
		now:           testNow,
	}
	return handler, store, responseStore, followUpStore, notifier
}

func headedDepartment() *dbmodels.Department {
	headID := "head-1"
	return &dbmodels.Department{
		BaseModel: dbmodels.BaseModel{ID: "dep-1"},
		Name:      "Производство",
		HeadID:    &headID,
	}
}

func newIssuedTicket(kind models.TicketKind) *dbmodels.Ticket {
	issued := testNow().AddDate(0, 0, -3)
	return &dbmodels.Ticket{
		BaseModel:      dbmodels.BaseModel{ID: "t-1"},
		Kind:           kind,
		Number:         "C25001",
		Status:         models.TicketStatusIssued,
		ToDepartmentID: "dep-1",
		ToDepartment:   headedDepartment(),
		Subject:        "Несоответствие на линии",
		IssuedByID:     "author-1",
		IssuedDate:     &issued,
	}
}

func carResponseData() ticketapimodels.ResponseData {
	target := testNow().AddDate(0, 0, 10)
	return ticketapimodels.ResponseData{
		RootCause:                  "Износ оснастки",
		Correction:                 "Замена оснастки",
		CorrectionTargetDate:       &target,
		CorrectiveAction:           "Ввести регламент замены",
		CorrectiveActionTargetDate: &target,
	}
}

func TestTicketLifecycle(t *testing.T) {
	t.Run(`create sets draft status check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		id, err := handler.Create("author-1", ticketapimodels.TicketCreateData{
			TicketData: ticketapimodels.TicketData{
				Priority:       models.TicketPriorityHigh,
				SourceType:     models.TicketSourceInternalAudit,
				ToDepartmentID: "dep-1",
				Subject:        "Несоответствие на линии",
			},
			Kind: models.TicketKindCAR,
		})
		require.Nil(t, err)
		rec := store.recs[id]
		require.Equal(t, models.TicketStatusDraft, rec.Status)
		require.Equal(t, "C25001", rec.Number)
		require.Equal(t, "author-1", rec.IssuedByID)
	})

	t.Run(`submit for approval from draft check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		store.recs["t-1"] = &dbmodels.Ticket{
			BaseModel: dbmodels.BaseModel{ID: "t-1"},
			Kind:      models.TicketKindCAR,
			Status:    models.TicketStatusDraft,
		}
		require.Nil(t, handler.SubmitForApproval("t-1"))
		require.Equal(t, models.TicketStatusPendingApproval, store.recs["t-1"].Status)
	})

	t.Run(`submit for approval from issued rejected check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		err := handler.SubmitForApproval("t-1")
		require.NotNil(t, err)
		require.Equal(t, models.TicketStatusIssued, store.recs["t-1"].Status)
	})

	t.Run(`approve sets issued date and notifies head check`, func(t *testing.T) {
		handler, store, _, _, notifier := newTestHandler()
		store.recs["t-1"] = &dbmodels.Ticket{
			BaseModel:      dbmodels.BaseModel{ID: "t-1"},
			Kind:           models.TicketKindCAR,
			Number:         "C25001",
			Status:         models.TicketStatusPendingApproval,
			ToDepartmentID: "dep-1",
			ToDepartment:   headedDepartment(),
			IssuedByID:     "author-1",
		}
		require.Nil(t, handler.Approve("t-1", "qm-1", ticketapimodels.ApproveData{}))
		rec := store.recs["t-1"]
		require.Equal(t, models.TicketStatusIssued, rec.Status)
		require.NotNil(t, rec.IssuedDate)
		require.Equal(t, testNow(), *rec.IssuedDate)
		require.Len(t, notifier.sent, 1)
		require.Equal(t, "head-1", notifier.sent[0].userID)
		require.Equal(t, models.NotifyTicketIssued, notifier.sent[0].code)
	})

	t.Run(`reject returns to author check`, func(t *testing.T) {
		handler, store, _, _, notifier := newTestHandler()
		store.recs["t-1"] = &dbmodels.Ticket{
			BaseModel:  dbmodels.BaseModel{ID: "t-1"},
			Kind:       models.TicketKindCAR,
			Status:     models.TicketStatusPendingApproval,
			IssuedByID: "author-1",
		}
		require.Nil(t, handler.Reject("t-1", "qm-1", ticketapimodels.RejectData{Reason: "мало деталей"}))
		rec := store.recs["t-1"]
		require.Equal(t, models.TicketStatusRejectedToBeEdit, rec.Status)
		require.NotNil(t, rec.Clarification)
		require.Equal(t, "мало деталей", *rec.Clarification)
		require.Len(t, notifier.sent, 1)
		require.Equal(t, "author-1", notifier.sent[0].userID)
		require.Equal(t, models.NotifyTicketRejected, notifier.sent[0].code)
	})

	t.Run(`record response moves issued to in progress check`, func(t *testing.T) {
		handler, store, responseStore, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		require.Nil(t, handler.RecordResponse("t-1", "executor-1", carResponseData()))
		require.Equal(t, models.TicketStatusInProgress, store.recs["t-1"].Status)
		pending, err := responseStore.GetPending("t-1")
		require.Nil(t, err)
		require.NotNil(t, pending)
		require.Equal(t, models.ResponseStatusPending, pending.Status)
	})

	t.Run(`record response updates existing draft check`, func(t *testing.T) {
		handler, store, responseStore, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		require.Nil(t, handler.RecordResponse("t-1", "executor-1", carResponseData()))
		require.Nil(t, handler.RecordResponse("t-1", "executor-1", carResponseData()))
		require.Len(t, responseStore.recs, 1)
	})

	t.Run(`io response without corrective action check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindIO)
		store.recs["t-1"] = rec
		target := testNow().AddDate(0, 0, 5)
		err := handler.RecordResponse("t-1", "executor-1", ticketapimodels.ResponseData{
			RootCause:            "Нет инструкции",
			Correction:           "Подготовить инструкцию",
			CorrectionTargetDate: &target,
		})
		require.Nil(t, err)
	})

	t.Run(`car response without corrective action rejected check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		target := testNow().AddDate(0, 0, 5)
		err := handler.RecordResponse("t-1", "executor-1", ticketapimodels.ResponseData{
			RootCause:            "Нет инструкции",
			Correction:           "Подготовить инструкцию",
			CorrectionTargetDate: &target,
		})
		require.NotNil(t, err)
	})

	t.Run(`submit response moves to pending review and notifies management check`, func(t *testing.T) {
		handler, store, responseStore, _, notifier := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		require.Nil(t, handler.RecordResponse("t-1", "executor-1", carResponseData()))
		require.Nil(t, handler.SubmitResponse("t-1", "executor-1"))
		require.Equal(t, models.TicketStatusPendingReview, store.recs["t-1"].Status)
		require.Equal(t, models.ResponseStatusSubmitted, responseStore.recs["r-1"].Status)
		// уведомления менеджеру по качеству и генеральному директору
		require.Len(t, notifier.sent, 2)
	})

	t.Run(`submit response without draft rejected check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		err := handler.SubmitResponse("t-1", "executor-1")
		require.NotNil(t, err)
	})

	t.Run(`accept response returns ticket to in progress check`, func(t *testing.T) {
		handler, store, responseStore, _, notifier := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusPendingReview
		store.recs["t-1"] = rec
		responseStore.recs["r-1"] = &dbmodels.TicketResponse{
			BaseModel:     dbmodels.BaseModel{ID: "r-1"},
			TicketID:      "t-1",
			Status:        models.ResponseStatusSubmitted,
			RespondedByID: "executor-1",
		}
		require.Nil(t, handler.AcceptResponse("t-1", "r-1", "qm-1"))
		require.Equal(t, models.ResponseStatusAccepted, responseStore.recs["r-1"].Status)
		require.Equal(t, models.TicketStatusInProgress, store.recs["t-1"].Status)
		require.Len(t, notifier.sent, 1)
		require.Equal(t, "executor-1", notifier.sent[0].userID)
		require.Equal(t, models.NotifyResponseAccepted, notifier.sent[0].code)
	})

	t.Run(`reject response keeps reason check`, func(t *testing.T) {
		handler, store, responseStore, _, notifier := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusPendingReview
		store.recs["t-1"] = rec
		responseStore.recs["r-1"] = &dbmodels.TicketResponse{
			BaseModel:     dbmodels.BaseModel{ID: "r-1"},
			TicketID:      "t-1",
			Status:        models.ResponseStatusSubmitted,
			RespondedByID: "executor-1",
		}
		require.Nil(t, handler.RejectResponse("t-1", "r-1", "qm-1", ticketapimodels.RejectData{Reason: "причина не коренная"}))
		require.Equal(t, models.ResponseStatusRejected, responseStore.recs["r-1"].Status)
		require.Equal(t, models.TicketStatusInProgress, store.recs["t-1"].Status)
		require.Len(t, notifier.sent, 1)
		require.Equal(t, models.NotifyResponseRejected, notifier.sent[0].code)
	})

	t.Run(`accept response outside review rejected check`, func(t *testing.T) {
		handler, store, responseStore, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		responseStore.recs["r-1"] = &dbmodels.TicketResponse{
			BaseModel: dbmodels.BaseModel{ID: "r-1"},
			TicketID:  "t-1",
			Status:    models.ResponseStatusSubmitted,
		}
		err := handler.AcceptResponse("t-1", "r-1", "qm-1")
		require.NotNil(t, err)
	})

	t.Run(`mark action done requires accepted response check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusInProgress
		store.recs["t-1"] = rec
		err := handler.MarkActionDone("t-1", "executor-1", ticketapimodels.ActionDoneData{CorrectionDone: true})
		require.NotNil(t, err)
	})

	t.Run(`mark action done sets actual dates check`, func(t *testing.T) {
		handler, store, responseStore, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusInProgress
		rec.Responses = []dbmodels.TicketResponse{{
			BaseModel: dbmodels.BaseModel{ID: "r-1"},
			TicketID:  "t-1",
			Status:    models.ResponseStatusAccepted,
		}}
		store.recs["t-1"] = rec
		responseStore.recs["r-1"] = &rec.Responses[0]
		require.Nil(t, handler.MarkActionDone("t-1", "executor-1", ticketapimodels.ActionDoneData{
			CorrectionDone:       true,
			CorrectiveActionDone: true,
		}))
		require.NotNil(t, responseStore.recs["r-1"].CorrectionActualDate)
		require.NotNil(t, responseStore.recs["r-1"].CorrectiveActionActualDate)
	})

	t.Run(`corrective action done rejected for io check`, func(t *testing.T) {
		handler, store, responseStore, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindIO)
		rec.Status = models.TicketStatusInProgress
		rec.Responses = []dbmodels.TicketResponse{{
			BaseModel: dbmodels.BaseModel{ID: "r-1"},
			TicketID:  "t-1",
			Status:    models.ResponseStatusAccepted,
		}}
		store.recs["t-1"] = rec
		responseStore.recs["r-1"] = &rec.Responses[0]
		err := handler.MarkActionDone("t-1", "executor-1", ticketapimodels.ActionDoneData{CorrectiveActionDone: true})
		require.NotNil(t, err)
	})

	t.Run(`follow up rejected for io check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindIO)
		rec.Status = models.TicketStatusInProgress
		store.recs["t-1"] = rec
		err := handler.AddFollowUp("t-1", "qm-1", ticketapimodels.FollowUpData{Type: models.FollowUpTypeCorrection})
		require.NotNil(t, err)
	})

	t.Run(`follow up requires completed response check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusInProgress
		rec.Responses = []dbmodels.TicketResponse{{
			BaseModel: dbmodels.BaseModel{ID: "r-1"},
			TicketID:  "t-1",
			Status:    models.ResponseStatusAccepted,
		}}
		store.recs["t-1"] = rec
		err := handler.AddFollowUp("t-1", "qm-1", ticketapimodels.FollowUpData{Type: models.FollowUpTypeCorrection})
		require.NotNil(t, err)
	})

	t.Run(`follow up created for completed car check`, func(t *testing.T) {
		handler, store, _, followUpStore, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusInProgress
		done := testNow().AddDate(0, 0, -1)
		rec.Responses = []dbmodels.TicketResponse{{
			BaseModel:                  dbmodels.BaseModel{ID: "r-1"},
			TicketID:                   "t-1",
			Status:                     models.ResponseStatusAccepted,
			CorrectionActualDate:       &done,
			CorrectiveActionActualDate: &done,
		}}
		store.recs["t-1"] = rec
		require.Nil(t, handler.AddFollowUp("t-1", "qm-1", ticketapimodels.FollowUpData{Type: models.FollowUpTypeCorrectiveAction}))
		require.Len(t, followUpStore.recs, 1)
		require.Equal(t, models.FollowUpStatusPending, followUpStore.recs["f-1"].Status)
	})

	t.Run(`close requires accepted follow ups for car check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusInProgress
		rec.Responses = []dbmodels.TicketResponse{{
			BaseModel: dbmodels.BaseModel{ID: "r-1"},
			Status:    models.ResponseStatusAccepted,
		}}
		store.recs["t-1"] = rec
		err := handler.Close("t-1", "qm-1")
		require.NotNil(t, err)

		rec.FollowUps = []dbmodels.TicketFollowUp{{Status: models.FollowUpStatusNotAccepted}}
		err = handler.Close("t-1", "qm-1")
		require.NotNil(t, err)
	})

	t.Run(`close car with accepted follow up check`, func(t *testing.T) {
		handler, store, _, _, notifier := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusInProgress
		rec.Responses = []dbmodels.TicketResponse{{
			BaseModel: dbmodels.BaseModel{ID: "r-1"},
			Status:    models.ResponseStatusAccepted,
		}}
		rec.FollowUps = []dbmodels.TicketFollowUp{{Status: models.FollowUpStatusAccepted}}
		store.recs["t-1"] = rec
		require.Nil(t, handler.Close("t-1", "qm-1"))
		require.Equal(t, models.TicketStatusClosed, store.recs["t-1"].Status)
		// автор и руководитель подразделения
		require.Len(t, notifier.sent, 2)
	})

	t.Run(`close io without follow ups check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindIO)
		rec.Status = models.TicketStatusInProgress
		rec.Responses = []dbmodels.TicketResponse{{
			BaseModel: dbmodels.BaseModel{ID: "r-1"},
			Status:    models.ResponseStatusAccepted,
		}}
		store.recs["t-1"] = rec
		require.Nil(t, handler.Close("t-1", "qm-1"))
		require.Equal(t, models.TicketStatusClosed, store.recs["t-1"].Status)
	})

	t.Run(`cancel final rejected check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		rec := newIssuedTicket(models.TicketKindCAR)
		rec.Status = models.TicketStatusClosed
		store.recs["t-1"] = rec
		err := handler.Cancel("t-1", "qm-1", ticketapimodels.RejectData{Reason: "дубликат"})
		require.NotNil(t, err)
	})

	t.Run(`cancel active check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		require.Nil(t, handler.Cancel("t-1", "qm-1", ticketapimodels.RejectData{Reason: "дубликат"}))
		require.Equal(t, models.TicketStatusCancelled, store.recs["t-1"].Status)
	})

	t.Run(`edit allowed only in draft check`, func(t *testing.T) {
		handler, store, _, _, _ := newTestHandler()
		store.recs["t-1"] = newIssuedTicket(models.TicketKindCAR)
		err := handler.Edit("t-1", ticketapimodels.TicketEditData{})
		require.NotNil(t, err)
	})

	t.Run(`overdue by target date check`, func(t *testing.T) {
		rec := newIssuedTicket(models.TicketKindCAR)
		target := testNow().AddDate(0, 0, -1)
		rec.Responses = []dbmodels.TicketResponse{{
			Status:               models.ResponseStatusSubmitted,
			CorrectionTargetDate: &target,
		}}
		require.True(t, rec.IsOverdue(testNow()))

		rec.Responses[0].CorrectionActualDate = helpers.PtrTime(testNow())
		require.False(t, rec.IsOverdue(testNow()))
	})
}
