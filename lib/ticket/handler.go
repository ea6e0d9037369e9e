package ticket

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"qms-backend/db"
	xlsexport "qms-backend/lib/export/xls"
	msgtemplate "qms-backend/lib/msg-template"
	"qms-backend/lib/notify"
	"qms-backend/lib/sequence"
	ticketfollowupstore "qms-backend/lib/ticket/followup-store"
	ticketresponsestore "qms-backend/lib/ticket/response-store"
	ticketstore "qms-backend/lib/ticket/store"
	userstore "qms-backend/lib/users/store"
	"qms-backend/lib/utils/helpers"
	"qms-backend/models"
	ticketapimodels "qms-backend/models/api/ticket"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(userID string, data ticketapimodels.TicketCreateData) (id string, err error)
	Edit(id string, data ticketapimodels.TicketEditData) error
	GetByID(id string) (view ticketapimodels.TicketView, err error)
	List(filter ticketapimodels.TicketFilter) (list []ticketapimodels.TicketView, rowCount int64, err error)
	SubmitForApproval(id string) error
	Approve(id, userID string, data ticketapimodels.ApproveData) error
	Reject(id, userID string, data ticketapimodels.RejectData) error
	RecordResponse(id, userID string, data ticketapimodels.ResponseData) error
	SubmitResponse(id, userID string) error
	AcceptResponse(id, responseID, userID string) error
	RejectResponse(id, responseID, userID string, data ticketapimodels.RejectData) error
	MarkActionDone(id, userID string, data ticketapimodels.ActionDoneData) error
	AddFollowUp(id, userID string, data ticketapimodels.FollowUpData) error
	AcceptFollowUp(id, followUpID, userID string) error
	RejectFollowUp(id, followUpID, userID string, data ticketapimodels.RejectData) error
	Close(id, userID string) error
	Cancel(id, userID string, data ticketapimodels.RejectData) error
	// ExportRegister реестр запросов по фильтру в xlsx
	ExportRegister(filter ticketapimodels.TicketFilter) (file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:         ticketstore.NewInstance(db.DB),
		responseStore: ticketresponsestore.NewInstance(db.DB),
		followUpStore: ticketfollowupstore.NewInstance(db.DB),
		userStore:     userstore.NewInstance(db.DB),
		seq:           sequence.Instance,
		tpl:           msgtemplate.Instance,
		notify:        notify.Instance,
		now:           time.Now,
	}
}

type impl struct {
	store         ticketstore.Provider
	responseStore ticketresponsestore.Provider
	followUpStore ticketfollowupstore.Provider
	userStore     userstore.Provider
	seq           sequence.Provider
	tpl           msgtemplate.Provider
	notify        notify.Provider
	now           func() time.Time
}

func (i impl) Create(userID string, data ticketapimodels.TicketCreateData) (id string, err error) {
	number, err := i.seq.Next(models.TicketNumberFamily(data.Kind))
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения номера запроса")
	}
	rec := dbmodels.Ticket{
		Kind:             data.Kind,
		Number:           number,
		Status:           models.TicketStatusDraft,
		Priority:         data.Priority,
		SourceType:       data.SourceType,
		FromDepartmentID: data.FromDepartmentID,
		ToDepartmentID:   data.ToDepartmentID,
		Subject:          data.Subject,
		Description:      data.Description,
		IssuedByID:       userID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания запроса")
	}
	log.
		WithField("ticket_id", id).
		WithField("number", number).
		Info("создан запрос")
	return id, nil
}

func (i impl) Edit(id string, data ticketapimodels.TicketEditData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowEdit() {
		return errors.Errorf("редактирование недоступно в статусе «%v»", rec.Status.ToHuman())
	}
	if data.Priority != "" {
		if err := data.Priority.Validate(rec.Kind); err != nil {
			return err
		}
	}
	updMap := map[string]interface{}{
		"priority":           data.Priority,
		"source_type":        data.SourceType,
		"from_department_id": data.FromDepartmentID,
		"to_department_id":   data.ToDepartmentID,
		"subject":            data.Subject,
		"description":        data.Description,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (view ticketapimodels.TicketView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return ticketapimodels.TicketView{}, err
	}
	return ticketapimodels.TicketConvert(*rec, i.now()), nil
}

func (i impl) List(filter ticketapimodels.TicketFilter) (list []ticketapimodels.TicketView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка запросов")
	}
	now := i.now()
	list = make([]ticketapimodels.TicketView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, ticketapimodels.TicketConvert(rec, now))
	}
	return list, rowCount, nil
}

func (i impl) SubmitForApproval(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowSubmitForApproval() {
		return errors.Errorf("отправка на согласование недоступна в статусе «%v»", rec.Status.ToHuman())
	}
	return i.store.Update(id, map[string]interface{}{
		"status": models.TicketStatusPendingApproval,
	})
}

// Approve выдача запроса: с этого момента отсчитывается срок ответа подразделения
func (i impl) Approve(id, userID string, data ticketapimodels.ApproveData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowApprove() {
		return errors.Errorf("согласование недоступно в статусе «%v»", rec.Status.ToHuman())
	}
	now := i.now()
	updMap := map[string]interface{}{
		"status":         models.TicketStatusIssued,
		"issued_date":    now,
		"approved_by_id": userID,
		"approved_at":    now,
	}
	if data.Clarification != "" {
		updMap["clarification"] = data.Clarification
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка выдачи запроса")
	}
	values := i.tplValues(rec)
	values["issued_date"] = helpers.DateOnly(now)
	i.notifyDepartment(rec, models.NotifyTicketIssued, values)
	return nil
}

func (i impl) Reject(id, userID string, data ticketapimodels.RejectData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowApprove() {
		return errors.Errorf("возврат на доработку недоступен в статусе «%v»", rec.Status.ToHuman())
	}
	err = i.store.Update(id, map[string]interface{}{
		"status":        models.TicketStatusRejectedToBeEdit,
		"clarification": data.Reason,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка возврата запроса")
	}
	values := i.tplValues(rec)
	values["reason"] = data.Reason
	msg := i.tpl.BuildMessage(models.NotifyTicketRejected, values)
	i.notify.Send(rec.IssuedByID, msg, ticketURL(rec.ID), false)
	return nil
}

// RecordResponse сохранение черновика ответа подразделения,
// до отправки на проверку его можно дополнять
func (i impl) RecordResponse(id, userID string, data ticketapimodels.ResponseData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowResponse() {
		return errors.Errorf("ответ недоступен в статусе «%v»", rec.Status.ToHuman())
	}
	if err := data.Validate(rec.Kind); err != nil {
		return err
	}
	pending, err := i.responseStore.GetPending(id)
	if err != nil {
		return errors.Wrap(err, "ошибка поиска черновика ответа")
	}
	if pending != nil {
		return i.responseStore.Update(pending.ID, map[string]interface{}{
			"root_cause":                    data.RootCause,
			"correction":                    data.Correction,
			"correction_target_date":        data.CorrectionTargetDate,
			"corrective_action":             data.CorrectiveAction,
			"corrective_action_target_date": data.CorrectiveActionTargetDate,
			"responded_by_id":               userID,
		})
	}
	_, err = i.responseStore.Create(dbmodels.TicketResponse{
		TicketID:                   id,
		RootCause:                  data.RootCause,
		Correction:                 data.Correction,
		CorrectionTargetDate:       data.CorrectionTargetDate,
		CorrectiveAction:           data.CorrectiveAction,
		CorrectiveActionTargetDate: data.CorrectiveActionTargetDate,
		Status:                     models.ResponseStatusPending,
		RespondedByID:              userID,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения ответа")
	}
	if rec.Status == models.TicketStatusIssued {
		return i.store.Update(id, map[string]interface{}{
			"status": models.TicketStatusInProgress,
		})
	}
	return nil
}

func (i impl) SubmitResponse(id, userID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowResponse() {
		return errors.Errorf("отправка ответа недоступна в статусе «%v»", rec.Status.ToHuman())
	}
	pending, err := i.responseStore.GetPending(id)
	if err != nil {
		return errors.Wrap(err, "ошибка поиска черновика ответа")
	}
	if pending == nil {
		return errors.New("черновик ответа не найден")
	}
	now := i.now()
	err = i.responseStore.Update(pending.ID, map[string]interface{}{
		"status":          models.ResponseStatusSubmitted,
		"responded_by_id": userID,
		"responded_at":    now,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка отправки ответа")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.TicketStatusPendingReview,
	})
	if err != nil {
		return err
	}
	i.notifyManagement(rec, models.NotifyResponseSubmit, i.tplValues(rec))
	return nil
}

func (i impl) AcceptResponse(id, responseID, userID string) error {
	rec, resp, err := i.getSubmitted(id, responseID)
	if err != nil {
		return err
	}
	now := i.now()
	err = i.responseStore.Update(responseID, map[string]interface{}{
		"status":         models.ResponseStatusAccepted,
		"reviewed_by_id": userID,
		"reviewed_at":    now,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка принятия ответа")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.TicketStatusInProgress,
	})
	if err != nil {
		return err
	}
	msg := i.tpl.BuildMessage(models.NotifyResponseAccepted, i.tplValues(rec))
	i.notify.Send(resp.RespondedByID, msg, ticketURL(rec.ID), false)
	return nil
}

// RejectResponse отклонённый ответ не редактируется,
// подразделение готовит и отправляет новый
func (i impl) RejectResponse(id, responseID, userID string, data ticketapimodels.RejectData) error {
	rec, resp, err := i.getSubmitted(id, responseID)
	if err != nil {
		return err
	}
	now := i.now()
	err = i.responseStore.Update(responseID, map[string]interface{}{
		"status":           models.ResponseStatusRejected,
		"rejection_reason": data.Reason,
		"reviewed_by_id":   userID,
		"reviewed_at":      now,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка отклонения ответа")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.TicketStatusInProgress,
	})
	if err != nil {
		return err
	}
	values := i.tplValues(rec)
	values["reason"] = data.Reason
	msg := i.tpl.BuildMessage(models.NotifyResponseRejected, values)
	i.notify.Send(resp.RespondedByID, msg, ticketURL(rec.ID), false)
	return nil
}

// MarkActionDone фиксация фактических дат выполнения по принятому ответу
func (i impl) MarkActionDone(id, userID string, data ticketapimodels.ActionDoneData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status.IsFinal() {
		return errors.Errorf("запрос уже завершён в статусе «%v»", rec.Status.ToHuman())
	}
	accepted := acceptedResponse(rec)
	if accepted == nil {
		return errors.New("принятый ответ не найден")
	}
	actualDate := i.now()
	if data.ActualDate != nil {
		actualDate = *data.ActualDate
	}
	updMap := map[string]interface{}{}
	if data.CorrectionDone {
		updMap["correction_actual_date"] = actualDate
	}
	if data.CorrectiveActionDone {
		if !rec.Kind.HasFollowUp() {
			return errors.New("для возможности улучшения корректирующее действие не предусмотрено")
		}
		updMap["corrective_action_actual_date"] = actualDate
	}
	if len(updMap) == 0 {
		return errors.New("не отмечено ни одно выполненное действие")
	}
	return i.responseStore.Update(accepted.ID, updMap)
}

// AddFollowUp проверка результативности назначается после выполнения всех действий
func (i impl) AddFollowUp(id, userID string, data ticketapimodels.FollowUpData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Kind.HasFollowUp() {
		return errors.New("для возможности улучшения проверка результативности не предусмотрена")
	}
	if rec.Status != models.TicketStatusInProgress {
		return errors.Errorf("проверка результативности недоступна в статусе «%v»", rec.Status.ToHuman())
	}
	accepted := acceptedResponse(rec)
	if accepted == nil {
		return errors.New("принятый ответ не найден")
	}
	if !accepted.IsComplete(rec.Kind) {
		return errors.New("действия по ответу ещё не выполнены")
	}
	_, err = i.followUpStore.Create(dbmodels.TicketFollowUp{
		TicketID:       id,
		Type:           data.Type,
		Status:         models.FollowUpStatusPending,
		FollowedUpByID: userID,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка создания проверки результативности")
	}
	return nil
}

func (i impl) AcceptFollowUp(id, followUpID, userID string) error {
	return i.reviewFollowUp(id, followUpID, userID, models.FollowUpStatusAccepted, "")
}

func (i impl) RejectFollowUp(id, followUpID, userID string, data ticketapimodels.RejectData) error {
	return i.reviewFollowUp(id, followUpID, userID, models.FollowUpStatusNotAccepted, data.Reason)
}

func (i impl) reviewFollowUp(id, followUpID, userID string, status models.FollowUpStatus, reason string) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	fu, err := i.followUpStore.GetByID(followUpID)
	if err != nil {
		return errors.Wrap(err, "ошибка поиска проверки результативности")
	}
	if fu == nil || fu.TicketID != id {
		return errors.New("проверка результативности не найдена")
	}
	if fu.Status != models.FollowUpStatusPending {
		return errors.New("результат проверки уже зафиксирован")
	}
	updMap := map[string]interface{}{
		"status":            status,
		"followed_up_by_id": userID,
		"followed_up_at":    i.now(),
	}
	if reason != "" {
		updMap["rejection_reason"] = reason
	}
	return i.followUpStore.Update(followUpID, updMap)
}

func (i impl) Close(id, userID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status.IsFinal() {
		return errors.Errorf("запрос уже завершён в статусе «%v»", rec.Status.ToHuman())
	}
	if !rec.IsClosable() {
		return errors.New("запрос не готов к закрытию: требуется принятый ответ и принятые проверки результативности")
	}
	now := i.now()
	err = i.store.Update(id, map[string]interface{}{
		"status":       models.TicketStatusClosed,
		"closed_by_id": userID,
		"closed_at":    now,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка закрытия запроса")
	}
	values := i.tplValues(rec)
	values["user"] = i.userName(userID)
	msg := i.tpl.BuildMessage(models.NotifyTicketClosed, values)
	i.notify.Send(rec.IssuedByID, msg, ticketURL(rec.ID), false)
	i.notifyDepartment(rec, models.NotifyTicketClosed, values)
	return nil
}

func (i impl) Cancel(id, userID string, data ticketapimodels.RejectData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status.IsFinal() {
		return errors.Errorf("запрос уже завершён в статусе «%v»", rec.Status.ToHuman())
	}
	return i.store.Update(id, map[string]interface{}{
		"status":        models.TicketStatusCancelled,
		"clarification": data.Reason,
		"closed_by_id":  userID,
		"closed_at":     i.now(),
	})
}

func (i impl) ExportRegister(filter ticketapimodels.TicketFilter) (file *bytes.Buffer, err error) {
	recList, err := i.store.ListAll(filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка запросов")
	}
	return xlsexport.Instance.ExportTicketRegister(recList, i.now())
}

func (i impl) getRec(id string) (*dbmodels.Ticket, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения запроса")
	}
	if rec == nil {
		return nil, errors.New("запрос не найден")
	}
	return rec, nil
}

func (i impl) getSubmitted(id, responseID string) (*dbmodels.Ticket, *dbmodels.TicketResponse, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, nil, err
	}
	if rec.Status != models.TicketStatusPendingReview {
		return nil, nil, errors.Errorf("проверка ответа недоступна в статусе «%v»", rec.Status.ToHuman())
	}
	resp, err := i.responseStore.GetByID(responseID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка поиска ответа")
	}
	if resp == nil || resp.TicketID != id {
		return nil, nil, errors.New("ответ не найден")
	}
	if resp.Status != models.ResponseStatusSubmitted {
		return nil, nil, errors.New("ответ не находится на проверке")
	}
	return rec, resp, nil
}

func acceptedResponse(rec *dbmodels.Ticket) *dbmodels.TicketResponse {
	for idx := range rec.Responses {
		if rec.Responses[idx].Status == models.ResponseStatusAccepted {
			return &rec.Responses[idx]
		}
	}
	return nil
}

func (i impl) tplValues(rec *dbmodels.Ticket) map[string]string {
	values := map[string]string{
		"number":  rec.Number,
		"subject": rec.Subject,
	}
	if rec.ToDepartment != nil {
		values["department"] = rec.ToDepartment.Name
	}
	if rec.IssuedDate != nil {
		values["issued_date"] = helpers.DateOnly(*rec.IssuedDate)
	}
	return values
}

// notifyDepartment уведомление уходит руководителю ответственного подразделения,
// при его отсутствии всем сотрудникам подразделения
func (i impl) notifyDepartment(rec *dbmodels.Ticket, code models.NotifyCode, values map[string]string) {
	msg := i.tpl.BuildMessage(code, values)
	if rec.ToDepartment != nil && rec.ToDepartment.HeadID != nil {
		i.notify.Send(*rec.ToDepartment.HeadID, msg, ticketURL(rec.ID), false)
		return
	}
	users, err := i.userStore.ListByDepartment(rec.ToDepartmentID)
	if err != nil {
		log.
			WithError(err).
			WithField("department_id", rec.ToDepartmentID).
			Error("ошибка получения сотрудников подразделения для уведомления")
		return
	}
	for _, user := range users {
		i.notify.Send(user.ID, msg, ticketURL(rec.ID), false)
	}
}

func (i impl) notifyManagement(rec *dbmodels.Ticket, code models.NotifyCode, values map[string]string) {
	msg := i.tpl.BuildMessage(code, values)
	users, err := i.userStore.ListByRole(models.UserRoleQualityManager, models.UserRoleGeneralManager)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка руководства для уведомления")
		return
	}
	for _, user := range users {
		i.notify.Send(user.ID, msg, ticketURL(rec.ID), false)
	}
}

func (i impl) userName(userID string) string {
	user, err := i.userStore.GetByID(userID)
	if err != nil || user == nil {
		return ""
	}
	return user.GetFullName()
}

func ticketURL(id string) string {
	return "/tickets/" + id
}
