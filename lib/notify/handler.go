package notify

import (
	log "github.com/sirupsen/logrus"
	"qms-backend/db"
	msgtemplate "qms-backend/lib/msg-template"
	notificationstore "qms-backend/lib/notify/store"
	"qms-backend/lib/smtp"
	userstore "qms-backend/lib/users/store"
	connectionhub "qms-backend/lib/ws/hub/connection-hub"
	dbmodels "qms-backend/models/db"
	wsmodels "qms-backend/models/ws"
	"time"
)

type Provider interface {
	// Send уведомление пользователю по системному и почтовому каналам.
	// Ошибки доставки логируются и не прерывают вызвавшую операцию.
	Send(userID string, msg msgtemplate.RenderedMsg, actionURL string, requiresConfirmation bool)
	List(userID string, onlyUnviewed bool) (list []dbmodels.Notification, err error)
	MarkViewed(userID string, ids []string) error
	Confirm(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:     notificationstore.NewInstance(db.DB),
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     notificationstore.Provider
	userStore userstore.Provider
}

func (i impl) Send(userID string, msg msgtemplate.RenderedMsg, actionURL string, requiresConfirmation bool) {
	logger := log.
		WithField("user_id", userID).
		WithField("code", msg.Code)
	if msg.System {
		i.sendSystem(userID, msg, actionURL, requiresConfirmation)
	}
	if msg.Email {
		i.sendEmail(userID, msg)
	}
	if !msg.System && !msg.Email {
		logger.Debug("для события отключены все каналы уведомлений")
	}
}

func (i impl) sendSystem(userID string, msg msgtemplate.RenderedMsg, actionURL string, requiresConfirmation bool) {
	logger := log.
		WithField("user_id", userID).
		WithField("code", msg.Code)
	rec := dbmodels.Notification{
		UserID:               userID,
		Code:                 msg.Code,
		Title:                msg.Title,
		Msg:                  msg.Msg,
		ActionURL:            actionURL,
		RequiresConfirmation: requiresConfirmation,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения уведомления")
		return
	}
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     string(msg.Code),
			Title:    msg.Title,
			Msg:      msg.Msg,
		})
	}
}

func (i impl) sendEmail(userID string, msg msgtemplate.RenderedMsg) {
	logger := log.
		WithField("user_id", userID).
		WithField("code", msg.Code)
	if smtp.Instance == nil || !smtp.Instance.IsConfigured() {
		return
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя для отправки почты")
		return
	}
	if user == nil || user.Email == "" || !user.EmailEnabled {
		return
	}
	err = smtp.Instance.SendEMail(user.Email, msg.Subject, msg.Body)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки почтового уведомления")
	}
}

func (i impl) List(userID string, onlyUnviewed bool) (list []dbmodels.Notification, err error) {
	return i.store.List(userID, onlyUnviewed)
}

func (i impl) MarkViewed(userID string, ids []string) error {
	return i.store.MarkViewed(userID, ids)
}

func (i impl) Confirm(userID, id string) error {
	return i.store.Confirm(userID, id)
}
