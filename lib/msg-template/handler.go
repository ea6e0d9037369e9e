package msgtemplate

import (
	log "github.com/sirupsen/logrus"
	"qms-backend/db"
	msgtemplatestore "qms-backend/lib/msg-template/store"
	"qms-backend/models"
	notifyapimodels "qms-backend/models/api/notification"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	// GetTemplate шаблон по коду события с учётом переопределений в БД
	GetTemplate(code models.NotifyCode) models.NotifyTpl
	// BuildMessage готовое сообщение по коду и значениям подстановок
	BuildMessage(code models.NotifyCode, values map[string]string) RenderedMsg
	ListTemplates() (list []notifyapimodels.NotifyTemplateView, err error)
	SaveTemplate(data notifyapimodels.NotifyTemplateData) error
}

// RenderedMsg результат рендера шаблона по всем четырём текстам
type RenderedMsg struct {
	Code    models.NotifyCode
	Subject string
	Body    string
	Title   string
	Msg     string
	Email   bool
	System  bool
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: msgtemplatestore.NewInstance(db.DB),
	}
}

func NewWithStore(store msgtemplatestore.Provider) Provider {
	return &impl{store: store}
}

type impl struct {
	store msgtemplatestore.Provider
}

// GetTemplate отсутствующий или выключенный шаблон в БД заменяется встроенным,
// отправка уведомления никогда не падает из-за отсутствия настройки
func (i impl) GetTemplate(code models.NotifyCode) models.NotifyTpl {
	builtin := models.NotifyCodeMap[code]
	rec, err := i.store.GetByCode(code)
	if err != nil {
		log.
			WithError(err).
			WithField("code", code).
			Error("ошибка получения шаблона уведомления, используется встроенный")
		return builtin
	}
	if rec == nil || !rec.Active {
		return builtin
	}
	return models.NotifyTpl{
		Name:    builtin.Name,
		Subject: rec.Subject,
		Body:    rec.Body,
		Title:   rec.Title,
		Msg:     rec.Msg,
		Email:   rec.EmailEnabled,
		System:  rec.SystemEnabled,
	}
}

func (i impl) BuildMessage(code models.NotifyCode, values map[string]string) RenderedMsg {
	tpl := i.GetTemplate(code)
	return RenderedMsg{
		Code:    code,
		Subject: Render(tpl.Subject, values),
		Body:    Render(tpl.Body, values),
		Title:   Render(tpl.Title, values),
		Msg:     Render(tpl.Msg, values),
		Email:   tpl.Email,
		System:  tpl.System,
	}
}

func (i impl) ListTemplates() (list []notifyapimodels.NotifyTemplateView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка шаблонов уведомлений")
		return nil, err
	}
	overrides := map[models.NotifyCode]dbmodels.NotifyTemplate{}
	for _, rec := range recList {
		overrides[rec.Code] = rec
	}
	list = make([]notifyapimodels.NotifyTemplateView, 0, len(models.NotifyCodeMap))
	for code, builtin := range models.NotifyCodeMap {
		view := notifyapimodels.NotifyTemplateView{
			NotifyTemplateData: notifyapimodels.NotifyTemplateData{
				Code:          code,
				Subject:       builtin.Subject,
				Body:          builtin.Body,
				Title:         builtin.Title,
				Msg:           builtin.Msg,
				EmailEnabled:  builtin.Email,
				SystemEnabled: builtin.System,
				Active:        true,
			},
			Name: builtin.Name,
		}
		if rec, exist := overrides[code]; exist {
			view.ID = rec.ID
			view.Subject = rec.Subject
			view.Body = rec.Body
			view.Title = rec.Title
			view.Msg = rec.Msg
			view.EmailEnabled = rec.EmailEnabled
			view.SystemEnabled = rec.SystemEnabled
			view.Active = rec.Active
		}
		list = append(list, view)
	}
	return list, nil
}

func (i impl) SaveTemplate(data notifyapimodels.NotifyTemplateData) error {
	rec := dbmodels.NotifyTemplate{
		Code:          data.Code,
		Subject:       data.Subject,
		Body:          data.Body,
		Title:         data.Title,
		Msg:           data.Msg,
		EmailEnabled:  data.EmailEnabled,
		SystemEnabled: data.SystemEnabled,
		Active:        data.Active,
	}
	_, err := i.store.Save(rec)
	if err != nil {
		log.
			WithError(err).
			WithField("code", data.Code).
			Error("ошибка сохранения шаблона уведомления")
		return err
	}
	return nil
}
