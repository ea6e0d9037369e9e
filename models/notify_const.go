package models

// NotifyCode код события уведомления, по нему выбирается шаблон сообщения
type NotifyCode string

const (
	NotifyTicketIssued     NotifyCode = "NotifyTicketIssued"
	NotifyTicketRejected   NotifyCode = "NotifyTicketRejected"
	NotifyTicketClosed     NotifyCode = "NotifyTicketClosed"
	NotifyResponseSubmit   NotifyCode = "NotifyResponseSubmit"
	NotifyResponseAccepted NotifyCode = "NotifyResponseAccepted"
	NotifyResponseRejected NotifyCode = "NotifyResponseRejected"

	NotifyTicketDue          NotifyCode = "NotifyTicketDue"
	NotifyTicketEscalation   NotifyCode = "NotifyTicketEscalation"
	NotifyAuditPlanStart     NotifyCode = "NotifyAuditPlanStart"
	NotifyExternalAuditStart NotifyCode = "NotifyExternalAuditStart"
	NotifyCertificateExpiry  NotifyCode = "NotifyCertificateExpiry"
	NotifyDocumentReview     NotifyCode = "NotifyDocumentReview"
)

// NotifyTpl шаблон уведомления.
// В текстах допустимы подстановки вида {name} или {{name}},
// неизвестные подстановки остаются как есть.
type NotifyTpl struct {
	Name    string // название события для настроек
	Subject string // тема письма
	Body    string // текст письма
	Title   string // заголовок системного уведомления
	Msg     string // текст системного уведомления
	Email   bool   // отправлять на почту
	System  bool   // сохранять в системе
}

// NotifyCodeMap встроенные шаблоны.
// Используются, когда в БД нет активного шаблона с таким кодом,
// поэтому отправка уведомления не падает из-за отсутствия настройки.
var NotifyCodeMap = map[NotifyCode]NotifyTpl{
	NotifyTicketIssued: {
		Name:    "Выдан запрос на корректирующее действие",
		Subject: "Выдан запрос {number}",
		Body:    "Подразделению «{department}» выдан запрос {number}: {subject}. Срок ответа отсчитывается с {issued_date}.",
		Title:   "Выдан запрос {number}",
		Msg:     "Подразделению «{department}» выдан запрос {number}: {subject}.",
		Email:   true,
		System:  true,
	},
	NotifyTicketRejected: {
		Name:    "Запрос возвращён на доработку",
		Subject: "Запрос {number} возвращён на доработку",
		Body:    "Запрос {number} возвращён на доработку. Причина: {reason}.",
		Title:   "Запрос {number} возвращён",
		Msg:     "Запрос {number} возвращён на доработку: {reason}.",
		Email:   true,
		System:  true,
	},
	NotifyTicketClosed: {
		Name:    "Запрос закрыт",
		Subject: "Запрос {number} закрыт",
		Body:    "Запрос {number} «{subject}» закрыт пользователем {user}.",
		Title:   "Запрос {number} закрыт",
		Msg:     "Запрос {number} «{subject}» закрыт.",
		Email:   true,
		System:  true,
	},
	NotifyResponseSubmit: {
		Name:    "Получен ответ подразделения",
		Subject: "Ответ по запросу {number}",
		Body:    "По запросу {number} получен ответ подразделения «{department}». Требуется проверка.",
		Title:   "Ответ по запросу {number}",
		Msg:     "По запросу {number} получен ответ подразделения «{department}».",
		Email:   true,
		System:  true,
	},
	NotifyResponseAccepted: {
		Name:    "Ответ принят",
		Subject: "Ответ по запросу {number} принят",
		Body:    "Ответ по запросу {number} принят. Далее будет выполнена проверка результативности.",
		Title:   "Ответ принят",
		Msg:     "Ответ по запросу {number} принят.",
		Email:   true,
		System:  true,
	},
	NotifyResponseRejected: {
		Name:    "Ответ отклонён",
		Subject: "Ответ по запросу {number} отклонён",
		Body:    "Ответ по запросу {number} отклонён. Причина: {reason}. Необходимо отправить новый ответ.",
		Title:   "Ответ отклонён",
		Msg:     "Ответ по запросу {number} отклонён: {reason}.",
		Email:   true,
		System:  true,
	},
	NotifyTicketDue: {
		Name:    "Срок выполнения корректирующего действия",
		Subject: "Истекает срок по запросу {number}",
		Body:    "Срок выполнения действия по запросу {number} «{subject}» истекает {due_date}.",
		Title:   "Истекает срок по запросу {number}",
		Msg:     "Срок по запросу {number} истекает {due_date}.",
		Email:   true,
		System:  true,
	},
	NotifyTicketEscalation: {
		Name:    "Эскалация: нет ответа подразделения",
		Subject: "Эскалация по запросу {number}",
		Body:    "По запросу {number} «{subject}» нет ответа подразделения «{department}» в течение {days} рабочих дней с даты выдачи {issued_date}.",
		Title:   "Эскалация по запросу {number}",
		Msg:     "По запросу {number} нет ответа подразделения «{department}» уже {days} раб. дн.",
		Email:   true,
		System:  true,
	},
	NotifyAuditPlanStart: {
		Name:    "Начало внутреннего аудита",
		Subject: "Внутренний аудит {number}",
		Body:    "Внутренний аудит {number} «{subject}» запланирован на {start_date}.",
		Title:   "Внутренний аудит {number}",
		Msg:     "Внутренний аудит {number} запланирован на {start_date}.",
		Email:   true,
		System:  true,
	},
	NotifyExternalAuditStart: {
		Name:    "Начало внешнего аудита",
		Subject: "Внешний аудит {number}",
		Body:    "Внешний аудит {number} органа «{body}» начнётся {start_date}.",
		Title:   "Внешний аудит {number}",
		Msg:     "Внешний аудит {number} начнётся {start_date}.",
		Email:   true,
		System:  true,
	},
	NotifyCertificateExpiry: {
		Name:    "Окончание действия сертификата",
		Subject: "Истекает сертификат {number}",
		Body:    "Срок действия сертификата {number} «{name}» истекает {expiry_date}. Необходимо продление.",
		Title:   "Истекает сертификат {number}",
		Msg:     "Сертификат {number} истекает {expiry_date}.",
		Email:   true,
		System:  true,
	},
	NotifyDocumentReview: {
		Name:    "Пересмотр документа",
		Subject: "Плановый пересмотр документа {number}",
		Body:    "Документ {number} «{title}» подлежит пересмотру {review_date}.",
		Title:   "Пересмотр документа {number}",
		Msg:     "Документ {number} подлежит пересмотру {review_date}.",
		Email:   true,
		System:  true,
	},
}
