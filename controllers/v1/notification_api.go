package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"qms-backend/controllers"
	msgtemplate "qms-backend/lib/msg-template"
	"qms-backend/lib/notify"
	"qms-backend/lib/reminder"
	"qms-backend/middleware"
	apimodels "qms-backend/models/api"
	notifyapimodels "qms-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Put("viewed", controller.markViewed)
		router.Put(":id/confirm", controller.confirm)
	})
	app.Route("reminder-setting", func(router fiber.Router) {
		router.Get("list", middleware.ManagementRequired(), controller.listSettings)
		router.Post("", middleware.ManagementRequired(), controller.saveSetting)
		router.Delete(":id", middleware.ManagementRequired(), controller.deleteSetting)
	})
	app.Route("notify-template", func(router fiber.Router) {
		router.Get("list", middleware.ManagementRequired(), controller.listTemplates)
		router.Post("", middleware.ManagementRequired(), controller.saveTemplate)
	})
}

type markViewedData struct {
	// пустой список означает «отметить все»
	IDs []string `json:"ids"`
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Список уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   only_unviewed		query		bool	false	"только непросмотренные"
// @Success 200 {object} apimodels.Response{data=[]notifyapimodels.NotificationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/notification/list [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	onlyUnviewed := ctx.QueryBool("only_unviewed")
	list, err := notify.Instance.List(userID, onlyUnviewed)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения уведомлений")
	}
	result := make([]notifyapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notifyapimodels.NotificationConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Отметка о просмотре
// @Tags Уведомления
// @Description Отметка уведомлений как просмотренных, пустой список — все
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 markViewedData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/notification/viewed [put]
func (c *notificationApiController) markViewed(ctx *fiber.Ctx) error {
	var payload markViewedData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err := notify.Instance.MarkViewed(userID, payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Подтверждение уведомления
// @Tags Уведомления
// @Description Подтверждение получения уведомления, требующего подтверждения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/notification/{id}/confirm [put]
func (c *notificationApiController) confirm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = notify.Instance.Confirm(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подтверждения уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Настройки напоминаний
// @Tags Напоминания
// @Description Список настроек напоминаний
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notifyapimodels.ReminderSettingView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/reminder-setting/list [get]
func (c *notificationApiController) listSettings(ctx *fiber.Ctx) error {
	resp, err := reminder.Instance.ListSettings()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения настроек напоминаний")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение настройки
// @Tags Напоминания
// @Description Создание или обновление настройки напоминаний по паре сущность/событие
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.ReminderSettingData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/reminder-setting [post]
func (c *notificationApiController) saveSetting(ctx *fiber.Ctx) error {
	var payload notifyapimodels.ReminderSettingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := reminder.Instance.SaveSetting(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения настройки напоминаний")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление настройки
// @Tags Напоминания
// @Description Удаление настройки напоминаний
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/reminder-setting/{id} [delete]
func (c *notificationApiController) deleteSetting(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = reminder.Instance.DeleteSetting(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления настройки напоминаний")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Шаблоны уведомлений
// @Tags Напоминания
// @Description Список шаблонов уведомлений, встроенные вместе с переопределёнными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notifyapimodels.NotifyTemplateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/notify-template/list [get]
func (c *notificationApiController) listTemplates(ctx *fiber.Ctx) error {
	resp, err := msgtemplate.Instance.ListTemplates()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения шаблонов уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение шаблона
// @Tags Напоминания
// @Description Переопределение встроенного шаблона уведомления
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.NotifyTemplateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/notify-template [post]
func (c *notificationApiController) saveTemplate(ctx *fiber.Ctx) error {
	var payload notifyapimodels.NotifyTemplateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := msgtemplate.Instance.SaveTemplate(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения шаблона уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
