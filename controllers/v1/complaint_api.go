package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"qms-backend/controllers"
	"qms-backend/lib/complaint"
	"qms-backend/middleware"
	apimodels "qms-backend/models/api"
	complaintapimodels "qms-backend/models/api/complaint"
)

type complaintApiController struct {
	controllers.BaseAPIController
}

func InitComplaintApiRouters(app *fiber.App) {
	controller := complaintApiController{}
	app.Route("complaint", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Post("raise-ticket", middleware.ManagementRequired(), controller.raiseTicket)
			idRoute.Put("close", middleware.ManagementRequired(), controller.close)
		})
	})
}

// @Summary Регистрация рекламации
// @Tags Рекламации
// @Description Регистрация рекламации заказчика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 complaintapimodels.ComplaintData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/complaint [post]
func (c *complaintApiController) create(ctx *fiber.Ctx) error {
	var payload complaintapimodels.ComplaintData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := complaint.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации рекламации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление рекламации
// @Tags Рекламации
// @Description Обновление открытой рекламации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 complaintapimodels.ComplaintData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/complaint/{id} [put]
func (c *complaintApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.ComplaintData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = complaint.Instance.Edit(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления рекламации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Рекламации
// @Description Получение рекламации по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/complaint/{id} [get]
func (c *complaintApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := complaint.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения рекламации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список рекламаций
// @Tags Рекламации
// @Description Список рекламаций
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]complaintapimodels.ComplaintView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/complaint/list [get]
func (c *complaintApiController) list(ctx *fiber.Ctx) error {
	resp, err := complaint.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка рекламаций")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Заведение CAR
// @Tags Рекламации
// @Description Заведение запроса на корректирующее действие по рекламации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/complaint/{id}/raise-ticket [post]
func (c *complaintApiController) raiseTicket(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	ticketID, err := complaint.Instance.RaiseTicket(id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка заведения запроса по рекламации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(ticketID))
}

// @Summary Закрытие рекламации
// @Tags Рекламации
// @Description Закрытие рекламации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/complaint/{id}/close [put]
func (c *complaintApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = complaint.Instance.Close(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка закрытия рекламации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
