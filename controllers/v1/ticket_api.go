package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"qms-backend/controllers"
	"qms-backend/lib/ticket"
	"qms-backend/middleware"
	apimodels "qms-backend/models/api"
	ticketapimodels "qms-backend/models/api/ticket"
)

type ticketApiController struct {
	controllers.BaseAPIController
}

func InitTicketApiRouters(app *fiber.App) {
	controller := ticketApiController{}
	app.Route("ticket", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Put("submit", controller.submit)                          // на согласование
			idRoute.Put("approve", middleware.ManagementRequired(), controller.approve) // выдать
			idRoute.Put("reject", middleware.ManagementRequired(), controller.reject)   // вернуть на доработку
			idRoute.Put("response", controller.recordResponse)                // черновик ответа
			idRoute.Put("response/submit", controller.submitResponse)         // отправить ответ
			idRoute.Put("response/:responseId/accept", middleware.ManagementRequired(), controller.acceptResponse)
			idRoute.Put("response/:responseId/reject", middleware.ManagementRequired(), controller.rejectResponse)
			idRoute.Put("action-done", controller.markActionDone)
			idRoute.Post("follow-up", middleware.ManagementRequired(), controller.addFollowUp)
			idRoute.Put("follow-up/:followUpId/accept", middleware.ManagementRequired(), controller.acceptFollowUp)
			idRoute.Put("follow-up/:followUpId/reject", middleware.ManagementRequired(), controller.rejectFollowUp)
			idRoute.Put("close", middleware.ManagementRequired(), controller.close)
			idRoute.Put("cancel", middleware.ManagementRequired(), controller.cancel)
		})
	})
}

// @Summary Создание запроса
// @Tags Запросы CAR/IO
// @Description Создание запроса на корректирующее действие или возможности улучшения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.TicketCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket [post]
func (c *ticketApiController) create(ctx *fiber.Ctx) error {
	var payload ticketapimodels.TicketCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := ticket.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания запроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление запроса
// @Tags Запросы CAR/IO
// @Description Обновление черновика или возвращённого запроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.TicketEditData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id} [put]
func (c *ticketApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.TicketEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = ticket.Instance.Edit(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления запроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Запросы CAR/IO
// @Description Получение запроса по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=ticketapimodels.TicketView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id} [get]
func (c *ticketApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := ticket.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения запроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список запросов
// @Tags Запросы CAR/IO
// @Description Список запросов по фильтру
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.TicketFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]ticketapimodels.TicketView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/list [post]
func (c *ticketApiController) list(ctx *fiber.Ctx) error {
	var payload ticketapimodels.TicketFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := ticket.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка запросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка реестра
// @Tags Запросы CAR/IO
// @Description Выгрузка реестра запросов в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.TicketFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/export [post]
func (c *ticketApiController) export(ctx *fiber.Ctx) error {
	var payload ticketapimodels.TicketFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ticket.Instance.ExportRegister(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="tickets.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).SendStream(file)
}

// @Summary Отправка на согласование
// @Tags Запросы CAR/IO
// @Description Отправка запроса на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/submit [put]
func (c *ticketApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = ticket.Instance.SubmitForApproval(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выдача запроса
// @Tags Запросы CAR/IO
// @Description Согласование и выдача запроса подразделению
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/approve [put]
func (c *ticketApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.ApproveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.Approve(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выдачи запроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Возврат на доработку
// @Tags Запросы CAR/IO
// @Description Возврат запроса инициатору на доработку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.RejectData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/reject [put]
func (c *ticketApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.Reject(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка возврата запроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Черновик ответа
// @Tags Запросы CAR/IO
// @Description Сохранение черновика ответа подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.ResponseData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/response [put]
func (c *ticketApiController) recordResponse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.ResponseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.RecordResponse(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения ответа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отправка ответа
// @Tags Запросы CAR/IO
// @Description Отправка ответа подразделения на проверку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/response/submit [put]
func (c *ticketApiController) submitResponse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.SubmitResponse(id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки ответа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Принятие ответа
// @Tags Запросы CAR/IO
// @Description Принятие ответа подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   responseId  		path    string  				    	true         "response ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/response/{responseId}/accept [put]
func (c *ticketApiController) acceptResponse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	responseID, err := c.GetParam(ctx, "responseId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.AcceptResponse(id, responseID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка принятия ответа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонение ответа
// @Tags Запросы CAR/IO
// @Description Отклонение ответа подразделения с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.RejectData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   responseId  		path    string  				    	true         "response ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/response/{responseId}/reject [put]
func (c *ticketApiController) rejectResponse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	responseID, err := c.GetParam(ctx, "responseId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.RejectResponse(id, responseID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения ответа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отметка о выполнении
// @Tags Запросы CAR/IO
// @Description Фиксация фактических дат выполнения действий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.ActionDoneData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/action-done [put]
func (c *ticketApiController) markActionDone(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.ActionDoneData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.MarkActionDone(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки о выполнении")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Проверка результативности
// @Tags Запросы CAR/IO
// @Description Назначение проверки результативности (только CAR)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.FollowUpData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/follow-up [post]
func (c *ticketApiController) addFollowUp(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.FollowUpData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.AddFollowUp(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения проверки результативности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Принятие проверки
// @Tags Запросы CAR/IO
// @Description Фиксация успешной проверки результативности
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   followUpId  		path    string  				    	true         "follow-up ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/follow-up/{followUpId}/accept [put]
func (c *ticketApiController) acceptFollowUp(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	followUpID, err := c.GetParam(ctx, "followUpId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.AcceptFollowUp(id, followUpID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации проверки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Непрохождение проверки
// @Tags Запросы CAR/IO
// @Description Фиксация непройденной проверки результативности
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.RejectData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   followUpId  		path    string  				    	true         "follow-up ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/follow-up/{followUpId}/reject [put]
func (c *ticketApiController) rejectFollowUp(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	followUpID, err := c.GetParam(ctx, "followUpId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.RejectFollowUp(id, followUpID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации проверки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Закрытие запроса
// @Tags Запросы CAR/IO
// @Description Закрытие запроса после выполнения всех условий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/close [put]
func (c *ticketApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.Close(id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка закрытия запроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отмена запроса
// @Tags Запросы CAR/IO
// @Description Отмена запроса с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 ticketapimodels.RejectData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/ticket/{id}/cancel [put]
func (c *ticketApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload ticketapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = ticket.Instance.Cancel(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены запроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
