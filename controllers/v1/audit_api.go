package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"qms-backend/controllers"
	auditplan "qms-backend/lib/audit-plan"
	externalaudit "qms-backend/lib/external-audit"
	"qms-backend/middleware"
	apimodels "qms-backend/models/api"
	auditapimodels "qms-backend/models/api/audit"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	app.Route("audit-plan", func(router fiber.Router) {
		router.Get("list", controller.listPlans)
		router.Post("", middleware.ManagementRequired(), controller.createPlan)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getPlan)
			idRoute.Put("", middleware.ManagementRequired(), controller.updatePlan)
			idRoute.Put("done", middleware.ManagementRequired(), controller.markPlanDone)
			idRoute.Put("cancel", middleware.ManagementRequired(), controller.cancelPlan)
			idRoute.Delete("", middleware.ManagementRequired(), controller.deletePlan)
		})
	})
	app.Route("external-audit", func(router fiber.Router) {
		router.Get("list", controller.listExternal)
		router.Post("", middleware.ManagementRequired(), controller.createExternal)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getExternal)
			idRoute.Put("", middleware.ManagementRequired(), controller.updateExternal)
			idRoute.Put("finish", middleware.ManagementRequired(), controller.finishExternal)
			idRoute.Delete("", middleware.ManagementRequired(), controller.deleteExternal)
		})
	})
}

// @Summary Создание аудита
// @Tags Внутренние аудиты
// @Description Создание записи плана внутренних аудитов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.AuditPlanData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/audit-plan [post]
func (c *auditApiController) createPlan(ctx *fiber.Ctx) error {
	var payload auditapimodels.AuditPlanData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := auditplan.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление аудита
// @Tags Внутренние аудиты
// @Description Обновление запланированного аудита
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.AuditPlanData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/audit-plan/{id} [put]
func (c *auditApiController) updatePlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload auditapimodels.AuditPlanData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = auditplan.Instance.Edit(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Внутренние аудиты
// @Description Получение аудита по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=auditapimodels.AuditPlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/audit-plan/{id} [get]
func (c *auditApiController) getPlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := auditplan.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список аудитов
// @Tags Внутренние аудиты
// @Description Список записей плана внутренних аудитов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]auditapimodels.AuditPlanView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/audit-plan/list [get]
func (c *auditApiController) listPlans(ctx *fiber.Ctx) error {
	resp, err := auditplan.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка аудитов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Завершение аудита
// @Tags Внутренние аудиты
// @Description Отметка о проведении аудита с отчётом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.AuditReportData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/audit-plan/{id}/done [put]
func (c *auditApiController) markPlanDone(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload auditapimodels.AuditReportData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = auditplan.Instance.MarkDone(id, payload.Report)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отмена аудита
// @Tags Внутренние аудиты
// @Description Отмена запланированного аудита
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/audit-plan/{id}/cancel [put]
func (c *auditApiController) cancelPlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = auditplan.Instance.Cancel(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление аудита
// @Tags Внутренние аудиты
// @Description Удаление записи плана
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/audit-plan/{id} [delete]
func (c *auditApiController) deletePlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = auditplan.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Создание внешнего аудита
// @Tags Внешние аудиты
// @Description Создание записи внешнего аудита
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.ExternalAuditData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/external-audit [post]
func (c *auditApiController) createExternal(ctx *fiber.Ctx) error {
	var payload auditapimodels.ExternalAuditData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := externalaudit.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания внешнего аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление внешнего аудита
// @Tags Внешние аудиты
// @Description Обновление запланированного внешнего аудита
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.ExternalAuditData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/external-audit/{id} [put]
func (c *auditApiController) updateExternal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload auditapimodels.ExternalAuditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = externalaudit.Instance.Edit(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления внешнего аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Внешние аудиты
// @Description Получение внешнего аудита по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=auditapimodels.ExternalAuditView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/external-audit/{id} [get]
func (c *auditApiController) getExternal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := externalaudit.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения внешнего аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список внешних аудитов
// @Tags Внешние аудиты
// @Description Список записей внешних аудитов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]auditapimodels.ExternalAuditView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/external-audit/list [get]
func (c *auditApiController) listExternal(ctx *fiber.Ctx) error {
	resp, err := externalaudit.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка внешних аудитов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Завершение внешнего аудита
// @Tags Внешние аудиты
// @Description Фиксация результата внешнего аудита
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.AuditResultData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/external-audit/{id}/finish [put]
func (c *auditApiController) finishExternal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload auditapimodels.AuditResultData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = externalaudit.Instance.Finish(id, payload.Result)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения внешнего аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление внешнего аудита
// @Tags Внешние аудиты
// @Description Удаление записи внешнего аудита
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/external-audit/{id} [delete]
func (c *auditApiController) deleteExternal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = externalaudit.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления внешнего аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
