package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"qms-backend/controllers"
	"qms-backend/lib/certificate"
	"qms-backend/middleware"
	apimodels "qms-backend/models/api"
	certapimodels "qms-backend/models/api/certificate"
)

type certificateApiController struct {
	controllers.BaseAPIController
}

func InitCertificateApiRouters(app *fiber.App) {
	controller := certificateApiController{}
	app.Route("certificate", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", middleware.ManagementRequired(), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("card", controller.exportCard)
			idRoute.Put("", middleware.ManagementRequired(), controller.update)
			idRoute.Put("withdraw", middleware.ManagementRequired(), controller.withdraw)
			idRoute.Delete("", middleware.ManagementRequired(), controller.delete)
		})
	})
}

// @Summary Создание сертификата
// @Tags Сертификаты
// @Description Регистрация сертификата системы менеджмента
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 certapimodels.CertificateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/certificate [post]
func (c *certificateApiController) create(ctx *fiber.Ctx) error {
	var payload certapimodels.CertificateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := certificate.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сертификата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление сертификата
// @Tags Сертификаты
// @Description Обновление данных сертификата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 certapimodels.CertificateData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/certificate/{id} [put]
func (c *certificateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload certapimodels.CertificateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = certificate.Instance.Edit(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления сертификата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Сертификаты
// @Description Получение сертификата по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=certapimodels.CertificateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/certificate/{id} [get]
func (c *certificateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := certificate.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сертификата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список сертификатов
// @Tags Сертификаты
// @Description Список всех сертификатов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]certapimodels.CertificateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/certificate/list [get]
func (c *certificateApiController) list(ctx *fiber.Ctx) error {
	resp, err := certificate.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сертификатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Карточка сертификата
// @Tags Сертификаты
// @Description Выгрузка карточки сертификата в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/certificate/{id}/card [get]
func (c *certificateApiController) exportCard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, fileName, err := certificate.Instance.ExportCard(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки карточки сертификата")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(file)
}

// @Summary Отзыв сертификата
// @Tags Сертификаты
// @Description Перевод сертификата в статус «отозван»
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/certificate/{id}/withdraw [put]
func (c *certificateApiController) withdraw(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = certificate.Instance.Withdraw(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отзыва сертификата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление сертификата
// @Tags Сертификаты
// @Description Удаление сертификата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/qms/certificate/{id} [delete]
func (c *certificateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = certificate.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления сертификата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
