package apiv1

import (
	"recruit-flow-backend/controllers"
	stagehandler "recruit-flow-backend/lib/stage"
	vacancyhandler "recruit-flow-backend/lib/vacancy"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"
	stageapimodels "recruit-flow-backend/models/api/stage"
	vacancyapimodels "recruit-flow-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Route("stage", func(stageRoute fiber.Router) {
				stageRoute.Get("list", controller.stageList)
				stageRoute.Post("", controller.stageCreate)
				stageRoute.Put(":stage_id", controller.stageUpdate)
				stageRoute.Delete(":stage_id", middleware.SpaceAdminRequired(), controller.stageDelete)
			})
		})
	})
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии со стандартным набором этапов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	id, err := vacancyhandler.Instance.Create(spaceID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Вакансия
// @Description Обновление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy/{id} [put]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload vacancyapimodels.VacancyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = vacancyhandler.Instance.Update(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := vacancyhandler.Instance.GetByID(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список вакансий
// @Tags Вакансия
// @Description Список вакансий
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	spaceID := middleware.GetUserSpace(ctx)
	list, err := vacancyhandler.Instance.List(spaceID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Список этапов подбора
// @Tags Этапы подбора
// @Description Список этапов подбора вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]stageapimodels.SelectionStageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy/{id}/stage/list [get]
func (c *vacancyApiController) stageList(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := stagehandler.Instance.List(spaceID, vacancyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка этапов подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание этапа подбора
// @Tags Этапы подбора
// @Description Создание этапа подбора, этап добавляется в конец воронки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 stageapimodels.SelectionStageAdd	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy/{id}/stage [post]
func (c *vacancyApiController) stageCreate(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload stageapimodels.SelectionStageAdd
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	id, err := stagehandler.Instance.Create(spaceID, vacancyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания этапа подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение этапа подбора
// @Tags Этапы подбора
// @Description Изменение названия и цвета этапа подбора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   stage_id          	path    string  				    	true         "stage ID"
// @Param	body body	 stageapimodels.SelectionStageAdd	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy/{id}/stage/{stage_id} [put]
func (c *vacancyApiController) stageUpdate(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stageID, err := c.GetParamID(ctx, "stage_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload stageapimodels.SelectionStageAdd
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = stagehandler.Instance.Update(spaceID, vacancyID, stageID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения этапа подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление этапа подбора
// @Tags Этапы подбора
// @Description Удаление этапа подбора. Этап с прикрепленными кандидатами удалить нельзя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   stage_id          	path    string  				    	true         "stage ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/vacancy/{id}/stage/{stage_id} [delete]
func (c *vacancyApiController) stageDelete(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stageID, err := c.GetParamID(ctx, "stage_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = stagehandler.Instance.Delete(spaceID, vacancyID, stageID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления этапа подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
