package apiv1

import (
	"recruit-flow-backend/controllers"
	activityhandler "recruit-flow-backend/lib/activity"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"
	activityapimodels "recruit-flow-backend/models/api/activity"

	"github.com/gofiber/fiber/v2"
)

type activityApiController struct {
	controllers.BaseAPIController
}

func InitActivityApiRouters(app *fiber.App) {
	controller := activityApiController{}
	app.Route("activity", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("stage/:stage_id", controller.listByStage)
		router.Get("candidate/:candidate_id", controller.listByCandidate)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", middleware.SpaceAdminRequired(), controller.delete)
			idRoute.Post("assign", controller.assign)
		})
	})
	app.Route("candidate-activity/:id", func(router fiber.Router) {
		router.Patch("status", controller.setStatus)
		router.Patch("result", controller.setResult)
		router.Patch("note", controller.setNote)
		router.Put("interview", controller.setInterview)
		router.Put("interview/confirm", controller.confirmInterview)
	})
}

// @Summary Создание
// @Tags Активности
// @Description Создание активности на этапе подбора. Для активности типа test обязателен идентификатор теста
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 activityapimodels.ActivityData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activity [post]
func (c *activityApiController) create(ctx *fiber.Ctx) error {
	var payload activityapimodels.ActivityData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	id, err := activityhandler.Instance.Create(spaceID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания активности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Активности
// @Description Обновление активности. Тип активности изменить нельзя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 activityapimodels.ActivityData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activity/{id} [put]
func (c *activityApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload activityapimodels.ActivityData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = activityhandler.Instance.Update(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения активности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Активности
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=activityapimodels.ActivityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activity/{id} [get]
func (c *activityApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := activityhandler.Instance.GetByID(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения активности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список по этапу
// @Tags Активности
// @Description Список активностей этапа подбора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   stage_id          	path    string  				    	true         "stage ID"
// @Success 200 {object} apimodels.Response{data=[]activityapimodels.ActivityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activity/stage/{stage_id} [get]
func (c *activityApiController) listByStage(ctx *fiber.Ctx) error {
	stageID, err := c.GetParamID(ctx, "stage_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := activityhandler.Instance.ListByStage(spaceID, stageID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка активностей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Список по кандидату
// @Tags Активности
// @Description Список активностей, назначенных кандидату, с текущим статусом и результатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   candidate_id        path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=[]activityapimodels.CandidateActivityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activity/candidate/{candidate_id} [get]
func (c *activityApiController) listByCandidate(ctx *fiber.Ctx) error {
	candidateID, err := c.GetParamID(ctx, "candidate_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := activityhandler.Instance.ListByCandidate(spaceID, candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения активностей кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удаление
// @Tags Активности
// @Description Удаление активности. Активность с назначенными кандидатами удалить нельзя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activity/{id} [delete]
func (c *activityApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = activityhandler.Instance.Delete(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления активности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначение кандидатам
// @Tags Активности
// @Description Назначение активности кандидатам. Уже назначенные кандидаты пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 activityapimodels.ActivityAssign	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/activity/{id}/assign [post]
func (c *activityApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload activityapimodels.ActivityAssign
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = activityhandler.Instance.Assign(spaceID, userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения активности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Изменение статуса
// @Tags Активности
// @Description Изменение статуса активности кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 activityapimodels.StatusData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate-activity/{id}/status [patch]
func (c *activityApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload activityapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = activityhandler.Instance.SetStatus(spaceID, userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса активности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Изменение результата
// @Tags Активности
// @Description Изменение результата активности кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 activityapimodels.ResultData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate-activity/{id}/result [patch]
func (c *activityApiController) setResult(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload activityapimodels.ResultData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = activityhandler.Instance.SetResult(spaceID, userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения результата активности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Изменение заметки
// @Tags Активности
// @Description Изменение заметки по активности кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 activityapimodels.NoteData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate-activity/{id}/note [patch]
func (c *activityApiController) setNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload activityapimodels.NoteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = activityhandler.Instance.SetNote(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения заметки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначение интервью
// @Tags Активности
// @Description Назначение даты и ссылки интервью. Кандидату отправляется приглашение на почту
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 activityapimodels.InterviewData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate-activity/{id}/interview [put]
func (c *activityApiController) setInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload activityapimodels.InterviewData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = activityhandler.Instance.SetInterview(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Подтверждение интервью
// @Tags Активности
// @Description Подтверждение интервью кандидатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate-activity/{id}/interview/confirm [put]
func (c *activityApiController) confirmInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = activityhandler.Instance.ConfirmInterview(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подтверждения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
