package apiv1

import (
	"io"

	"recruit-flow-backend/controllers"
	candidatehandler "recruit-flow-backend/lib/candidate"
	candidatehistoryhandler "recruit-flow-backend/lib/candidate-history"
	filestorage "recruit-flow-backend/lib/file-storage"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"
	candidateapimodels "recruit-flow-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Put("status", controller.updateStatus)
			idRoute.Put("change_stage", controller.changeStage)
			idRoute.Post("note", controller.addNote)
			idRoute.Post("history/list", controller.historyList)
			idRoute.Post("resume", controller.uploadResume)
			idRoute.Get("doc/list", controller.docList)
			idRoute.Get("doc/:file_id", controller.downloadDoc)
		})
	})
}

// @Summary Создание
// @Tags Кандидат
// @Description Создание кандидата на вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	id, err := candidatehandler.Instance.Create(spaceID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Кандидат
// @Description Обновление данных кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = candidatehandler.Instance.Update(spaceID, userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения данных кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Кандидат
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := candidatehandler.Instance.GetByID(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список кандидатов
// @Tags Кандидат
// @Description Список кандидатов с фильтрацией и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var filter candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := candidatehandler.Instance.List(spaceID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Изменение статуса
// @Tags Кандидат
// @Description Изменение статуса кандидата в воронке. При отказе обязательна причина
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateStatusData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = candidatehandler.Instance.UpdateStatus(spaceID, userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Перевод на этап
// @Tags Кандидат
// @Description Перевод кандидата на другой этап подбора. Перевод возможен только когда все активности текущего этапа завершены. Пустой stage_id снимает кандидата с этапа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   stage_id        	query   string  				    	false        "stage ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/change_stage [put]
func (c *candidateApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stageID := ctx.Query("stage_id")
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = candidatehandler.Instance.ChangeStage(spaceID, userID, id, stageID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перевода кандидата на этап")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление заметки
// @Tags Кандидат
// @Description Добавление заметки в историю кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateNote	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/note [post]
func (c *candidateApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateNote
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.Note == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан текст заметки"))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = candidatehistoryhandler.Instance.SaveNote(spaceID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения заметки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary История изменений
// @Tags Кандидат
// @Description История изменений по кандидату с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateHistoryFilter	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/history/list [post]
func (c *candidateApiController) historyList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var filter candidateapimodels.CandidateHistoryFilter
	if err = c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, rowCount, err := candidatehistoryhandler.Instance.List(spaceID, id, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Загрузка резюме
// @Tags Кандидат
// @Description Загрузка файла резюме кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   resume				formData	file 	true 	"Резюме"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла резюме")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при загрузке файла резюме")
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = filestorage.Instance.UploadResume(ctx.UserContext(), spaceID, id, fileBody, file.Filename)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список документов
// @Tags Кандидат
// @Description Список загруженных документов кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]filesapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/doc/list [get]
func (c *candidateApiController) docList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.GetDocList(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачать документ
// @Tags Кандидат
// @Description Скачать документ кандидата по идентификатору файла
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file_id          	path    string  				    	true         "file ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/doc/{file_id} [get]
func (c *candidateApiController) downloadDoc(ctx *fiber.Ctx) error {
	fileID, err := c.GetParamID(ctx, "file_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	body, fileName, err := filestorage.Instance.GetFile(ctx.UserContext(), spaceID, fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения документа")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}
