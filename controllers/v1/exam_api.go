package apiv1

import (
	"io"

	"recruit-flow-backend/controllers"
	candidatehandler "recruit-flow-backend/lib/candidate"
	examhandler "recruit-flow-backend/lib/exam"
	aicheckhandler "recruit-flow-backend/lib/exam/ai-check"
	pdfexport "recruit-flow-backend/lib/export/pdf"
	filestorage "recruit-flow-backend/lib/file-storage"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"
	examapimodels "recruit-flow-backend/models/api/exam"

	"github.com/gofiber/fiber/v2"
)

type examApiController struct {
	controllers.BaseAPIController
}

func InitExamApiRouters(app *fiber.App) {
	controller := examApiController{}
	app.Route("exam", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route("attempt/:id", func(attemptRoute fiber.Router) {
			attemptRoute.Get("", controller.getAttempt)
			attemptRoute.Put("submit", controller.submitAttempt)
			attemptRoute.Post("grading", controller.saveGrading)
			attemptRoute.Post("ai-suggest", controller.aiSuggest)
			attemptRoute.Get("report", controller.gradingReport)
			attemptRoute.Post("answer-file/:question_id", controller.uploadAnswerFile)
			attemptRoute.Get("answer-file/:question_id", controller.downloadAnswerFile)
		})
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Post("attempt", controller.startAttempt)
		})
	})
}

// @Summary Создание
// @Tags Тесты
// @Description Создание теста с вопросами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 examapimodels.ExamData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam [post]
func (c *examApiController) create(ctx *fiber.Ctx) error {
	var payload examapimodels.ExamData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	id, err := examhandler.Instance.Create(spaceID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания теста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Тесты
// @Description Обновление теста, вопросы пересоздаются целиком
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 examapimodels.ExamData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/{id} [put]
func (c *examApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload examapimodels.ExamData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = examhandler.Instance.Update(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения теста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Тесты
// @Description Получение теста с вопросами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=examapimodels.ExamView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/{id} [get]
func (c *examApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := examhandler.Instance.GetByID(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения теста")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список тестов
// @Tags Тесты
// @Description Список тестов пространства
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]examapimodels.ExamView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/list [get]
func (c *examApiController) list(ctx *fiber.Ctx) error {
	spaceID := middleware.GetUserSpace(ctx)
	list, err := examhandler.Instance.List(spaceID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка тестов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Начало попытки
// @Tags Тесты
// @Description Создание попытки прохождения теста кандидатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 examapimodels.AttemptStartData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=examapimodels.AttemptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/{id}/attempt [post]
func (c *examApiController) startAttempt(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload examapimodels.AttemptStartData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := examhandler.Instance.StartAttempt(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания попытки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отправка ответов
// @Tags Тесты
// @Description Отправка ответов кандидата по попытке. Повторная отправка запрещена
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 examapimodels.AttemptSubmitData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/attempt/{id}/submit [put]
func (c *examApiController) submitAttempt(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload examapimodels.AttemptSubmitData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = examhandler.Instance.SubmitAttempt(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки ответов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение попытки
// @Tags Тесты
// @Description Получение попытки с вопросами и ответами кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=examapimodels.AttemptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/attempt/{id} [get]
func (c *examApiController) getAttempt(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := examhandler.Instance.GetAttempt(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения попытки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Сохранение оценки
// @Tags Тесты
// @Description Сохранение результата проверки теста. Итог с клиента сверяется с расчетом на сервере
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 examapimodels.GradingData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/attempt/{id}/grading [post]
func (c *examApiController) saveGrading(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload examapimodels.GradingData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = examhandler.Instance.SaveGrading(spaceID, userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Подсказка ИИ
// @Tags Тесты
// @Description Предложение оценки текстового ответа от YandexGPT. Оценка не сохраняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 examapimodels.AISuggestData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=examapimodels.AISuggestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/attempt/{id}/ai-suggest [post]
func (c *examApiController) aiSuggest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload examapimodels.AISuggestData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := aicheckhandler.Instance.Suggest(spaceID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения подсказки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отчет по проверке
// @Tags Тесты
// @Description Скачать pdf отчет по проверенной попытке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/attempt/{id}/report [get]
func (c *examApiController) gradingReport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	attempt, err := examhandler.Instance.GetAttempt(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения попытки")
	}
	if !attempt.IsGraded {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("попытка еще не проверена"))
	}
	candidate, err := candidatehandler.Instance.GetByID(spaceID, attempt.CandidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных кандидата")
	}
	exam, err := examhandler.Instance.GetByID(spaceID, attempt.ExamID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения теста")
	}
	body, err := pdfexport.GenerateGradingReport(candidate.FIO, exam.Title, attempt)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="grading_report.pdf"`)
	return ctx.Send(body)
}

// @Summary Загрузка файла ответа
// @Tags Тесты
// @Description Загрузка файла ответа кандидата на вопрос типа file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   question_id         path    string  				    	true         "question ID"
// @Param   file				formData	file 	true 	"Файл ответа"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/attempt/{id}/answer-file/{question_id} [post]
func (c *examApiController) uploadAnswerFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questionID, err := c.GetParamID(ctx, "question_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла ответа")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при загрузке файла ответа")
	}

	spaceID := middleware.GetUserSpace(ctx)
	attempt, err := examhandler.Instance.GetAttempt(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения попытки")
	}
	err = filestorage.Instance.UploadAnswerFile(ctx.UserContext(), spaceID, attempt.CandidateID, questionID, fileBody, file.Filename)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения файла ответа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Скачать файл ответа
// @Tags Тесты
// @Description Скачать файл ответа кандидата на вопрос типа file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   question_id         path    string  				    	true         "question ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/exam/attempt/{id}/answer-file/{question_id} [get]
func (c *examApiController) downloadAnswerFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questionID, err := c.GetParamID(ctx, "question_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	attempt, err := examhandler.Instance.GetAttempt(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения попытки")
	}
	body, fileName, err := filestorage.Instance.GetAnswerFile(ctx.UserContext(), spaceID, attempt.CandidateID, questionID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла ответа")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}
