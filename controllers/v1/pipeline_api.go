package apiv1

import (
	"recruit-flow-backend/controllers"
	xlsexport "recruit-flow-backend/lib/export/xls"
	pipelinehandler "recruit-flow-backend/lib/pipeline"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Get("board", controller.getBoard)
		router.Get("board/export", controller.exportBoard)
	})
}

// @Summary Воронка подбора
// @Tags Воронка
// @Description Воронка подбора по вакансии: этапы с кандидатами, активностями и признаком готовности к переводу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id        	query   string  				    	true         "vacancy ID"
// @Param   stage_id        	query   string  				    	false        "stage ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/pipeline/board [get]
func (c *pipelineApiController) getBoard(ctx *fiber.Ctx) error {
	vacancyID := ctx.Query("vacancy_id")
	if vacancyID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор вакансии"))
	}
	stageID := ctx.Query("stage_id")
	spaceID := middleware.GetUserSpace(ctx)
	view, err := pipelinehandler.Instance.GetBoard(spaceID, vacancyID, stageID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения воронки подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Выгрузка воронки
// @Tags Воронка
// @Description Выгрузка воронки подбора в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id        	query   string  				    	true         "vacancy ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/pipeline/board/export [get]
func (c *pipelineApiController) exportBoard(ctx *fiber.Ctx) error {
	vacancyID := ctx.Query("vacancy_id")
	if vacancyID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор вакансии"))
	}
	spaceID := middleware.GetUserSpace(ctx)
	board, err := pipelinehandler.Instance.GetBoard(spaceID, vacancyID, "")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения воронки подбора")
	}
	data, err := xlsexport.Instance.ExportBoard(board)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки воронки подбора")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="pipeline.xlsx"`)
	return ctx.SendStream(data)
}
