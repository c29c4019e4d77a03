package controllers

import (
	"recruit-flow-backend/lib/utils/apperror"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParamID(ctx, "id")
}

func (c *BaseAPIController) GetParamID(ctx *fiber.Ctx, paramName string) (string, error) {
	id := ctx.Params(paramName)
	if id == "" {
		return "", errors.Errorf("не указан идентификатор записи (%v)", paramName)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("space_id", middleware.GetUserSpace(ctx)).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError переводит доменную ошибку в http статус:
// ошибка данных - 400, запись не найдена - 404, запрет перевода - 409,
// все остальное - 500 с заданным сообщением
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	if apperror.IsValidation(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if apperror.IsNotFound(err) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(apperror.ErrNotFound.Error()))
	}
	if apperror.IsTransitionDenied(err) {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
