package middleware

import (
	authutils "recruit-flow-backend/lib/utils/auth-utils"
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserSpace(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if space, exist := claims["space"]; exist {
		return space.(string)
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetSpaceRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func SpaceAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetSpaceRole(ctx) != models.SpaceAdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
