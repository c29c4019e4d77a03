package authutils

import (
	"recruit-flow-backend/config"
	"recruit-flow-backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GetToken(userID, name, spaceID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":  name,
		"sub":   userID,
		"space": spaceID,
		"role":  string(role),
		"exp":   time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
