package spaceauthhandler

import (
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	spaceusersstore "recruit-flow-backend/lib/space/users/store"
	authutils "recruit-flow-backend/lib/utils/auth-utils"
	authapimodels "recruit-flow-backend/models/api/auth"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	RefreshToken(ctx *fiber.Ctx, refreshToken string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store spaceusersstore.Provider
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, errors.New("пользователь с такой почтой не найден")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errors.New("пользователь не прошел проверку пароля")
	}
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.SpaceID, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("ошибка генерации refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления времени входа")
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) RefreshToken(ctx *fiber.Ctx, refreshToken string) (authapimodels.JWTResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return authapimodels.JWTResponse{}, errors.New("невалидный refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.JWTResponse{}, errors.New("невалидный refresh token")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.store.GetByID(userID)
	if err != nil {
		log.WithError(err).Error("ошибка поиска пользователя")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("пользователь не найден")
	}
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.SpaceID, user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	newRefreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
