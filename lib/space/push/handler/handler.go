package pushhandler

import (
	"fmt"
	"time"

	"recruit-flow-backend/db"
	pushdatastore "recruit-flow-backend/lib/space/push/data-store"
	spaceusersstore "recruit-flow-backend/lib/space/users/store"
	connectionhub "recruit-flow-backend/lib/ws/hub/connection-hub"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
	wsmodels "recruit-flow-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SendToSpace(spaceID string, code models.PushCode, args ...interface{})
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
		pushDataStore:  pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUserStore spaceusersstore.Provider
	pushDataStore  pushdatastore.Provider
}

// SendToSpace отправляет событие всем активным пользователям пространства.
// Оффлайн пользователям событие сохраняется и отдается при следующем подключении
func (i impl) SendToSpace(spaceID string, code models.PushCode, args ...interface{}) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("event_code", string(code))
	tpl, ok := models.PushCodeMap[code]
	if !ok {
		logger.Error("неизвестный код события")
		return
	}
	msgText := fmt.Sprintf(tpl.Msg, args...)

	users, err := i.spaceUserStore.ListBySpace(spaceID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователей пространства")
		return
	}
	for _, user := range users {
		if connectionhub.Instance.IsConnected(user.ID) {
			connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
				ToUserID: user.ID,
				Time:     time.Now().Format("02.01.2006 15:04:05"),
				Code:     string(code),
				Msg:      msgText,
			})
			continue
		}
		rec := dbmodels.PushData{
			UserID: user.ID,
			Code:   code,
			Msg:    msgText,
			Title:  tpl.Title,
		}
		err = i.pushDataStore.Create(rec)
		if err != nil {
			logger.
				WithField("user_id", user.ID).
				WithError(err).
				Error("ошибка сохранения события для оффлайн пользователя")
		}
	}
}
