package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type clientSession struct {
	conn *websocket.Conn

	// Исходящие сообщения, буферизованный канал
	sendCh chan any
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.TODO())
	sess := clientSession{
		stop:   cancelFn,
		conn:   conn,
		sendCh: make(chan any, 1),
	}
	go sess.startSend(ctx)
	return sess
}

func (s clientSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case msg, opened := <-s.sendCh:
			if !opened {
				return
			}
			err := s.send(s.conn, msg)
			if err != nil {
				log.WithError(err).Error("ошибка отправки сообщения")
			}
		}
	}
}

func (s clientSession) send(conn *websocket.Conn, msg interface{}) error {
	if conn.Conn == nil {
		return nil
	}
	err := conn.WriteJSON(msg)
	if err != nil {
		return err
	}
	log.Debugf("отправлено сообщение: %s", msg)
	return nil
}

func (s clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Error("ошибка закрытия соединения")
	}
}
