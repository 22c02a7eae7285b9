package server

import (
	"net/http"
	"new-haven-server/internal/engine"
	"new-haven-server/internal/network"
	"new-haven-server/pkg/api"
	"new-haven-server/pkg/logger"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и менеджером матча.
// Читает сообщения клиента в очередь команд, пишет кадры из хаба.
type Client struct {
	ID   string
	Game Game
	Hub  *network.Broadcaster
	Conn *websocket.Conn
	Send <-chan network.Frame
	log  *logrus.Entry
}

func NewClient(game Game, hub *network.Broadcaster, conn *websocket.Conn) *Client {
	id := "session_" + uuid.NewString()
	return &Client{
		ID:   id,
		Game: game,
		Hub:  hub,
		Conn: conn,
		Send: hub.Register(id),
		log:  logger.Log.WithField("client_id", id),
	}
}

// readPump читает сообщения клиента
func (c *Client) readPump() {
	defer func() {
		// Закрытие канала в хабе завершит writePump
		c.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	c.log.Info("Client connected")

	for {
		var msg api.ClientMessage
		if err := c.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS read error")
			}
			break
		}
		c.handle(msg)
	}
}

func (c *Client) handle(msg api.ClientMessage) {
	cmd, err := engine.CommandFromMessage(msg)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"type":   msg.Type,
			"reason": err.Error(),
		}).Debug("Message rejected")
		c.Hub.SendTo(c.ID, network.ErrorFrame(err.Error()))
		return
	}
	if !c.Game.Submit(cmd) {
		c.Hub.SendTo(c.ID, network.ErrorFrame("server busy"))
	}
}

// writePump отправляет кадры клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			kind := websocket.TextMessage
			if frame.Binary {
				kind = websocket.BinaryMessage
			}
			if err := c.Conn.WriteMessage(kind, frame.Data); err != nil {
				c.log.WithError(err).Debug("write frame failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
