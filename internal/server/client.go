package server

import (
	"errors"
	"net/http"
	"time"

	"spacecake-server/internal/engine"
	"spacecake-server/pkg/api"
	"spacecake-server/pkg/logger"

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
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Service
type Client struct {
	Game      *engine.Service
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string
	Codec     api.Codec

	log *logrus.Entry
}

// NewClient регистрирует новую сессию в хабе
func NewClient(game *engine.Service, conn *websocket.Conn, codec api.Codec) *Client {
	id := uuid.NewString()
	return &Client{
		Game:      game,
		Conn:      conn,
		Send:      game.Hub.Register(id),
		SessionID: id,
		Codec:     codec,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"session":   id,
		}),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.SessionID)
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

	c.log.WithField("codec", c.Codec).Info("Client connected")

	// Отправляем INIT (триггер первой отрисовки)
	c.submit(api.ClientCommand{Action: "INIT"})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS read error")
			}
			break
		}
		c.submit(cmd)
	}
}

func (c *Client) submit(cmd api.ClientCommand) {
	err := c.Game.ProcessCommand(c.SessionID, cmd)
	if errors.Is(err, engine.ErrUnknownAction) {
		c.log.WithField("action", cmd.Action).Warn("Unknown action")
		c.Game.Hub.SendTo(c.SessionID, api.ServerResponse{Type: "ERROR", Error: err.Error()})
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	frameType := websocket.TextMessage
	if c.Codec.Binary() {
		frameType = websocket.BinaryMessage
	}

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			data, err := c.Codec.Marshal(message)
			if err != nil {
				c.log.WithError(err).Error("encode frame failed")
				continue
			}
			if err := c.Conn.WriteMessage(frameType, data); err != nil {
				c.log.WithError(err).Debug("write message failed")
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
