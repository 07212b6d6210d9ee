package ws

import (
	"net/http"

	"nexcraft-service/internal/middleware"
	"nexcraft-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is enforced by the CORS middleware; dashboards
	// authenticate via the bearer gate in front of this handler.
	CheckOrigin: func(*http.Request) bool { return true },
}

type WSHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *ws.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// Feed upgrades an authenticated admin connection to a WebSocket that
// streams new contact submissions. Browsers cannot set headers on
// upgrade requests, so the auth gate also accepts ?token=.
func (h *WSHandler) Feed(c *gin.Context) {
	a := middleware.MustCurrentAdmin(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	ws.NewClient(h.hub, conn, a.ID)
}
