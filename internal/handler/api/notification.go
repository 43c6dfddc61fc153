package api

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/pkg/config"
	"homeclean-booking/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const clientSendBuffer = 8

type NotificationHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(hub *realtime.Hub, cors config.CORSConfig) *NotificationHandler {
	allowed := cors.AllowOrigins
	return &NotificationHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// non-browser clients send no Origin
				return origin == "" || slices.Contains(allowed, origin)
			},
		},
	}
}

// @Summary Subscribe to notifications
// @Description Upgrades to a websocket that pushes reservation notifications for the current user
// @Tags notifications
// @Security BearerAuth
// @Param access_token query string false "JWT for clients that cannot set headers"
// @Param session query string false "Client session key; a reconnect with the same key replaces the old connection"
// @Success 101
// @Failure 401 {object} httperr.Response
// @Router /ws/notifications [get]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortWithUsecaseError(c, errMissingUser)
		return
	}

	sessionKey := strings.TrimSpace(c.Query("session"))
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		slog.Warn("ws upgrade failed",
			"request_id", middleware.GetRequestID(c),
			"user_id", userID,
			"error", err)
		return
	}

	client := realtime.NewClient(h.hub, conn, userID, sessionKey, clientSendBuffer)
	if err := h.hub.Attach(client); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		_ = conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
