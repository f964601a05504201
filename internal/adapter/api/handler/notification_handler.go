package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"truvamate/internal/adapter/api/middleware"
	"truvamate/internal/infrastructure/notifier"
	"truvamate/pkg/logger"
	"truvamate/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type NotificationHandler struct {
	hub  *notifier.Hub
	auth *middleware.AuthMiddleware
}

func NewNotificationHandler(hub *notifier.Hub, auth *middleware.AuthMiddleware) *NotificationHandler {
	return &NotificationHandler{hub: hub, auth: auth}
}

func (h *NotificationHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	return response.Success(c, h.hub.List(uid))
}

func (h *NotificationHandler) Dismiss(c echo.Context) error {
	uid := c.Get("uid").(string)

	// Dismissing an id that already auto-expired is a no-op.
	h.hub.Dismiss(uid, c.Param("id"))
	return response.Success(c, map[string]string{"message": "Notification dismissed"})
}

// Stream upgrades to a websocket and pushes toasts as they are created. The
// session token rides in the query string because upgrade requests cannot
// carry an Authorization header from a browser.
func (h *NotificationHandler) Stream(c echo.Context) error {
	token := c.QueryParam("token")
	uid, _, err := h.auth.VerifyToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.hub.Register(uid, conn)

	go func() {
		defer func() {
			h.hub.Unregister(uid, conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logger.Debug("Notification stream closed: %v", err)
				}
				return
			}
		}
	}()

	return nil
}
