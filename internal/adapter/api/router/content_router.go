package router

import (
	"truvamate/internal/adapter/api/handler"
	"truvamate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupContentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contentHandler := handler.GetContentHandler()

	e.GET("/v1/content", contentHandler.Get)

	admin := e.Group("/v1/content")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.PUT("", contentHandler.Update)
}
