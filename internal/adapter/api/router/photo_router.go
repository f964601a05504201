package router

import (
	"truvamate/internal/adapter/api/handler"
	"truvamate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPhotoRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	photoHandler := handler.GetPhotoHandler()

	photos := e.Group("/v1/photos")
	photos.Use(authMiddleware.Authenticate)

	photos.PUT("/connection", photoHandler.Connect)
	photos.GET("/connection", photoHandler.Connection)
	photos.GET("/albums", photoHandler.Albums)
	photos.GET("/orders/:orderNo", photoHandler.Lookup)
}
