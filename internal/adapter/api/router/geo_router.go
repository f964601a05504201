package router

import (
	"truvamate/internal/adapter/api/handler"
	"truvamate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupGeoRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	geoHandler := handler.GetGeoHandler()

	geo := e.Group("/v1/geo")
	geo.Use(authMiddleware.Authenticate)

	geo.GET("/lookup", geoHandler.Lookup)
	geo.GET("/history", geoHandler.History)
}
