package router

import (
	"truvamate/internal/adapter/api/handler"
	"truvamate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("/cards", profileHandler.ListCards)
	profile.POST("/cards", profileHandler.AddCard)
	profile.DELETE("/cards/:id", profileHandler.RemoveCard)

	profile.GET("/payout-accounts", profileHandler.ListPayoutAccounts)
	profile.POST("/payout-accounts", profileHandler.AddPayoutAccount)
	profile.DELETE("/payout-accounts/:id", profileHandler.RemovePayoutAccount)
}
