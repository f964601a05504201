package router

import (
	"truvamate/internal/adapter/api/handler"
	"truvamate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)

	checkout.POST("", checkoutHandler.Start)
	checkout.GET("/:id", checkoutHandler.Get)
	checkout.PUT("/:id/address", checkoutHandler.SetAddress)
	checkout.PUT("/:id/payment", checkoutHandler.SetPayment)
	checkout.POST("/:id/confirm", checkoutHandler.Confirm)
}
