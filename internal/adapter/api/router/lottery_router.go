package router

import (
	"truvamate/internal/adapter/api/handler"
	"truvamate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupLotteryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	lotteryHandler := handler.GetLotteryHandler()

	lottery := e.Group("/v1/lottery")
	lottery.Use(authMiddleware.Authenticate)

	lottery.GET("/games", lotteryHandler.Games)
	lottery.POST("/consent", lotteryHandler.AcceptConsent)
	lottery.GET("/consent", lotteryHandler.ConsentStatus)
	lottery.POST("/tickets", lotteryHandler.AddTicket)
	lottery.POST("/tickets/quickpick", lotteryHandler.QuickPick)
	lottery.GET("/tickets", lotteryHandler.List)
	lottery.DELETE("/tickets/:id", lotteryHandler.Remove)
	lottery.DELETE("/tickets", lotteryHandler.Clear)
}
