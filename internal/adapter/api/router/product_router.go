package router

import (
	"truvamate/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
}
