package router

import (
	"truvamate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e)
	SetupCartRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware)
	SetupLotteryRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupContentRouter(e, authMiddleware, adminMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupPhotoRouter(e, authMiddleware)
	SetupGeoRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
