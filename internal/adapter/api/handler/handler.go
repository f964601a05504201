package handler

import (
	"truvamate/internal/adapter/api/middleware"
	"truvamate/internal/infrastructure/notifier"
	"truvamate/internal/usecase"
)

var (
	authHandler         *AuthHandler
	productHandler      *ProductHandler
	cartHandler         *CartHandler
	wishlistHandler     *WishlistHandler
	orderHandler        *OrderHandler
	checkoutHandler     *CheckoutHandler
	lotteryHandler      *LotteryHandler
	profileHandler      *ProfileHandler
	contentHandler      *ContentHandler
	notificationHandler *NotificationHandler
	photoHandler        *PhotoHandler
	geoHandler          *GeoHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	orderUseCase *usecase.OrderUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	lotteryUseCase *usecase.LotteryUseCase,
	profileUseCase *usecase.ProfileUseCase,
	contentUseCase *usecase.ContentUseCase,
	photoUseCase *usecase.TicketPhotoUseCase,
	geoUseCase *usecase.GeoUseCase,
	hub *notifier.Hub,
	authMiddleware *middleware.AuthMiddleware,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	lotteryHandler = NewLotteryHandler(lotteryUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	contentHandler = NewContentHandler(contentUseCase)
	notificationHandler = NewNotificationHandler(hub, authMiddleware)
	photoHandler = NewPhotoHandler(photoUseCase)
	geoHandler = NewGeoHandler(geoUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetLotteryHandler() *LotteryHandler {
	return lotteryHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetContentHandler() *ContentHandler {
	return contentHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetPhotoHandler() *PhotoHandler {
	return photoHandler
}

func GetGeoHandler() *GeoHandler {
	return geoHandler
}
