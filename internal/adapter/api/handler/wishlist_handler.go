package handler

import (
	"truvamate/internal/usecase"
	"truvamate/pkg/errors"
	"truvamate/pkg/response"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{wishlistUseCase: wishlistUseCase}
}

type toggleWishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req toggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	wishlist, err := h.wishlistUseCase.Toggle(c.Request().Context(), uid, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, wishlist)
}

func (h *WishlistHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	wishlist, err := h.wishlistUseCase.Get(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, wishlist)
}

func (h *WishlistHandler) Status(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	inWishlist, err := h.wishlistUseCase.IsInWishlist(c.Request().Context(), uid, productID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"product_id":     productID,
		"is_in_wishlist": inWishlist,
	})
}
