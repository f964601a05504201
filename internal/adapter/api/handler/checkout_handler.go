package handler

import (
	"truvamate/internal/domain/entity"
	"truvamate/internal/usecase"
	"truvamate/pkg/response"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUseCase: checkoutUseCase}
}

type startCheckoutRequest struct {
	Origin     string `json:"origin" validate:"required,oneof=marketplace lottery"`
	CouponCode string `json:"coupon_code"`
}

func (h *CheckoutHandler) Start(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req startCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	view, err := h.checkoutUseCase.Start(c.Request().Context(), uid, req.Origin, req.CouponCode)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, view)
}

func (h *CheckoutHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	view, err := h.checkoutUseCase.Get(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *CheckoutHandler) SetAddress(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req entity.ShippingAddress
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	view, err := h.checkoutUseCase.SetAddress(c.Request().Context(), uid, c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *CheckoutHandler) SetPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.PaymentInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	view, err := h.checkoutUseCase.SetPayment(c.Request().Context(), uid, c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *CheckoutHandler) Confirm(c echo.Context) error {
	uid := c.Get("uid").(string)

	view, err := h.checkoutUseCase.Confirm(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}
