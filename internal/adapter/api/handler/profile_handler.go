package handler

import (
	"truvamate/internal/usecase"
	"truvamate/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

func (h *ProfileHandler) ListCards(c echo.Context) error {
	uid := c.Get("uid").(string)

	cards, err := h.profileUseCase.Cards(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cards)
}

func (h *ProfileHandler) AddCard(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CardInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	card, err := h.profileUseCase.AddCard(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, card)
}

func (h *ProfileHandler) RemoveCard(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.profileUseCase.RemoveCard(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Card removed"})
}

func (h *ProfileHandler) ListPayoutAccounts(c echo.Context) error {
	uid := c.Get("uid").(string)

	accounts, err := h.profileUseCase.PayoutAccounts(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, accounts)
}

func (h *ProfileHandler) AddPayoutAccount(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.PayoutAccountInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account, err := h.profileUseCase.AddPayoutAccount(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, account)
}

func (h *ProfileHandler) RemovePayoutAccount(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.profileUseCase.RemovePayoutAccount(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Payout account removed"})
}
