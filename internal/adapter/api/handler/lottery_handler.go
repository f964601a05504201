package handler

import (
	"truvamate/internal/usecase"
	"truvamate/pkg/response"

	"github.com/labstack/echo/v4"
)

type LotteryHandler struct {
	lotteryUseCase *usecase.LotteryUseCase
}

func NewLotteryHandler(lotteryUseCase *usecase.LotteryUseCase) *LotteryHandler {
	return &LotteryHandler{lotteryUseCase: lotteryUseCase}
}

type addTicketRequest struct {
	Game        string `json:"game" validate:"required"`
	MainNumbers []int  `json:"main_numbers" validate:"required"`
	Special     int    `json:"special" validate:"required"`
}

type quickPickRequest struct {
	Game  string `json:"game" validate:"required"`
	Count int    `json:"count"`
}

func (h *LotteryHandler) Games(c echo.Context) error {
	return response.Success(c, h.lotteryUseCase.Games())
}

func (h *LotteryHandler) AcceptConsent(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.lotteryUseCase.AcceptConsent(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"consent": true})
}

func (h *LotteryHandler) ConsentStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	ok, err := h.lotteryUseCase.HasConsent(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"consent": ok})
}

func (h *LotteryHandler) AddTicket(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.lotteryUseCase.AddTicket(c.Request().Context(), uid, req.Game, req.MainNumbers, req.Special)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, ticket)
}

func (h *LotteryHandler) QuickPick(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req quickPickRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	tickets, err := h.lotteryUseCase.QuickPick(c.Request().Context(), uid, req.Game, req.Count)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, tickets)
}

func (h *LotteryHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	tickets, err := h.lotteryUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, tickets)
}

func (h *LotteryHandler) Remove(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.lotteryUseCase.Remove(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Ticket removed"})
}

func (h *LotteryHandler) Clear(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.lotteryUseCase.Clear(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Tickets cleared"})
}
