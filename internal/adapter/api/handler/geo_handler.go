package handler

import (
	"truvamate/internal/usecase"
	"truvamate/pkg/response"

	"github.com/labstack/echo/v4"
)

type GeoHandler struct {
	geoUseCase *usecase.GeoUseCase
}

func NewGeoHandler(geoUseCase *usecase.GeoUseCase) *GeoHandler {
	return &GeoHandler{geoUseCase: geoUseCase}
}

// Lookup resolves the caller's IP. A nil location is a normal outcome; the
// storefront just skips the badge.
func (h *GeoHandler) Lookup(c echo.Context) error {
	uid := c.Get("uid").(string)

	ip := c.QueryParam("ip")
	if ip == "" {
		ip = c.RealIP()
	}

	location, err := h.geoUseCase.Lookup(c.Request().Context(), uid, ip)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, location)
}

func (h *GeoHandler) History(c echo.Context) error {
	uid := c.Get("uid").(string)

	state, err := h.geoUseCase.History(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, state)
}
