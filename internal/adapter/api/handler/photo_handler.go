package handler

import (
	"truvamate/internal/usecase"
	"truvamate/pkg/response"

	"github.com/labstack/echo/v4"
)

type PhotoHandler struct {
	photoUseCase *usecase.TicketPhotoUseCase
}

func NewPhotoHandler(photoUseCase *usecase.TicketPhotoUseCase) *PhotoHandler {
	return &PhotoHandler{photoUseCase: photoUseCase}
}

type connectPhotoRequest struct {
	AlbumID     string `json:"album_id"`
	AccessToken string `json:"access_token" validate:"required"`
}

func (h *PhotoHandler) Connect(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req connectPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.photoUseCase.Connect(c.Request().Context(), uid, req.AlbumID, req.AccessToken); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Photo library connected"})
}

func (h *PhotoHandler) Connection(c echo.Context) error {
	uid := c.Get("uid").(string)

	status, err := h.photoUseCase.Connection(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, status)
}

func (h *PhotoHandler) Albums(c echo.Context) error {
	uid := c.Get("uid").(string)

	albums, err := h.photoUseCase.Albums(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, albums)
}

func (h *PhotoHandler) Lookup(c echo.Context) error {
	uid := c.Get("uid").(string)

	result, err := h.photoUseCase.Lookup(c.Request().Context(), uid, c.Param("orderNo"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
