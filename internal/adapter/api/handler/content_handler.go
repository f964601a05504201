package handler

import (
	"truvamate/internal/domain/entity"
	"truvamate/internal/usecase"
	"truvamate/pkg/response"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase}
}

func (h *ContentHandler) Get(c echo.Context) error {
	return response.Success(c, h.contentUseCase.Get())
}

func (h *ContentHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req entity.SiteContent
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	updated := h.contentUseCase.Update(c.Request().Context(), uid, req)
	return response.Success(c, updated)
}
