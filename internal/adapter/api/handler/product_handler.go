package handler

import (
	"strconv"

	"truvamate/internal/domain/repository"
	"truvamate/internal/usecase"
	"truvamate/pkg/response"
	"truvamate/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUseCase: productUseCase}
}

func (h *ProductHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := repository.ProductFilter{Category: c.QueryParam("category")}
	if v := c.QueryParam("us_import"); v != "" {
		b, _ := strconv.ParseBool(v)
		filter.USImport = &b
	}
	if v := c.QueryParam("flash_sale"); v != "" {
		b, _ := strconv.ParseBool(v)
		filter.FlashSale = &b
	}

	products, total, err := h.productUseCase.List(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}
