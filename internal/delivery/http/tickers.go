package http

import (
	"errors"
	"net/http"
	"options-tracker/internal/dto"
	"options-tracker/internal/repository"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTickers(base *echo.Group) {
	v1 := base.Group("/v1/tickers")
	{
		v1.GET("/search", h.searchSymbols)
		v1.GET("/:symbol/company", h.companyInfo)
	}
}

func (h *HttpAPIHandler) searchSymbols(c echo.Context) error {
	keywords := c.QueryParam("q")
	if keywords == "" {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("q is required"))
	}

	matches, err := h.service.TickerService.SearchSymbols(c.Request().Context(), keywords)
	if errors.Is(err, repository.ErrSymbolSearchRateLimited) {
		return c.JSON(http.StatusTooManyRequests, dto.NewBaseResponse(http.StatusTooManyRequests, err.Error(), nil))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("symbol matches", matches))
}

func (h *HttpAPIHandler) companyInfo(c echo.Context) error {
	symbol := c.Param("symbol")

	info, err := h.service.TickerService.CompanyInfo(c.Request().Context(), symbol)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("company info", info))
}
