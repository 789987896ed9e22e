package http

import (
	"net/http"
	"options-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupCostBasis(base *echo.Group) {
	v1 := base.Group("/v1/cost-basis")
	{
		v1.GET("", h.getCostBasis)
		v1.POST("/recalculate", h.recalculateCostBasis)
	}
}

func (h *HttpAPIHandler) getCostBasis(c echo.Context) error {
	param := dto.GetCostBasisParam{}
	if ticker := c.QueryParam("ticker"); ticker != "" {
		param.Ticker = &ticker
	}
	if accountID, ok := queryUint(c, "account_id"); ok {
		param.AccountID = &accountID
	}

	report, err := h.service.CostBasisService.Report(c.Request().Context(), param)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch cost basis", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("cost basis", report))
}

func (h *HttpAPIHandler) recalculateCostBasis(c echo.Context) error {
	pairs, err := h.service.CostBasisService.RebuildAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("cost basis rebuilt", map[string]int{"pairs": pairs}))
}
