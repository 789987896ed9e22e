package http

import (
	"net/http"
	"options-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSummary(base *echo.Group) {
	v1 := base.Group("/v1")
	{
		v1.GET("/summary", h.getSummary)
		v1.GET("/chart-data", h.getChartData)
		v1.GET("/top-symbols", h.getTopSymbols)
	}
}

func (h *HttpAPIHandler) summaryParam(c echo.Context) dto.GetSummaryParam {
	param := dto.GetSummaryParam{}
	if startDate := c.QueryParam("start_date"); startDate != "" {
		param.StartDate = &startDate
	}
	if endDate := c.QueryParam("end_date"); endDate != "" {
		param.EndDate = &endDate
	}
	return param
}

func (h *HttpAPIHandler) getSummary(c echo.Context) error {
	summary, err := h.service.SummaryService.Summary(c.Request().Context(), h.summaryParam(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch summary", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("summary", summary))
}

func (h *HttpAPIHandler) getChartData(c echo.Context) error {
	points, err := h.service.SummaryService.ChartData(c.Request().Context(), h.summaryParam(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch chart data", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("chart data", points))
}

func (h *HttpAPIHandler) getTopSymbols(c echo.Context) error {
	symbols, err := h.service.SummaryService.TopSymbols(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch top symbols", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("top symbols", symbols))
}
