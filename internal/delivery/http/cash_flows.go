package http

import (
	"net/http"
	"options-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupCashFlows(base *echo.Group) {
	v1 := base.Group("/v1/cash-flows")
	{
		v1.GET("", h.listCashFlows)
		v1.POST("", h.createCashFlow)
	}
	base.GET("/v1/bankroll-summary", h.bankrollSummary)
}

func (h *HttpAPIHandler) listCashFlows(c echo.Context) error {
	accountID, ok := queryUint(c, "account_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("account_id is required"))
	}

	param := dto.GetCashFlowsParam{AccountID: accountID}
	if startDate := c.QueryParam("start_date"); startDate != "" {
		param.StartDate = &startDate
	}
	if endDate := c.QueryParam("end_date"); endDate != "" {
		param.EndDate = &endDate
	}

	flows, err := h.service.CashFlowService.List(c.Request().Context(), param)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch cash flows", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("cash flows", flows))
}

func (h *HttpAPIHandler) createCashFlow(c echo.Context) error {
	req := new(dto.CreateCashFlowRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.service.CashFlowService.Create(c.Request().Context(), *req); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "cash flow created", nil))
}

func (h *HttpAPIHandler) bankrollSummary(c echo.Context) error {
	accountID, ok := queryUint(c, "account_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("account_id is required"))
	}

	param := dto.GetBankrollSummaryParam{AccountID: accountID}
	if startDate := c.QueryParam("start_date"); startDate != "" {
		param.StartDate = &startDate
	}
	if endDate := c.QueryParam("end_date"); endDate != "" {
		param.EndDate = &endDate
	}
	if statusFilter := c.QueryParam("status_filter"); statusFilter != "" {
		param.StatusFilter = &statusFilter
	}

	summary, err := h.service.CashFlowService.BankrollSummary(c.Request().Context(), param)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("bankroll summary", summary))
}
