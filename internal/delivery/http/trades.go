package http

import (
	"errors"
	"net/http"
	"options-tracker/internal/dto"
	"options-tracker/internal/service"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTrades(base *echo.Group) {
	v1 := base.Group("/v1/trades")
	{
		v1.GET("", h.listTrades)
		v1.POST("", h.createTrade)
		v1.GET("/types", h.listTradeTypes)
		v1.GET("/:id", h.getTrade)
		v1.PUT("/:id", h.updateTrade)
		v1.DELETE("/:id", h.deleteTrade)
		v1.PUT("/:id/status", h.updateTradeStatus)
		v1.PUT("/:id/field", h.updateTradeField)
		v1.POST("/:id/roll", h.rollTrade)
	}
}

func (h *HttpAPIHandler) listTrades(c echo.Context) error {
	param := dto.GetTradesParam{}

	if accountID, ok := queryUint(c, "account_id"); ok {
		param.AccountID = &accountID
	}
	if statuses := c.QueryParam("status"); statuses != "" {
		param.Statuses = strings.Split(statuses, ",")
	}
	if startDate := c.QueryParam("start_date"); startDate != "" {
		param.StartDate = &startDate
	}
	if endDate := c.QueryParam("end_date"); endDate != "" {
		param.EndDate = &endDate
	}

	trades, err := h.service.TradeService.List(c.Request().Context(), param)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch trades", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("trades", trades))
}

func (h *HttpAPIHandler) getTrade(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	trade, err := h.service.TradeService.Get(c.Request().Context(), id)
	if errors.Is(err, service.ErrTradeNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("trade not found"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch trade", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("trade", trade))
}

func (h *HttpAPIHandler) createTrade(c echo.Context) error {
	req := new(dto.CreateTradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.Create(c.Request().Context(), *req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "trade created", trade))
}

func (h *HttpAPIHandler) updateTrade(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	req := new(dto.UpdateTradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.Update(c.Request().Context(), id, *req)
	if errors.Is(err, service.ErrTradeNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("trade not found"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("trade updated", trade))
}

func (h *HttpAPIHandler) updateTradeStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	req := new(dto.UpdateTradeStatusRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	err = h.service.TradeService.UpdateStatus(c.Request().Context(), id, req.Status)
	if errors.Is(err, service.ErrTradeNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("trade not found"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("status updated", nil))
}

func (h *HttpAPIHandler) updateTradeField(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	req := new(dto.UpdateTradeFieldRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.UpdateField(c.Request().Context(), id, *req)
	if errors.Is(err, service.ErrTradeNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("trade not found"))
	}
	if errors.Is(err, service.ErrFieldNotViable) || errors.Is(err, service.ErrInvalidStatus) {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("field updated", trade))
}

func (h *HttpAPIHandler) rollTrade(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	req := new(dto.CreateTradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.Roll(c.Request().Context(), id, *req)
	if errors.Is(err, service.ErrTradeNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("trade not found"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "trade rolled", trade))
}

func (h *HttpAPIHandler) deleteTrade(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	err = h.service.TradeService.Delete(c.Request().Context(), id)
	if errors.Is(err, service.ErrTradeNotFound) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("trade not found"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("trade deleted", nil))
}

func (h *HttpAPIHandler) listTradeTypes(c echo.Context) error {
	types, err := h.service.TradeService.TradeTypes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch trade types", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("trade types", types))
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func queryUint(c echo.Context, name string) (uint, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
