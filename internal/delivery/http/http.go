package http

import (
	"context"
	"net/http"
	"options-tracker/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.GET("/test", h.healthCheck)

	base := h.echo.Group("/api")
	h.SetupTrades(base)
	h.SetupCostBasis(base)
	h.SetupCashFlows(base)
	h.SetupAccounts(base)
	h.SetupTickers(base)
	h.SetupSummary(base)
}

func (h *HttpAPIHandler) healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "App is running!")
}
