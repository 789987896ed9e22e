package http

import (
	"net/http"
	"options-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAccounts(base *echo.Group) {
	v1 := base.Group("/v1/accounts")
	{
		v1.GET("", h.listAccounts)
		v1.POST("", h.createAccount)
		v1.GET("/:id/commissions", h.listCommissions)
	}
	base.POST("/v1/commissions", h.createCommission)
}

func (h *HttpAPIHandler) listAccounts(c echo.Context) error {
	accounts, err := h.service.AccountService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch accounts", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("accounts", accounts))
}

func (h *HttpAPIHandler) createAccount(c echo.Context) error {
	req := new(dto.CreateAccountRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	account, err := h.service.AccountService.Create(c.Request().Context(), *req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "account created", account))
}

func (h *HttpAPIHandler) listCommissions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid account id"))
	}

	commissions, err := h.service.AccountService.ListCommissions(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch commissions", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("commissions", commissions))
}

func (h *HttpAPIHandler) createCommission(c echo.Context) error {
	req := new(dto.CreateCommissionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.service.AccountService.CreateCommission(c.Request().Context(), *req); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "commission created", nil))
}
