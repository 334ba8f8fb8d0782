package http

import (
	"errors"
	"net/http"

	"wealthflow/internal/dto"
	"wealthflow/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupInsight(base *echo.Group) {
	base.POST("/v1/insights", h.askInsight)
}

func (h *HttpAPIHandler) askInsight(c echo.Context) error {
	req := new(dto.InsightRequest)
	if resp := h.bindAndValidate(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	state, err := h.service.InsightService.Ask(c.Request().Context(), req.Query)
	if errors.Is(err, service.ErrEmptyQuery) {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to get insight")
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Insight", state))
}
