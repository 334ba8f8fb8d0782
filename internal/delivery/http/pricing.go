package http

import (
	"net/http"

	"wealthflow/internal/dto"
	"wealthflow/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPricing(base *echo.Group) {
	base.GET("/v1/pricing", h.getPricing)
}

func (h *HttpAPIHandler) getPricing(c echo.Context) error {
	req := new(dto.PricingRequest)
	if resp := h.bindAndValidate(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	plans, err := h.service.PricingService.Plans(c.Request().Context(), req.Cycle)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	resp := dto.PricingResponse{Plans: plans}
	if len(plans) > 0 {
		resp.Cycle = plans[0].Cycle
	}
	resp.DiscountLabel = service.YearlyDiscountLabel
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Pricing", resp))
}
