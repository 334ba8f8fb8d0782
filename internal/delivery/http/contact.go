package http

import (
	"errors"
	"net/http"

	"wealthflow/internal/dto"
	"wealthflow/internal/service"

	"github.com/labstack/echo/v4"
)

const contactThanks = "Thank you. A private client advisor will be in touch shortly."

func (h *HttpAPIHandler) SetupContact(base *echo.Group) {
	base.POST("/v1/contact", h.submitContact)
}

func (h *HttpAPIHandler) submitContact(c echo.Context) error {
	req := new(dto.ContactRequest)
	if resp := h.bindAndValidate(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	lead, err := h.service.ContactService.Submit(c.Request().Context(), *req)
	if errors.Is(err, service.ErrIncompleteContact) {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to submit inquiry")
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Inquiry received", dto.ContactResponse{
		Reference: lead.Reference,
		Message:   contactThanks,
	}))
}
