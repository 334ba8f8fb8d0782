package http

import (
	"net/http"

	"wealthflow/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTheme(base *echo.Group) {
	v1 := base.Group("/v1/theme")
	{
		v1.GET("", h.getTheme)
		v1.POST("", h.setTheme)
		v1.POST("/toggle", h.toggleTheme)
	}
}

func (h *HttpAPIHandler) getTheme(c echo.Context) error {
	mode := h.service.ThemeService.For(sessionID(c)).Mode()
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Theme", dto.ThemeResponse{Mode: string(mode)}))
}

func (h *HttpAPIHandler) setTheme(c echo.Context) error {
	req := new(dto.ThemeRequest)
	if resp := h.bindAndValidate(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	mode, err := h.service.ThemeService.Set(sessionID(c), req.Mode)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Theme updated", dto.ThemeResponse{Mode: string(mode)}))
}

func (h *HttpAPIHandler) toggleTheme(c echo.Context) error {
	mode := h.service.ThemeService.Toggle(sessionID(c))
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Theme toggled", dto.ThemeResponse{Mode: string(mode)}))
}
