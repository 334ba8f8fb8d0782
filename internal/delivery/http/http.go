package http

import (
	"context"
	"net/http"

	"wealthflow/config"
	"wealthflow/internal/dto"
	"wealthflow/internal/repository"
	"wealthflow/internal/service"
	"wealthflow/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	content   repository.ContentRepository
}

func NewHttpAPIHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
	content repository.ContentRepository,
) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
		content:   content,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Renderer = newTemplateRenderer()
	h.echo.Use(h.sessionMiddleware)

	h.echo.GET("/", h.renderIndex)
	h.echo.GET("/healthz", h.healthz)

	base := h.echo.Group("/api")
	h.SetupMarket(base)
	h.SetupInsight(base)
	h.SetupChat(base)
	h.SetupTheme(base)
	h.SetupPricing(base)
	h.SetupContact(base)
}

func (h *HttpAPIHandler) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", map[string]interface{}{
		"market_running":     h.service.MarketService.Running(),
		"market_subscribers": h.service.MarketService.Subscribers(),
	}))
}

// bindAndValidate binds the request into req and runs struct validation.
func (h *HttpAPIHandler) bindAndValidate(c echo.Context, req interface{}) *dto.BaseResponse {
	if err := c.Bind(req); err != nil {
		return dto.NewBadRequestResponse("invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return dto.NewBadRequestResponse(err.Error())
	}
	return nil
}

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, dto.NewBaseResponse(code, message, nil))
}
