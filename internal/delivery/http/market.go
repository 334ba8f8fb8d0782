package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"wealthflow/internal/dto"
	"wealthflow/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupMarket(base *echo.Group) {
	v1 := base.Group("/v1/market")
	{
		v1.GET("/quotes", h.getQuotes)
		v1.GET("/stream", h.streamQuotes)
	}
}

func (h *HttpAPIHandler) getQuotes(c echo.Context) error {
	req := new(dto.MarketRequest)
	if resp := h.bindAndValidate(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	quotes := h.service.MarketService.Snapshot()
	if req.View == "movers" {
		quotes = h.service.MarketService.Movers()
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Market quotes", dto.NewQuoteViews(quotes)))
}

// streamQuotes pushes a "quotes" event per tick for as long as the client stays
// connected. The feed only ticks while at least one stream is open.
func (h *HttpAPIHandler) streamQuotes(c echo.Context) error {
	ctx := c.Request().Context()
	log := h.log.FromContext(ctx)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ch, unsubscribe := h.service.MarketService.Subscribe(ctx)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case quotes, ok := <-ch:
			if !ok {
				return nil
			}
			data, err := json.Marshal(dto.NewQuoteViews(quotes))
			if err != nil {
				log.ErrorContext(ctx, "failed to encode quotes", logger.ErrorField(err))
				return nil
			}
			if _, err := fmt.Fprintf(w, "event: quotes\ndata: %s\n\n", data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
