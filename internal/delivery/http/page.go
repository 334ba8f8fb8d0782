package http

import (
	"net/http"
	"time"

	"wealthflow/internal/dto"
	"wealthflow/internal/model"
	"wealthflow/internal/service"
	"wealthflow/pkg/common"
	"wealthflow/pkg/logger"
	"wealthflow/pkg/utils"

	"github.com/labstack/echo/v4"
)

type pageData struct {
	Theme         string
	NavLinks      []model.NavLink
	Features      []model.Feature
	Cycle         string
	Yearly        bool
	DiscountLabel string
	Plans         []dto.PlanView
	FAQs          []model.FAQ
	Quotes        []dto.QuoteView
	Chat          []model.ChatMessage
	Year          int
}

// renderIndex server-renders the landing page with the visitor's theme and
// chat log. Quotes and chat are refreshed client side afterwards.
func (h *HttpAPIHandler) renderIndex(c echo.Context) error {
	ctx := c.Request().Context()
	id := sessionID(c)

	cycle := c.QueryParam("cycle")
	if !utils.ContainsString(common.GetBillingCycles(), cycle) {
		cycle = common.BILLING_MONTHLY
	}
	plans, err := h.service.PricingService.Plans(ctx, cycle)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to load plans")
	}

	var chat []model.ChatMessage
	if session, err := h.service.ChatService.Session(ctx, id); err == nil {
		chat = session.Messages()
	} else {
		h.log.FromContext(ctx).WarnContext(ctx, "failed to load chat session", logger.ErrorField(err))
	}

	return c.Render(http.StatusOK, "index.html", pageData{
		Theme:         string(h.service.ThemeService.For(id).Mode()),
		NavLinks:      h.content.NavLinks(ctx),
		Features:      h.content.Features(ctx),
		Cycle:         cycle,
		Yearly:        cycle == common.BILLING_YEARLY,
		DiscountLabel: service.YearlyDiscountLabel,
		Plans:         plans,
		FAQs:          h.content.FAQs(ctx),
		Quotes:        dto.NewQuoteViews(h.service.MarketService.Snapshot()),
		Chat:          chat,
		Year:          time.Now().Year(),
	})
}
