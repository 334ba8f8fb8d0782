package dto

import (
	"wealthflow/internal/model"
	"wealthflow/pkg/utils"
)

type MarketRequest struct {
	View string `query:"view" validate:"omitempty,oneof=overview movers"`
}

// QuoteView is an AssetQuote with its display labels.
type QuoteView struct {
	model.AssetQuote
	PriceLabel  string `json:"price_label"`
	ChangeLabel string `json:"change_label"`
	Volume      string `json:"volume"`
	Up          bool   `json:"up"`
}

func NewQuoteViews(quotes []model.AssetQuote) []QuoteView {
	views := make([]QuoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, QuoteView{
			AssetQuote:  q,
			PriceLabel:  utils.FormatUSD(q.Price),
			ChangeLabel: utils.FormatPercentage(q.Change),
			Volume:      utils.FormatVolume(q.Price),
			Up:          q.IsUp(),
		})
	}
	return views
}
