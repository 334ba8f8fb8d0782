package model

// AssetQuote is one simulated instrument on the market pulse board.
type AssetQuote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

func (q AssetQuote) IsUp() bool {
	return q.Change >= 0
}

// DefaultAssetSeeds is the fixed list every feed starts from.
func DefaultAssetSeeds() []AssetQuote {
	return []AssetQuote{
		{Symbol: "SPX", Name: "S&P 500", Price: 4783.45, Change: 1.2},
		{Symbol: "NDX", Name: "Nasdaq 100", Price: 16832.90, Change: 1.8},
		{Symbol: "BTC", Name: "Bitcoin", Price: 64230.50, Change: -0.5},
		{Symbol: "ETH", Name: "Ethereum", Price: 3450.12, Change: 2.1},
		{Symbol: "XAU", Name: "Gold", Price: 2045.60, Change: 0.3},
	}
}
