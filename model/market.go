package model

type MarketStatus string

const (
	MarketCrisisBuy    MarketStatus = "crisis_buy"
	MarketBullPullback MarketStatus = "bull_pullback"
	MarketNeutral      MarketStatus = "neutral"
	MarketOverheated   MarketStatus = "overheated"
)

// MarketResult is one index or ETF row of the market guide.
type MarketResult struct {
	Ticker                 string       `json:"ticker"`
	Name                   string       `json:"name"`
	CurrentPrice           float64      `json:"currentPrice"`
	PriceLevel             float64      `json:"priceLevel"`
	DeviationFromYearly    float64      `json:"deviationFromYearly"`
	DeviationFromQuarterly float64      `json:"deviationFromQuarterly"`
	DrawdownFromHigh       float64      `json:"drawdownFromHigh"`
	DividendYield          float64      `json:"dividendYield"`
	Status                 MarketStatus `json:"status"`
	Signal                 string       `json:"signal"`
	Description            string       `json:"description"`
}

// GaugeLevel clamps PriceLevel into the 0-100 gauge range.
func (m MarketResult) GaugeLevel() float64 {
	switch {
	case m.PriceLevel < 0:
		return 0
	case m.PriceLevel > 100:
		return 100
	default:
		return m.PriceLevel
	}
}

// StatusLabel is the dashboard badge text for the row.
func (m MarketResult) StatusLabel() string {
	switch m.Status {
	case MarketBullPullback:
		if m.DeviationFromQuarterly < 0 {
			return "季線黃金進場 (生命線下)"
		}
		return "季線支撐佈局 (接近生命線)"
	case MarketCrisisBuy:
		return "鑽石買點 (極度便宜)"
	case MarketOverheated:
		return "市場過熱 (風險警戒)"
	default:
		return "中性觀望"
	}
}

type MarketView struct {
	MarketResult
	Label string  `json:"label"`
	Gauge float64 `json:"gauge"`
}
