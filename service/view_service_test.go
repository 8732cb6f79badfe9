package service

import (
	"testing"

	"twscreener/model"

	"github.com/stretchr/testify/assert"
)

func TestSortFinancial_StableAndPure(t *testing.T) {
	rows := []model.ScannerResult{
		{Ticker: "A", Roe: 10},
		{Ticker: "B", Roe: 10, IsGreenZone: true},
		{Ticker: "C", Roe: 10},
		{Ticker: "D", Roe: 10, IsGreenZone: true},
	}

	sorted := SortFinancial(rows)
	tickers := make([]string, 0, len(sorted))
	for _, r := range sorted {
		tickers = append(tickers, r.Ticker)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, tickers)
	assert.Equal(t, "A", rows[0].Ticker)
	assert.Empty(t, SortFinancial(nil))
}

func TestLongTermTargets(t *testing.T) {
	rows := []model.ScannerResult{
		{Ticker: "keep", IsLongTermInvest: true, RetailCountCurrent: 10, RetailCountPrevious: 11},
		{Ticker: "flat", IsLongTermInvest: true, RetailCountCurrent: 11, RetailCountPrevious: 11},
		{Ticker: "flag only", IsLongTermInvest: true, IsRetailDecreasing: true, RetailCountCurrent: 12, RetailCountPrevious: 11},
		{Ticker: "not long term", RetailCountCurrent: 1, RetailCountPrevious: 11},
	}

	got := LongTermTargets(rows)
	assert.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].Ticker)
}

func TestMarketViewsAndSummary(t *testing.T) {
	market := []model.MarketResult{
		{Ticker: "^TWII", Status: model.MarketBullPullback, DeviationFromQuarterly: -1, PriceLevel: -5},
		{Ticker: "0050.TW", Status: model.MarketCrisisBuy, PriceLevel: 10},
		{Ticker: "0056.TW", Status: model.MarketOverheated, PriceLevel: 95},
	}

	views := MarketViews(market)
	assert.Equal(t, "季線黃金進場 (生命線下)", views[0].Label)
	assert.Equal(t, float64(0), views[0].Gauge)
	assert.Equal(t, "鑽石買點 (極度便宜)", views[1].Label)

	cards := []model.CardState{
		{Card: model.CardMarket, Market: market},
		{Card: model.CardNews, News: &model.NewsResponse{
			News:  []model.NewsItem{{Title: "a"}, {Title: "b"}},
			Pulse: model.MarketPulse{TrendSummary: "up"},
		}},
	}
	summary := Summarize(cards)
	assert.Len(t, summary.MarketHighlights, 2)
	assert.Equal(t, 2, summary.NewsCount)
	assert.Equal(t, "up", summary.TrendSummary)
	assert.Equal(t, 0, summary.GreenZoneCount)
}
