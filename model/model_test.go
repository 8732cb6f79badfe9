package model

import (
	"encoding/json"
	"math"
	"testing"

	"twscreener/customerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio_MarshalJSON(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{1.25, "1.25"},
		{0, "0"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
		{math.NaN(), "null"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(Ratio(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, string(b))
	}
}

func TestMarketResult_Labels(t *testing.T) {
	tests := []struct {
		name  string
		row   MarketResult
		label string
		gauge float64
	}{
		{"pullback below quarterly", MarketResult{Status: MarketBullPullback, DeviationFromQuarterly: -0.5, PriceLevel: 40}, "季線黃金進場 (生命線下)", 40},
		{"pullback above quarterly", MarketResult{Status: MarketBullPullback, DeviationFromQuarterly: 0, PriceLevel: 101}, "季線支撐佈局 (接近生命線)", 100},
		{"crisis", MarketResult{Status: MarketCrisisBuy, PriceLevel: -3}, "鑽石買點 (極度便宜)", 0},
		{"overheated", MarketResult{Status: MarketOverheated, PriceLevel: 99}, "市場過熱 (風險警戒)", 99},
		{"neutral", MarketResult{Status: MarketNeutral, PriceLevel: 50}, "中性觀望", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.row.StatusLabel())
			assert.Equal(t, tt.gauge, tt.row.GaugeLevel())
		})
	}
}

func TestParseCard(t *testing.T) {
	for _, c := range ScanOrder {
		got, err := ParseCard(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCard("longterm")
	assert.ErrorIs(t, err, customerrors.ErrUnknownCard)
}

func TestScannerResult_RetailShrinking(t *testing.T) {
	assert.True(t, ScannerResult{RetailCountCurrent: 1, RetailCountPrevious: 2}.RetailShrinking())
	assert.False(t, ScannerResult{RetailCountCurrent: 2, RetailCountPrevious: 2, IsRetailDecreasing: true}.RetailShrinking())
}
