package normalizer

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"twscreener/customerrors"
	"twscreener/model"
	"twscreener/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marketPayload struct {
	Results []model.MarketResult `json:"results"`
}

const marketAnswer = "以下是分析結果：\n```json\n" + `{
  "results": [
    {"ticker": "^TWII", "name": "加權指數", "currentPrice": "21000.5", "priceLevel": 120,
     "deviationFromYearly": 3.1, "deviationFromQuarterly": -1.2, "drawdownFromHigh": -4,
     "dividendYield": 0, "status": "bull_pullback", "signal": "buy", "description": "季線附近"},
    {"ticker": "0050.TW", "name": "元大台灣50", "currentPrice": 150, // missing priceLevel
     "deviationFromYearly": 1, "deviationFromQuarterly": 1, "drawdownFromHigh": -1,
     "dividendYield": 3, "status": "neutral", "signal": "hold", "description": "-"},
  ],
}` + "\n```"

func TestNormalize_Market(t *testing.T) {
	res, err := Normalize[marketPayload](marketAnswer, prompt.MarketSchema, prompt.ResultsKeys...)
	require.NoError(t, err)

	require.Len(t, res.Value.Results, 1)
	row := res.Value.Results[0]
	assert.Equal(t, "^TWII", row.Ticker)
	assert.Equal(t, 21000.5, row.CurrentPrice)
	assert.Equal(t, model.MarketBullPullback, row.Status)
	assert.Equal(t, float64(100), row.GaugeLevel())

	require.Len(t, res.Dropped, 1)
	assert.Equal(t, "results[1].priceLevel", res.Dropped[0].Path)
}

func TestNormalize_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"prose only", "抱歉，我無法取得資料。", "not valid JSON"},
		{"missing results", `{"data": []}`, `missing "results"`},
		{"results not array", `{"results": {"ticker": "x"}}`, "results: expected array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Normalize[marketPayload](tt.raw, prompt.MarketSchema, prompt.ResultsKeys...)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, customerrors.ErrInvalidResponseShape)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNormalize_AnalysisOptionalFields(t *testing.T) {
	raw := `{
	  "stock": {"ticker": "2881.TW", "name": "富邦金", "currentPrice": 90, "bvps": 60,
	            "pb25": 1.0, "pb50": 1.2, "pb75": 1.4, "pb90": 1.6, "currency": "TWD",
	            "roe": 12, "averageVolume20d": 30000, "isLiquid": true},
	  "chartData": [{"date": "2024-01", "price": 80, "river25": 60, "river50": 72, "river75": 84, "river90": 96}],
	  "narrative": {"conflictReason": "c", "story": {"protagonist": "p", "events": "e", "actions": "a"}, "outlook": "o"}
	}`

	res, err := Normalize[model.StockAnalysis](raw, prompt.StockAnalysisSchema, prompt.AnalysisKeys...)
	require.NoError(t, err)

	a := res.Value
	Derive(&a)
	assert.Equal(t, 0, a.Stock.ConsecutiveDividendYears)
	assert.Equal(t, model.SafetyLow, a.SafetyScore)
	assert.Equal(t, model.StatusExpensive, a.Status)
	require.Len(t, a.ChartData, 1)
	assert.Equal(t, "p", a.Narrative.Story.Protagonist)
}

func TestNormalize_NestedFatal(t *testing.T) {
	raw := `{"stock": {"ticker": "2881.TW"}, "chartData": [], "narrative": {}}`

	_, err := Normalize[model.StockAnalysis](raw, prompt.StockAnalysisSchema, prompt.AnalysisKeys...)
	require.Error(t, err)
	assert.ErrorIs(t, err, customerrors.ErrInvalidResponseShape)
	assert.Contains(t, err.Error(), "narrative.conflictReason")
}

func TestNormalize_MissingBVPSFailsAnalysis(t *testing.T) {
	raw := `{
	  "stock": {"ticker": "2881.TW", "name": "富邦金", "currentPrice": 90,
	            "pb25": 1.0, "pb50": 1.2, "pb75": 1.4, "pb90": 1.6, "currency": "TWD",
	            "roe": 12, "averageVolume20d": 30000, "isLiquid": true},
	  "chartData": [],
	  "narrative": {"conflictReason": "c", "story": {"protagonist": "p", "events": "e", "actions": "a"}, "outlook": "o"}
	}`

	res, err := Normalize[model.StockAnalysis](raw, prompt.StockAnalysisSchema, prompt.AnalysisKeys...)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, customerrors.ErrInvalidResponseShape)
	assert.Contains(t, err.Error(), "stock.bvps: required field is missing")
}

func scannerRow(ticker string, years, pb string) string {
	return fmt.Sprintf(`{"ticker": %q, "name": "n", "currentPrice": 30, "currentPB": %s, "greenThreshold": 1,
	  "gapToThreshold": 0.1, "isGreenZone": false, "dividendYield": 4, "consecutiveYears": %s, "roe": 9,
	  "avgRoe3Y": 8, "eps": 2, "epsGrowth": 1, "isRoeStable": true, "averageVolume20d": 5000, "isLiquid": true,
	  "isSafe": true, "isLongTermInvest": false, "retailCountCurrent": 10, "retailCountPrevious": 12,
	  "isRetailDecreasing": true, "monthlyTrendDesc": "m", "dailyPullbackDesc": "d"}`, ticker, pb, years)
}

type scannerPayload struct {
	Results []model.ScannerResult `json:"results"`
}

func TestNormalize_BadRowsDoNotSinkCollection(t *testing.T) {
	rows := []string{
		scannerRow("2881.TW", "12", "1.1"),
		scannerRow("2882.TW", `"5.5"`, "1.2"),
		scannerRow("2883.TW", `" 7"`, `"NaN"`),
		scannerRow("2884.TW", `" 7"`, `"0.9"`),
	}
	raw := `{"results": [` + strings.Join(rows, ",") + `]}`

	res, err := Normalize[scannerPayload](raw, prompt.ScannerSchema, prompt.ResultsKeys...)
	require.NoError(t, err)

	require.Len(t, res.Value.Results, 2)
	assert.Equal(t, "2881.TW", res.Value.Results[0].Ticker)
	assert.Equal(t, "2884.TW", res.Value.Results[1].Ticker)
	assert.Equal(t, 7, res.Value.Results[1].ConsecutiveYears)
	assert.Len(t, res.Dropped, 2)

	_, err = json.Marshal(res.Value)
	assert.NoError(t, err)
}
