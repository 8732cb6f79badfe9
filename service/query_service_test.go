package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"twscreener/client"
	"twscreener/customerrors"
	"twscreener/model"
	"twscreener/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	answer string
	err    error
	last   client.GenerateRequest
	wait   bool
}

func (f *fakeModel) Generate(ctx context.Context, req client.GenerateRequest) (string, error) {
	f.last = req
	if f.wait {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.answer, f.err
}

const analysisAnswer = "```json\n" + `{
  "stock": {"ticker": "2881.TW", "name": "富邦金", "currentPrice": 80, "bvps": 100,
            "pb25": 0.9, "pb50": 1.1, "pb75": 1.3, "pb90": 1.5, "currency": "TWD",
            "dividendYield": 5, "consecutiveDividendYears": 8, "isProfitable": true,
            "roe": 11, "avgRoe3Y": 10, "isRoeStable": true, "averageVolume20d": 20000, "isLiquid": true},
  "chartData": [],
  "narrative": {"conflictReason": "c", "story": {"protagonist": "p", "events": "e", "actions": "a"}, "outlook": "o"}
}` + "\n```"

func TestAnalyzeStock(t *testing.T) {
	m := &fakeModel{answer: analysisAnswer}
	svc := NewQueryService(m, time.Second, true)

	a, err := svc.AnalyzeStock(context.Background(), "2881")
	require.NoError(t, err)

	assert.InDelta(t, 0.8, float64(a.CurrentPB), 1e-9)
	assert.Equal(t, model.StatusCheap, a.Status)
	assert.Equal(t, model.SafetyHigh, a.SafetyScore)

	assert.Contains(t, m.last.Prompt, "2881.TW")
	assert.True(t, m.last.Search)
	assert.Same(t, prompt.StockAnalysisSchema, m.last.Schema)
}

func TestAnalyzeStock_InvalidTicker(t *testing.T) {
	m := &fakeModel{answer: analysisAnswer}
	svc := NewQueryService(m, time.Second, true)

	_, err := svc.AnalyzeStock(context.Background(), "not a ticker!")
	assert.ErrorIs(t, err, customerrors.ErrInvalidTicker)
	assert.Empty(t, m.last.Prompt)
}

func TestScanFinancialStocks_Prompts(t *testing.T) {
	m := &fakeModel{answer: `{"results": []}`}
	svc := NewQueryService(m, time.Second, false)

	rows, err := svc.ScanFinancialStocks(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Contains(t, m.last.Prompt, "2881")
	assert.False(t, m.last.Search)

	_, err = svc.ScanFinancialStocks(context.Background(), true)
	require.NoError(t, err)
	assert.Contains(t, m.last.Prompt, "MA20")
}

func TestScanMarketStatus_MissingResults(t *testing.T) {
	m := &fakeModel{answer: `{"rows": []}`}
	svc := NewQueryService(m, time.Second, true)

	rows, err := svc.ScanMarketStatus(context.Background())
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, customerrors.ErrInvalidResponseShape)
}

func TestFetchMarketNews(t *testing.T) {
	m := &fakeModel{answer: `{"news": [{"title": "AI", "summary": "s", "category": "Hype", "sentiment": "positive",
		"impactLevel": "high", "relatedTickers": ["2330"], "keywords": ["AI"]}],
		"pulse": {"trendSummary": "熱", "hotSectors": [{"name": "AI", "intensity": "90", "reason": "r"}]}}`}
	svc := NewQueryService(m, time.Second, true)

	news, err := svc.FetchMarketNews(context.Background())
	require.NoError(t, err)
	require.Len(t, news.News, 1)
	assert.Equal(t, model.CategoryHype, news.News[0].Category)
	require.Len(t, news.Pulse.HotSectors, 1)
	assert.Equal(t, float64(90), news.Pulse.HotSectors[0].Intensity)
}

func TestQuery_TransportErrors(t *testing.T) {
	m := &fakeModel{err: errors.New("429 resource exhausted")}
	svc := NewQueryService(m, time.Second, true)

	_, err := svc.FetchMarketNews(context.Background())
	assert.ErrorIs(t, err, customerrors.ErrTransport)
	assert.Contains(t, err.Error(), "429")
}

func TestQuery_Timeout(t *testing.T) {
	m := &fakeModel{wait: true}
	svc := NewQueryService(m, 20*time.Millisecond, true)

	_, err := svc.ScanMarketStatus(context.Background())
	assert.ErrorIs(t, err, customerrors.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
