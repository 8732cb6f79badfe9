package service

import (
	"context"
	"fmt"
	"time"

	"twscreener/client"
	"twscreener/customerrors"
	"twscreener/model"
	"twscreener/normalizer"
	"twscreener/prompt"
	"twscreener/util"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const DefaultQueryTimeout = 180 * time.Second

type QueryService interface {
	AnalyzeStock(ctx context.Context, ticker string) (*model.StockAnalysis, error)
	ScanFinancialStocks(ctx context.Context, broadMarket bool) ([]model.ScannerResult, error)
	ScanMarketStatus(ctx context.Context) ([]model.MarketResult, error)
	FetchMarketNews(ctx context.Context) (*model.NewsResponse, error)
}

type QueryServiceImpl struct {
	client  client.ModelClient
	timeout time.Duration
	search  bool
}

func NewQueryService(c client.ModelClient, timeout time.Duration, search bool) QueryService {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &QueryServiceImpl{
		client:  c,
		timeout: timeout,
		search:  search,
	}
}

type resultsPayload[T any] struct {
	Results []T `json:"results"`
}

func (s *QueryServiceImpl) AnalyzeStock(ctx context.Context, ticker string) (*model.StockAnalysis, error) {
	formatted, err := util.FormatTicker(ticker)
	if err != nil {
		return nil, err
	}

	res, err := query[model.StockAnalysis](ctx, s, "analysis", prompt.Analysis(formatted), prompt.StockAnalysisSchema, prompt.AnalysisKeys)
	if err != nil {
		return nil, err
	}

	analysis := res.Value
	normalizer.Derive(&analysis)
	return &analysis, nil
}

func (s *QueryServiceImpl) ScanFinancialStocks(ctx context.Context, broadMarket bool) ([]model.ScannerResult, error) {
	kind := "financial"
	if broadMarket {
		kind = "longTerm"
	}
	res, err := query[resultsPayload[model.ScannerResult]](ctx, s, kind, prompt.FinancialScan(broadMarket, model.FinancialStocks), prompt.ScannerSchema, prompt.ResultsKeys)
	if err != nil {
		return nil, err
	}
	return res.Value.Results, nil
}

func (s *QueryServiceImpl) ScanMarketStatus(ctx context.Context) ([]model.MarketResult, error) {
	res, err := query[resultsPayload[model.MarketResult]](ctx, s, "market", prompt.MarketStatus(model.MarketTickers), prompt.MarketSchema, prompt.ResultsKeys)
	if err != nil {
		return nil, err
	}
	return res.Value.Results, nil
}

func (s *QueryServiceImpl) FetchMarketNews(ctx context.Context) (*model.NewsResponse, error) {
	res, err := query[model.NewsResponse](ctx, s, "news", prompt.MarketNews(), prompt.NewsSchema, prompt.NewsKeys)
	if err != nil {
		return nil, err
	}
	news := res.Value
	return &news, nil
}

// query performs one bounded model call and normalizes the answer into T.
func query[T any](ctx context.Context, s *QueryServiceImpl, kind, text string, schema *genai.Schema, required []string) (*normalizer.Result[T], error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.client.Generate(ctx, client.GenerateRequest{
		Prompt: text,
		Schema: schema,
		Search: s.search,
	})
	if err != nil {
		log.Error().Err(err).Str("query", kind).Dur("latency", time.Since(start)).Msg("Model call failed")
		return nil, fmt.Errorf("%w: %w", customerrors.ErrTransport, err)
	}

	res, err := normalizer.Normalize[T](raw, schema, required...)
	if err != nil {
		log.Error().Err(err).Str("query", kind).Msg("Model answer rejected")
		return nil, err
	}

	log.Info().
		Str("query", kind).
		Int("dropped", len(res.Dropped)).
		Dur("latency", time.Since(start)).
		Msg("Model answer accepted")
	return res, nil
}
