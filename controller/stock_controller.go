package controller

import (
	"context"
	"net/http"

	"twscreener/model"
	"twscreener/service"

	"github.com/danielgtaylor/huma/v2"
)

type StockController struct {
	querySvc service.QueryService
}

func NewStockController(qs service.QueryService) *StockController {
	return &StockController{querySvc: qs}
}

func (ctrl *StockController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-stock",
		Method:      http.MethodGet,
		Path:        "/api/stocks/{ticker}/analysis",
		Summary:     "Analyze Stock",
		Description: "Valuation bands, price history and narrative for one ticker. Bare codes get the .TW suffix.",
		Tags:        []string{"Stock"},
	}, ctrl.analyzeStock)
}

func (ctrl *StockController) analyzeStock(ctx context.Context, input *model.TickerInput) (*model.DefaultResponse, error) {
	analysis, err := ctrl.querySvc.AnalyzeStock(ctx, input.Ticker)
	if err != nil {
		return nil, toHumaError(err)
	}
	return NewResponse(analysis, "Analysis complete"), nil
}
