package controller

import (
	"context"
	"net/http"

	"twscreener/model"
	"twscreener/service"

	"github.com/danielgtaylor/huma/v2"
)

type DashboardController struct {
	dashboardSvc service.DashboardService
}

func NewDashboardController(ds service.DashboardService) *DashboardController {
	return &DashboardController{dashboardSvc: ds}
}

func (ctrl *DashboardController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Get Dashboard",
		Description: "Returns every card state with the header summary",
		Tags:        []string{"Dashboard"},
	}, ctrl.getDashboard)

	huma.Register(api, huma.Operation{
		OperationID:   "scan-all",
		Method:        http.MethodPost,
		Path:          "/api/scan/all",
		Summary:       "Start Full Scan",
		Description:   "Refreshes market, financial, long-term and news cards one after another in the background",
		DefaultStatus: http.StatusAccepted,
		Tags:          []string{"Scan"},
	}, ctrl.scanAll)

	huma.Register(api, huma.Operation{
		OperationID: "scan-card",
		Method:      http.MethodPost,
		Path:        "/api/scan/{card}",
		Summary:     "Scan One Card",
		Description: "Runs the card query and waits for the result",
		Tags:        []string{"Scan"},
	}, ctrl.scanCard)

	huma.Register(api, huma.Operation{
		OperationID: "get-card",
		Method:      http.MethodGet,
		Path:        "/api/cards/{card}",
		Summary:     "Get Card State",
		Tags:        []string{"Dashboard"},
	}, ctrl.getCard)

	huma.Register(api, huma.Operation{
		OperationID: "view-financial",
		Method:      http.MethodGet,
		Path:        "/api/views/financial",
		Summary:     "Financial Stocks",
		Description: "Green zone rows first, then ROE descending",
		Tags:        []string{"Views"},
	}, ctrl.financialView)

	huma.Register(api, huma.Operation{
		OperationID: "view-long-term",
		Method:      http.MethodGet,
		Path:        "/api/views/long-term",
		Summary:     "Long Term Targets",
		Description: "Long-term candidates whose retail holder count is falling",
		Tags:        []string{"Views"},
	}, ctrl.longTermView)

	huma.Register(api, huma.Operation{
		OperationID: "view-market",
		Method:      http.MethodGet,
		Path:        "/api/views/market",
		Summary:     "Market Guide",
		Tags:        []string{"Views"},
	}, ctrl.marketView)
}

func (ctrl *DashboardController) getDashboard(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.dashboardSvc.Snapshot(), "Dashboard fetch success"), nil
}

func (ctrl *DashboardController) scanAll(ctx context.Context, input *struct{}) (*model.AcceptedResponse, error) {
	if err := ctrl.dashboardSvc.StartScanAll(); err != nil {
		return nil, toHumaError(err)
	}
	return &model.AcceptedResponse{
		Status: http.StatusAccepted,
		Body: model.Response{
			Success: true,
			Message: "Scanning started",
		},
	}, nil
}

func (ctrl *DashboardController) scanCard(ctx context.Context, input *model.CardInput) (*model.DefaultResponse, error) {
	card, err := model.ParseCard(input.Card)
	if err != nil {
		return nil, toHumaError(err)
	}

	state, err := ctrl.dashboardSvc.RunCard(ctx, card)
	if err != nil {
		return nil, toHumaError(err)
	}
	return NewResponse(state, "Scan complete"), nil
}

func (ctrl *DashboardController) getCard(ctx context.Context, input *model.CardInput) (*model.DefaultResponse, error) {
	card, err := model.ParseCard(input.Card)
	if err != nil {
		return nil, toHumaError(err)
	}
	return NewResponse(ctrl.dashboardSvc.Card(card), "Card fetch success"), nil
}

func (ctrl *DashboardController) financialView(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.dashboardSvc.FinancialView(), "Financial view fetch success"), nil
}

func (ctrl *DashboardController) longTermView(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.dashboardSvc.LongTermView(), "Long term view fetch success"), nil
}

func (ctrl *DashboardController) marketView(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.dashboardSvc.MarketView(), "Market view fetch success"), nil
}
