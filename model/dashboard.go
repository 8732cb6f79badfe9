package model

import "time"

// CardState is the record of one dashboard card. Only one of the result
// fields is set, depending on Card.
type CardState struct {
	Card       Card            `json:"card"`
	Status     CardStatus      `json:"status"`
	Loading    bool            `json:"loading"`
	HasData    bool            `json:"hasData"`
	Error      string          `json:"error,omitempty"`
	Generation uint64          `json:"generation"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
	Scanner    []ScannerResult `json:"scanner,omitempty"`
	Market     []MarketResult  `json:"market,omitempty"`
	News       *NewsResponse   `json:"news,omitempty"`
}

type DashboardSummary struct {
	GreenZoneCount   int          `json:"greenZoneCount"`
	LongTermCount    int          `json:"longTermCount"`
	MarketHighlights []MarketView `json:"marketHighlights"`
	NewsCount        int          `json:"newsCount"`
	TrendSummary     string       `json:"trendSummary,omitempty"`
	HotSectors       []SectorHeat `json:"hotSectors,omitempty"`
}

type DashboardSnapshot struct {
	Scanning bool             `json:"scanning"`
	Banner   string           `json:"banner,omitempty"`
	AnyBusy  bool             `json:"anyBusy"`
	Cards    []CardState      `json:"cards"`
	Summary  DashboardSummary `json:"summary"`
}

// --- Huma Structs ---

type CardInput struct {
	Card string `path:"card" enum:"market,financial,longTerm,news" doc:"Dashboard card"`
}
