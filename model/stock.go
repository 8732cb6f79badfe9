package model

import (
	"encoding/json"
	"math"
)

type ValuationStatus string

const (
	StatusCheap      ValuationStatus = "cheap"
	StatusFair       ValuationStatus = "fair"
	StatusExpensive  ValuationStatus = "expensive"
	StatusOvervalued ValuationStatus = "overvalued"
)

type SafetyScore string

const (
	SafetyHigh   SafetyScore = "high"
	SafetyMedium SafetyScore = "medium"
	SafetyLow    SafetyScore = "low"
)

// Ratio is a float that encodes non-finite values as JSON null.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// StockInfo is the fundamentals block of a single-stock analysis.
// Optional fields decode to zero when the model leaves them out.
type StockInfo struct {
	Ticker                   string  `json:"ticker"`
	Name                     string  `json:"name"`
	CurrentPrice             float64 `json:"currentPrice"`
	Bvps                     float64 `json:"bvps"`
	Pb25                     float64 `json:"pb25"`
	Pb50                     float64 `json:"pb50"`
	Pb75                     float64 `json:"pb75"`
	Pb90                     float64 `json:"pb90"`
	Currency                 string  `json:"currency"`
	DividendYield            float64 `json:"dividendYield"`
	ConsecutiveDividendYears int     `json:"consecutiveDividendYears"`
	IsProfitable             bool    `json:"isProfitable"`
	Roe                      float64 `json:"roe"`
	AvgRoe3Y                 float64 `json:"avgRoe3Y"`
	IsRoeStable              bool    `json:"isRoeStable"`
	AverageVolume20d         float64 `json:"averageVolume20d"`
	IsLiquid                 bool    `json:"isLiquid"`
}

// ChartPoint is one sample of the PB river chart.
type ChartPoint struct {
	Date    string  `json:"date"`
	Price   float64 `json:"price"`
	River25 float64 `json:"river25"`
	River50 float64 `json:"river50"`
	River75 float64 `json:"river75"`
	River90 float64 `json:"river90"`
}

type Story struct {
	Protagonist string `json:"protagonist"`
	Events      string `json:"events"`
	Actions     string `json:"actions"`
}

type Narrative struct {
	ConflictReason string `json:"conflictReason"`
	Story          Story  `json:"story"`
	Outlook        string `json:"outlook"`
}

// StockAnalysis is the normalized single-stock result with its derived fields.
type StockAnalysis struct {
	Stock       StockInfo       `json:"stock"`
	ChartData   []ChartPoint    `json:"chartData"`
	Narrative   Narrative       `json:"narrative"`
	CurrentPB   Ratio           `json:"currentPB"`
	Status      ValuationStatus `json:"status"`
	SafetyScore SafetyScore     `json:"safetyScore"`
}

type TickerInput struct {
	Ticker string `path:"ticker" doc:"Taiwan stock ticker, .TW is appended when no suffix is given" example:"2881"`
}
