package model

// ScannerResult is one screened ticker. The boolean flags are computed by the
// model and are served as returned.
type ScannerResult struct {
	Ticker              string  `json:"ticker"`
	Name                string  `json:"name"`
	CurrentPrice        float64 `json:"currentPrice"`
	CurrentPB           float64 `json:"currentPB"`
	GreenThreshold      float64 `json:"greenThreshold"`
	GapToThreshold      float64 `json:"gapToThreshold"`
	IsGreenZone         bool    `json:"isGreenZone"`
	DividendYield       float64 `json:"dividendYield"`
	ConsecutiveYears    int     `json:"consecutiveYears"`
	Roe                 float64 `json:"roe"`
	AvgRoe3Y            float64 `json:"avgRoe3Y"`
	Eps                 float64 `json:"eps"`
	EpsGrowth           float64 `json:"epsGrowth"`
	IsRoeStable         bool    `json:"isRoeStable"`
	AverageVolume20d    float64 `json:"averageVolume20d"`
	IsLiquid            bool    `json:"isLiquid"`
	IsSafe              bool    `json:"isSafe"`
	IsLongTermInvest    bool    `json:"isLongTermInvest"`
	RetailCountCurrent  float64 `json:"retailCountCurrent"`
	RetailCountPrevious float64 `json:"retailCountPrevious"`
	IsRetailDecreasing  bool    `json:"isRetailDecreasing"`
	MonthlyTrendDesc    string  `json:"monthlyTrendDesc"`
	DailyPullbackDesc   string  `json:"dailyPullbackDesc"`
}

// RetailShrinking compares the holder counts directly instead of trusting IsRetailDecreasing.
func (s ScannerResult) RetailShrinking() bool {
	return s.RetailCountCurrent < s.RetailCountPrevious
}
