package normalizer

import "twscreener/model"

const (
	minDividendYears = 5
	minRoe           = 4
	minAvgRoe3Y      = 8
)

// PriceToBook divides price by book value per share. A zero bvps yields Inf
// or NaN, which is passed through.
func PriceToBook(info model.StockInfo) float64 {
	return info.CurrentPrice / info.Bvps
}

// ClassifyPB places pb against the percentile bands. Comparisons are strict
// and evaluated from the cheapest band up.
func ClassifyPB(pb float64, info model.StockInfo) model.ValuationStatus {
	switch {
	case pb < info.Pb25:
		return model.StatusCheap
	case pb < info.Pb75:
		return model.StatusFair
	case pb < info.Pb90:
		return model.StatusExpensive
	default:
		return model.StatusOvervalued
	}
}

// Safety is high for five or more years of dividends backed by either a
// latest ROE above 4 or a three-year average ROE above 8.
func Safety(info model.StockInfo) model.SafetyScore {
	if info.ConsecutiveDividendYears >= minDividendYears && (info.Roe > minRoe || info.AvgRoe3Y > minAvgRoe3Y) {
		return model.SafetyHigh
	}
	return model.SafetyLow
}

// Derive fills the fields the model is not asked for.
func Derive(a *model.StockAnalysis) {
	pb := PriceToBook(a.Stock)
	a.CurrentPB = model.Ratio(pb)
	a.Status = ClassifyPB(pb, a.Stock)
	a.SafetyScore = Safety(a.Stock)
}
