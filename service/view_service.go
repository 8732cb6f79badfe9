package service

import (
	"sort"

	"twscreener/model"
)

const marketHighlightCount = 2

// SortFinancial orders green-zone rows first, then by ROE descending. The
// input slice is not modified.
func SortFinancial(rows []model.ScannerResult) []model.ScannerResult {
	out := make([]model.ScannerResult, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsGreenZone != out[j].IsGreenZone {
			return out[i].IsGreenZone
		}
		return out[i].Roe > out[j].Roe
	})
	return out
}

// LongTermTargets keeps rows flagged for long-term investment whose retail
// holder count fell over the period.
func LongTermTargets(rows []model.ScannerResult) []model.ScannerResult {
	out := make([]model.ScannerResult, 0, len(rows))
	for _, r := range rows {
		if r.IsLongTermInvest && r.RetailShrinking() {
			out = append(out, r)
		}
	}
	return out
}

func GreenZoneCount(rows []model.ScannerResult) int {
	n := 0
	for _, r := range rows {
		if r.IsGreenZone {
			n++
		}
	}
	return n
}

func MarketViews(rows []model.MarketResult) []model.MarketView {
	out := make([]model.MarketView, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.MarketView{
			MarketResult: r,
			Label:        r.StatusLabel(),
			Gauge:        r.GaugeLevel(),
		})
	}
	return out
}

// Summarize builds the dashboard header counters from card snapshots.
func Summarize(cards []model.CardState) model.DashboardSummary {
	summary := model.DashboardSummary{MarketHighlights: []model.MarketView{}}
	for _, c := range cards {
		switch c.Card {
		case model.CardFinancial:
			summary.GreenZoneCount = GreenZoneCount(c.Scanner)
		case model.CardLongTerm:
			summary.LongTermCount = len(LongTermTargets(c.Scanner))
		case model.CardMarket:
			views := MarketViews(c.Market)
			if len(views) > marketHighlightCount {
				views = views[:marketHighlightCount]
			}
			summary.MarketHighlights = views
		case model.CardNews:
			if c.News != nil {
				summary.NewsCount = len(c.News.News)
				summary.TrendSummary = c.News.Pulse.TrendSummary
				summary.HotSectors = c.News.Pulse.HotSectors
			}
		}
	}
	return summary
}
