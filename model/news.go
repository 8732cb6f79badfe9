package model

type NewsCategory string

const (
	CategoryHype      NewsCategory = "Hype"
	CategoryChips     NewsCategory = "Chips"
	CategoryCommunity NewsCategory = "Community"
	CategoryEvent     NewsCategory = "Event"
	CategoryPolicy    NewsCategory = "Policy"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

type NewsItem struct {
	Title          string       `json:"title"`
	Summary        string       `json:"summary"`
	Category       NewsCategory `json:"category"`
	Sentiment      Sentiment    `json:"sentiment"`
	ImpactLevel    ImpactLevel  `json:"impactLevel"`
	RelatedTickers []string     `json:"relatedTickers"`
	Keywords       []string     `json:"keywords"`
}

// SectorHeat rates one industry sector, Intensity is 0-100.
type SectorHeat struct {
	Name      string  `json:"name"`
	Intensity float64 `json:"intensity"`
	Reason    string  `json:"reason"`
}

type MarketPulse struct {
	TrendSummary string       `json:"trendSummary"`
	HotSectors   []SectorHeat `json:"hotSectors"`
}

type NewsResponse struct {
	News  []NewsItem  `json:"news"`
	Pulse MarketPulse `json:"pulse"`
}
