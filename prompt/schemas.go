package prompt

import "google.golang.org/genai"

func str() *genai.Schema  { return &genai.Schema{Type: genai.TypeString} }
func num() *genai.Schema  { return &genai.Schema{Type: genai.TypeNumber} }
func intg() *genai.Schema { return &genai.Schema{Type: genai.TypeInteger} }
func boolean() *genai.Schema {
	return &genai.Schema{Type: genai.TypeBoolean}
}

func enum(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: values}
}

func object(required []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Required: required, Properties: props}
}

func array(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

// Top-level keys each query requires before anything else is inspected.
var (
	AnalysisKeys = []string{"stock", "chartData", "narrative"}
	ResultsKeys  = []string{"results"}
	NewsKeys     = []string{"news", "pulse"}
)

var StockAnalysisSchema = object(AnalysisKeys, map[string]*genai.Schema{
	// dividendYield, consecutiveDividendYears, isProfitable, avgRoe3Y and
	// isRoeStable may be left out and then read as zero.
	"stock": object(
		[]string{"ticker", "name", "currentPrice", "bvps", "pb25", "pb50", "pb75", "pb90", "currency", "roe", "averageVolume20d", "isLiquid"},
		map[string]*genai.Schema{
			"ticker":                   str(),
			"name":                     str(),
			"currentPrice":             num(),
			"bvps":                     num(),
			"pb25":                     num(),
			"pb50":                     num(),
			"pb75":                     num(),
			"pb90":                     num(),
			"currency":                 str(),
			"dividendYield":            num(),
			"consecutiveDividendYears": intg(),
			"isProfitable":             boolean(),
			"roe":                      num(),
			"avgRoe3Y":                 num(),
			"isRoeStable":              boolean(),
			"averageVolume20d":         num(),
			"isLiquid":                 boolean(),
		}),
	"chartData": array(object(
		[]string{"date", "price", "river25", "river50", "river75", "river90"},
		map[string]*genai.Schema{
			"date":    str(),
			"price":   num(),
			"river25": num(),
			"river50": num(),
			"river75": num(),
			"river90": num(),
		})),
	"narrative": object(
		[]string{"conflictReason", "story", "outlook"},
		map[string]*genai.Schema{
			"conflictReason": str(),
			"story": object(
				[]string{"protagonist", "events", "actions"},
				map[string]*genai.Schema{
					"protagonist": str(),
					"events":      str(),
					"actions":     str(),
				}),
			"outlook": str(),
		}),
})

var ScannerSchema = object(ResultsKeys, map[string]*genai.Schema{
	"results": array(object(
		[]string{"ticker", "name", "currentPrice", "currentPB", "greenThreshold", "gapToThreshold", "isGreenZone", "dividendYield", "consecutiveYears", "roe", "avgRoe3Y", "eps", "epsGrowth", "isRoeStable", "averageVolume20d", "isLiquid", "isSafe", "isLongTermInvest", "retailCountCurrent", "retailCountPrevious", "isRetailDecreasing", "monthlyTrendDesc", "dailyPullbackDesc"},
		map[string]*genai.Schema{
			"ticker":              str(),
			"name":                str(),
			"currentPrice":        num(),
			"currentPB":           num(),
			"greenThreshold":      num(),
			"gapToThreshold":      num(),
			"isGreenZone":         boolean(),
			"dividendYield":       num(),
			"consecutiveYears":    intg(),
			"roe":                 num(),
			"avgRoe3Y":            num(),
			"eps":                 num(),
			"epsGrowth":           num(),
			"isRoeStable":         boolean(),
			"averageVolume20d":    num(),
			"isLiquid":            boolean(),
			"isSafe":              boolean(),
			"isLongTermInvest":    boolean(),
			"retailCountCurrent":  num(),
			"retailCountPrevious": num(),
			"isRetailDecreasing":  boolean(),
			"monthlyTrendDesc":    str(),
			"dailyPullbackDesc":   str(),
		})),
})

var MarketSchema = object(ResultsKeys, map[string]*genai.Schema{
	"results": array(object(
		[]string{"ticker", "name", "currentPrice", "priceLevel", "deviationFromYearly", "deviationFromQuarterly", "drawdownFromHigh", "dividendYield", "status", "signal", "description"},
		map[string]*genai.Schema{
			"ticker":                 str(),
			"name":                   str(),
			"currentPrice":           num(),
			"priceLevel":             num(),
			"deviationFromYearly":    num(),
			"deviationFromQuarterly": num(),
			"drawdownFromHigh":       num(),
			"dividendYield":          num(),
			"status":                 enum("crisis_buy", "bull_pullback", "neutral", "overheated"),
			"signal":                 str(),
			"description":            str(),
		})),
})

var NewsSchema = object(NewsKeys, map[string]*genai.Schema{
	"news": array(object(
		[]string{"title", "summary", "category", "sentiment", "impactLevel", "relatedTickers", "keywords"},
		map[string]*genai.Schema{
			"title":          str(),
			"summary":        str(),
			"category":       enum("Hype", "Chips", "Community", "Event", "Policy"),
			"sentiment":      enum("positive", "negative", "neutral"),
			"impactLevel":    enum("high", "medium", "low"),
			"relatedTickers": array(str()),
			"keywords":       array(str()),
		})),
	"pulse": object(
		[]string{"trendSummary", "hotSectors"},
		map[string]*genai.Schema{
			"trendSummary": str(),
			"hotSectors": array(object(
				[]string{"name", "intensity", "reason"},
				map[string]*genai.Schema{
					"name":      str(),
					"intensity": num(),
					"reason":    str(),
				})),
		}),
})
