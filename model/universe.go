package model

// FinancialStocks is the financial-sector scan universe.
var FinancialStocks = []string{
	"2881", "2882", "2891", "2886", "2884", "2892", "2880", "2885", "2883", "2890",
	"2887", "2888", "5880", "2889", "2834", "2812", "2838", "2845", "2897", "5876",
	"2850", "2851", "6005",
}

// MarketTickers is the index and ETF universe of the market guide.
var MarketTickers = []string{
	"^TWII", "0050.TW", "0056.TW", "006208.TW", "00878.TW",
}
