package validator

import (
	"regexp"

	"github.com/Oudwins/zog"
)

// TickerPattern accepts bare codes (2330), suffixed codes (2330.TW) and
// index symbols (^TWII).
var TickerPattern = regexp.MustCompile(`^\^?[0-9A-Z]{2,8}(\.[A-Z]{2,4})?$`)

var TickerShape = zog.Shape{
	"Ticker": zog.String().Required().Min(2).Max(16).Match(TickerPattern),
}

var TickerSchema = zog.Struct(TickerShape)
