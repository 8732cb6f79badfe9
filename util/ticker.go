package util

import (
	"fmt"
	"strings"

	"twscreener/customerrors"
	"twscreener/model"
	"twscreener/validator"
)

const defaultExchangeSuffix = ".TW"

// FormatTicker validates a user supplied ticker and appends the TWSE suffix
// when no exchange suffix is present. Index symbols (^TWII) are kept as is.
func FormatTicker(raw string) (string, error) {
	input := model.TickerInput{Ticker: strings.ToUpper(strings.TrimSpace(raw))}
	if issues := validator.TickerSchema.Validate(&input); len(issues) > 0 {
		return "", fmt.Errorf("%w: %q", customerrors.ErrInvalidTicker, raw)
	}

	if strings.Contains(input.Ticker, ".") || strings.HasPrefix(input.Ticker, "^") {
		return input.Ticker, nil
	}
	return input.Ticker + defaultExchangeSuffix, nil
}
