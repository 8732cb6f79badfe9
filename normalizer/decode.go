package normalizer

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

const previewLimit = 200

// Decode parses sanitized text. A parse error is logged and reported as
// absent (nil, false), never returned to the caller.
func Decode(text string) (any, bool) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		log.Warn().
			Err(err).
			Int("length", len(text)).
			Str("preview", preview(text)).
			Msg("Failed to parse model response")
		return nil, false
	}
	return value, true
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLimit {
		return s
	}
	return string(r[:previewLimit]) + "..."
}
