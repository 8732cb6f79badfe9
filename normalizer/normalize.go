package normalizer

import (
	"fmt"

	"twscreener/customerrors"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Result is a successfully normalized model answer.
type Result[T any] struct {
	Value   T
	Dropped []Issue
}

// Normalize runs raw model text through sanitize, decode, guard, schema
// conformance and typed decoding. Any failure is ErrInvalidResponseShape.
func Normalize[T any](raw string, schema *genai.Schema, required ...string) (*Result[T], error) {
	value, ok := Decode(Sanitize(raw))

	root, err := Guard(value, ok, required...)
	if err != nil {
		return nil, err
	}

	cleaned, dropped, fatal := Conform(root, schema)
	if len(fatal) > 0 {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrInvalidResponseShape, fatal[0])
	}
	for _, issue := range dropped {
		log.Warn().Str("path", issue.Path).Str("reason", issue.Reason).Msg("Dropped malformed element")
	}

	var out T
	if err := decodeInto(cleaned, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrInvalidResponseShape, err)
	}
	return &Result[T]{Value: out, Dropped: dropped}, nil
}

func decodeInto(input any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
