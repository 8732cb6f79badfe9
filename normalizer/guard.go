package normalizer

import (
	"fmt"

	"twscreener/customerrors"
)

// Guard checks that a decoded value is an object carrying every required
// top-level key. It does not look any deeper.
func Guard(value any, ok bool, required ...string) (map[string]any, error) {
	if !ok {
		return nil, fmt.Errorf("%w: %w", customerrors.ErrInvalidResponseShape, customerrors.ErrDecodeFailure)
	}

	root, isObject := value.(map[string]any)
	if !isObject {
		return nil, fmt.Errorf("%w: top-level value is %s, want object", customerrors.ErrInvalidResponseShape, kindOf(value))
	}

	for _, key := range required {
		if v, found := root[key]; !found || v == nil {
			return nil, fmt.Errorf("%w: missing %q", customerrors.ErrInvalidResponseShape, key)
		}
	}
	return root, nil
}
