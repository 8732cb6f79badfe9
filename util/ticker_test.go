package util

import (
	"testing"

	"twscreener/customerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTicker(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{"bare code", "2881", "2881.TW", false},
		{"lower case with spaces", " 2330 ", "2330.TW", false},
		{"already suffixed", "2330.TW", "2330.TW", false},
		{"otc suffix", "6488.two", "6488.TWO", false},
		{"etf", "00878", "00878.TW", false},
		{"index", "^TWII", "^TWII", false},
		{"empty", "", "", true},
		{"too short", "2", "", true},
		{"spaces inside", "23 30", "", true},
		{"injection", "2330; drop", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTicker(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, customerrors.ErrInvalidTicker)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
