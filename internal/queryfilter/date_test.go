package queryfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_Separators(t *testing.T) {
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2024-03-15", "2024/03/15", "2024.03.15", "2024-3-15"} {
		got, err := ParseDay(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"month out of range", "2024-13-01"},
		{"nonexistent day", "2024-02-31"},
		{"missing parts", "2024-03"},
		{"too many parts", "2024-03-15-10"},
		{"non numeric", "2024-mar-15"},
		{"empty", ""},
		{"garbage", "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDay(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseDay_LeapYear(t *testing.T) {
	_, err := ParseDay("2024-02-29")
	assert.NoError(t, err)

	_, err = ParseDay("2023-02-29")
	assert.Error(t, err)
}
