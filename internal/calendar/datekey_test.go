package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{
			name: "Ordinary day",
			date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name: "Leap day",
			date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
		},
		{
			name: "Last day of leap February",
			date: time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local),
		},
		{
			name: "DST spring transition day (US)",
			date: time.Date(2025, 3, 9, 12, 0, 0, 0, time.Local),
		},
		{
			name: "DST fall transition day (US)",
			date: time.Date(2025, 11, 2, 12, 0, 0, 0, time.Local),
		},
		{
			name: "New year boundary",
			date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "Year end",
			date: time.Date(2025, 12, 31, 23, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ToDateKey(tt.date)
			parsed, err := FromDateKey(key)
			require.NoError(t, err)

			assert.Equal(t, tt.date.Year(), parsed.Year())
			assert.Equal(t, tt.date.Month(), parsed.Month())
			assert.Equal(t, tt.date.Day(), parsed.Day())
		})
	}
}

func TestDateKeyRoundTripFullLeapFebruary(t *testing.T) {
	for day := 1; day <= 29; day++ {
		d := time.Date(2024, 2, day, 0, 0, 0, 0, time.Local)
		parsed, err := FromDateKey(ToDateKey(d))
		require.NoError(t, err)
		assert.Equal(t, day, parsed.Day())
		assert.Equal(t, time.February, parsed.Month())
	}
}

func TestToDateKeyZeroPadding(t *testing.T) {
	d := time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-03-05", ToDateKey(d))
}

func TestFromDateKeyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "Garbage", key: "not-a-date"},
		{name: "Month out of range", key: "2025-13-01"},
		{name: "Day out of range", key: "2025-01-32"},
		{name: "Feb 30 normalizes away", key: "2025-02-30"},
		{name: "Feb 29 in a non-leap year", key: "2025-02-29"},
		{name: "Empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDateKey(tt.key)
			assert.Error(t, err)
		})
	}
}

func TestFromDateKeyUsesLocalTime(t *testing.T) {
	parsed, err := FromDateKey("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Local, parsed.Location())
	assert.Equal(t, 0, parsed.Hour())
}
