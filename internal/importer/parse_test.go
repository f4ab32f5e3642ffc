package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"day month year with slashes", "25/12/1990", time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"iso", "1990-12-25", time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"day month year with dashes", "25-12-1990", time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"month day year when day position is out of range", "12/25/1990", time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 timestamp", "1990-12-25T00:00:00Z", time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"datetime with space separator", "1990-12-25 14:30:00", time.Date(1990, 12, 25, 14, 30, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseDate(tc.input)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("ambiguous dates read day first", func(t *testing.T) {
		got, ok := parseDate("02/03/2020")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("unparseable falls back to now", func(t *testing.T) {
		before := time.Now().UTC()
		got, ok := parseDate("not-a-date")
		assert.False(t, ok)
		assert.False(t, got.Before(before.Add(-time.Second)))
	})

	t.Run("blank falls back to now", func(t *testing.T) {
		_, ok := parseDate("  ")
		assert.False(t, ok)
	})
}

func TestParseSalary(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain integer", "4500000", 4500000, true},
		{"currency symbol and dot separators", "$1.500.000", 1500000, true},
		{"comma separators", "1,500,000", 1500000, true},
		{"blank is zero", "", 0, true},
		{"decimal point digits collapse into the integer", "1,234.56", 123456, true},
		{"garbage is zero", "abc", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseSalary(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
