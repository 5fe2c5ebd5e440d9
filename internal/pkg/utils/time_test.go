package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToCanonicalDate(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"already canonical", "1992-03-07", "1992-03-07"},
		{"day first dashes", "07-03-1992", "1992-03-07"},
		{"day first slashes", "07/03/1992", "1992-03-07"},
		{"single digit parts", "7/3/1992", "1992-03-07"},
		{"surrounding spaces", " 07-03-1992 ", "1992-03-07"},
		{"month out of range", "07-13-1992", ""},
		{"day out of range", "32-03-1992", ""},
		{"two parts", "03-1992", ""},
		{"free text", "last tuesday", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToCanonicalDate(tc.input))
		})
	}
}

func TestToCanonicalDateIdempotent(t *testing.T) {
	once := ToCanonicalDate("07/03/1992")
	assert.Equal(t, once, ToCanonicalDate(once))
}

func TestToOffsetTimestamp(t *testing.T) {
	t.Run("positive offset", func(t *testing.T) {
		zone := time.FixedZone("IST", 5*3600+1800)
		instant := time.Date(2026, 8, 31, 10, 30, 0, 0, zone)
		assert.Equal(t, "2026-08-31T10:30:00+05:30", ToOffsetTimestamp(instant))
	})

	t.Run("negative offset", func(t *testing.T) {
		zone := time.FixedZone("EST", -5*3600)
		instant := time.Date(2026, 1, 15, 23, 59, 59, 0, zone)
		assert.Equal(t, "2026-01-15T23:59:59-05:00", ToOffsetTimestamp(instant))
	})

	t.Run("zero offset", func(t *testing.T) {
		instant := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026-06-01T00:00:00+00:00", ToOffsetTimestamp(instant))
	})
}

func TestLocalFormInputToOffsetTimestamp(t *testing.T) {
	t.Run("date and time", func(t *testing.T) {
		result := LocalFormInputToOffsetTimestamp("2026-08-31T10:30")
		assert.Contains(t, result, "2026-08-31T10:30:00")
	})

	t.Run("date only", func(t *testing.T) {
		result := LocalFormInputToOffsetTimestamp("2026-08-31")
		assert.Contains(t, result, "2026-08-31T00:00:00")
	})

	t.Run("empty defaults to now", func(t *testing.T) {
		before := time.Now().Add(-time.Minute)
		parsed, err := time.Parse("2006-01-02T15:04:05-07:00", LocalFormInputToOffsetTimestamp(""))
		assert.NoError(t, err)
		assert.True(t, parsed.After(before))
	})

	t.Run("unparseable defaults to now", func(t *testing.T) {
		parsed, err := time.Parse("2006-01-02T15:04:05-07:00", LocalFormInputToOffsetTimestamp("not a date"))
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), parsed, time.Minute)
	})
}
