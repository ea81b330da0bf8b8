package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var referenceNow = time.Date(2026, 10, 18, 15, 42, 7, 0, time.UTC)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		start         string
		end           string
		expectedLabel string
		expectedStart time.Time
		expectedEnd   time.Time
		expectedDays  int
	}{
		{
			name:          "last 7 days",
			token:         "7d",
			expectedLabel: PeriodLast7Days,
			expectedStart: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  7,
		},
		{
			name:          "last 30 days",
			token:         "30d",
			expectedLabel: PeriodLast30Days,
			expectedStart: time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  30,
		},
		{
			name:          "last 90 days",
			token:         "90d",
			expectedLabel: PeriodLast90Days,
			expectedStart: time.Date(2026, 7, 21, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  90,
		},
		{
			name:          "last year is 365 days",
			token:         "1y",
			expectedLabel: PeriodLastYear,
			expectedStart: time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  365,
		},
		{
			name:          "unknown token falls back to 30 days",
			token:         "abc",
			expectedLabel: PeriodLast30Days,
			expectedStart: time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  30,
		},
		{
			name:          "empty token falls back to 30 days",
			expectedLabel: PeriodLast30Days,
			expectedStart: time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  30,
		},
		{
			name:          "custom range",
			token:         "custom",
			start:         "2026-01-01",
			end:           "2026-01-31",
			expectedLabel: PeriodCustom,
			expectedStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 1, 31, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  31,
		},
		{
			name:          "explicit bounds override a rolling token",
			token:         "7d",
			start:         "2026-03-01T10:00:00Z",
			end:           "2026-03-02T08:00:00Z",
			expectedLabel: PeriodCustom,
			expectedStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 3, 2, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  2,
		},
		{
			name:          "custom without end falls back to 30 days",
			token:         "custom",
			start:         "2026-01-01",
			expectedLabel: PeriodLast30Days,
			expectedStart: time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  30,
		},
		{
			name:          "custom with unparsable start falls back to 30 days",
			token:         "custom",
			start:         "yesterday",
			end:           "2026-01-31",
			expectedLabel: PeriodLast30Days,
			expectedStart: time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  30,
		},
		{
			name:          "custom with end before start falls back to 30 days",
			token:         "custom",
			start:         "2026-02-01",
			end:           "2026-01-01",
			expectedLabel: PeriodLast30Days,
			expectedStart: time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 10, 18, 23, 59, 59, 999999000, time.UTC),
			expectedDays:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := ResolvePeriod(tt.token, tt.start, tt.end, referenceNow)

			assert.Equal(t, tt.expectedLabel, period.Label)
			assert.True(t, tt.expectedStart.Equal(period.StartDate), "start %s", period.StartDate)
			assert.True(t, tt.expectedEnd.Equal(period.EndDate), "end %s", period.EndDate)
			assert.Equal(t, time.Duration(tt.expectedDays)*24*time.Hour, period.Length())
			assert.Len(t, period.Buckets(GranularityDay), tt.expectedDays)

			assert.Equal(t, period.StartDate.Add(-PeriodUnit), period.PreviousEndDate)
			assert.Equal(t, period.EndDate.Sub(period.StartDate), period.PreviousEndDate.Sub(period.PreviousStartDate))
		})
	}
}

func TestResolvePeriodCustomRangeLimit(t *testing.T) {
	tests := []struct {
		name          string
		start         string
		end           string
		expectedLabel string
		expectedDays  int
	}{
		{
			name:          "longest allowed range",
			start:         "2021-10-15",
			end:           "2026-10-18",
			expectedLabel: PeriodCustom,
			expectedDays:  MaxCustomPeriodDays,
		},
		{
			name:          "one day over the limit falls back",
			start:         "2021-10-14",
			end:           "2026-10-18",
			expectedLabel: PeriodLast30Days,
			expectedDays:  30,
		},
		{
			name:          "centuries fall back",
			start:         "1700-01-01",
			end:           "2100-12-31",
			expectedLabel: PeriodLast30Days,
			expectedDays:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := ResolvePeriod(PeriodCustom, tt.start, tt.end, referenceNow)

			assert.Equal(t, tt.expectedLabel, period.Label)
			assert.Len(t, period.Buckets(GranularityDay), tt.expectedDays)

			assert.Equal(t, period.StartDate.AddDate(0, 0, -tt.expectedDays), period.PreviousStartDate)
			assert.Equal(t, period.Length(), period.Previous().Length())
			assert.Len(t, period.Previous().Buckets(GranularityDay), tt.expectedDays)
		})
	}
}

func TestResolvePeriodIsDeterministic(t *testing.T) {
	first := ResolvePeriod("90d", "", "", referenceNow)
	second := ResolvePeriod("90d", "", "", referenceNow)

	assert.Equal(t, first, second)
}

func TestResolvePeriodUsesUTCDay(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 10, 18, 22, 30, 0, 0, saoPaulo)

	period := ResolvePeriod("7d", "", "", now)

	assert.Equal(t, time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC), period.StartDate)
	assert.Equal(t, time.Date(2026, 10, 19, 23, 59, 59, 999999000, time.UTC), period.EndDate)
}

func TestPeriodPrevious(t *testing.T) {
	period := ResolvePeriod("30d", "", "", referenceNow)

	previous := period.Previous()

	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), previous.StartDate)
	assert.Equal(t, time.Date(2026, 9, 18, 23, 59, 59, 999999000, time.UTC), previous.EndDate)
	assert.Equal(t, period.Length(), previous.Length())
}

func TestPeriodBuckets(t *testing.T) {
	period := ResolvePeriod("custom", "2026-09-01", "2026-10-18", referenceNow)

	t.Run("weeks start on monday", func(t *testing.T) {
		buckets := period.Buckets(GranularityWeek)

		assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), buckets[0])
		assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), buckets[len(buckets)-1])
		for _, b := range buckets {
			assert.Equal(t, time.Monday, b.Weekday())
		}
	})

	t.Run("months", func(t *testing.T) {
		buckets := period.Buckets(GranularityMonth)

		assert.Equal(t, []time.Time{
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		}, buckets)
	})
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, GranularityDay, ParseGranularity(""))
	assert.Equal(t, GranularityDay, ParseGranularity("hour"))
	assert.Equal(t, GranularityWeek, ParseGranularity("week"))
	assert.Equal(t, GranularityMonth, ParseGranularity(" Month "))
}
