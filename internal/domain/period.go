package domain

import (
	"strings"
	"time"
)

const (
	PeriodLast7Days  = "7d"
	PeriodLast30Days = "30d"
	PeriodLast90Days = "90d"
	PeriodLastYear   = "1y"
	PeriodCustom     = "custom"

	DefaultPeriod = PeriodLast30Days
)

// PeriodUnit is the gap between the end of one period and the start of the next.
// It matches the resolution of a Postgres timestamp.
const PeriodUnit = time.Microsecond

const DateLayout = "2006-01-02"

// MaxCustomPeriodDays bounds explicit ranges. Longer requests resolve to the default period.
const MaxCustomPeriodDays = 5 * 366

var periodDays = map[string]int{
	PeriodLast7Days:  7,
	PeriodLast30Days: 30,
	PeriodLast90Days: 90,
	PeriodLastYear:   365,
}

// StandardPeriods lists the rolling windows the dashboards offer.
var StandardPeriods = []string{PeriodLast7Days, PeriodLast30Days, PeriodLast90Days, PeriodLastYear}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func ParseGranularity(s string) Granularity {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case GranularityWeek:
		return GranularityWeek
	case GranularityMonth:
		return GranularityMonth
	default:
		return GranularityDay
	}
}

// Period is a closed time window [StartDate, EndDate] together with the window of equal length
// that immediately precedes it.
type Period struct {
	Label             string
	StartDate         time.Time
	EndDate           time.Time
	PreviousStartDate time.Time
	PreviousEndDate   time.Time
}

// ResolvePeriod turns dashboard parameters into concrete bounds. Explicit start and end dates win
// over the token when both parse; otherwise unknown or incomplete input resolves to the 30 day
// default. It never fails.
func ResolvePeriod(token, start, end string, now time.Time) Period {
	if from, to, ok := parseBounds(start, end); ok {
		return newPeriod(PeriodCustom, from, to)
	}

	token = strings.ToLower(strings.TrimSpace(token))
	days, ok := periodDays[token]
	if !ok {
		token = DefaultPeriod
		days = periodDays[DefaultPeriod]
	}

	today := startOfDay(now)

	return newPeriod(token, today.AddDate(0, 0, -(days-1)), endOfDay(today))
}

// newPeriod expects day aligned bounds: start at midnight, end on the last microsecond of a day.
func newPeriod(label string, start, end time.Time) Period {
	return Period{
		Label:             label,
		StartDate:         start,
		EndDate:           end,
		PreviousStartDate: start.AddDate(0, 0, -daysBetween(start, end)),
		PreviousEndDate:   start.Add(-PeriodUnit),
	}
}

// daysBetween counts the calendar days from start's day to end's day, both included.
func daysBetween(start, end time.Time) int {
	return int((startOfDay(end).Unix()-startOfDay(start).Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// Length is the covered duration, counting the final microsecond.
func (p Period) Length() time.Duration {
	return p.EndDate.Sub(p.StartDate) + PeriodUnit
}

// Previous returns the comparison window as a period of its own.
func (p Period) Previous() Period {
	return newPeriod(p.Label, p.PreviousStartDate, p.PreviousEndDate)
}

// Buckets lists the start of every bucket touched by the period, oldest first.
func (p Period) Buckets(g Granularity) []time.Time {
	buckets := []time.Time{}
	last := BucketStart(p.EndDate, g)
	for b := BucketStart(p.StartDate, g); !b.After(last); b = bucketNext(b, g) {
		buckets = append(buckets, b)
	}

	return buckets
}

// BucketStart truncates t the way date_trunc does: weeks start on Monday.
func BucketStart(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	switch g {
	case GranularityWeek:
		day := startOfDay(t)
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return startOfDay(t)
	}
}

func bucketNext(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func parseBounds(start, end string) (time.Time, time.Time, bool) {
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, false
	}

	from, err := parseDay(start)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	to, err := parseDay(end)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	if to.Before(from) || daysBetween(from, to) > MaxCustomPeriodDays {
		return time.Time{}, time.Time{}, false
	}

	return from, endOfDay(to), true
}

func parseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}

	return startOfDay(t), nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-PeriodUnit)
}
