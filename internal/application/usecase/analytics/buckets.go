// Package analytics contains the read-side aggregation use cases.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// Granularity determines how progress entries are bucketed into chart points.
type Granularity string

const (
	// GranularityWeekly buckets entries by ISO week, Monday through Sunday.
	GranularityWeekly Granularity = "weekly"
	// GranularityMonthly buckets entries by calendar month.
	GranularityMonthly Granularity = "monthly"
)

// Trailing window sizes for the dashboard charts.
const (
	weeklyBucketCount  = 8
	monthlyBucketCount = 6
)

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// ChartPoint represents one bucket in a rollup chart.
type ChartPoint struct {
	Date       time.Time       `json:"date"`
	Label      string          `json:"label"`
	Total      decimal.Decimal `json:"total"`
	EntryCount int             `json:"entry_count"`
}

// periodLabel generates a human-readable label for a bucket.
// Weekly buckets read "W{week} {year}", monthly buckets "{month_abbr} {year}".
func periodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		_, week := date.ISOWeek()
		return fmt.Sprintf("W%d %d", week, date.Year())
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	default:
		return date.Format("02/01/2006")
	}
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, time.UTC)
}

// monthStart returns the first day of the month containing the given date.
func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// bucketKey maps a date to the start of its bucket for the given granularity.
func bucketKey(date time.Time, granularity Granularity) time.Time {
	if granularity == GranularityWeekly {
		return weekStart(date)
	}
	return monthStart(date)
}

// Rollup buckets progress entries into a trailing series of chart points
// ending at the bucket containing now. Buckets with no entries still appear
// with a zero total so charts render without gaps.
func Rollup(entries []*entity.ProgressEntry, now time.Time, granularity Granularity) []ChartPoint {
	count := weeklyBucketCount
	if granularity == GranularityMonthly {
		count = monthlyBucketCount
	}

	// Generate every bucket start in the trailing window, oldest first.
	starts := make([]time.Time, 0, count)
	last := bucketKey(entity.NormalizeDay(now), granularity)
	for i := count - 1; i >= 0; i-- {
		var start time.Time
		if granularity == GranularityWeekly {
			start = last.AddDate(0, 0, -7*i)
		} else {
			start = last.AddDate(0, -i, 0)
		}
		starts = append(starts, start)
	}

	sums := make(map[time.Time]decimal.Decimal, count)
	counts := make(map[time.Time]int, count)
	for _, e := range entries {
		key := bucketKey(e.Date, granularity)
		sums[key] = sums[key].Add(decimal.NewFromFloat(e.Value))
		counts[key]++
	}

	points := make([]ChartPoint, 0, count)
	for _, start := range starts {
		total, ok := sums[start]
		if !ok {
			total = decimal.Zero
		}
		points = append(points, ChartPoint{
			Date:       start,
			Label:      periodLabel(start, granularity),
			Total:      total,
			EntryCount: counts[start],
		})
	}
	return points
}
