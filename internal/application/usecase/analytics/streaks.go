// Package analytics contains the read-side aggregation use cases.
package analytics

import (
	"time"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// streakWindowDays is the trailing calendar window examined for streaks.
const streakWindowDays = 30

// StreakInfo summarizes a user's logging consistency over the trailing window.
type StreakInfo struct {
	Current    int         `json:"current"`
	Longest    int         `json:"longest"`
	ActiveDays int         `json:"active_days"`
	Calendar   []time.Time `json:"calendar"`
}

// ComputeStreaks scans the trailing 30 days of progress entries. The current
// streak is the run of consecutive active days ending at today; the longest
// streak is the maximum run anywhere in the window. Multiple entries on one
// day count as a single active day.
func ComputeStreaks(entries []*entity.ProgressEntry, now time.Time) StreakInfo {
	today := entity.NormalizeDay(now)
	windowStart := today.AddDate(0, 0, -(streakWindowDays - 1))

	active := make(map[time.Time]bool, streakWindowDays)
	for _, e := range entries {
		day := entity.NormalizeDay(e.Date)
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		active[day] = true
	}

	var (
		longest, run int
		calendar     []time.Time
	)
	for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		if active[day] {
			run++
			calendar = append(calendar, day)
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	// The final run only counts as current if it reaches today.
	current := 0
	if active[today] {
		current = run
	}

	return StreakInfo{
		Current:    current,
		Longest:    longest,
		ActiveDays: len(active),
		Calendar:   calendar,
	}
}
