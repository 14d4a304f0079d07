// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goaltracker/backend/internal/application/usecase/analytics"
)

// ChartPointResponse represents one aggregated chart bucket.
type ChartPointResponse struct {
	Date       string  `json:"date"`
	Label      string  `json:"label"`
	Total      float64 `json:"total"`
	EntryCount int     `json:"entry_count"`
}

// StreakResponse represents streak statistics over the trailing 30 days.
type StreakResponse struct {
	Current    int      `json:"current"`
	Longest    int      `json:"longest"`
	ActiveDays int      `json:"active_days"`
	Calendar   []string `json:"calendar"`
}

// OverviewResponse represents the goal count statistics.
type OverviewResponse struct {
	TotalGoals     int     `json:"total_goals"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	NotStarted     int     `json:"not_started"`
	Abandoned      int     `json:"abandoned"`
	CompletionRate float64 `json:"completion_rate"`
	AvgProgress    float64 `json:"avg_progress"`
}

// AnalyticsResponse represents the full analytics payload.
type AnalyticsResponse struct {
	Overview           OverviewResponse     `json:"overview"`
	WeeklyChart        []ChartPointResponse `json:"weekly_chart"`
	MonthlyChart       []ChartPointResponse `json:"monthly_chart"`
	Streaks            StreakResponse       `json:"streaks"`
	RecentAchievements []GoalResponse       `json:"recent_achievements"`
}

// ToAnalyticsResponse converts the overview use case output to its DTO.
func ToAnalyticsResponse(output *analytics.GetOverviewOutput) AnalyticsResponse {
	achievements := make([]GoalResponse, len(output.RecentAchievements))
	for i, g := range output.RecentAchievements {
		achievements[i] = ToGoalResponse(g)
	}

	return AnalyticsResponse{
		Overview: OverviewResponse{
			TotalGoals:     output.Overview.TotalGoals,
			Completed:      output.Overview.Completed,
			InProgress:     output.Overview.InProgress,
			NotStarted:     output.Overview.NotStarted,
			Abandoned:      output.Overview.Abandoned,
			CompletionRate: output.Overview.CompletionRate,
			AvgProgress:    output.Overview.AvgProgress,
		},
		WeeklyChart:  toChartPoints(output.WeeklyChart),
		MonthlyChart: toChartPoints(output.MonthlyChart),
		Streaks: StreakResponse{
			Current:    output.Streaks.Current,
			Longest:    output.Streaks.Longest,
			ActiveDays: output.Streaks.ActiveDays,
			Calendar:   toDateStrings(output.Streaks.Calendar),
		},
		RecentAchievements: achievements,
	}
}

func toChartPoints(points []analytics.ChartPoint) []ChartPointResponse {
	responses := make([]ChartPointResponse, len(points))
	for i, p := range points {
		responses[i] = ChartPointResponse{
			Date:       p.Date.Format("2006-01-02"),
			Label:      p.Label,
			Total:      p.Total.InexactFloat64(),
			EntryCount: p.EntryCount,
		}
	}
	return responses
}

func toDateStrings(days []time.Time) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format("2006-01-02")
	}
	return out
}
