// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goaltracker/backend/internal/domain/entity"
)

// RecordProgressRequest represents the request body for recording progress
// against a goal. Recording twice for the same day overwrites that day's value.
type RecordProgressRequest struct {
	Value float64 `json:"value" binding:"min=0"`
	Date  string  `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes string  `json:"notes,omitempty"`
}

// ProgressEntryResponse represents a single progress entry in API responses.
type ProgressEntryResponse struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goal_id"`
	Date      string    `json:"date"`
	Value     float64   `json:"value"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordProgressResponse represents the response for recording progress. It
// carries the updated goal so clients see the new cumulative progress and
// status without another round trip.
type RecordProgressResponse struct {
	Entry ProgressEntryResponse `json:"entry"`
	Goal  GoalResponse          `json:"goal"`
}

// ProgressListResponse represents the response for listing progress history.
type ProgressListResponse struct {
	Entries []ProgressEntryResponse `json:"entries"`
}

// ToProgressEntryResponse converts a domain ProgressEntry to its DTO.
func ToProgressEntryResponse(e *entity.ProgressEntry) ProgressEntryResponse {
	return ProgressEntryResponse{
		ID:        e.ID.String(),
		GoalID:    e.GoalID.String(),
		Date:      e.Date.Format("2006-01-02"),
		Value:     e.Value,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToProgressListResponse converts a list of entries to a ProgressListResponse.
func ToProgressListResponse(entries []*entity.ProgressEntry) ProgressListResponse {
	responses := make([]ProgressEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToProgressEntryResponse(e)
	}
	return ProgressListResponse{
		Entries: responses,
	}
}
