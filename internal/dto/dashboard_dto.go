package dto

import "github.com/am-i-cooked/cooked-api/internal/progress"

// DashboardResponse is the full derived snapshot: current week, cooked
// stats and the catch-up feed. Remaining counts the feed candidates that did
// not fit the display budget.
type DashboardResponse struct {
	CurrentWeek int                 `json:"current_week"`
	TotalWeeks  int                 `json:"total_weeks"`
	Stats       progress.Stats      `json:"stats"`
	Feed        []progress.FeedItem `json:"feed"`
	Remaining   int                 `json:"remaining"`
}
