package domain

import "time"

// WorkdayConfig describes the window the day planner may fill for a user.
// StartTime and EndTime are 24-hour "HH:MM" strings; BreakMinutes is the gap
// inserted between consecutive scheduled blocks.
type WorkdayConfig struct {
	UserID       string    `json:"user_id,omitempty"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	BreakMinutes int       `json:"break_minutes"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// BreakDuration returns the configured inter-task break.
func (c WorkdayConfig) BreakDuration() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}
