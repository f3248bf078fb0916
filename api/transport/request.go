package transport

type TaskRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    int     `json:"priority"`
	EffortHours float64 `json:"effort_hours"`
}

type WorkdayRequest struct {
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_minutes"`
}

// PlanRequest selects the day to plan; an empty date means today.
type PlanRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

type AuthLoginRequest struct {
	UserID string `json:"user_id"`
	TTL    int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}
