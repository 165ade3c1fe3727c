package store

import "time"

// AuditRun is one persisted audit outcome, kept so the dashboard can show
// score trends per account.
type AuditRun struct {
	ID              string
	Account         string
	OverallScore    int
	Grade           string
	TotalIssues     int
	DimensionScores map[string]int
	CreatedAt       time.Time
}

// CreativeStatus is the last known fatigue state of a creative, used to
// detect status flips for alerting.
type CreativeStatus struct {
	Account    string
	CreativeID string
	Status     string
	Score      int
	UpdatedAt  time.Time
}
