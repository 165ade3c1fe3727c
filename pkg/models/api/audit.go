package api

import "time"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Issue struct {
	Code           string   `json:"code"`
	Severity       Severity `json:"severity"`
	PointDeduction int      `json:"point_deduction"`
}

type DimensionResult struct {
	Name      string  `json:"name"`
	BaseScore int     `json:"base_score"`
	Issues    []Issue `json:"issues"`
	Score     int     `json:"score"`
}

type AuditReport struct {
	Account      string                     `json:"account"`
	OverallScore int                        `json:"overall_score"`
	Dimensions   map[string]DimensionResult `json:"dimensions"`
	Grade        string                     `json:"grade"`
	TotalIssues  int                        `json:"total_issues"`
}

type AuditRun struct {
	ID              string         `json:"id"`
	OverallScore    int            `json:"overall_score"`
	Grade           string         `json:"grade"`
	TotalIssues     int            `json:"total_issues"`
	DimensionScores map[string]int `json:"dimension_scores"`
	CreatedAt       time.Time      `json:"created_at"`
}
