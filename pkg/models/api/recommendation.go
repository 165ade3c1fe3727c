package api

type PriorityInput struct {
	Severity         Severity `json:"severity"`
	EstimatedImpact  float64  `json:"estimated_impact"`
	Difficulty       string   `json:"difficulty"`
	AffectedEntities int      `json:"affected_entities"`
}

type PriorityResult struct {
	PriorityScore int `json:"priority_score"`
}

type Recommendation struct {
	ID               string   `json:"id"`
	Dimension        string   `json:"dimension"`
	IssueCode        string   `json:"issue_code"`
	Title            string   `json:"title"`
	Action           string   `json:"action"`
	Severity         Severity `json:"severity"`
	EstimatedImpact  float64  `json:"estimated_impact"`
	Difficulty       string   `json:"difficulty"`
	AffectedEntities int      `json:"affected_entities"`
	PriorityScore    int      `json:"priority_score"`
}

type AdAccount struct {
	Name string `json:"name"`
}
