package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// severityPoints is the single source of truth for severity base points.
// Ordinal order implies point order; never recompute these elsewhere.
var severityPoints = map[Severity]int{
	SeverityCritical: 100,
	SeverityHigh:     70,
	SeverityMedium:   40,
	SeverityLow:      20,
}

// Points returns the base-point value for the severity, or an error for
// values outside the enum.
func (s Severity) Points() (int, error) {
	pts, ok := severityPoints[s]
	if !ok {
		return 0, &InvalidEnumError{Kind: "severity", Value: int(s)}
	}
	return pts, nil
}

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

type Difficulty int

const (
	DifficultyOneClick Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyComplex
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyOneClick:
		return "one_click"
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyComplex:
		return "complex"
	default:
		return "unknown"
	}
}

type DimensionName string

const (
	DimensionStructure DimensionName = "structure"
	DimensionCreative  DimensionName = "creative"
	DimensionAudience  DimensionName = "audience"
	DimensionBudget    DimensionName = "budget"
	DimensionTracking  DimensionName = "tracking"
)

// AuditDimensions lists every dimension an audit must cover, in report order.
func AuditDimensions() []DimensionName {
	return []DimensionName{
		DimensionStructure,
		DimensionCreative,
		DimensionAudience,
		DimensionBudget,
		DimensionTracking,
	}
}

// Issue is an immutable finding attached to one audit dimension. Point
// deductions come from the static issue catalog keyed by code, never from
// the caller.
type Issue struct {
	Code           string
	Severity       Severity
	PointDeduction int
}

type DimensionResult struct {
	Name      DimensionName
	BaseScore int
	Issues    []Issue
	Score     int
}

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// AuditInput maps every audit dimension to the issues found in it. All five
// dimensions are required keys; a dimension with no findings maps to an
// empty slice.
type AuditInput map[DimensionName][]Issue

type AuditResult struct {
	OverallScore int
	Dimensions   map[DimensionName]DimensionResult
	Grade        Grade
	TotalIssues  int
}

type FatigueStatus string

const (
	FatigueHealthy  FatigueStatus = "healthy"
	FatigueWarning  FatigueStatus = "warning"
	FatigueFatigued FatigueStatus = "fatigued"
)

// FatigueInput carries the performance-decay signals for one creative.
// CTRChange and ConversionRateChange are percentage deltas (negative means
// decay), Frequency is average impressions per user, DaysActive is supplied
// by the caller so scoring stays independent of wall-clock time.
type FatigueInput struct {
	CTRChange            float64
	Frequency            float64
	DaysActive           float64
	ConversionRateChange float64
}

type FatigueResult struct {
	Score  int
	Status FatigueStatus
}

// RecommendationInput is everything the priority calculator ranks on.
// EstimatedImpact is in dollars; AffectedEntities counts campaigns, ad sets
// or creatives the recommendation touches.
type RecommendationInput struct {
	Severity         Severity
	EstimatedImpact  float64
	Difficulty       Difficulty
	AffectedEntities int
}

// Recommendation is a rankable optimization action derived from audit
// findings. PriorityScore is computed, not stored.
type Recommendation struct {
	ID            string
	Dimension     DimensionName
	IssueCode     string
	Title         string
	Action        string
	Input         RecommendationInput
	PriorityScore int
}
