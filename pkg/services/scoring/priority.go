package scoring

import (
	"math"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
)

// impactCap bounds the dollar-impact contribution so a single very
// high-impact issue cannot drown out severity ordering.
const impactCap = 50

// difficultyPoints rewards quick wins: the easier the fix, the higher the
// bonus, biasing the action list toward low-effort high-value items.
var difficultyPoints = map[domain.Difficulty]int{
	domain.DifficultyOneClick: 30,
	domain.DifficultyEasy:     20,
	domain.DifficultyMedium:   10,
	domain.DifficultyComplex:  0,
}

// PriorityCalculator ranks a recommendation by combining severity, dollar
// impact, fix difficulty and blast radius into one sortable integer. Higher
// is more urgent. Ties are broken by the caller's insertion order; the
// calculator only produces the comparable value.
type PriorityCalculator struct{}

func NewPriorityCalculator() *PriorityCalculator {
	return &PriorityCalculator{}
}

// Priority computes severity + capped impact + difficulty bonus + uncapped
// scope. Unknown enum values and negative magnitudes are rejected rather
// than clamped; a negative impact or entity count is a caller bug that
// should surface immediately.
func (c *PriorityCalculator) Priority(rec domain.RecommendationInput) (int, error) {
	severityScore, err := rec.Severity.Points()
	if err != nil {
		return 0, err
	}

	difficultyScore, ok := difficultyPoints[rec.Difficulty]
	if !ok {
		return 0, &domain.InvalidEnumError{Kind: "difficulty", Value: int(rec.Difficulty)}
	}

	if rec.EstimatedImpact < 0 {
		return 0, &domain.NegativeValueError{Field: "estimated impact", Value: rec.EstimatedImpact}
	}
	if rec.AffectedEntities < 0 {
		return 0, &domain.NegativeValueError{Field: "affected entities", Value: float64(rec.AffectedEntities)}
	}

	impactScore := math.Min(rec.EstimatedImpact/100, impactCap)
	scopeScore := rec.AffectedEntities * 5

	return int(math.Round(float64(severityScore) + impactScore + float64(difficultyScore) + float64(scopeScore))), nil
}
