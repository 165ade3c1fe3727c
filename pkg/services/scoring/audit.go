package scoring

import (
	"math"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
)

const dimensionBaseScore = 100

// AuditCalculator aggregates per-dimension issue lists into dimension
// scores, a weighted overall score and a letter grade. The catalog supplies
// dimension weights; issue deductions arrive already resolved on the issues
// themselves.
type AuditCalculator struct {
	catalog *Catalog
}

func NewAuditCalculator(catalog *Catalog) *AuditCalculator {
	return &AuditCalculator{catalog: catalog}
}

// Audit scores all five dimensions. Every dimension is a required key: a
// missing one is a caller error, because a partial audit must never be
// reported as if it were complete.
func (c *AuditCalculator) Audit(input domain.AuditInput) (domain.AuditResult, error) {
	dims := domain.AuditDimensions()
	for _, dim := range dims {
		if _, ok := input[dim]; !ok {
			return domain.AuditResult{}, &domain.InvalidInputError{
				Reason: "missing audit dimension " + string(dim),
			}
		}
	}

	result := domain.AuditResult{
		Dimensions: make(map[domain.DimensionName]domain.DimensionResult, len(dims)),
	}

	var overall float64
	for _, dim := range dims {
		issues := input[dim]
		dr := scoreDimension(dim, issues)
		result.Dimensions[dim] = dr
		result.TotalIssues += len(issues)
		overall += c.catalog.Weight(dim) * float64(dr.Score)
	}

	result.OverallScore = int(math.Round(overall))
	result.Grade = AuditGrade(result.OverallScore)
	return result, nil
}

// scoreDimension applies additive deductions to the base score. A dimension
// bottoms out at 0; it never goes negative.
func scoreDimension(dim domain.DimensionName, issues []domain.Issue) domain.DimensionResult {
	score := dimensionBaseScore
	for _, issue := range issues {
		score -= issue.PointDeduction
	}
	if score < 0 {
		score = 0
	}
	return domain.DimensionResult{
		Name:      dim,
		BaseScore: dimensionBaseScore,
		Issues:    issues,
		Score:     score,
	}
}

// AuditGrade bands an overall score into a letter grade. Bands are
// contiguous and exhaustive over [0,100].
func AuditGrade(score int) domain.Grade {
	switch {
	case score >= 90:
		return domain.GradeA
	case score >= 75:
		return domain.GradeB
	case score >= 60:
		return domain.GradeC
	case score >= 40:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}
