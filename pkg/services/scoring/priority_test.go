package scoring

import (
	"testing"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityCalculator_Priority(t *testing.T) {
	calc := NewPriorityCalculator()

	t.Run("combines all four factors", func(t *testing.T) {
		score, err := calc.Priority(domain.RecommendationInput{
			Severity:         domain.SeverityCritical,
			EstimatedImpact:  10000,
			Difficulty:       domain.DifficultyComplex,
			AffectedEntities: 5,
		})

		require.NoError(t, err)
		// 100 severity + 50 capped impact + 0 difficulty + 25 scope
		assert.Equal(t, 175, score)
	})

	t.Run("impact contribution is capped", func(t *testing.T) {
		moderate, err := calc.Priority(domain.RecommendationInput{
			Severity: domain.SeverityLow, EstimatedImpact: 5000, Difficulty: domain.DifficultyComplex,
		})
		require.NoError(t, err)
		huge, err := calc.Priority(domain.RecommendationInput{
			Severity: domain.SeverityLow, EstimatedImpact: 500000, Difficulty: domain.DifficultyComplex,
		})
		require.NoError(t, err)

		assert.Equal(t, moderate, huge)
	})

	t.Run("scope is uncapped", func(t *testing.T) {
		wide, err := calc.Priority(domain.RecommendationInput{
			Severity:         domain.SeverityLow,
			Difficulty:       domain.DifficultyComplex,
			AffectedEntities: 100,
		})
		require.NoError(t, err)
		narrowCritical, err := calc.Priority(domain.RecommendationInput{
			Severity:         domain.SeverityCritical,
			EstimatedImpact:  10000,
			Difficulty:       domain.DifficultyOneClick,
			AffectedEntities: 1,
		})
		require.NoError(t, err)

		// A wide enough blast radius out-ranks everything else.
		assert.Greater(t, wide, narrowCritical)
	})

	t.Run("monotonic in each input", func(t *testing.T) {
		base := domain.RecommendationInput{
			Severity:         domain.SeverityMedium,
			EstimatedImpact:  1000,
			Difficulty:       domain.DifficultyMedium,
			AffectedEntities: 3,
		}

		severities := []domain.Severity{
			domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical,
		}
		prev := -1
		for _, sev := range severities {
			input := base
			input.Severity = sev
			score, err := calc.Priority(input)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, prev, "severity %s", sev)
			prev = score
		}

		// Easier fixes rank at least as high, all else equal.
		difficulties := []domain.Difficulty{
			domain.DifficultyComplex, domain.DifficultyMedium, domain.DifficultyEasy, domain.DifficultyOneClick,
		}
		prev = -1
		for _, diff := range difficulties {
			input := base
			input.Difficulty = diff
			score, err := calc.Priority(input)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, prev, "difficulty %s", diff)
			prev = score
		}

		prev = -1
		for _, impact := range []float64{0, 100, 1000, 4999, 5000, 100000} {
			input := base
			input.EstimatedImpact = impact
			score, err := calc.Priority(input)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, prev, "impact %v", impact)
			prev = score
		}

		prev = -1
		for _, entities := range []int{0, 1, 5, 50} {
			input := base
			input.AffectedEntities = entities
			score, err := calc.Priority(input)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, prev, "entities %d", entities)
			prev = score
		}
	})

	t.Run("unknown severity is rejected", func(t *testing.T) {
		_, err := calc.Priority(domain.RecommendationInput{
			Severity:   domain.Severity(42),
			Difficulty: domain.DifficultyEasy,
		})

		var invalidEnum *domain.InvalidEnumError
		require.ErrorAs(t, err, &invalidEnum)
		assert.Equal(t, "severity", invalidEnum.Kind)
	})

	t.Run("unknown difficulty is rejected", func(t *testing.T) {
		_, err := calc.Priority(domain.RecommendationInput{
			Severity:   domain.SeverityLow,
			Difficulty: domain.Difficulty(42),
		})

		var invalidEnum *domain.InvalidEnumError
		require.ErrorAs(t, err, &invalidEnum)
		assert.Equal(t, "difficulty", invalidEnum.Kind)
	})

	t.Run("negative magnitudes are rejected, not clamped", func(t *testing.T) {
		_, err := calc.Priority(domain.RecommendationInput{
			Severity:        domain.SeverityLow,
			Difficulty:      domain.DifficultyEasy,
			EstimatedImpact: -10,
		})
		var negative *domain.NegativeValueError
		require.ErrorAs(t, err, &negative)

		_, err = calc.Priority(domain.RecommendationInput{
			Severity:         domain.SeverityLow,
			Difficulty:       domain.DifficultyEasy,
			AffectedEntities: -1,
		})
		require.ErrorAs(t, err, &negative)
	})
}
