package scoring

import (
	"math"
	"testing"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestFatigueCalculator_Score(t *testing.T) {
	calc := NewFatigueCalculator(DefaultFatigueSettings())

	t.Run("fresh creative scores healthy", func(t *testing.T) {
		result := calc.Score(domain.FatigueInput{
			CTRChange:            5,
			Frequency:            1.2,
			DaysActive:           3,
			ConversionRateChange: 2,
		})

		assert.Equal(t, domain.FatigueHealthy, result.Status)
		assert.Less(t, result.Score, 40)
	})

	t.Run("decayed creative recommended for pausing", func(t *testing.T) {
		// The canonical pause-this-creative example: CTR down 25%,
		// high frequency, four weeks live, conversions down 15%.
		result := calc.Score(domain.FatigueInput{
			CTRChange:            -25,
			Frequency:            4.2,
			DaysActive:           28,
			ConversionRateChange: -15,
		})

		assert.Equal(t, domain.FatigueFatigued, result.Status)
		assert.GreaterOrEqual(t, result.Score, FatigueAlertThreshold)
	})

	t.Run("deterministic", func(t *testing.T) {
		input := domain.FatigueInput{
			CTRChange:            -12.5,
			Frequency:            3.3,
			DaysActive:           20,
			ConversionRateChange: -8,
		}

		first := calc.Score(input)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, calc.Score(input))
		}
	})

	t.Run("score stays in range for extreme inputs", func(t *testing.T) {
		inputs := []domain.FatigueInput{
			{},
			{CTRChange: -100, Frequency: 1000, DaysActive: 10000, ConversionRateChange: -100},
			{CTRChange: 100, Frequency: 0, DaysActive: 0, ConversionRateChange: 100},
			{CTRChange: -500, Frequency: -3, DaysActive: -10, ConversionRateChange: 250},
		}

		for _, input := range inputs {
			result := calc.Score(input)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		}
	})

	t.Run("never propagates NaN or infinities", func(t *testing.T) {
		result := calc.Score(domain.FatigueInput{
			CTRChange:            math.NaN(),
			Frequency:            math.Inf(1),
			DaysActive:           math.Inf(-1),
			ConversionRateChange: math.NaN(),
		})

		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	})

	t.Run("saturated decay dominates", func(t *testing.T) {
		// A drop beyond the saturation point scores the same as the
		// saturation point itself.
		atLimit := calc.Score(domain.FatigueInput{CTRChange: -25})
		beyond := calc.Score(domain.FatigueInput{CTRChange: -80})
		assert.Equal(t, atLimit.Score, beyond.Score)
	})
}

func TestFatigueStatus_Bands(t *testing.T) {
	cases := []struct {
		score    int
		expected domain.FatigueStatus
	}{
		{0, domain.FatigueHealthy},
		{39, domain.FatigueHealthy},
		{40, domain.FatigueWarning},
		{69, domain.FatigueWarning},
		{70, domain.FatigueFatigued},
		{100, domain.FatigueFatigued},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FatigueStatus(tc.score), "score %d", tc.score)
	}
}

func TestFatigueStatus_ExactlyOnePerScore(t *testing.T) {
	for score := 0; score <= 100; score++ {
		status := FatigueStatus(score)
		assert.Contains(t,
			[]domain.FatigueStatus{domain.FatigueHealthy, domain.FatigueWarning, domain.FatigueFatigued},
			status, "score %d", score)
	}
}
