package scoring

import (
	"math"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
)

// FatigueAlertThreshold is the score at which a creative's status becomes
// fatigued. The notify package fires fatigue alerts off the same constant,
// so the banding here and the alert trigger can never drift apart.
const FatigueAlertThreshold = 70

const fatigueWarningThreshold = 40

// FatigueSettings contains the weights and saturation points of the fatigue
// model. Weights sum to 1.0; CTR and conversion decay dominate because a
// creative that stops converting is the primary fatigue signal, frequency
// and age are secondary.
type FatigueSettings struct {
	CTRWeight        float64
	ConversionWeight float64
	FrequencyWeight  float64
	AgeWeight        float64

	// DecaySaturation is the percentage drop at which the CTR and
	// conversion sub-scores saturate at 100.
	DecaySaturation float64
	// FrequencyFloor and FrequencySaturation bound the linear ramp of the
	// frequency sub-score: 0 at or below the floor, 100 at or above the
	// saturation point.
	FrequencyFloor      float64
	FrequencySaturation float64
	// AgeFloor and AgeSaturation bound the age sub-score ramp in days.
	AgeFloor      float64
	AgeSaturation float64
}

// DefaultFatigueSettings returns the production fatigue model: linear ramps
// saturating at a 25% metric drop, 4.5 average impressions per user and 45
// days active.
func DefaultFatigueSettings() FatigueSettings {
	return FatigueSettings{
		CTRWeight:           0.35,
		ConversionWeight:    0.30,
		FrequencyWeight:     0.20,
		AgeWeight:           0.15,
		DecaySaturation:     25,
		FrequencyFloor:      1,
		FrequencySaturation: 4.5,
		AgeFloor:            7,
		AgeSaturation:       45,
	}
}

// FatigueCalculator scores performance-decay signals for one creative.
// It is stateless and safe for concurrent use.
type FatigueCalculator struct {
	settings FatigueSettings
}

func NewFatigueCalculator(settings FatigueSettings) *FatigueCalculator {
	return &FatigueCalculator{settings: settings}
}

// Score maps the input signals to a 0-100 fatigue score and a tri-state
// status. It is a total function: out-of-domain values, NaN and infinities
// are clamped to the nearest domain boundary, never propagated.
func (c *FatigueCalculator) Score(input domain.FatigueInput) domain.FatigueResult {
	ctrChange := clampFloat(input.CTRChange, -100, 100)
	frequency := clampFloat(input.Frequency, 0, math.MaxFloat64)
	daysActive := clampFloat(input.DaysActive, 0, math.MaxFloat64)
	convChange := clampFloat(input.ConversionRateChange, -100, 100)

	s := c.settings
	score := s.CTRWeight*c.decayScore(ctrChange) +
		s.ConversionWeight*c.decayScore(convChange) +
		s.FrequencyWeight*ramp(frequency, s.FrequencyFloor, s.FrequencySaturation) +
		s.AgeWeight*ramp(daysActive, s.AgeFloor, s.AgeSaturation)

	rounded := int(math.Round(clampFloat(score, 0, 100)))

	return domain.FatigueResult{
		Score:  rounded,
		Status: FatigueStatus(rounded),
	}
}

// FatigueStatus bands a fatigue score: below 40 healthy, below 70 warning,
// 70 and up fatigued.
func FatigueStatus(score int) domain.FatigueStatus {
	switch {
	case score >= FatigueAlertThreshold:
		return domain.FatigueFatigued
	case score >= fatigueWarningThreshold:
		return domain.FatigueWarning
	default:
		return domain.FatigueHealthy
	}
}

// decayScore maps a metric change percentage to a 0-100 sub-score: zero for
// flat or improving metrics, rising linearly as the drop deepens and
// saturating at DecaySaturation percent.
func (c *FatigueCalculator) decayScore(change float64) float64 {
	if change >= 0 {
		return 0
	}
	return ramp(-change, 0, c.settings.DecaySaturation)
}

// ramp is a linear 0-100 ramp between floor and saturation.
func ramp(v, floor, saturation float64) float64 {
	if v <= floor {
		return 0
	}
	if v >= saturation {
		return 100
	}
	return (v - floor) / (saturation - floor) * 100
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		if lo <= 0 && hi >= 0 {
			return 0
		}
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
