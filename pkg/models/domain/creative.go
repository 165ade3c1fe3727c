package domain

import "time"

// CreativeMetrics is the per-creative slice of the upstream insights payload
// that fatigue scoring consumes. Deltas compare the most recent window
// against the preceding one.
type CreativeMetrics struct {
	CreativeID           string
	Name                 string
	CampaignID           string
	Impressions          int64
	Clicks               int64
	CTR                  float64
	CTRChange            float64
	Frequency            float64
	ConversionRateChange float64
	StartedAt            time.Time
	DaysActive           int
}

// CreativeFatigue pairs a creative with its computed fatigue result for
// listing endpoints.
type CreativeFatigue struct {
	Creative CreativeMetrics
	Fatigue  FatigueResult
}
