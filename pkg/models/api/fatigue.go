package api

import "time"

type FatigueInput struct {
	CTRChange            float64 `json:"ctr_change"`
	Frequency            float64 `json:"frequency"`
	DaysActive           float64 `json:"days_active"`
	ConversionRateChange float64 `json:"conversion_rate_change"`
}

type FatigueResult struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

type CreativeFatigue struct {
	CreativeID  string        `json:"creative_id"`
	Name        string        `json:"name"`
	CampaignID  string        `json:"campaign_id"`
	Impressions int64         `json:"impressions"`
	Clicks      int64         `json:"clicks"`
	CTR         float64       `json:"ctr"`
	Frequency   float64       `json:"frequency"`
	StartedAt   time.Time     `json:"started_at"`
	DaysActive  int           `json:"days_active"`
	Fatigue     FatigueResult `json:"fatigue"`
}
