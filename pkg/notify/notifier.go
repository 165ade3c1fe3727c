package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	"github.com/rs/zerolog"
)

// Notifier receives fatigue alerts. An alert fires when a creative's status
// flips to fatigued; the flip itself is detected by the caller from the
// status banding in the scoring package, so the alert and the banding share
// scoring.FatigueAlertThreshold by construction.
type Notifier interface {
	FatigueAlert(ctx context.Context, account string, creative domain.CreativeMetrics, result domain.FatigueResult) error
}

// ShouldAlert reports whether the transition from prev to next is a flip
// into the fatigued state. prev is nil when the creative has never been
// scored before.
func ShouldAlert(prev *domain.FatigueStatus, next domain.FatigueStatus) bool {
	if next != domain.FatigueFatigued {
		return false
	}
	return prev == nil || *prev != domain.FatigueFatigued
}

type webhookNotifier struct {
	url  string
	http *http.Client
}

func NewWebhookNotifier(cfg *Config) Notifier {
	if !cfg.Enabled {
		return &noopNotifier{}
	}
	return &webhookNotifier{
		url:  cfg.WebhookURL,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type fatigueAlertPayload struct {
	Type       string `json:"type"`
	Account    string `json:"account"`
	CreativeID string `json:"creative_id"`
	Creative   string `json:"creative_name"`
	Score      int    `json:"score"`
	Status     string `json:"status"`
	Threshold  int    `json:"threshold"`
}

func (n *webhookNotifier) FatigueAlert(ctx context.Context, account string, creative domain.CreativeMetrics, result domain.FatigueResult) error {
	logger := zerolog.Ctx(ctx)

	payload := fatigueAlertPayload{
		Type:       "fatigueAlert",
		Account:    account,
		CreativeID: creative.CreativeID,
		Creative:   creative.Name,
		Score:      result.Score,
		Status:     string(result.Status),
		Threshold:  scoring.FatigueAlertThreshold,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal fatigue alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build fatigue alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("send fatigue alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("fatigue alert webhook returned %s", resp.Status)
	}

	logger.Info().
		Str("creative", creative.CreativeID).
		Int("score", result.Score).
		Msg("fatigue alert sent")
	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) FatigueAlert(_ context.Context, _ string, _ domain.CreativeMetrics, _ domain.FatigueResult) error {
	return nil
}
