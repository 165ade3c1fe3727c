package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/config"
)

// Client fetches metrics from the external ads backend. Requests carry the
// profile's bearer token; responses are relayed as-is into domain models.
type Client interface {
	ListCreativeMetrics(ctx context.Context, account domain.AdAccount) ([]domain.CreativeMetrics, error)
	ListIssueCodes(ctx context.Context, account domain.AdAccount) (map[domain.DimensionName][]string, error)
}

type client struct {
	registry config.Registry
	http     *http.Client
}

func NewClient(registry config.Registry) Client {
	return &client{
		registry: registry,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// creativeMetricsPayload mirrors the upstream insights response.
type creativeMetricsPayload struct {
	Data []struct {
		CreativeID           string    `json:"creative_id"`
		Name                 string    `json:"name"`
		CampaignID           string    `json:"campaign_id"`
		Impressions          int64     `json:"impressions"`
		Clicks               int64     `json:"clicks"`
		CTR                  float64   `json:"ctr"`
		CTRChange            float64   `json:"ctr_change"`
		Frequency            float64   `json:"frequency"`
		ConversionRateChange float64   `json:"conversion_rate_change"`
		StartedAt            time.Time `json:"started_at"`
	} `json:"data"`
}

// auditFindingsPayload mirrors the upstream account-analysis response: for
// each audit dimension, the issue codes detected on the account.
type auditFindingsPayload struct {
	Findings map[string][]string `json:"findings"`
}

func (c *client) ListCreativeMetrics(ctx context.Context, account domain.AdAccount) ([]domain.CreativeMetrics, error) {
	var payload creativeMetricsPayload
	err := c.get(ctx, account, "/v1/insights/creatives", &payload)
	if err != nil {
		return nil, fmt.Errorf("list creative metrics: %w", err)
	}

	now := time.Now().UTC()
	metrics := make([]domain.CreativeMetrics, 0, len(payload.Data))
	for _, item := range payload.Data {
		daysActive := 0
		if !item.StartedAt.IsZero() {
			daysActive = int(now.Sub(item.StartedAt).Hours() / 24)
		}
		metrics = append(metrics, domain.CreativeMetrics{
			CreativeID:           item.CreativeID,
			Name:                 item.Name,
			CampaignID:           item.CampaignID,
			Impressions:          item.Impressions,
			Clicks:               item.Clicks,
			CTR:                  item.CTR,
			CTRChange:            item.CTRChange,
			Frequency:            item.Frequency,
			ConversionRateChange: item.ConversionRateChange,
			StartedAt:            item.StartedAt,
			DaysActive:           daysActive,
		})
	}
	return metrics, nil
}

func (c *client) ListIssueCodes(ctx context.Context, account domain.AdAccount) (map[domain.DimensionName][]string, error) {
	var payload auditFindingsPayload
	err := c.get(ctx, account, "/v1/insights/findings", &payload)
	if err != nil {
		return nil, fmt.Errorf("list issue codes: %w", err)
	}

	codes := make(map[domain.DimensionName][]string, len(payload.Findings))
	for dim, list := range payload.Findings {
		codes[domain.DimensionName(dim)] = list
	}
	return codes, nil
}

func (c *client) get(ctx context.Context, account domain.AdAccount, path string, out any) error {
	creds, err := c.registry.GetCredentials(ctx, account.Name)
	if err != nil {
		return err
	}

	endpoint, err := url.JoinPath(creds.Host, path)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	q := req.URL.Query()
	q.Set("account_id", creds.AccountID)
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call ads backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ads backend returned %s for %s", resp.Status, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
