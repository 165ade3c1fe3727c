package insights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRegistry struct {
	creds *config.Credentials
}

func (s *stubRegistry) GetProfiles(_ context.Context) ([]string, error) {
	return []string{"acme"}, nil
}

func (s *stubRegistry) GetCredentials(_ context.Context, _ string) (*config.Credentials, error) {
	return s.creds, nil
}

func TestClient_ListCreativeMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/insights/creatives", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "act_42", r.URL.Query().Get("account_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{
			"creative_id":"cr-1","name":"banner","campaign_id":"cmp-1",
			"impressions":120000,"clicks":950,"ctr":0.79,
			"ctr_change":-18.5,"frequency":3.9,"conversion_rate_change":-9.2,
			"started_at":"2026-02-01T00:00:00Z"
		}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(&stubRegistry{creds: &config.Credentials{
		Host: server.URL, AccessToken: "tok-123", AccountID: "act_42",
	}})

	metrics, err := client.ListCreativeMetrics(context.Background(), domain.AdAccount{Name: "acme"})

	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "cr-1", metrics[0].CreativeID)
	assert.Equal(t, -18.5, metrics[0].CTRChange)
	assert.Equal(t, 3.9, metrics[0].Frequency)
	assert.Greater(t, metrics[0].DaysActive, 0)
}

func TestClient_ListIssueCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/insights/findings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"findings":{"tracking":["no_pixel"],"budget":["budget_constrained","learning_limited"]}}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(&stubRegistry{creds: &config.Credentials{
		Host: server.URL, AccessToken: "tok-123", AccountID: "act_42",
	}})

	codes, err := client.ListIssueCodes(context.Background(), domain.AdAccount{Name: "acme"})

	require.NoError(t, err)
	assert.Equal(t, []string{"no_pixel"}, codes[domain.DimensionTracking])
	assert.Len(t, codes[domain.DimensionBudget], 2)
}

func TestClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := NewClient(&stubRegistry{creds: &config.Credentials{
		Host: server.URL, AccessToken: "bad", AccountID: "act_42",
	}})

	_, err := client.ListCreativeMetrics(context.Background(), domain.AdAccount{Name: "acme"})
	assert.ErrorContains(t, err, "403")
}
