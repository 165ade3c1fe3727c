package creative

import (
	"context"
	"fmt"
	"time"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/models/store"
	"github.com/ad-tools/ad-pulse/pkg/notify"
	"github.com/ad-tools/ad-pulse/pkg/services/insights"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	statusstore "github.com/ad-tools/ad-pulse/pkg/store/duckdb/status"
	"github.com/rs/zerolog"
)

// Service annotates an account's creatives with fatigue scores and fires a
// fatigue alert whenever a creative's status flips to fatigued.
type Service interface {
	ListFatigue(ctx context.Context, account domain.AdAccount) ([]domain.CreativeFatigue, error)
}

type service struct {
	insights insights.Client
	calc     *scoring.FatigueCalculator
	status   statusstore.Store
	notifier notify.Notifier
}

func NewService(
	client insights.Client,
	calc *scoring.FatigueCalculator,
	status statusstore.Store,
	notifier notify.Notifier,
) Service {
	return &service{
		insights: client,
		calc:     calc,
		status:   status,
		notifier: notifier,
	}
}

func (s *service) ListFatigue(ctx context.Context, account domain.AdAccount) ([]domain.CreativeFatigue, error) {
	logger := zerolog.Ctx(ctx)

	metrics, err := s.insights.ListCreativeMetrics(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("fetch creative metrics: %w", err)
	}

	results := make([]domain.CreativeFatigue, 0, len(metrics))
	for _, m := range metrics {
		result := s.calc.Score(domain.FatigueInput{
			CTRChange:            m.CTRChange,
			Frequency:            m.Frequency,
			DaysActive:           float64(m.DaysActive),
			ConversionRateChange: m.ConversionRateChange,
		})
		results = append(results, domain.CreativeFatigue{Creative: m, Fatigue: result})

		if err := s.trackStatus(ctx, account, m, result); err != nil {
			// Alerting and status tracking are best effort; the listing
			// itself must stay available.
			logger.Warn().Err(err).Str("creative", m.CreativeID).Msg("failed to track fatigue status")
		}
	}
	return results, nil
}

func (s *service) trackStatus(ctx context.Context, account domain.AdAccount, m domain.CreativeMetrics, result domain.FatigueResult) error {
	prev, err := s.status.Get(ctx, account.Name, m.CreativeID)
	if err != nil {
		return err
	}

	var prevStatus *domain.FatigueStatus
	if prev != nil {
		st := domain.FatigueStatus(prev.Status)
		prevStatus = &st
	}

	if notify.ShouldAlert(prevStatus, result.Status) {
		if err := s.notifier.FatigueAlert(ctx, account.Name, m, result); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("creative", m.CreativeID).Msg("failed to send fatigue alert")
		}
	}

	return s.status.Upsert(ctx, store.CreativeStatus{
		Account:    account.Name,
		CreativeID: m.CreativeID,
		Status:     string(result.Status),
		Score:      result.Score,
		UpdatedAt:  time.Now().UTC(),
	})
}
