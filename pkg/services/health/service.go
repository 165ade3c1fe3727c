package health

import (
	"context"
	"fmt"
	"time"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/models/store"
	"github.com/ad-tools/ad-pulse/pkg/services/insights"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	auditstore "github.com/ad-tools/ad-pulse/pkg/store/duckdb/audit"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service runs account health audits: it pulls detected issue codes from
// the ads backend, resolves them against the issue catalog and hands the
// result to the audit calculator. Runs are persisted for trend charts.
type Service interface {
	RunAudit(ctx context.Context, account domain.AdAccount) (domain.AuditResult, error)
	History(ctx context.Context, account domain.AdAccount, limit int) ([]store.AuditRun, error)
}

type service struct {
	insights insights.Client
	catalog  *scoring.Catalog
	calc     *scoring.AuditCalculator
	store    auditstore.Store
}

func NewService(client insights.Client, catalog *scoring.Catalog, store auditstore.Store) Service {
	return &service{
		insights: client,
		catalog:  catalog,
		calc:     scoring.NewAuditCalculator(catalog),
		store:    store,
	}
}

func (s *service) RunAudit(ctx context.Context, account domain.AdAccount) (domain.AuditResult, error) {
	logger := zerolog.Ctx(ctx)

	codes, err := s.insights.ListIssueCodes(ctx, account)
	if err != nil {
		return domain.AuditResult{}, fmt.Errorf("fetch audit findings: %w", err)
	}

	// Every dimension is present in the input; a dimension the backend
	// reported nothing for simply has no issues.
	input := domain.AuditInput{}
	for _, dim := range domain.AuditDimensions() {
		issues := make([]domain.Issue, 0, len(codes[dim]))
		for _, code := range codes[dim] {
			issue, err := s.catalog.CreateIssue(dim, code)
			if err != nil {
				return domain.AuditResult{}, fmt.Errorf("resolve issue for dimension %s: %w", dim, err)
			}
			issues = append(issues, issue)
		}
		input[dim] = issues
	}

	result, err := s.calc.Audit(input)
	if err != nil {
		return domain.AuditResult{}, err
	}

	if err := s.persist(ctx, account, result); err != nil {
		// Scoring succeeded; a failed history write should not fail the
		// audit itself.
		logger.Warn().Err(err).Str("account", account.Name).Msg("failed to persist audit run")
	}

	return result, nil
}

func (s *service) History(ctx context.Context, account domain.AdAccount, limit int) ([]store.AuditRun, error) {
	return s.store.History(ctx, account.Name, limit)
}

func (s *service) persist(ctx context.Context, account domain.AdAccount, result domain.AuditResult) error {
	scores := make(map[string]int, len(result.Dimensions))
	for dim, dr := range result.Dimensions {
		scores[string(dim)] = dr.Score
	}
	return s.store.Add(ctx, store.AuditRun{
		ID:              uuid.NewString(),
		Account:         account.Name,
		OverallScore:    result.OverallScore,
		Grade:           string(result.Grade),
		TotalIssues:     result.TotalIssues,
		DimensionScores: scores,
		CreatedAt:       time.Now().UTC(),
	})
}
