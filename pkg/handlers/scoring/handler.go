package scoring

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ad-tools/ad-pulse/pkg/adapters"
	"github.com/ad-tools/ad-pulse/pkg/models/api"
	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	"github.com/rs/zerolog"
)

// Handler exposes the calculators directly: callers post already-fetched
// data and get the score back. Used by batch jobs and the dashboard's
// what-if views.
type Handler struct {
	fatigue  *scoring.FatigueCalculator
	audit    *scoring.AuditCalculator
	priority *scoring.PriorityCalculator
	catalog  *scoring.Catalog
}

func NewHandler(catalog *scoring.Catalog, fatigue *scoring.FatigueCalculator) *Handler {
	return &Handler{
		fatigue:  fatigue,
		audit:    scoring.NewAuditCalculator(catalog),
		priority: scoring.NewPriorityCalculator(),
		catalog:  catalog,
	}
}

func (h *Handler) ScoreFatigue(w http.ResponseWriter, r *http.Request) {
	var input api.FatigueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.fatigue.Score(domain.FatigueInput{
		CTRChange:            input.CTRChange,
		Frequency:            input.Frequency,
		DaysActive:           input.DaysActive,
		ConversionRateChange: input.ConversionRateChange,
	})
	respondJSON(w, r, adapters.MapFatigueResultDomainToApi(result))
}

// auditRequest carries issue codes per dimension; the handler resolves them
// through the catalog so point deductions can never be caller-supplied.
type auditRequest struct {
	Account    string              `json:"account"`
	Dimensions map[string][]string `json:"dimensions"`
}

func (h *Handler) ScoreAudit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := domain.AuditInput{}
	for name, codes := range req.Dimensions {
		dim := domain.DimensionName(name)
		issues := make([]domain.Issue, 0, len(codes))
		for _, code := range codes {
			issue, err := h.catalog.CreateIssue(dim, code)
			if err != nil {
				respondError(w, r, err)
				return
			}
			issues = append(issues, issue)
		}
		input[dim] = issues
	}

	result, err := h.audit.Audit(input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapAuditResultDomainToApi(req.Account, result))
}

func (h *Handler) ScorePriority(w http.ResponseWriter, r *http.Request) {
	var input api.PriorityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	severity, err := adapters.MapSeverityApiToDomain(input.Severity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	difficulty, err := adapters.MapDifficultyApiToDomain(input.Difficulty)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	score, err := h.priority.Priority(domain.RecommendationInput{
		Severity:         severity,
		EstimatedImpact:  input.EstimatedImpact,
		Difficulty:       difficulty,
		AffectedEntities: input.AffectedEntities,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, api.PriorityResult{PriorityScore: score})
}

func respondJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var invalidInput *domain.InvalidInputError
	var unknownCode *domain.UnknownIssueCodeError
	var invalidEnum *domain.InvalidEnumError
	var negative *domain.NegativeValueError

	switch {
	case errors.As(err, &invalidInput),
		errors.As(err, &unknownCode),
		errors.As(err, &invalidEnum),
		errors.As(err, &negative):
		logger.Warn().Err(err).Msg("rejected scoring request")
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error().Err(err).Msg("scoring request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
