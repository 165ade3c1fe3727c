package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ad-tools/ad-pulse/pkg/adapters"
	"github.com/ad-tools/ad-pulse/pkg/models/api"
	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/account"
	"github.com/ad-tools/ad-pulse/pkg/services/creative"
	"github.com/ad-tools/ad-pulse/pkg/services/health"
	"github.com/ad-tools/ad-pulse/pkg/services/recommend"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const defaultHistoryLimit = 30

type Handler struct {
	accounts  account.Explorer
	health    health.Service
	creatives creative.Service
	recommend *recommend.Service
}

func NewHandler(
	accounts account.Explorer,
	health health.Service,
	creatives creative.Service,
	recommend *recommend.Service,
) *Handler {
	return &Handler{
		accounts:  accounts,
		health:    health,
		creatives: creatives,
		recommend: recommend,
	}
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.accounts.ListAccounts(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response := make([]api.AdAccount, 0, len(accounts))
	for _, acc := range accounts {
		response = append(response, api.AdAccount{Name: acc.Name})
	}
	respondJSON(w, r, response)
}

func (h *Handler) RunAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	acc := domain.AdAccount{Name: chi.URLParam(r, "account")}

	result, err := h.health.RunAudit(ctx, acc)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, adapters.MapAuditResultDomainToApi(acc.Name, result))
}

func (h *Handler) AuditHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	acc := domain.AdAccount{Name: chi.URLParam(r, "account")}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	runs, err := h.health.History(ctx, acc, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response := make([]api.AuditRun, 0, len(runs))
	for _, run := range runs {
		response = append(response, adapters.MapAuditRunStoreToApi(run))
	}
	respondJSON(w, r, response)
}

func (h *Handler) ListCreatives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	acc := domain.AdAccount{Name: chi.URLParam(r, "account")}

	creatives, err := h.creatives.ListFatigue(ctx, acc)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response := make([]api.CreativeFatigue, 0, len(creatives))
	for _, cf := range creatives {
		response = append(response, adapters.MapCreativeFatigueDomainToApi(cf))
	}
	respondJSON(w, r, response)
}

func (h *Handler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	acc := domain.AdAccount{Name: chi.URLParam(r, "account")}

	result, err := h.health.RunAudit(ctx, acc)
	if err != nil {
		respondError(w, r, err)
		return
	}

	recs, err := h.recommend.FromAudit(result)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response := make([]api.Recommendation, 0, len(recs))
	for _, rec := range recs {
		response = append(response, adapters.MapRecommendationDomainToApi(rec))
	}
	respondJSON(w, r, response)
}

func respondJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// respondError maps engine caller-contract violations to 400 and everything
// else to 502, since the remaining failure modes come from the ads backend.
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
		logger.Warn().Err(err).Msg("rejected request")
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error().Err(err).Msg("request failed")
		http.Error(w, "upstream request failed", http.StatusBadGateway)
	}
}
