package recommend

import (
	"fmt"
	"sort"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	"github.com/google/uuid"
)

// action fixes the user-facing remediation text and the ranking inputs that
// depend on the issue itself rather than the account: how hard the fix is
// and a conservative monthly dollar impact estimate.
type action struct {
	Title           string
	Action          string
	Difficulty      domain.Difficulty
	EstimatedImpact float64
}

var actions = map[string]action{
	"single_campaign":          {"Diversify campaign structure", "Split objectives into separate campaigns.", domain.DifficultyComplex, 500},
	"no_campaign_objective":    {"Set campaign objectives", "Assign an explicit objective to every campaign.", domain.DifficultyEasy, 800},
	"overlapping_ad_sets":      {"Resolve ad set overlap", "Merge or re-target ad sets bidding on the same audience.", domain.DifficultyMedium, 1200},
	"too_many_ad_sets":         {"Consolidate ad sets", "Merge fragmented ad sets to exit learning faster.", domain.DifficultyMedium, 400},
	"paused_campaign_majority": {"Clean up paused campaigns", "Archive campaigns paused for more than 90 days.", domain.DifficultyOneClick, 0},
	"no_naming_convention":     {"Adopt a naming convention", "Apply a consistent campaign and ad set naming scheme.", domain.DifficultyEasy, 0},
	"fatigued_creative":        {"Pause fatigued creative", "Pause the creative and rotate in a fresh variant.", domain.DifficultyOneClick, 1500},
	"single_creative":          {"Add creative variants", "Run at least three creatives per ad set.", domain.DifficultyMedium, 1000},
	"no_video_creative":        {"Add video creative", "Introduce at least one video format per campaign.", domain.DifficultyComplex, 700},
	"stale_creative":           {"Refresh stale creative", "Replace creatives older than 60 days.", domain.DifficultyEasy, 600},
	"low_quality_ranking":      {"Improve creative quality", "Rework creatives ranked below average by the platform.", domain.DifficultyComplex, 900},
	"missing_call_to_action":   {"Add call-to-action", "Set an explicit CTA button on every ad.", domain.DifficultyOneClick, 300},
	"audience_overlap":         {"Deduplicate audiences", "Add mutual exclusions between overlapping audiences.", domain.DifficultyMedium, 1100},
	"audience_too_narrow":      {"Broaden audience", "Relax targeting to give the delivery system room.", domain.DifficultyEasy, 500},
	"audience_too_broad":       {"Narrow audience", "Layer interest or behavior filters onto broad targeting.", domain.DifficultyEasy, 400},
	"no_exclusions":            {"Exclude converters", "Exclude recent purchasers from prospecting audiences.", domain.DifficultyEasy, 600},
	"no_lookalike":             {"Create lookalike audiences", "Seed lookalikes from your best converters.", domain.DifficultyMedium, 800},
	"saturated_audience":       {"Expand saturated audience", "First-time impression ratio is critically low; source new audiences.", domain.DifficultyComplex, 2000},
	"budget_constrained":       {"Raise constrained budgets", "Increase budgets on campaigns limited by budget.", domain.DifficultyOneClick, 1800},
	"uneven_budget_split":      {"Rebalance budgets", "Shift spend toward the best-performing ad sets.", domain.DifficultyEasy, 900},
	"learning_limited":         {"Fix learning-limited ad sets", "Consolidate or fund ad sets stuck in learning limited.", domain.DifficultyMedium, 1000},
	"no_bid_strategy":          {"Set a bid strategy", "Choose an explicit bid strategy per campaign goal.", domain.DifficultyEasy, 500},
	"overspending_loser":       {"Cut overspending losers", "Pause high-spend ad sets with no conversions.", domain.DifficultyOneClick, 2500},
	"no_pixel":                 {"Install tracking pixel", "No pixel detected; conversion optimization is blind.", domain.DifficultyComplex, 3000},
	"pixel_misfiring":          {"Fix pixel events", "Pixel fires inconsistently; repair the event setup.", domain.DifficultyComplex, 2000},
	"no_conversion_events":     {"Configure conversion events", "Define the conversion events campaigns optimize for.", domain.DifficultyMedium, 1500},
	"no_utm_tags":              {"Add UTM tags", "Tag ad URLs so analytics can attribute traffic.", domain.DifficultyEasy, 300},
	"duplicate_events":         {"Deduplicate events", "Browser and server events double-count; set event IDs.", domain.DifficultyMedium, 700},
}

// Service turns audit results into a ranked action list.
type Service struct {
	priority *scoring.PriorityCalculator
}

func NewService(priority *scoring.PriorityCalculator) *Service {
	return &Service{priority: priority}
}

// FromAudit builds one recommendation per audit issue, scores each and
// returns them sorted by priority descending. The sort is stable so equal
// scores keep their audit insertion order.
func (s *Service) FromAudit(result domain.AuditResult) ([]domain.Recommendation, error) {
	var recs []domain.Recommendation

	for _, dim := range domain.AuditDimensions() {
		dr, ok := result.Dimensions[dim]
		if !ok {
			continue
		}
		for _, issue := range dr.Issues {
			rec, err := s.build(dim, issue)
			if err != nil {
				return nil, fmt.Errorf("recommendation for issue %q: %w", issue.Code, err)
			}
			recs = append(recs, rec)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].PriorityScore > recs[j].PriorityScore
	})
	return recs, nil
}

func (s *Service) build(dim domain.DimensionName, issue domain.Issue) (domain.Recommendation, error) {
	tpl, ok := actions[issue.Code]
	if !ok {
		return domain.Recommendation{}, &domain.UnknownIssueCodeError{Code: issue.Code}
	}

	input := domain.RecommendationInput{
		Severity:         issue.Severity,
		EstimatedImpact:  tpl.EstimatedImpact,
		Difficulty:       tpl.Difficulty,
		AffectedEntities: 1,
	}
	score, err := s.priority.Priority(input)
	if err != nil {
		return domain.Recommendation{}, err
	}

	return domain.Recommendation{
		ID:            uuid.NewString(),
		Dimension:     dim,
		IssueCode:     issue.Code,
		Title:         tpl.Title,
		Action:        tpl.Action,
		Input:         input,
		PriorityScore: score,
	}, nil
}
