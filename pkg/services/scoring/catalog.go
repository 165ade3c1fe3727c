package scoring

import (
	"github.com/ad-tools/ad-pulse/pkg/models/domain"
)

// CatalogEntry fixes the severity and point deduction for one issue code.
// Point weights live here and nowhere else, so callers cannot invent
// arbitrary penalties.
type CatalogEntry struct {
	Severity       domain.Severity
	PointDeduction int
}

// Per-dimension issue catalogs. These are the engine's public vocabulary:
// a new issue type must be added here with an explicit severity and point
// deduction before anything can reference it.
var structureIssues = map[string]CatalogEntry{
	"single_campaign":          {domain.SeverityMedium, 15},
	"no_campaign_objective":    {domain.SeverityHigh, 25},
	"overlapping_ad_sets":      {domain.SeverityHigh, 20},
	"too_many_ad_sets":         {domain.SeverityMedium, 10},
	"paused_campaign_majority": {domain.SeverityLow, 5},
	"no_naming_convention":     {domain.SeverityLow, 5},
}

var creativeIssues = map[string]CatalogEntry{
	"fatigued_creative":      {domain.SeverityHigh, 20},
	"single_creative":        {domain.SeverityHigh, 25},
	"no_video_creative":      {domain.SeverityMedium, 10},
	"stale_creative":         {domain.SeverityMedium, 15},
	"low_quality_ranking":    {domain.SeverityHigh, 20},
	"missing_call_to_action": {domain.SeverityLow, 5},
}

var audienceIssues = map[string]CatalogEntry{
	"audience_overlap":    {domain.SeverityHigh, 25},
	"audience_too_narrow": {domain.SeverityMedium, 15},
	"audience_too_broad":  {domain.SeverityMedium, 10},
	"no_exclusions":       {domain.SeverityMedium, 10},
	"no_lookalike":        {domain.SeverityLow, 5},
	"saturated_audience":  {domain.SeverityCritical, 30},
}

var budgetIssues = map[string]CatalogEntry{
	"budget_constrained":  {domain.SeverityHigh, 25},
	"uneven_budget_split": {domain.SeverityMedium, 15},
	"learning_limited":    {domain.SeverityHigh, 20},
	"no_bid_strategy":     {domain.SeverityMedium, 10},
	"overspending_loser":  {domain.SeverityCritical, 30},
}

var trackingIssues = map[string]CatalogEntry{
	"no_pixel":             {domain.SeverityCritical, 40},
	"pixel_misfiring":      {domain.SeverityCritical, 30},
	"no_conversion_events": {domain.SeverityHigh, 25},
	"no_utm_tags":          {domain.SeverityMedium, 10},
	"duplicate_events":     {domain.SeverityMedium, 15},
}

// Catalog is the process-wide issue vocabulary plus the audit dimension
// weights. It is built once at startup and injected into the calculators by
// reference, which keeps them pure functions of their arguments and lets
// tests supply alternate tables.
type Catalog struct {
	issues  map[domain.DimensionName]map[string]CatalogEntry
	weights map[domain.DimensionName]float64
}

// DefaultCatalog returns the built-in issue vocabulary and dimension
// weights. Weights sum to 1.0 so scores stay comparable across audits.
func DefaultCatalog() *Catalog {
	return &Catalog{
		issues: map[domain.DimensionName]map[string]CatalogEntry{
			domain.DimensionStructure: structureIssues,
			domain.DimensionCreative:  creativeIssues,
			domain.DimensionAudience:  audienceIssues,
			domain.DimensionBudget:    budgetIssues,
			domain.DimensionTracking:  trackingIssues,
		},
		weights: map[domain.DimensionName]float64{
			domain.DimensionStructure: 0.25,
			domain.DimensionCreative:  0.25,
			domain.DimensionAudience:  0.20,
			domain.DimensionBudget:    0.15,
			domain.DimensionTracking:  0.15,
		},
	}
}

// NewCatalog builds a catalog from explicit tables. Intended for tests.
func NewCatalog(
	issues map[domain.DimensionName]map[string]CatalogEntry,
	weights map[domain.DimensionName]float64,
) *Catalog {
	return &Catalog{issues: issues, weights: weights}
}

// CreateIssue resolves a code against the dimension's catalog. Unknown codes
// fail rather than contributing an invisible zero penalty.
func (c *Catalog) CreateIssue(dim domain.DimensionName, code string) (domain.Issue, error) {
	table, ok := c.issues[dim]
	if !ok {
		return domain.Issue{}, &domain.InvalidInputError{
			Reason: "unknown audit dimension " + string(dim),
		}
	}
	entry, ok := table[code]
	if !ok {
		return domain.Issue{}, &domain.UnknownIssueCodeError{Code: code}
	}
	return domain.Issue{
		Code:           code,
		Severity:       entry.Severity,
		PointDeduction: entry.PointDeduction,
	}, nil
}

// Weight returns the overall-score weight for a dimension.
func (c *Catalog) Weight(dim domain.DimensionName) float64 {
	return c.weights[dim]
}

// Codes returns every issue code known for a dimension.
func (c *Catalog) Codes(dim domain.DimensionName) []string {
	table := c.issues[dim]
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	return codes
}
