package adapters

import (
	"fmt"

	"github.com/ad-tools/ad-pulse/pkg/models/api"
	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/models/store"
)

func MapSeverityDomainToApi(s domain.Severity) api.Severity {
	switch s {
	case domain.SeverityCritical:
		return api.SeverityCritical
	case domain.SeverityHigh:
		return api.SeverityHigh
	case domain.SeverityMedium:
		return api.SeverityMedium
	default:
		return api.SeverityLow
	}
}

func MapSeverityApiToDomain(s api.Severity) (domain.Severity, error) {
	switch s {
	case api.SeverityCritical:
		return domain.SeverityCritical, nil
	case api.SeverityHigh:
		return domain.SeverityHigh, nil
	case api.SeverityMedium:
		return domain.SeverityMedium, nil
	case api.SeverityLow:
		return domain.SeverityLow, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

func MapDifficultyApiToDomain(d string) (domain.Difficulty, error) {
	switch d {
	case "one_click":
		return domain.DifficultyOneClick, nil
	case "easy":
		return domain.DifficultyEasy, nil
	case "medium":
		return domain.DifficultyMedium, nil
	case "complex":
		return domain.DifficultyComplex, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", d)
	}
}

func MapIssueDomainToApi(issue domain.Issue) api.Issue {
	return api.Issue{
		Code:           issue.Code,
		Severity:       MapSeverityDomainToApi(issue.Severity),
		PointDeduction: issue.PointDeduction,
	}
}

func MapDimensionResultDomainToApi(dr domain.DimensionResult) api.DimensionResult {
	issues := make([]api.Issue, 0, len(dr.Issues))
	for _, issue := range dr.Issues {
		issues = append(issues, MapIssueDomainToApi(issue))
	}
	return api.DimensionResult{
		Name:      string(dr.Name),
		BaseScore: dr.BaseScore,
		Issues:    issues,
		Score:     dr.Score,
	}
}

func MapAuditResultDomainToApi(account string, result domain.AuditResult) api.AuditReport {
	dims := make(map[string]api.DimensionResult, len(result.Dimensions))
	for name, dr := range result.Dimensions {
		dims[string(name)] = MapDimensionResultDomainToApi(dr)
	}
	return api.AuditReport{
		Account:      account,
		OverallScore: result.OverallScore,
		Dimensions:   dims,
		Grade:        string(result.Grade),
		TotalIssues:  result.TotalIssues,
	}
}

func MapAuditRunStoreToApi(run store.AuditRun) api.AuditRun {
	return api.AuditRun{
		ID:              run.ID,
		OverallScore:    run.OverallScore,
		Grade:           run.Grade,
		TotalIssues:     run.TotalIssues,
		DimensionScores: run.DimensionScores,
		CreatedAt:       run.CreatedAt,
	}
}

func MapFatigueResultDomainToApi(result domain.FatigueResult) api.FatigueResult {
	return api.FatigueResult{
		Score:  result.Score,
		Status: string(result.Status),
	}
}

func MapCreativeFatigueDomainToApi(cf domain.CreativeFatigue) api.CreativeFatigue {
	return api.CreativeFatigue{
		CreativeID:  cf.Creative.CreativeID,
		Name:        cf.Creative.Name,
		CampaignID:  cf.Creative.CampaignID,
		Impressions: cf.Creative.Impressions,
		Clicks:      cf.Creative.Clicks,
		CTR:         cf.Creative.CTR,
		Frequency:   cf.Creative.Frequency,
		StartedAt:   cf.Creative.StartedAt,
		DaysActive:  cf.Creative.DaysActive,
		Fatigue:     MapFatigueResultDomainToApi(cf.Fatigue),
	}
}

func MapRecommendationDomainToApi(rec domain.Recommendation) api.Recommendation {
	return api.Recommendation{
		ID:               rec.ID,
		Dimension:        string(rec.Dimension),
		IssueCode:        rec.IssueCode,
		Title:            rec.Title,
		Action:           rec.Action,
		Severity:         MapSeverityDomainToApi(rec.Input.Severity),
		EstimatedImpact:  rec.Input.EstimatedImpact,
		Difficulty:       rec.Input.Difficulty.String(),
		AffectedEntities: rec.Input.AffectedEntities,
		PriorityScore:    rec.PriorityScore,
	}
}
