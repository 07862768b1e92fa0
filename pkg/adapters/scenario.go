package adapters

import (
	"slices"

	"github.com/de-tools/retention-atlas/pkg/models/api"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
)

func MapScenarioInputsDomainToApi(in domain.ScenarioInputs) api.ScenarioInputs {
	return api.ScenarioInputs{
		TargetRetentionRate:     in.TargetRetentionRate,
		AverageOrderValue:       in.AverageOrderValue,
		CampaignCostPerCustomer: in.CampaignCostPerCustomer,
		FocusSegment:            string(in.FocusSegment),
		FocusSegmentLabel:       in.FocusSegment.Label(),
	}
}

func MapDerivedMetricsDomainToApi(m domain.DerivedMetrics) api.DerivedMetrics {
	return api.DerivedMetrics{
		ImprovementPercentage: m.ImprovementPercentage,
		AdditionalCustomers:   m.AdditionalCustomers,
		RevenueOpportunity:    m.RevenueOpportunity,
		CampaignInvestment:    m.CampaignInvestment,
		ROIPercent:            m.ROIPercent,
	}
}

func MapProjectionDomainToApi(p domain.RevenueProjection) api.RevenueProjection {
	return api.RevenueProjection{
		Months:     slices.Clone(p.Months),
		Current:    slices.Clone(p.Current),
		Projected:  slices.Clone(p.Projected),
		Additional: slices.Clone(p.Additional),
	}
}

func MapScenarioRowDomainToApi(r domain.ScenarioRow) api.ScenarioRow {
	return api.ScenarioRow{
		Label:               r.Label,
		TargetRetentionRate: r.TargetRetentionRate,
		AdditionalCustomers: r.AdditionalCustomers,
		AnnualRevenue:       r.AnnualRevenue,
		InvestmentRequired:  r.InvestmentRequired,
		ROIPercent:          r.ROIPercent,
	}
}

func MapRecommendationDomainToApi(r domain.Recommendation) api.Recommendation {
	return api.Recommendation{
		Tier:               string(r.Tier),
		Strategy:           r.Strategy,
		Actions:            slices.Clone(r.Actions),
		ExpectedROIPercent: r.ExpectedROIPercent,
	}
}

func MapScenarioReportDomainToApi(r domain.ScenarioReport) api.ScenarioReport {
	res := api.ScenarioReport{
		Baseline:       MapBaselineDomainToApi(r.Baseline),
		Inputs:         MapScenarioInputsDomainToApi(r.Inputs),
		Metrics:        MapDerivedMetricsDomainToApi(r.Metrics),
		Projection:     MapProjectionDomainToApi(r.Projection),
		Scenarios:      make([]api.ScenarioRow, 0, len(r.Scenarios)),
		Recommendation: MapRecommendationDomainToApi(r.Recommendation),
	}
	for _, row := range r.Scenarios {
		res.Scenarios = append(res.Scenarios, MapScenarioRowDomainToApi(row))
	}
	if r.Focus != nil {
		focus := MapSegmentInsightDomainToApi(*r.Focus)
		res.Focus = &focus
	}
	return res
}
