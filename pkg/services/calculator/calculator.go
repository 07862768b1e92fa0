package calculator

import (
	"math"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
)

// Derive computes the headline scenario metrics for the given inputs.
// Inputs are taken as-is: a target below the current rate yields negative
// customer, revenue and investment figures.
func Derive(baseline domain.BaselineDataset, in domain.ScenarioInputs) domain.DerivedMetrics {
	improvement := in.TargetRetentionRate - baseline.CurrentRetentionRate
	additional := AdditionalCustomers(baseline, in.TargetRetentionRate)
	revenue := float64(additional) * in.AverageOrderValue
	investment := float64(additional) * in.CampaignCostPerCustomer

	return domain.DerivedMetrics{
		ImprovementPercentage: improvement,
		AdditionalCustomers:   additional,
		RevenueOpportunity:    revenue,
		CampaignInvestment:    investment,
		ROIPercent:            ROI(revenue, investment),
	}
}

// AdditionalCustomers is floor(total * (target - current) / 100).
func AdditionalCustomers(baseline domain.BaselineDataset, targetRate float64) int {
	improvement := targetRate - baseline.CurrentRetentionRate
	return int(math.Floor(float64(baseline.TotalCustomers) * improvement / 100))
}

// ROI returns the return on investment in percent, or 0 when nothing is invested.
func ROI(revenue, investment float64) float64 {
	if investment == 0 {
		return 0
	}
	return (revenue - investment) / investment * 100
}
