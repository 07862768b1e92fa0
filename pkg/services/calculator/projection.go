package calculator

import "github.com/de-tools/retention-atlas/pkg/models/domain"

// MonthlyRevenue is the revenue one month contributes at the given retention rate.
func MonthlyRevenue(baseline domain.BaselineDataset, retentionRate, avgOrderValue float64) float64 {
	return float64(baseline.TotalCustomers) * retentionRate / 100 * avgOrderValue / 12
}

// Project builds the twelve-month current vs. target revenue series.
// The projection is flat: every month of a series carries the same value.
func Project(baseline domain.BaselineDataset, in domain.ScenarioInputs) domain.RevenueProjection {
	current := MonthlyRevenue(baseline, baseline.CurrentRetentionRate, in.AverageOrderValue)
	projected := MonthlyRevenue(baseline, in.TargetRetentionRate, in.AverageOrderValue)

	p := domain.RevenueProjection{
		Months:     make([]int, domain.ProjectionMonths),
		Current:    make([]float64, domain.ProjectionMonths),
		Projected:  make([]float64, domain.ProjectionMonths),
		Additional: make([]float64, domain.ProjectionMonths),
	}
	for i := 0; i < domain.ProjectionMonths; i++ {
		p.Months[i] = i + 1
		p.Current[i] = current
		p.Projected[i] = projected
		p.Additional[i] = projected - current
	}
	return p
}
