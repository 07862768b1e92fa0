package calculator

import (
	"fmt"
	"math"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
)

type fixedScenario struct {
	name   string
	target float64
}

var fixedScenarios = []fixedScenario{
	{name: "Conservative", target: 5},
	{name: "Moderate", target: 10},
	{name: "Aggressive", target: 15},
}

// ScenarioTable evaluates the fixed 5%, 10% and 15% retention targets with the
// caller's order value and campaign cost. ROI is rounded to a whole percent.
func ScenarioTable(baseline domain.BaselineDataset, in domain.ScenarioInputs) []domain.ScenarioRow {
	rows := make([]domain.ScenarioRow, 0, len(fixedScenarios))
	for _, s := range fixedScenarios {
		scenario := in
		scenario.TargetRetentionRate = s.target
		m := Derive(baseline, scenario)

		rows = append(rows, domain.ScenarioRow{
			Label:               fmt.Sprintf("%s (%g%% retention)", s.name, s.target),
			TargetRetentionRate: s.target,
			AdditionalCustomers: m.AdditionalCustomers,
			AnnualRevenue:       m.RevenueOpportunity,
			InvestmentRequired:  m.CampaignInvestment,
			ROIPercent:          math.Round(m.ROIPercent),
		})
	}
	return rows
}
