package commands

import (
	"fmt"

	"github.com/de-tools/retention-atlas/pkg/adapters"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/de-tools/retention-atlas/pkg/services/calculator"
	"github.com/spf13/cobra"
)

type ScenarioCmd struct {
	target       float64
	orderValue   float64
	campaignCost float64
	segment      string
	baseline     baselineFlags
	registry     baseline.Registry
	reporter     *export.Reporter
}

func NewScenarioCmd(registry baseline.Registry, reporter *export.Reporter) *cobra.Command {
	sc := &ScenarioCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Project revenue and ROI for a target retention rate",
		RunE:  sc.run,
	}

	defaults := domain.DefaultScenarioInputs()
	cmd.Flags().Float64Var(&sc.target, "target", defaults.TargetRetentionRate,
		fmt.Sprintf("Target retention rate in percent (%.2f-%.0f)", domain.MinTargetRetentionRate, domain.MaxTargetRetentionRate))
	cmd.Flags().Float64Var(&sc.orderValue, "aov", 0, "Average order value in dollars (defaults to the baseline order value)")
	cmd.Flags().Float64Var(&sc.campaignCost, "campaign-cost", defaults.CampaignCostPerCustomer, "Campaign cost per retained customer in dollars")
	cmd.Flags().StringVar(&sc.segment, "segment", string(domain.FocusAll), "Focus segment (all, potential_loyalists, new_customers, at_risk)")
	sc.baseline.register(cmd)

	return cmd
}

func (sc *ScenarioCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	focus, err := domain.ParseFocusSegment(sc.segment)
	if err != nil {
		return err
	}

	dataset, err := sc.baseline.load(ctx, sc.registry)
	if err != nil {
		return err
	}

	orderValue := dataset.BaselineOrderValue
	if cmd.Flags().Changed("aov") {
		orderValue = sc.orderValue
	}

	inputs := domain.ScenarioInputs{
		TargetRetentionRate:     sc.target,
		AverageOrderValue:       orderValue,
		CampaignCostPerCustomer: sc.campaignCost,
		FocusSegment:            focus,
	}.Clamp()

	report := calculator.New(dataset).Evaluate(ctx, inputs)
	return sc.reporter.Handle(adapters.MapScenarioReportDomainToReport(report))
}
