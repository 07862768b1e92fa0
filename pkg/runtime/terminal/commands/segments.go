package commands

import (
	"github.com/de-tools/retention-atlas/pkg/adapters"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/de-tools/retention-atlas/pkg/services/calculator"
	"github.com/spf13/cobra"
)

type SegmentsCmd struct {
	segment    string
	orderValue float64
	baseline   baselineFlags
	registry   baseline.Registry
	reporter   *export.Reporter
}

func NewSegmentsCmd(registry baseline.Registry, reporter *export.Reporter) *cobra.Command {
	sc := &SegmentsCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Show customer segments with their share and value",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.segment, "segment", "", "Show a single segment (e.g. potential-loyalists)")
	cmd.Flags().Float64Var(&sc.orderValue, "aov", 0, "Average order value used to value each segment (defaults to the baseline order value)")
	sc.baseline.register(cmd)

	return cmd
}

func (sc *SegmentsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dataset, err := sc.baseline.load(ctx, sc.registry)
	if err != nil {
		return err
	}

	orderValue := dataset.BaselineOrderValue
	if cmd.Flags().Changed("aov") {
		orderValue = domain.ScenarioInputs{AverageOrderValue: sc.orderValue}.Clamp().AverageOrderValue
	}

	calc := calculator.New(dataset)
	if sc.segment != "" {
		insight, err := calc.Segment(ctx, sc.segment, orderValue)
		if err != nil {
			return err
		}
		return sc.reporter.Handle(adapters.MapSegmentInsightDomainToReport(insight))
	}

	return sc.reporter.Handle(&domain.Report{
		Title:    "Customer Segments",
		Sections: []domain.ReportSection{adapters.MapSegmentInsightsDomainToReportSection(calc.Segments(ctx, orderValue))},
	})
}
