package commands

import (
	"github.com/de-tools/retention-atlas/pkg/adapters"
	"github.com/de-tools/retention-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/de-tools/retention-atlas/pkg/services/calculator"
	"github.com/spf13/cobra"
)

type OverviewCmd struct {
	baseline baselineFlags
	registry baseline.Registry
	reporter *export.Reporter
}

func NewOverviewCmd(registry baseline.Registry, reporter *export.Reporter) *cobra.Command {
	oc := &OverviewCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the key retention metrics of the customer base",
		RunE:  oc.run,
	}
	oc.baseline.register(cmd)
	return cmd
}

func (oc *OverviewCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dataset, err := oc.baseline.load(ctx, oc.registry)
	if err != nil {
		return err
	}

	overview := calculator.New(dataset).Overview(ctx)
	return oc.reporter.Handle(adapters.MapOverviewDomainToReport(overview))
}
