package terminal

import (
	"io"
	"os"

	"github.com/de-tools/retention-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/retention-atlas/pkg/runtime/terminal/export"

	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry baseline.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry baseline.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = baseline.NewDefaultRegistry()
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "retention",
		Short:         "Customer retention scenario calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewScenarioCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewSegmentsCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewOverviewCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewSourcesCmd(cli.registry))

	return cmd
}
