package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/spf13/cobra"
)

// baselineFlags selects the dataset a command projects from.
type baselineFlags struct {
	source  string
	path    string
	profile string
}

func (b *baselineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.source, "baseline-source", baseline.SourceDefault, "Baseline source (default, file, profile)")
	cmd.Flags().StringVar(&b.path, "baseline-path", "", "Path to the baseline file or profile file")
	cmd.Flags().StringVar(&b.profile, "baseline-profile", "", "Profile section to read from the profile file")
}

func (b *baselineFlags) load(ctx context.Context, registry baseline.Registry) (domain.BaselineDataset, error) {
	dataset, err := baseline.Load(ctx, registry, b.source, baseline.SourceOptions{
		Path:    b.path,
		Profile: b.profile,
	})
	if err != nil {
		return domain.BaselineDataset{}, fmt.Errorf("failed to load baseline from source %s: %w", b.source, err)
	}
	return dataset, nil
}
