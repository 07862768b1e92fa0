package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	profilePath string
	registry    baseline.Registry
}

func NewSourcesCmd(registry baseline.Registry) *cobra.Command {
	sc := &SourcesCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List baseline sources, or the profiles of a profile file",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profiles", "", "Path to a profile file whose sections should be listed")

	return cmd
}

func (sc *SourcesCmd) run(cmd *cobra.Command, _ []string) error {
	if sc.profilePath == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Supported baseline sources:\n%s\n",
			strings.Join(sc.registry.ListSources(), "\n"))
		return nil
	}

	profiles, err := baseline.NewProfileRegistry(sc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to open profile file %s: %w", sc.profilePath, err)
	}

	names, err := profiles.GetProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in: %s\n", sc.profilePath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n%s\n", sc.profilePath, strings.Join(names, "\n"))
	return nil
}
