package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/retention-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/de-tools/retention-atlas/pkg/services/segments"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileFile = `
[olist]
total_customers = 96096
repeat_customers = 2986
current_retention_rate = 3.12
baseline_order_value = 137

[small]
total_customers = 1000
repeat_customers = 50
current_retention_rate = 5
baseline_order_value = 100
`

const profilesPlaceholder = "{profiles}"

func run(t *testing.T, newCmd func(baseline.Registry, *export.Reporter) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newCmd(baseline.NewDefaultRegistry(), export.NewReporter(&out))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// nil args would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(profileFile), 0o600))
	return path
}

func TestScenarioCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name: "defaults",
			args: nil,
			contains: []string{
				"Additional Customers: 6,611",
				"Revenue Opportunity: $905,707 annual",
				"Campaign Investment: $165,275",
				"Strategy: Aggressive Growth Strategy (Target: 10.0%)",
			},
		},
		{
			name: "target is clamped",
			args: []string{"--target", "20"},
			contains: []string{
				"Target Retention: 15.0% (+11.88%)",
				"Additional Customers: 11,416",
			},
		},
		{
			name: "negative order value is clamped",
			args: []string{"--aov=-20"},
			contains: []string{
				"order value $50",
				"Revenue Opportunity: $330,550 annual",
			},
		},
		{
			name: "focus segment",
			args: []string{"--segment", "Potential Loyalists"},
			contains: []string{
				"=== Potential Loyalists ===",
				"Segment Size: 2,745",
				"focus Potential Loyalists",
			},
		},
		{
			name: "baseline from profile",
			args: []string{"--baseline-source", "profile", "--baseline-path", profilesPlaceholder, "--baseline-profile", "small", "--target", "10"},
			contains: []string{
				"Total Customers: 1,000",
				"Additional Customers: 50",
				"order value $100",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				if a == profilesPlaceholder {
					a = writeProfiles(t)
				}
				args[i] = a
			}

			out, err := run(t, NewScenarioCmd, args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestScenarioCmd_UnknownSource(t *testing.T) {
	_, err := run(t, NewScenarioCmd, "--baseline-source", "warehouse")
	require.Error(t, err)
	assert.ErrorIs(t, err, baseline.ErrUnknownSource)
}

func TestSegmentsCmd(t *testing.T) {
	out, err := run(t, NewSegmentsCmd)
	require.NoError(t, err)
	for _, rec := range segments.Catalog() {
		assert.Contains(t, out, "| "+rec.Name)
	}

	out, err = run(t, NewSegmentsCmd, "--segment", "potential-loyalists", "--aov", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "% of Total: 2.9%")
	assert.Contains(t, out, "Segment Value: $1,372,500")

	out, err = run(t, NewSegmentsCmd, "--segment", "champions", "--aov=-5")
	require.NoError(t, err)
	assert.Contains(t, out, "Segment Value: $1,900")

	_, err = run(t, NewSegmentsCmd, "--segment", "whales")
	assert.ErrorIs(t, err, segments.ErrUnknownSegment)
}

func TestOverviewCmd(t *testing.T) {
	out, err := run(t, NewOverviewCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Customers: 96,096")
	assert.Contains(t, out, "Retention Rate: 3.12% (-6.88% vs industry avg)")
	assert.Contains(t, out, "One-time Customers: 96.9%")
}

func TestOverviewCmd_ProfileBaseline(t *testing.T) {
	out, err := run(t, NewOverviewCmd,
		"--baseline-source", "profile", "--baseline-path", writeProfiles(t), "--baseline-profile", "small")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Customers: 1,000")
	assert.Contains(t, out, "One-time Customers: 95.0%")
	assert.Contains(t, out, "| Potential Loyalists")
	assert.Contains(t, out, "2.9% of total")
	assert.NotContains(t, out, "274.5%")
}

func TestSourcesCmd_Profiles(t *testing.T) {
	var out bytes.Buffer
	cmd := NewSourcesCmd(baseline.NewDefaultRegistry())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--profiles", writeProfiles(t)})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "olist\nsmall\n")
}
