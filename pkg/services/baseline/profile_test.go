package baseline

import (
	"context"
	"testing"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profiles = `
[olist]
total_customers = 96096
repeat_customers = 2986
current_retention_rate = 3.12
baseline_order_value = 137

[holiday]
total_customers = 40000
repeat_customers = 3200
current_retention_rate = 8
baseline_order_value = 95
benchmark_retention_rate = 15

[broken]
total_customers = 100
repeat_customers = 500

[empty]
`

func TestProfileRegistry_GetProfiles(t *testing.T) {
	reg, err := NewProfileRegistry(writeFile(t, "profiles.ini", profiles))
	require.NoError(t, err)

	names, err := reg.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"olist", "holiday", "broken"}, names)
}

func TestProfileRegistry_GetDataset(t *testing.T) {
	reg, err := NewProfileRegistry(writeFile(t, "profiles.ini", profiles))
	require.NoError(t, err)
	ctx := context.Background()

	olist, err := reg.GetDataset(ctx, "olist")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBaseline(), olist)

	holiday, err := reg.GetDataset(ctx, "holiday")
	require.NoError(t, err)
	assert.Equal(t, domain.BaselineDataset{
		TotalCustomers:         40000,
		RepeatCustomers:        3200,
		CurrentRetentionRate:   8,
		BaselineOrderValue:     95,
		BenchmarkRetentionRate: 15,
	}, holiday)

	_, err = reg.GetDataset(ctx, "broken")
	assert.ErrorIs(t, err, domain.ErrInvalidBaseline)

	_, err = reg.GetDataset(ctx, "empty")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = reg.GetDataset(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileSource_Load(t *testing.T) {
	path := writeFile(t, "profiles.ini", profiles)

	dataset, err := Load(context.Background(), NewDefaultRegistry(), SourceProfile, SourceOptions{
		Path:    path,
		Profile: "holiday",
	})
	require.NoError(t, err)
	assert.Equal(t, 40000, dataset.TotalCustomers)

	_, err = ProfileSourceFactory(SourceOptions{})
	assert.Error(t, err)
}
