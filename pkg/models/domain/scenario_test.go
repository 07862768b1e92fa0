package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFocusSegment(t *testing.T) {
	tests := []struct {
		in       string
		expected FocusSegment
	}{
		{"", FocusAll},
		{"all", FocusAll},
		{"All Customers", FocusAll},
		{"potential_loyalists", FocusPotentialLoyalists},
		{"PotentialLoyalists", FocusPotentialLoyalists},
		{"potential-loyalists", FocusPotentialLoyalists},
		{"New Customers", FocusNewCustomers},
		{"at-risk", FocusAtRisk},
		{"At-Risk Customers", FocusAtRisk},
		{" AtRisk ", FocusAtRisk},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFocusSegment(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseFocusSegment_Unknown(t *testing.T) {
	_, err := ParseFocusSegment("champions")
	assert.ErrorIs(t, err, ErrUnknownFocusSegment)
}

func TestFocusSegment_Label(t *testing.T) {
	assert.Equal(t, "At-Risk Customers", FocusAtRisk.Label())
	assert.Equal(t, "custom", FocusSegment("custom").Label())
}

func TestScenarioInputs_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		in       ScenarioInputs
		expected ScenarioInputs
	}{
		{
			name:     "defaults are untouched",
			in:       DefaultScenarioInputs(),
			expected: DefaultScenarioInputs(),
		},
		{
			name: "below range",
			in:   ScenarioInputs{TargetRetentionRate: 1, AverageOrderValue: 10, CampaignCostPerCustomer: 0},
			expected: ScenarioInputs{
				TargetRetentionRate:     MinTargetRetentionRate,
				AverageOrderValue:       MinAverageOrderValue,
				CampaignCostPerCustomer: MinCampaignCost,
				FocusSegment:            FocusAll,
			},
		},
		{
			name: "above range",
			in: ScenarioInputs{
				TargetRetentionRate:     40,
				AverageOrderValue:       9000,
				CampaignCostPerCustomer: 75,
				FocusSegment:            FocusAtRisk,
			},
			expected: ScenarioInputs{
				TargetRetentionRate:     MaxTargetRetentionRate,
				AverageOrderValue:       MaxAverageOrderValue,
				CampaignCostPerCustomer: MaxCampaignCost,
				FocusSegment:            FocusAtRisk,
			},
		},
		{
			name: "target rounded to one decimal",
			in:   ScenarioInputs{TargetRetentionRate: 7.26, AverageOrderValue: 120, CampaignCostPerCustomer: 20},
			expected: ScenarioInputs{
				TargetRetentionRate:     7.3,
				AverageOrderValue:       120,
				CampaignCostPerCustomer: 20,
				FocusSegment:            FocusAll,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Clamp())
		})
	}
}
