package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Input bounds enforced by the boundary layers. The calculator itself never clamps.
const (
	MinTargetRetentionRate = 3.12
	MaxTargetRetentionRate = 15.0
	MinAverageOrderValue   = 50
	MaxAverageOrderValue   = 500
	MinCampaignCost        = 5
	MaxCampaignCost        = 50

	DefaultTargetRetentionRate = 10.0
	DefaultAverageOrderValue   = 137
	DefaultCampaignCost        = 25
)

type FocusSegment string

const (
	FocusAll                FocusSegment = "all"
	FocusPotentialLoyalists FocusSegment = "potential_loyalists"
	FocusNewCustomers       FocusSegment = "new_customers"
	FocusAtRisk             FocusSegment = "at_risk"
)

var ErrUnknownFocusSegment = errors.New("unknown focus segment")

var focusLabels = map[FocusSegment]string{
	FocusAll:                "All Customers",
	FocusPotentialLoyalists: "Potential Loyalists",
	FocusNewCustomers:       "New Customers",
	FocusAtRisk:             "At-Risk Customers",
}

// FocusSegments lists the selectable segments in display order.
func FocusSegments() []FocusSegment {
	return []FocusSegment{FocusAll, FocusPotentialLoyalists, FocusNewCustomers, FocusAtRisk}
}

func (f FocusSegment) Label() string {
	if label, ok := focusLabels[f]; ok {
		return label
	}
	return string(f)
}

// ParseFocusSegment accepts the key ("at_risk", "at-risk", "AtRisk") or the display
// label ("At-Risk Customers"), case-insensitively. An empty value means FocusAll.
func ParseFocusSegment(s string) (FocusSegment, error) {
	norm := normalizeKey(s)
	if norm == "" {
		return FocusAll, nil
	}
	compact := strings.ReplaceAll(norm, "_", "")
	for _, f := range FocusSegments() {
		if compact == strings.ReplaceAll(string(f), "_", "") || norm == normalizeKey(f.Label()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFocusSegment, s)
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

type ScenarioInputs struct {
	TargetRetentionRate     float64
	AverageOrderValue       float64
	CampaignCostPerCustomer float64
	FocusSegment            FocusSegment
}

func DefaultScenarioInputs() ScenarioInputs {
	return ScenarioInputs{
		TargetRetentionRate:     DefaultTargetRetentionRate,
		AverageOrderValue:       DefaultAverageOrderValue,
		CampaignCostPerCustomer: DefaultCampaignCost,
		FocusSegment:            FocusAll,
	}
}

// Clamp bounds every input to the range the dashboard controls allow.
// The target rate is kept at one decimal, like the slider that feeds it.
func (in ScenarioInputs) Clamp() ScenarioInputs {
	out := in
	out.TargetRetentionRate = clamp(math.Round(in.TargetRetentionRate*10)/10, MinTargetRetentionRate, MaxTargetRetentionRate)
	out.AverageOrderValue = clamp(in.AverageOrderValue, MinAverageOrderValue, MaxAverageOrderValue)
	out.CampaignCostPerCustomer = clamp(in.CampaignCostPerCustomer, MinCampaignCost, MaxCampaignCost)
	if out.FocusSegment == "" {
		out.FocusSegment = FocusAll
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// DerivedMetrics is recomputed from the inputs on every request and never stored.
type DerivedMetrics struct {
	ImprovementPercentage float64
	// AdditionalCustomers is negative for a shrinking scenario (target below current).
	AdditionalCustomers int
	RevenueOpportunity  float64
	CampaignInvestment  float64
	ROIPercent          float64
}

const ProjectionMonths = 12

type RevenueProjection struct {
	Months     []int
	Current    []float64
	Projected  []float64
	Additional []float64
}

type ScenarioRow struct {
	Label               string
	TargetRetentionRate float64
	AdditionalCustomers int
	AnnualRevenue       float64
	InvestmentRequired  float64
	ROIPercent          float64
}

type ScenarioReport struct {
	Baseline       BaselineDataset
	Inputs         ScenarioInputs
	Metrics        DerivedMetrics
	Projection     RevenueProjection
	Scenarios      []ScenarioRow
	Recommendation Recommendation
	// Focus is nil when the selected focus segment has no catalog entry.
	Focus *SegmentInsight
}
