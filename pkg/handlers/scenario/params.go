package scenario

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
)

const (
	paramTargetRetentionRate = "target_retention_rate"
	paramAverageOrderValue   = "average_order_value"
	paramCampaignCost        = "campaign_cost"
	paramFocusSegment        = "focus_segment"
)

// parseScenarioInputs reads the what-if controls from the query string.
// Missing values fall back to the dashboard defaults; out-of-range values are clamped.
func parseScenarioInputs(q url.Values) (domain.ScenarioInputs, error) {
	in := domain.DefaultScenarioInputs()

	var err error
	if in.TargetRetentionRate, err = parseFloat(q, paramTargetRetentionRate, in.TargetRetentionRate); err != nil {
		return domain.ScenarioInputs{}, err
	}
	if in.AverageOrderValue, err = parseFloat(q, paramAverageOrderValue, in.AverageOrderValue); err != nil {
		return domain.ScenarioInputs{}, err
	}
	if in.CampaignCostPerCustomer, err = parseFloat(q, paramCampaignCost, in.CampaignCostPerCustomer); err != nil {
		return domain.ScenarioInputs{}, err
	}
	if in.FocusSegment, err = domain.ParseFocusSegment(q.Get(paramFocusSegment)); err != nil {
		return domain.ScenarioInputs{}, err
	}

	return in.Clamp(), nil
}

// parseOrderValue reads the optional order value used to size segments.
func parseOrderValue(q url.Values, fallback float64) (float64, error) {
	aov, err := parseFloat(q, paramAverageOrderValue, fallback)
	if err != nil {
		return 0, err
	}
	if q.Get(paramAverageOrderValue) == "" {
		return aov, nil
	}
	in := domain.ScenarioInputs{AverageOrderValue: aov}.Clamp()
	return in.AverageOrderValue, nil
}

func parseFloat(q url.Values, name string, fallback float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid '%s' value %q. Expected a number", name, raw)
	}
	return v, nil
}
