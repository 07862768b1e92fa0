package api

type ScenarioInputs struct {
	TargetRetentionRate     float64 `json:"target_retention_rate"`
	AverageOrderValue       float64 `json:"average_order_value"`
	CampaignCostPerCustomer float64 `json:"campaign_cost_per_customer"`
	FocusSegment            string  `json:"focus_segment"`
	FocusSegmentLabel       string  `json:"focus_segment_label"`
}

type DerivedMetrics struct {
	ImprovementPercentage float64 `json:"improvement_percentage"`
	AdditionalCustomers   int     `json:"additional_customers"`
	RevenueOpportunity    float64 `json:"revenue_opportunity"`
	CampaignInvestment    float64 `json:"campaign_investment"`
	ROIPercent            float64 `json:"roi_percent"`
}

type RevenueProjection struct {
	Months     []int     `json:"months"`
	Current    []float64 `json:"current_monthly_revenue"`
	Projected  []float64 `json:"projected_monthly_revenue"`
	Additional []float64 `json:"additional_monthly_revenue"`
}

type ScenarioRow struct {
	Label               string  `json:"label"`
	TargetRetentionRate float64 `json:"target_retention_rate"`
	AdditionalCustomers int     `json:"additional_customers"`
	AnnualRevenue       float64 `json:"annual_revenue"`
	InvestmentRequired  float64 `json:"investment_required"`
	ROIPercent          float64 `json:"roi_percent"`
}

type Recommendation struct {
	Tier               string   `json:"tier"`
	Strategy           string   `json:"strategy"`
	Actions            []string `json:"actions"`
	ExpectedROIPercent float64  `json:"expected_roi_percent"`
}

type ScenarioReport struct {
	Baseline       Baseline          `json:"baseline"`
	Inputs         ScenarioInputs    `json:"inputs"`
	Metrics        DerivedMetrics    `json:"metrics"`
	Projection     RevenueProjection `json:"projection"`
	Scenarios      []ScenarioRow     `json:"scenarios"`
	Recommendation Recommendation    `json:"recommendation"`
	Focus          *SegmentInsight   `json:"focus,omitempty"`
}
