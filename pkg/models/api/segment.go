package api

type Segment struct {
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Count         int     `json:"count"`
	Description   string  `json:"description"`
	RetentionRate float64 `json:"retention_rate"`
	Opportunity   string  `json:"opportunity"`
	AvgOrders     float64 `json:"avg_orders,omitempty"`
	Priority      string  `json:"priority,omitempty"`
}

type SegmentInsight struct {
	Segment      Segment `json:"segment"`
	SharePercent float64 `json:"share_percent"`
	SegmentValue float64 `json:"segment_value"`
}
