package domain

type SegmentRecord struct {
	Name          string
	Count         int
	Description   string
	RetentionRate float64
	Opportunity   string
	AvgOrders     float64 // zero for the overview row
	Priority      string  // empty for the overview row
}

type SegmentInsight struct {
	Segment      SegmentRecord
	SharePercent float64
	SegmentValue float64
}
