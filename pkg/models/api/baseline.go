package api

type Baseline struct {
	TotalCustomers         int     `json:"total_customers"`
	RepeatCustomers        int     `json:"repeat_customers"`
	CurrentRetentionRate   float64 `json:"current_retention_rate"`
	BaselineOrderValue     float64 `json:"baseline_order_value"`
	BenchmarkRetentionRate float64 `json:"benchmark_retention_rate"`
}

type KeyMetrics struct {
	TotalCustomers         int     `json:"total_customers"`
	RepeatCustomers        int     `json:"repeat_customers"`
	RetentionRate          float64 `json:"retention_rate"`
	AverageOrderValue      float64 `json:"average_order_value"`
	BenchmarkRetentionRate float64 `json:"benchmark_retention_rate"`
	GapToBenchmark         float64 `json:"gap_to_benchmark"`
	OneTimeCustomerShare   float64 `json:"one_time_customer_share"`
}

type Overview struct {
	Baseline Baseline         `json:"baseline"`
	Metrics  KeyMetrics       `json:"metrics"`
	Segments []SegmentInsight `json:"segments"`
}
