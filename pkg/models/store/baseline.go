package store

// BaselineRecord is the on-disk shape of a baseline dataset, shared by the
// viper file source and the ini profile source.
type BaselineRecord struct {
	TotalCustomers         int     `mapstructure:"total_customers" ini:"total_customers"`
	RepeatCustomers        int     `mapstructure:"repeat_customers" ini:"repeat_customers"`
	CurrentRetentionRate   float64 `mapstructure:"current_retention_rate" ini:"current_retention_rate"`
	BaselineOrderValue     float64 `mapstructure:"baseline_order_value" ini:"baseline_order_value"`
	BenchmarkRetentionRate float64 `mapstructure:"benchmark_retention_rate" ini:"benchmark_retention_rate"`
}
