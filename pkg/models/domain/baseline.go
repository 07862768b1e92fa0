package domain

import (
	"errors"
	"fmt"
	"math"
)

// BaselineDataset holds the observed customer base the scenarios are projected from.
// It is loaded once at start-up and passed around by value.
type BaselineDataset struct {
	TotalCustomers         int
	RepeatCustomers        int
	CurrentRetentionRate   float64 // percent, 3.12 means 3.12%
	BaselineOrderValue     float64
	BenchmarkRetentionRate float64 // industry average the overview compares against
}

// DefaultBaseline returns the figures measured on the public e-commerce order dataset.
func DefaultBaseline() BaselineDataset {
	return BaselineDataset{
		TotalCustomers:         96096,
		RepeatCustomers:        2986,
		CurrentRetentionRate:   3.12,
		BaselineOrderValue:     137,
		BenchmarkRetentionRate: 10.0,
	}
}

var ErrInvalidBaseline = errors.New("invalid baseline dataset")

func (b BaselineDataset) Validate() error {
	switch {
	case b.TotalCustomers <= 0:
		return fmt.Errorf("%w: total_customers must be positive, got %d", ErrInvalidBaseline, b.TotalCustomers)
	case b.RepeatCustomers < 0 || b.RepeatCustomers > b.TotalCustomers:
		return fmt.Errorf("%w: repeat_customers must be within [0, %d], got %d",
			ErrInvalidBaseline, b.TotalCustomers, b.RepeatCustomers)
	case !inRange(b.CurrentRetentionRate, 0, 100):
		return fmt.Errorf("%w: current_retention_rate must be within [0, 100], got %g",
			ErrInvalidBaseline, b.CurrentRetentionRate)
	case !inRange(b.BenchmarkRetentionRate, 0, 100):
		return fmt.Errorf("%w: benchmark_retention_rate must be within [0, 100], got %g",
			ErrInvalidBaseline, b.BenchmarkRetentionRate)
	case b.BaselineOrderValue <= 0 || math.IsNaN(b.BaselineOrderValue) || math.IsInf(b.BaselineOrderValue, 0):
		return fmt.Errorf("%w: baseline_order_value must be a positive number, got %g", ErrInvalidBaseline, b.BaselineOrderValue)
	}
	return nil
}

// inRange is false for NaN, which compares false against both bounds.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// KeyMetrics is the headline block of the overview page.
type KeyMetrics struct {
	TotalCustomers         int
	RepeatCustomers        int
	RetentionRate          float64
	AverageOrderValue      float64
	BenchmarkRetentionRate float64
	GapToBenchmark         float64 // negative when below the benchmark
	OneTimeCustomerShare   float64 // percent of customers with a single order
}

type Overview struct {
	Baseline BaselineDataset
	Metrics  KeyMetrics
	Segments []SegmentInsight
}
