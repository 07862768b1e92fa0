package segments

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
)

const (
	Overview           = "Overview"
	NewCustomers       = "New Customers"
	PotentialLoyalists = "Potential Loyalists"
	LoyalCustomers     = "Loyal Customers"
	Champions          = "Champions"
)

// catalogCustomers is the customer base the segment counts were measured on.
// Shares are taken against it, whatever baseline the calculator runs with.
const catalogCustomers = 96096

var ErrUnknownSegment = errors.New("unknown segment")

// Catalog returns the segment table in display order. Counts come from the
// order-count segmentation of the default baseline.
func Catalog() []domain.SegmentRecord {
	return []domain.SegmentRecord{
		{
			Name:          Overview,
			Count:         catalogCustomers,
			Description:   "Complete customer base analysis",
			RetentionRate: 3.12,
			Opportunity:   "Massive untapped potential",
		},
		{
			Name:          NewCustomers,
			Count:         93110,
			Description:   "Customers with exactly 1 order",
			RetentionRate: 0,
			Opportunity:   "Primary target for retention campaigns",
			AvgOrders:     1,
			Priority:      "Medium",
		},
		{
			Name:          PotentialLoyalists,
			Count:         2745,
			Description:   "Customers with 2 orders",
			RetentionRate: 100,
			Opportunity:   "High-value segment for loyalty programs",
			AvgOrders:     2,
			Priority:      "High",
		},
		{
			Name:          LoyalCustomers,
			Count:         203,
			Description:   "Customers with 3 orders",
			RetentionRate: 100,
			Opportunity:   "VIP treatment and referral programs",
			AvgOrders:     3,
			Priority:      "Very High",
		},
		{
			Name:          Champions,
			Count:         38,
			Description:   "Customers with 4+ orders",
			RetentionRate: 100,
			Opportunity:   "Brand ambassadors and case studies",
			AvgOrders:     4.5,
			Priority:      "Critical",
		},
	}
}

// Lookup finds a segment by name or slug ("potential-loyalists"), ignoring case.
func Lookup(name string) (domain.SegmentRecord, error) {
	key := Slug(name)
	for _, rec := range Catalog() {
		if Slug(rec.Name) == key {
			return rec, nil
		}
	}
	return domain.SegmentRecord{}, fmt.Errorf("%w: %q", ErrUnknownSegment, name)
}

func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

// FocusRecord maps a scenario focus segment onto its catalog row.
// At-risk customers have no row of their own, so ok is false for them.
func FocusRecord(focus domain.FocusSegment) (domain.SegmentRecord, bool) {
	var name string
	switch focus {
	case domain.FocusAll, "":
		name = Overview
	case domain.FocusNewCustomers:
		name = NewCustomers
	case domain.FocusPotentialLoyalists:
		name = PotentialLoyalists
	default:
		return domain.SegmentRecord{}, false
	}

	rec, err := Lookup(name)
	return rec, err == nil
}

// Insight sizes a segment against the measured customer base at the given order value.
func Insight(rec domain.SegmentRecord, avgOrderValue float64) domain.SegmentInsight {
	share := float64(rec.Count) / catalogCustomers * 100
	return domain.SegmentInsight{
		Segment:      rec,
		SharePercent: share,
		SegmentValue: float64(rec.Count) * avgOrderValue,
	}
}

func Insights(avgOrderValue float64) []domain.SegmentInsight {
	catalog := Catalog()
	out := make([]domain.SegmentInsight, 0, len(catalog))
	for _, rec := range catalog {
		out = append(out, Insight(rec, avgOrderValue))
	}
	return out
}

// KeyMetrics derives the overview headline figures. Every customer without a
// repeat order counts as one-time, so the share follows the baseline it is given.
func KeyMetrics(baseline domain.BaselineDataset) domain.KeyMetrics {
	m := domain.KeyMetrics{
		TotalCustomers:         baseline.TotalCustomers,
		RepeatCustomers:        baseline.RepeatCustomers,
		RetentionRate:          baseline.CurrentRetentionRate,
		AverageOrderValue:      baseline.BaselineOrderValue,
		BenchmarkRetentionRate: baseline.BenchmarkRetentionRate,
		GapToBenchmark:         baseline.CurrentRetentionRate - baseline.BenchmarkRetentionRate,
	}
	if baseline.TotalCustomers > 0 {
		oneTime := baseline.TotalCustomers - baseline.RepeatCustomers
		m.OneTimeCustomerShare = float64(oneTime) / float64(baseline.TotalCustomers) * 100
	}
	return m
}
