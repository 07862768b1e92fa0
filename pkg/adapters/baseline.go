package adapters

import (
	"github.com/de-tools/retention-atlas/pkg/models/api"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/models/store"
)

func MapStoreBaselineToDomain(rec store.BaselineRecord) domain.BaselineDataset {
	return domain.BaselineDataset{
		TotalCustomers:         rec.TotalCustomers,
		RepeatCustomers:        rec.RepeatCustomers,
		CurrentRetentionRate:   rec.CurrentRetentionRate,
		BaselineOrderValue:     rec.BaselineOrderValue,
		BenchmarkRetentionRate: rec.BenchmarkRetentionRate,
	}
}

func MapDomainBaselineToStore(b domain.BaselineDataset) store.BaselineRecord {
	return store.BaselineRecord{
		TotalCustomers:         b.TotalCustomers,
		RepeatCustomers:        b.RepeatCustomers,
		CurrentRetentionRate:   b.CurrentRetentionRate,
		BaselineOrderValue:     b.BaselineOrderValue,
		BenchmarkRetentionRate: b.BenchmarkRetentionRate,
	}
}

func MapBaselineDomainToApi(b domain.BaselineDataset) api.Baseline {
	return api.Baseline{
		TotalCustomers:         b.TotalCustomers,
		RepeatCustomers:        b.RepeatCustomers,
		CurrentRetentionRate:   b.CurrentRetentionRate,
		BaselineOrderValue:     b.BaselineOrderValue,
		BenchmarkRetentionRate: b.BenchmarkRetentionRate,
	}
}

func MapKeyMetricsDomainToApi(m domain.KeyMetrics) api.KeyMetrics {
	return api.KeyMetrics{
		TotalCustomers:         m.TotalCustomers,
		RepeatCustomers:        m.RepeatCustomers,
		RetentionRate:          m.RetentionRate,
		AverageOrderValue:      m.AverageOrderValue,
		BenchmarkRetentionRate: m.BenchmarkRetentionRate,
		GapToBenchmark:         m.GapToBenchmark,
		OneTimeCustomerShare:   m.OneTimeCustomerShare,
	}
}

func MapOverviewDomainToApi(o domain.Overview) api.Overview {
	return api.Overview{
		Baseline: MapBaselineDomainToApi(o.Baseline),
		Metrics:  MapKeyMetricsDomainToApi(o.Metrics),
		Segments: MapSegmentInsightsDomainToApi(o.Segments),
	}
}
