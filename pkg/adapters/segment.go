package adapters

import (
	"github.com/de-tools/retention-atlas/pkg/models/api"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/services/segments"
)

func MapSegmentDomainToApi(s domain.SegmentRecord) api.Segment {
	return api.Segment{
		Name:          s.Name,
		Slug:          segments.Slug(s.Name),
		Count:         s.Count,
		Description:   s.Description,
		RetentionRate: s.RetentionRate,
		Opportunity:   s.Opportunity,
		AvgOrders:     s.AvgOrders,
		Priority:      s.Priority,
	}
}

func MapSegmentInsightDomainToApi(i domain.SegmentInsight) api.SegmentInsight {
	return api.SegmentInsight{
		Segment:      MapSegmentDomainToApi(i.Segment),
		SharePercent: i.SharePercent,
		SegmentValue: i.SegmentValue,
	}
}

func MapSegmentInsightsDomainToApi(insights []domain.SegmentInsight) []api.SegmentInsight {
	res := make([]api.SegmentInsight, 0, len(insights))
	for _, i := range insights {
		res = append(res, MapSegmentInsightDomainToApi(i))
	}
	return res
}
