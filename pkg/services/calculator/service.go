package calculator

import (
	"context"
	"fmt"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/services/segments"
	"github.com/rs/zerolog"
)

// Service answers the dashboard questions for one immutable baseline.
type Service interface {
	Baseline() domain.BaselineDataset
	Overview(ctx context.Context) domain.Overview
	Evaluate(ctx context.Context, in domain.ScenarioInputs) domain.ScenarioReport
	Segments(ctx context.Context, avgOrderValue float64) []domain.SegmentInsight
	Segment(ctx context.Context, name string, avgOrderValue float64) (domain.SegmentInsight, error)
}

// Calculator holds no state beyond the baseline and is safe for concurrent use.
type Calculator struct {
	baseline domain.BaselineDataset
}

func New(baseline domain.BaselineDataset) *Calculator {
	return &Calculator{baseline: baseline}
}

func (c *Calculator) Baseline() domain.BaselineDataset {
	return c.baseline
}

func (c *Calculator) Overview(_ context.Context) domain.Overview {
	return domain.Overview{
		Baseline: c.baseline,
		Metrics:  segments.KeyMetrics(c.baseline),
		Segments: segments.Insights(c.baseline.BaselineOrderValue),
	}
}

// Evaluate runs every derivation the what-if page shows for one set of inputs.
func (c *Calculator) Evaluate(ctx context.Context, in domain.ScenarioInputs) domain.ScenarioReport {
	logger := zerolog.Ctx(ctx)

	metrics := Derive(c.baseline, in)
	report := domain.ScenarioReport{
		Baseline:       c.baseline,
		Inputs:         in,
		Metrics:        metrics,
		Projection:     Project(c.baseline, in),
		Scenarios:      ScenarioTable(c.baseline, in),
		Recommendation: Recommend(in.TargetRetentionRate, metrics.ROIPercent),
	}

	if rec, ok := segments.FocusRecord(in.FocusSegment); ok {
		insight := segments.Insight(rec, in.AverageOrderValue)
		report.Focus = &insight
	}

	logger.Debug().
		Float64("target_retention_rate", in.TargetRetentionRate).
		Int("additional_customers", metrics.AdditionalCustomers).
		Float64("roi_percent", metrics.ROIPercent).
		Str("tier", string(report.Recommendation.Tier)).
		Msg("scenario evaluated")

	return report
}

func (c *Calculator) Segments(_ context.Context, avgOrderValue float64) []domain.SegmentInsight {
	return segments.Insights(avgOrderValue)
}

func (c *Calculator) Segment(_ context.Context, name string, avgOrderValue float64) (domain.SegmentInsight, error) {
	rec, err := segments.Lookup(name)
	if err != nil {
		return domain.SegmentInsight{}, fmt.Errorf("failed to resolve segment: %w", err)
	}
	return segments.Insight(rec, avgOrderValue), nil
}
