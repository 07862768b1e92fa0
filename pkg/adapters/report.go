package adapters

import (
	"fmt"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
)

func MapOverviewDomainToReport(o domain.Overview) *domain.Report {
	m := o.Metrics
	return &domain.Report{
		Title:    "E-commerce Customer Retention Analysis",
		Subtitle: "Overview",
		Sections: []domain.ReportSection{
			{
				Title: "Key Business Metrics",
				Summary: []domain.ReportSummary{
					{Name: "Total Customers", Value: FormatCount(m.TotalCustomers)},
					{Name: "Retention Rate", Value: fmt.Sprintf("%s (%s vs industry avg)",
						FormatPercent(m.RetentionRate, 2), FormatDelta(m.GapToBenchmark, 2))},
					{Name: "Repeat Customers", Value: FormatCount(m.RepeatCustomers)},
					{Name: "Avg Order Value", Value: FormatCurrency(m.AverageOrderValue)},
					{Name: "One-time Customers", Value: FormatPercent(m.OneTimeCustomerShare, 1)},
				},
			},
			MapSegmentInsightsDomainToReportSection(o.Segments),
		},
	}
}

func MapSegmentInsightsDomainToReportSection(insights []domain.SegmentInsight) domain.ReportSection {
	section := domain.ReportSection{Title: "Customer Segmentation"}
	for _, i := range insights {
		desc := fmt.Sprintf("%s of total, value %s", FormatPercent(i.SharePercent, 1), FormatCurrency(i.SegmentValue))
		if i.Segment.Priority != "" {
			desc += ", priority " + i.Segment.Priority
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        i.Segment.Name,
			Value:       FormatCount(i.Segment.Count),
			Unit:        "customers",
			Description: desc,
		})
	}
	return section
}

func MapSegmentInsightDomainToReport(i domain.SegmentInsight) *domain.Report {
	return &domain.Report{
		Title:    "Customer Segment Analysis",
		Subtitle: i.Segment.Name,
		Sections: []domain.ReportSection{MapSegmentInsightDomainToReportSection(i)},
	}
}

func MapSegmentInsightDomainToReportSection(i domain.SegmentInsight) domain.ReportSection {
	return domain.ReportSection{
		Title: i.Segment.Name,
		Summary: []domain.ReportSummary{
			{Name: "Segment Size", Value: FormatCount(i.Segment.Count)},
			{Name: "Current Retention", Value: FormatPercent(i.Segment.RetentionRate, 0)},
			{Name: "% of Total", Value: FormatPercent(i.SharePercent, 1)},
			{Name: "Segment Value", Value: FormatCurrency(i.SegmentValue)},
		},
		Notes: []string{
			i.Segment.Description,
			"Opportunity: " + i.Segment.Opportunity,
		},
	}
}

func MapScenarioReportDomainToReport(r domain.ScenarioReport) *domain.Report {
	in := r.Inputs
	m := r.Metrics

	report := &domain.Report{
		Title: "Interactive E-commerce Customer Retention Analysis",
		Subtitle: fmt.Sprintf("Target %s, order value %s, campaign cost %s per customer, focus %s",
			FormatPercent(in.TargetRetentionRate, 1),
			FormatCurrency(in.AverageOrderValue),
			FormatCurrency(in.CampaignCostPerCustomer),
			in.FocusSegment.Label()),
		Sections: []domain.ReportSection{
			{
				Title: "Dynamic Business Impact Calculator",
				Summary: []domain.ReportSummary{
					{Name: "Total Customers", Value: FormatCount(r.Baseline.TotalCustomers)},
					{Name: "Current Retention", Value: FormatPercent(r.Baseline.CurrentRetentionRate, 2)},
					{Name: "Target Retention", Value: fmt.Sprintf("%s (%s)",
						FormatPercent(in.TargetRetentionRate, 1), FormatDelta(m.ImprovementPercentage, 2))},
					{Name: "Additional Customers", Value: FormatCount(m.AdditionalCustomers)},
				},
			},
			{
				Title: "Revenue Impact",
				Summary: []domain.ReportSummary{
					{Name: "Revenue Opportunity", Value: FormatCurrency(m.RevenueOpportunity) + " annual"},
					{Name: "Campaign Investment", Value: FormatCurrency(m.CampaignInvestment)},
					{Name: "ROI", Value: FormatPercent(m.ROIPercent, 0)},
				},
			},
			mapProjectionToReportSection(r.Projection),
		},
	}

	if r.Focus != nil {
		report.Sections = append(report.Sections, MapSegmentInsightDomainToReportSection(*r.Focus))
	}

	report.Sections = append(report.Sections,
		mapScenarioRowsToReportSection(r.Scenarios),
		mapRecommendationToReportSection(r.Recommendation, in.TargetRetentionRate),
	)
	return report
}

func mapProjectionToReportSection(p domain.RevenueProjection) domain.ReportSection {
	section := domain.ReportSection{Title: "Monthly Revenue Projection"}
	for i, month := range p.Months {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("Month %d", month),
			Value:       fmt.Sprintf("%s -> %s", FormatCurrency(p.Current[i]), FormatCurrency(p.Projected[i])),
			Unit:        "USD",
			Description: "additional " + FormatCurrency(p.Additional[i]),
		})
	}
	return section
}

func mapScenarioRowsToReportSection(rows []domain.ScenarioRow) domain.ReportSection {
	section := domain.ReportSection{Title: "What-If Scenario Analysis"}
	for _, row := range rows {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  row.Label,
			Value: FormatCount(row.AdditionalCustomers),
			Unit:  "customers",
			Description: fmt.Sprintf("revenue %s, investment %s, ROI %s",
				FormatCurrency(row.AnnualRevenue),
				FormatCurrency(row.InvestmentRequired),
				FormatPercent(row.ROIPercent, 0)),
		})
	}
	return section
}

func mapRecommendationToReportSection(rec domain.Recommendation, target float64) domain.ReportSection {
	notes := make([]string, 0, len(rec.Actions)+1)
	notes = append(notes, rec.Actions...)
	notes = append(notes, "Expected ROI: "+FormatPercent(rec.ExpectedROIPercent, 0))

	return domain.ReportSection{
		Title: "Dynamic Business Recommendations",
		Summary: []domain.ReportSummary{
			{Name: "Strategy", Value: fmt.Sprintf("%s (Target: %s)", rec.Strategy, FormatPercent(target, 1))},
		},
		Notes: notes,
	}
}
