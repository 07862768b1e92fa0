package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Handle(&domain.Report{
		Title:    "Retention",
		Subtitle: "Target 10.0%",
		Sections: []domain.ReportSection{
			{
				Title:   "Revenue Impact",
				Summary: []domain.ReportSummary{{Name: "ROI", Value: "448%"}},
			},
			{
				Title: "What-If Scenario Analysis",
				Details: []domain.ReportDetail{{
					Name:        "Moderate (10% retention)",
					Value:       "6,611",
					Unit:        "customers",
					Description: "revenue $905,707",
				}},
				Notes: []string{"Basic follow-up campaigns"},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Retention\nTarget 10.0%\n")
	assert.Contains(t, out, "=== Revenue Impact ===\nROI: 448%\n")
	assert.Contains(t, out, "=== What-If Scenario Analysis ===")
	assert.Contains(t, out, "| Moderate (10% retention)")
	assert.Contains(t, out, "| 6,611 ")
	assert.Contains(t, out, "- Basic follow-up campaigns\n")

	// header, detail row and three separators
	var tableLines int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") || strings.HasPrefix(line, "+") {
			tableLines++
		}
	}
	assert.Equal(t, 5, tableLines)
}

func TestNewReporter_DefaultsToStdout(t *testing.T) {
	r := NewReporter(nil)
	assert.NotNil(t, r.writer)
}
