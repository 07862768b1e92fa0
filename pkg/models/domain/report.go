package domain

// Report is the presentation-neutral form of a page, rendered by the terminal reporters.
type Report struct {
	Title    string
	Subtitle string
	Sections []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary []ReportSummary
	Details []ReportDetail
	Notes   []string
}

// ReportSummary is a single headline value; kept ordered, unlike a map.
type ReportSummary struct {
	Name  string
	Value string
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       string
	Unit        string
	Description string
}
