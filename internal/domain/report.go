package domain

// ReportStatus tracks the handling state of an incident report.
type ReportStatus string

const (
	ReportStatusOpen       ReportStatus = "open"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
	ReportStatusClosed     ReportStatus = "closed"
)

// Report is an incident report filed against a facility.
type Report struct {
	ID          int          `json:"id"`
	FacilityID  int          `json:"facility_id"`
	TypeID      int          `json:"type_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	ReportedBy  string       `json:"reported_by"`
	ReportedAt  string       `json:"reported_at"`
	ResolvedAt  string       `json:"resolved_at,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

// ReportType is reference data for classifying reports.
type ReportType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ReportSummary aggregates report counts for dashboard charts.
type ReportSummary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByFacility map[string]int `json:"by_facility"`
}
