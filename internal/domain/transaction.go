package domain

// AdminTransaction is an entry in the administrative transaction log.
type AdminTransaction struct {
	ID          int     `json:"id"`
	FacilityID  int     `json:"facility_id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	RecordedBy  string  `json:"recorded_by"`
	RecordedAt  string  `json:"recorded_at"`
	CreatedAt   string  `json:"created_at"`
}
