package domain

// PurchaseStatus tracks a direct purchase through its approval flow.
type PurchaseStatus string

const (
	PurchaseStatusDraft     PurchaseStatus = "draft"
	PurchaseStatusSubmitted PurchaseStatus = "submitted"
	PurchaseStatusApproved  PurchaseStatus = "approved"
	PurchaseStatusRejected  PurchaseStatus = "rejected"
	PurchaseStatusReceived  PurchaseStatus = "received"
)

// DirectPurchase is a procurement record bought outside the tender process.
type DirectPurchase struct {
	ID          int            `json:"id"`
	Number      string         `json:"number"`
	FacilityID  int            `json:"facility_id"`
	SupplierID  int            `json:"supplier_id"`
	Description string         `json:"description"`
	Amount      float64        `json:"amount"`
	Status      PurchaseStatus `json:"status"`
	OrderedAt   string         `json:"ordered_at"`
	ReceivedAt  string         `json:"received_at,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}
