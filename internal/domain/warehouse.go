package domain

// WarehouseItem is a stocked supply item.
type WarehouseItem struct {
	ID         int     `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"`
	Stock      int     `json:"stock"`
	MinStock   int     `json:"min_stock"`
	UnitPrice  float64 `json:"unit_price"`
	SupplierID int     `json:"supplier_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// MovementDirection marks a stock movement as inbound or outbound.
type MovementDirection string

const (
	MovementIn  MovementDirection = "in"
	MovementOut MovementDirection = "out"
)

// StockMovement records a single inbound or outbound warehouse mutation.
type StockMovement struct {
	ID         int               `json:"id"`
	ItemID     int               `json:"item_id"`
	FacilityID int               `json:"facility_id,omitempty"`
	Direction  MovementDirection `json:"direction"`
	Quantity   int               `json:"quantity"`
	Note       string            `json:"note,omitempty"`
	MovedAt    string            `json:"moved_at"`
	CreatedAt  string            `json:"created_at"`
}
