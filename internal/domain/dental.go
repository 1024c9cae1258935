package domain

// DentalContract is a service or maintenance contract for dental equipment.
type DentalContract struct {
	ID          int     `json:"id"`
	Number      string  `json:"number"`
	FacilityID  int     `json:"facility_id"`
	SupplierID  int     `json:"supplier_id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// AssetCondition grades the physical state of a dental asset.
type AssetCondition string

const (
	AssetConditionGood    AssetCondition = "good"
	AssetConditionFair    AssetCondition = "fair"
	AssetConditionDamaged AssetCondition = "damaged"
)

// DentalAsset is a piece of dental equipment on a facility's inventory.
type DentalAsset struct {
	ID           int            `json:"id"`
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	FacilityID   int            `json:"facility_id"`
	ContractID   int            `json:"contract_id,omitempty"`
	Condition    AssetCondition `json:"condition"`
	AcquiredAt   string         `json:"acquired_at"`
	AcquiredCost float64        `json:"acquired_cost"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}
