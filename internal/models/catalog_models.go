package models

// Location identifies a node in the delivery network: one of the stocking
// warehouses or the single delivery destination.
type Location string

const (
	WarehouseC1 Location = "C1"
	WarehouseC2 Location = "C2"
	WarehouseC3 Location = "C3"

	// DestinationL1 is the consolidation point every order is delivered to.
	DestinationL1 Location = "L1"
)

// Product is an immutable catalog entry. The catalog is static configuration
// validated once at process start and never mutated afterwards.
type Product struct {
	Code       string   `json:"code" validate:"required"`
	Warehouse  Location `json:"warehouse" validate:"required,oneof=C1 C2 C3"`
	UnitWeight float64  `json:"unit_weight" validate:"required,gt=0"`
}

// DistanceEdge is one symmetric entry of the static distance table. Location
// pairs absent from the table are unreachable.
type DistanceEdge struct {
	From     Location `validate:"required"`
	To       Location `validate:"required,nefield=From"`
	Distance float64  `validate:"gte=0"`
}

// DemandProfile is the per-warehouse aggregate pickup weight derived from an
// order. Involved holds the warehouses with weight > 0, in stable order.
type DemandProfile struct {
	Weights     map[Location]float64
	Involved    []Location
	TotalWeight float64
}
