package quotes

import (
	"fmt"

	"github.com/devvivek172/delivery-cost-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// RepositoryInterface is the catalog and distance lookup surface the quote
// service depends on. The default implementation is in-memory and immutable;
// the topology is fixed configuration, not user data.
type RepositoryInterface interface {
	FindProduct(code string) (models.Product, bool)
	// Distance returns the direct distance between two locations and whether
	// the pair is reachable at all. Same-location lookups are 0 and reachable.
	Distance(from, to models.Location) (float64, bool)
}

// catalogSeed is the full product catalog: code, stocking warehouse and unit
// weight. Loaded once at startup, never mutated.
var catalogSeed = []models.Product{
	{Code: "A", Warehouse: models.WarehouseC1, UnitWeight: 3.0},
	{Code: "B", Warehouse: models.WarehouseC1, UnitWeight: 2.0},
	{Code: "C", Warehouse: models.WarehouseC1, UnitWeight: 8.0},
	{Code: "D", Warehouse: models.WarehouseC2, UnitWeight: 12.0},
	{Code: "E", Warehouse: models.WarehouseC2, UnitWeight: 25.0},
	{Code: "F", Warehouse: models.WarehouseC2, UnitWeight: 15.0},
	{Code: "G", Warehouse: models.WarehouseC3, UnitWeight: 0.5},
	{Code: "H", Warehouse: models.WarehouseC3, UnitWeight: 1.0},
	{Code: "I", Warehouse: models.WarehouseC3, UnitWeight: 2.0},
}

// distanceSeed lists each undirected edge once; lookups work in both
// directions. There is no direct C1–C3 edge, so that leg is unreachable.
var distanceSeed = []models.DistanceEdge{
	{From: models.WarehouseC1, To: models.DestinationL1, Distance: 3.0},
	{From: models.WarehouseC2, To: models.DestinationL1, Distance: 2.5},
	{From: models.WarehouseC3, To: models.DestinationL1, Distance: 2.0},
	{From: models.WarehouseC1, To: models.WarehouseC2, Distance: 4.0},
	{From: models.WarehouseC2, To: models.WarehouseC3, Distance: 3.0},
}

type repository struct {
	products  map[string]models.Product
	distances map[models.Location]map[models.Location]float64
}

// NewRepository builds the static catalog repository from the seed data,
// validating every entry so a bad seed fails at startup rather than at
// quote time.
func NewRepository() (RepositoryInterface, error) {
	validate := validator.New()

	products := make(map[string]models.Product, len(catalogSeed))
	for _, p := range catalogSeed {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("NewRepository: invalid catalog entry %q: %w", p.Code, err)
		}
		if _, dup := products[p.Code]; dup {
			return nil, fmt.Errorf("NewRepository: duplicate product code %q", p.Code)
		}
		products[p.Code] = p
	}

	distances := make(map[models.Location]map[models.Location]float64)
	add := func(a, b models.Location, d float64) {
		if distances[a] == nil {
			distances[a] = make(map[models.Location]float64)
		}
		distances[a][b] = d
	}
	for _, e := range distanceSeed {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("NewRepository: invalid distance edge %s-%s: %w", e.From, e.To, err)
		}
		add(e.From, e.To, e.Distance)
		add(e.To, e.From, e.Distance)
	}

	return &repository{products: products, distances: distances}, nil
}

func (r *repository) FindProduct(code string) (models.Product, bool) {
	p, ok := r.products[code]
	return p, ok
}

func (r *repository) Distance(from, to models.Location) (float64, bool) {
	if from == to {
		return 0, true
	}
	d, ok := r.distances[from][to]
	return d, ok
}
