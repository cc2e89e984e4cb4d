package quotes

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/devvivek172/delivery-cost-api/internal/models"

	"github.com/google/uuid"
)

// Pricing tiers: a base rate covers the first 5 weight units, then every
// additional full-or-partial 5-unit block adds to the per-distance rate.
// Deadhead legs (carrying nothing) still pay the base rate.
const (
	baseTierLimit  = 5.0
	tierBlockSize  = 5.0
	baseRatePerKm  = 10.0
	extraRatePerKm = 8.0

	// weightEpsilon absorbs float error when a carried weight lands
	// mathematically exactly on a tier boundary.
	weightEpsilon = 1e-9
)

// ServiceInterface exposes the quote module's single business operation:
// compute the cheapest way to consolidate an order at the destination.
type ServiceInterface interface {
	QuoteOrder(ctx context.Context, order models.Order) (*models.Quote, error)
}

// service implements ServiceInterface. It is stateless apart from the
// immutable catalog repository, so one instance serves all requests.
type service struct {
	repo          RepositoryInterface
	maxWarehouses int
}

// NewService builds the quote service. maxWarehouses bounds the factorial
// route enumeration; pass 0 to disable the check.
func NewService(repo RepositoryInterface, maxWarehouses int) ServiceInterface {
	return &service{repo: repo, maxWarehouses: maxWarehouses}
}

// QuoteOrder computes the minimum delivery cost for a filtered order.
//  1. Aggregate per-warehouse demand weights.
//  2. Nothing to pick up → zero-cost quote without enumerating anything.
//  3. Enumerate every candidate route over the involved warehouses.
//  4. Evaluate each route and keep the minimum finite cost.
//
// Costs are rounded to the nearest whole unit. When every candidate crosses
// an unreachable segment the order gets models.ErrNoFeasibleRoute.
func (s *service) QuoteOrder(ctx context.Context, order models.Order) (*models.Quote, error) {
	profile := s.aggregateDemand(order)

	if len(profile.Involved) == 0 {
		return &models.Quote{ID: uuid.NewString(), MinimumCost: 0}, nil
	}
	if s.maxWarehouses > 0 && len(profile.Involved) > s.maxWarehouses {
		return nil, fmt.Errorf("QuoteOrder: %d warehouses involved, ceiling is %d: %w",
			len(profile.Involved), s.maxWarehouses, models.ErrTooManyWarehouses)
	}

	best := math.Inf(1)
	for _, route := range enumerateRoutes(profile.Involved) {
		if cost := s.routeCost(route, profile); cost < best {
			best = cost
		}
	}
	if math.IsInf(best, 1) {
		return nil, models.ErrNoFeasibleRoute
	}

	return &models.Quote{ID: uuid.NewString(), MinimumCost: int64(math.Round(best))}, nil
}

// aggregateDemand turns an order into per-warehouse pickup weights. Codes
// missing from the catalog and non-positive quantities are skipped; the
// handler already filters them, this keeps the core safe on its own.
func (s *service) aggregateDemand(order models.Order) models.DemandProfile {
	profile := models.DemandProfile{Weights: make(map[models.Location]float64)}

	for code, qty := range order {
		if qty <= 0 {
			continue
		}
		product, ok := s.repo.FindProduct(code)
		if !ok {
			continue
		}
		weight := product.UnitWeight * float64(qty)
		if profile.Weights[product.Warehouse] == 0 {
			profile.Involved = append(profile.Involved, product.Warehouse)
		}
		profile.Weights[product.Warehouse] += weight
		profile.TotalWeight += weight
	}

	// Map iteration order is random; keep the involved set stable so the
	// enumeration (and any logging of it) is deterministic.
	sort.Slice(profile.Involved, func(i, j int) bool {
		return profile.Involved[i] < profile.Involved[j]
	})
	return profile
}

// enumerateRoutes generates every candidate route over the involved
// warehouses: for each permutation and each split point k, visit the first k
// warehouses, drop at the destination, then finish the remaining pickups.
// k == n degenerates to a single round trip; smaller k models a split
// delivery. Duplicates are harmless since evaluation is cost-only.
func enumerateRoutes(warehouses []models.Location) [][]models.Location {
	var routes [][]models.Location
	for _, perm := range permutations(warehouses) {
		n := len(perm)
		for split := 1; split <= n; split++ {
			route := make([]models.Location, 0, n+2)
			route = append(route, perm[:split]...)
			route = append(route, models.DestinationL1)
			route = append(route, perm[split:]...)
			if route[len(route)-1] != models.DestinationL1 {
				route = append(route, models.DestinationL1)
			}
			routes = append(routes, route)
		}
	}
	return routes
}

func permutations(items []models.Location) [][]models.Location {
	if len(items) <= 1 {
		return [][]models.Location{append([]models.Location(nil), items...)}
	}
	var out [][]models.Location
	for i := range items {
		rest := make([]models.Location, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, tail := range permutations(rest) {
			perm := append([]models.Location{items[i]}, tail...)
			out = append(out, perm)
		}
	}
	return out
}

// routeCost walks one route and prices it leg by leg. Carried weight grows at
// the first visit of each warehouse and resets to zero at every destination
// stop (full unload; partial unloading is not modeled). A route that starts
// at the destination, or that needs an unreachable leg, is infeasible (+Inf).
func (s *service) routeCost(route []models.Location, profile models.DemandProfile) float64 {
	from := route[0]
	if from == models.DestinationL1 {
		return math.Inf(1)
	}

	carried := profile.Weights[from]
	picked := map[models.Location]bool{from: true}

	total := 0.0
	for _, to := range route[1:] {
		dist, ok := s.repo.Distance(from, to)
		if !ok {
			return math.Inf(1)
		}
		total += segmentCost(carried, dist)

		if to == models.DestinationL1 {
			carried = 0
		} else if !picked[to] {
			carried += profile.Weights[to]
			picked[to] = true
		}
		from = to
	}
	return total
}

// segmentCost prices one leg: distance × per-unit rate, where the rate is a
// step function of the carried weight.
func segmentCost(weight, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	rate := baseRatePerKm
	if weight > baseTierLimit+weightEpsilon {
		blocks := math.Ceil((weight - baseTierLimit) / tierBlockSize)
		rate += extraRatePerKm * blocks
	}
	return rate * distance
}
