package models

import "errors"

var ErrNotFound = errors.New("requested resource not found")

// ErrNoFeasibleRoute indicates that every enumerated delivery route crossed an
// unreachable segment, so no finite cost exists for the requested order. This
// is a normal, reportable outcome (the handler maps it to a 400), not a fault.
var ErrNoFeasibleRoute = errors.New("no feasible delivery route found")

// ErrTooManyWarehouses indicates that the order involves more warehouses than
// the configured ceiling allows; route enumeration is factorial in that count.
var ErrTooManyWarehouses = errors.New("order involves too many warehouses")
