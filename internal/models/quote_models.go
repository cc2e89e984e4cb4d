package models

// Order maps a product code to the requested quantity. The handler filters
// entries before the optimizer sees them, so quantities are always positive
// and codes always resolve against the catalog.
type Order map[string]int

// Quote is the result of the cost optimization for one order.
type Quote struct {
	ID          string `json:"quote_id"`
	MinimumCost int64  `json:"minimum_cost"`
}

// ErrorResponse is the uniform error body returned by all handlers. Details
// carries per-entry validation messages when an order body is partially bad.
type ErrorResponse struct {
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// HealthResponse is the liveness body for GET /.
type HealthResponse struct {
	Message string `json:"message"`
}
