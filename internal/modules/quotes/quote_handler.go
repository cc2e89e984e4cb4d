package quotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/devvivek172/delivery-cost-api/internal/models"

	"github.com/labstack/echo/v4"
)

// Handler owns the HTTP surface of the quote module: content-type and body
// checks, per-entry order filtering, and mapping service outcomes to status
// codes. The optimizer itself never sees an invalid entry.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new quote handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the quote endpoints on the Echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/", h.CalculateQuote)
	e.GET("/", h.HealthCheck)
}

// CalculateQuote handles POST /. The body is a bare JSON object mapping
// product codes to quantities, e.g. {"A": 1, "G": 4}.
//   - non-JSON content type → 415
//   - malformed JSON or non-object body → 400
//   - non-integer quantity values → 400 with per-entry details
//   - unknown codes and quantities ≤ 0 are dropped silently
//   - no feasible route → 400; otherwise 200 with the minimum cost
func (h *Handler) CalculateQuote(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusUnsupportedMediaType, models.ErrorResponse{Message: "Content-Type must be application/json"})
	}

	// Decode by hand instead of c.Bind: UseNumber keeps quantities as
	// json.Number so 3 and 3.5 stay distinguishable.
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Request must be a JSON object with product quantities"})
	}

	order, details := filterOrder(body)
	if len(details) > 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Order validation failed.", Details: details})
	}

	quote, err := h.svc.QuoteOrder(c.Request().Context(), order)
	if err != nil {
		if errors.Is(err, models.ErrNoFeasibleRoute) || errors.Is(err, models.ErrTooManyWarehouses) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.CalculateQuote: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to calculate quote"})
	}
	return c.JSON(http.StatusOK, quote)
}

// filterOrder validates quantity values and drops entries the optimizer must
// not see. Zero and negative quantities are dropped without complaint; values
// that are not whole numbers collect a validation message each.
func filterOrder(body map[string]any) (models.Order, []string) {
	order := make(models.Order, len(body))
	var details []string

	for code, raw := range body {
		num, ok := raw.(json.Number)
		if !ok {
			details = append(details, fmt.Sprintf("Invalid quantity for %s: %v. Must be an integer.", code, raw))
			continue
		}
		qty, err := num.Int64()
		if err != nil {
			details = append(details, fmt.Sprintf("Invalid quantity for %s: %s. Must be an integer.", code, num))
			continue
		}
		if qty <= 0 {
			continue
		}
		order[code] = int(qty)
	}
	return order, details
}

// HealthCheck handles GET / as a basic liveness probe.
func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{Message: "Delivery cost API is running. Use POST to calculate costs."})
}
