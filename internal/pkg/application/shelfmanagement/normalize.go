package shelfmanagement

import (
	"encoding/json"
	"strconv"
)

// DefaultLowStockThresholdPercent is substituted for any missing or
// out-of-range threshold input.
const DefaultLowStockThresholdPercent = 20

// AssignmentPatch is a safe write payload for a position-product assignment.
// StockProvided distinguishes an explicit stock value from an absent one, so
// that the reconciler knows when to carry the persisted reading forward.
type AssignmentPatch struct {
	ProductID                 *int64
	LowStockThresholdPercent  int
	MaxCurrentProductCapacity *int
	CurrentStockPercent       *int
	StockProvided             bool
}

// NormalizeAssignment turns raw assignment input into an always-valid patch.
// It is total: no input, however malformed, produces an error.
//
//   - product_id is coerced to an integer; anything non-numeric becomes nil.
//   - low_stock_threshold_percent must land in the open interval (0,100),
//     otherwise the default applies.
//   - max_current_product_capacity passes nil through and clamps numeric
//     values below 1 up to 1.
//
// Callers that want stricter validation apply it before normalization.
func NormalizeAssignment(fields map[string]any) AssignmentPatch {
	patch := AssignmentPatch{
		LowStockThresholdPercent: DefaultLowStockThresholdPercent,
	}

	if id, ok := asInt(fields["product_id"]); ok {
		patch.ProductID = &id
	}

	if t, ok := asInt(fields["low_stock_threshold_percent"]); ok && t > 0 && t < 100 {
		patch.LowStockThresholdPercent = int(t)
	}

	if c, ok := asInt(fields["max_current_product_capacity"]); ok {
		capacity := int(c)
		if capacity < 1 {
			capacity = 1
		}
		patch.MaxCurrentProductCapacity = &capacity
	}

	if v, ok := asInt(fields["current_stock_percent"]); ok {
		stock := int(v)
		patch.CurrentStockPercent = &stock
		patch.StockProvided = true
	}

	return patch
}

func asInt(v any) (int64, bool) {
	switch value := v.(type) {
	case float64:
		return int64(value), true
	case float32:
		return int64(value), true
	case int:
		return int64(value), true
	case int32:
		return int64(value), true
	case int64:
		return value, true
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}
