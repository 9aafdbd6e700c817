package shelfmanagement

import (
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

// Reconcile merges a normalized assignment patch with the freshly read
// persisted state of the position, producing the payload for the single
// assignment write.
//
// Removing the product resets the threshold to its default and clears the
// capacity, but carries the live stock reading forward untouched; telemetry
// is independent of assignment. Assigning a product without an explicit stock
// value likewise carries the persisted reading forward, so that an
// administrative edit never silently zeroes out a live sensor value.
//
// When the fresh read failed the caller passes a zero-value current position;
// the assignment then proceeds with a nil stock reading rather than failing.
func Reconcile(current types.ShelfPosition, patch AssignmentPatch) AssignmentPatch {
	if patch.ProductID == nil {
		return AssignmentPatch{
			ProductID:                 nil,
			LowStockThresholdPercent:  DefaultLowStockThresholdPercent,
			MaxCurrentProductCapacity: nil,
			CurrentStockPercent:       current.CurrentStockPercent,
			StockProvided:             current.CurrentStockPercent != nil,
		}
	}

	merged := patch
	if !patch.StockProvided {
		merged.CurrentStockPercent = current.CurrentStockPercent
		merged.StockProvided = current.CurrentStockPercent != nil
	}

	return merged
}
