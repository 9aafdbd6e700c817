package shelfmanagement

import (
	"testing"

	"github.com/matryer/is"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func TestReconcileRemovalResetsThresholdAndCapacityButKeepsStock(t *testing.T) {
	is := is.New(t)

	stock := 42
	productID := int64(7)
	capacity := 100

	current := types.ShelfPosition{
		ID:                        1,
		ProductID:                 &productID,
		CurrentStockPercent:       &stock,
		MaxCurrentProductCapacity: &capacity,
		LowStockThresholdPercent:  35,
	}

	merged := Reconcile(current, NormalizeAssignment(map[string]any{
		"product_id": nil,
	}))

	is.Equal(merged.ProductID, (*int64)(nil))
	is.Equal(merged.LowStockThresholdPercent, DefaultLowStockThresholdPercent)
	is.Equal(merged.MaxCurrentProductCapacity, (*int)(nil))
	is.True(merged.CurrentStockPercent != nil)
	is.Equal(*merged.CurrentStockPercent, 42)
}

func TestReconcileAssignmentCarriesPersistedStockForward(t *testing.T) {
	is := is.New(t)

	stock := 63
	current := types.ShelfPosition{ID: 1, CurrentStockPercent: &stock}

	merged := Reconcile(current, NormalizeAssignment(map[string]any{
		"product_id":                  float64(7),
		"low_stock_threshold_percent": float64(30),
	}))

	is.True(merged.ProductID != nil)
	is.Equal(*merged.ProductID, int64(7))
	is.Equal(merged.LowStockThresholdPercent, 30)
	is.True(merged.CurrentStockPercent != nil)
	is.Equal(*merged.CurrentStockPercent, 63)
}

func TestReconcileExplicitStockWins(t *testing.T) {
	is := is.New(t)

	stock := 63
	current := types.ShelfPosition{ID: 1, CurrentStockPercent: &stock}

	merged := Reconcile(current, NormalizeAssignment(map[string]any{
		"product_id":            float64(7),
		"current_stock_percent": float64(10),
	}))

	is.True(merged.CurrentStockPercent != nil)
	is.Equal(*merged.CurrentStockPercent, 10)
}

func TestReconcileZeroValueCurrentProceedsWithNilStock(t *testing.T) {
	is := is.New(t)

	merged := Reconcile(types.ShelfPosition{}, NormalizeAssignment(map[string]any{
		"product_id": float64(7),
	}))

	is.True(merged.ProductID != nil)
	is.Equal(merged.CurrentStockPercent, (*int)(nil))
	is.True(!merged.StockProvided)
}
