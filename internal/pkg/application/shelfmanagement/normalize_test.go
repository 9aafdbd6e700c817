package shelfmanagement

import (
	"testing"

	"github.com/matryer/is"
)

func TestNormalizeEmptyInputYieldsDefaults(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{})

	is.Equal(patch.ProductID, (*int64)(nil))
	is.Equal(patch.LowStockThresholdPercent, DefaultLowStockThresholdPercent)
	is.Equal(patch.MaxCurrentProductCapacity, (*int)(nil))
	is.True(!patch.StockProvided)
}

func TestNormalizeThresholdZeroFallsBackToDefault(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{
		"low_stock_threshold_percent": float64(0),
	})

	is.Equal(patch.LowStockThresholdPercent, 20)
}

func TestNormalizeThresholdOutOfRangeFallsBackToDefault(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{
		"low_stock_threshold_percent": float64(150),
	})

	is.Equal(patch.LowStockThresholdPercent, 20)
}

func TestNormalizeThresholdInRangeIsKept(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{
		"low_stock_threshold_percent": float64(35),
	})

	is.Equal(patch.LowStockThresholdPercent, 35)
}

func TestNormalizeCapacityZeroIsClampedToOne(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{
		"max_current_product_capacity": float64(0),
	})

	is.True(patch.MaxCurrentProductCapacity != nil)
	is.Equal(*patch.MaxCurrentProductCapacity, 1)
}

func TestNormalizeCapacityAbsentStaysNil(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{
		"max_current_product_capacity": nil,
	})

	is.Equal(patch.MaxCurrentProductCapacity, (*int)(nil))
}

func TestNormalizeCapacityPositiveIsKept(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{
		"max_current_product_capacity": float64(250),
	})

	is.True(patch.MaxCurrentProductCapacity != nil)
	is.Equal(*patch.MaxCurrentProductCapacity, 250)
}

func TestNormalizeProductIDCoercion(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{"product_id": float64(7)})
	is.True(patch.ProductID != nil)
	is.Equal(*patch.ProductID, int64(7))

	patch = NormalizeAssignment(map[string]any{"product_id": "7"})
	is.True(patch.ProductID != nil)
	is.Equal(*patch.ProductID, int64(7))

	patch = NormalizeAssignment(map[string]any{"product_id": "banana"})
	is.Equal(patch.ProductID, (*int64)(nil))

	patch = NormalizeAssignment(map[string]any{"product_id": nil})
	is.Equal(patch.ProductID, (*int64)(nil))
}

func TestNormalizeExplicitStockIsFlagged(t *testing.T) {
	is := is.New(t)

	patch := NormalizeAssignment(map[string]any{
		"current_stock_percent": float64(42),
	})

	is.True(patch.StockProvided)
	is.True(patch.CurrentStockPercent != nil)
	is.Equal(*patch.CurrentStockPercent, 42)
}
