package productmanagement

import (
	"fmt"
	"math"
	"time"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

// IsEffective reports whether a discount applies at the given instant. A
// discount takes effect only when it is switched on and the instant falls
// inside the validity window, boundaries included.
func IsEffective(d types.ProductDiscount, now time.Time) bool {
	if !d.Active {
		return false
	}
	if now.Before(d.ValidFrom) {
		return false
	}
	if now.After(d.ValidUntil) {
		return false
	}
	return true
}

// EffectivePrice computes the price in minor units with the discount applied.
// A fixed new price replaces the base price outright; a percentage is rounded
// half away from zero. The discount's effectiveness is the caller's concern.
func EffectivePrice(price int64, d types.ProductDiscount) int64 {
	if d.NewPrice != nil {
		return *d.NewPrice
	}
	if d.DiscountPercent != nil {
		return int64(math.Round(float64(price) * float64(100-*d.DiscountPercent) / 100))
	}
	return price
}

// ValidateDiscount checks the shape of a discount: exactly one pricing mode
// and a non-empty validity window.
func ValidateDiscount(d types.ProductDiscount) error {
	if d.NewPrice == nil && d.DiscountPercent == nil {
		return fmt.Errorf("%w: either new_price or discount_percent is required", ErrDiscountInvalid)
	}
	if d.NewPrice != nil && d.DiscountPercent != nil {
		return fmt.Errorf("%w: new_price and discount_percent are mutually exclusive", ErrDiscountInvalid)
	}
	if d.NewPrice != nil && *d.NewPrice < 0 {
		return fmt.Errorf("%w: new_price must not be negative", ErrDiscountInvalid)
	}
	if d.DiscountPercent != nil && (*d.DiscountPercent < 1 || *d.DiscountPercent > 99) {
		return fmt.Errorf("%w: discount_percent must be between 1 and 99", ErrDiscountInvalid)
	}
	if !d.ValidUntil.After(d.ValidFrom) {
		return fmt.Errorf("%w: valid_until must be after valid_from", ErrDiscountInvalid)
	}
	return nil
}
