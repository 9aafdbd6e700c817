package productmanagement

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func TestTenPercentOffRoundsToMinorUnits(t *testing.T) {
	is := is.New(t)

	percent := 10
	d := types.ProductDiscount{DiscountPercent: &percent}

	is.Equal(EffectivePrice(1000, d), int64(900))
}

func TestPercentageRoundingHalfUp(t *testing.T) {
	is := is.New(t)

	percent := 15
	d := types.ProductDiscount{DiscountPercent: &percent}

	// 999 * 0.85 = 849.15
	is.Equal(EffectivePrice(999, d), int64(849))

	percent = 33
	// 1099 * 0.67 = 736.33
	is.Equal(EffectivePrice(1099, d), int64(736))
}

func TestFixedNewPriceReplacesBasePrice(t *testing.T) {
	is := is.New(t)

	newPrice := int64(750)
	d := types.ProductDiscount{NewPrice: &newPrice}

	is.Equal(EffectivePrice(1000, d), int64(750))
}

func TestDiscountEffectiveInsideWindow(t *testing.T) {
	is := is.New(t)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	d := types.ProductDiscount{
		Active:     true,
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(time.Hour),
	}

	is.True(IsEffective(d, now))
}

func TestDiscountWindowBoundariesAreInclusive(t *testing.T) {
	is := is.New(t)

	from := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	until := from.Add(48 * time.Hour)
	d := types.ProductDiscount{Active: true, ValidFrom: from, ValidUntil: until}

	is.True(IsEffective(d, from))
	is.True(IsEffective(d, until))
	is.True(!IsEffective(d, from.Add(-time.Second)))
	is.True(!IsEffective(d, until.Add(time.Second)))
}

func TestInactiveDiscountIsNeverEffective(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	d := types.ProductDiscount{
		Active:     false,
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(time.Hour),
	}

	is.True(!IsEffective(d, now))
}

func TestValidateDiscountRequiresExactlyOnePricingMode(t *testing.T) {
	is := is.New(t)

	from := time.Now()
	until := from.Add(time.Hour)

	err := ValidateDiscount(types.ProductDiscount{ValidFrom: from, ValidUntil: until})
	is.True(errors.Is(err, ErrDiscountInvalid))

	newPrice := int64(500)
	percent := 10
	err = ValidateDiscount(types.ProductDiscount{NewPrice: &newPrice, DiscountPercent: &percent, ValidFrom: from, ValidUntil: until})
	is.True(errors.Is(err, ErrDiscountInvalid))

	err = ValidateDiscount(types.ProductDiscount{NewPrice: &newPrice, ValidFrom: from, ValidUntil: until})
	is.NoErr(err)

	err = ValidateDiscount(types.ProductDiscount{DiscountPercent: &percent, ValidFrom: from, ValidUntil: until})
	is.NoErr(err)
}

func TestValidateDiscountRejectsEmptyWindow(t *testing.T) {
	is := is.New(t)

	newPrice := int64(500)
	from := time.Now()

	err := ValidateDiscount(types.ProductDiscount{NewPrice: &newPrice, ValidFrom: from, ValidUntil: from})
	is.True(errors.Is(err, ErrDiscountInvalid))

	err = ValidateDiscount(types.ProductDiscount{NewPrice: &newPrice, ValidFrom: from, ValidUntil: from.Add(-time.Hour)})
	is.True(errors.Is(err, ErrDiscountInvalid))
}

func TestValidateDiscountPercentRange(t *testing.T) {
	is := is.New(t)

	from := time.Now()
	until := from.Add(time.Hour)

	for _, percent := range []int{0, 100, -5, 250} {
		p := percent
		err := ValidateDiscount(types.ProductDiscount{DiscountPercent: &p, ValidFrom: from, ValidUntil: until})
		is.True(errors.Is(err, ErrDiscountInvalid))
	}
}
