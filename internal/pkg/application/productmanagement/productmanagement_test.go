package productmanagement

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func TestCreateProductValidatesNameLength(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	_, err := svc.CreateProduct(ctx, types.Product{Name: "x", Price: 100}, scope.Filter{})
	is.True(errors.Is(err, ErrNameInvalid))

	_, err = svc.CreateProduct(ctx, types.Product{Name: "this product name is way way too long ok", Price: 100}, scope.Filter{})
	is.True(errors.Is(err, ErrNameInvalid))

	is.Equal(len(mock.AddProductCalls()), 0)

	_, err = svc.CreateProduct(ctx, types.Product{Name: "ok", Price: 100}, scope.Filter{})
	is.NoErr(err)
}

func TestProductNameLengthCountsRunes(t *testing.T) {
	is, ctx, svc, _ := testSetup(t)

	// 32 runes but 64 bytes must still be accepted.
	_, err := svc.CreateProduct(ctx, types.Product{Name: strings.Repeat("ö", 32), Price: 100}, scope.Filter{})
	is.NoErr(err)

	_, err = svc.CreateProduct(ctx, types.Product{Name: strings.Repeat("ö", 33), Price: 100}, scope.Filter{})
	is.True(errors.Is(err, ErrNameInvalid))

	_, err = svc.CreateProduct(ctx, types.Product{Name: "grönsaksbuljong", Price: 100}, scope.Filter{})
	is.NoErr(err)
}

func TestCreateProductScopedToCallerOrganization(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	orgID := int64(2)
	_, err := svc.CreateProduct(ctx, types.Product{Name: "tomato soup", Price: 1000, OrganizationID: 9}, scope.Filter{OrganizationID: &orgID})
	is.NoErr(err)

	is.Equal(mock.AddProductCalls()[0].P.OrganizationID, int64(2))
}

func TestCreateProductDuplicateName(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.AddProductFunc = func(ctx context.Context, p types.Product) (types.Product, error) {
		return types.Product{}, storage.ErrAlreadyExist
	}

	_, err := svc.CreateProduct(ctx, types.Product{Name: "tomato soup", Price: 1000}, scope.Filter{})
	is.True(errors.Is(err, ErrProductExists))
}

func TestGetProductOutsideScopeIsNotFound(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetProductFunc = func(ctx context.Context, id int64) (types.Product, error) {
		return types.Product{ID: id, OrganizationID: 1, Name: "tomato soup", Price: 1000}, nil
	}

	orgID := int64(2)
	_, err := svc.GetProduct(ctx, 5, scope.Filter{OrganizationID: &orgID})
	is.True(errors.Is(err, ErrProductNotFound))
}

func TestUpdateDeletedProductIsRejected(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetProductFunc = func(ctx context.Context, id int64) (types.Product, error) {
		return types.Product{ID: id, Name: "gone", Price: 100, IsDeleted: true}, nil
	}

	_, err := svc.UpdateProduct(ctx, types.Product{ID: 5, Name: "renamed", Price: 100}, scope.Filter{})
	is.True(errors.Is(err, ErrProductDeleted))
	is.Equal(len(mock.UpdateProductCalls()), 0)
}

func TestDeleteProductTwiceIsRejected(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetProductFunc = func(ctx context.Context, id int64) (types.Product, error) {
		return types.Product{ID: id, Name: "gone", Price: 100, IsDeleted: true}, nil
	}

	err := svc.DeleteProduct(ctx, 5, scope.Filter{})
	is.True(errors.Is(err, ErrProductDeleted))
	is.Equal(len(mock.DeleteProductCalls()), 0)
}

func TestCreateDiscountOnDeletedProductIsRejected(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetProductFunc = func(ctx context.Context, id int64) (types.Product, error) {
		return types.Product{ID: id, Name: "gone", Price: 100, IsDeleted: true}, nil
	}

	newPrice := int64(500)
	_, err := svc.CreateDiscount(ctx, 5, types.ProductDiscount{
		NewPrice:   &newPrice,
		ValidFrom:  time.Now(),
		ValidUntil: time.Now().Add(time.Hour),
		Active:     true,
	}, scope.Filter{})
	is.True(errors.Is(err, ErrProductDeleted))
}

func TestCreateDiscountValidatesShape(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	_, err := svc.CreateDiscount(ctx, 5, types.ProductDiscount{
		ValidFrom:  time.Now(),
		ValidUntil: time.Now().Add(time.Hour),
	}, scope.Filter{})
	is.True(errors.Is(err, ErrDiscountInvalid))
	is.Equal(len(mock.AddDiscountCalls()), 0)
}

func TestGetDiscountsFlagsCurrentValidity(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	newPrice := int64(500)
	mock.QueryDiscountsFunc = func(ctx context.Context, productID int64, conditions ...storage.ConditionFunc) (types.Collection[types.ProductDiscount], error) {
		return types.Collection[types.ProductDiscount]{
			Data: []types.ProductDiscount{
				{ID: 1, ProductID: productID, NewPrice: &newPrice, Active: true, ValidFrom: time.Now().Add(-time.Hour), ValidUntil: time.Now().Add(time.Hour)},
				{ID: 2, ProductID: productID, NewPrice: &newPrice, Active: true, ValidFrom: time.Now().Add(time.Hour), ValidUntil: time.Now().Add(2 * time.Hour)},
				{ID: 3, ProductID: productID, NewPrice: &newPrice, Active: false, ValidFrom: time.Now().Add(-time.Hour), ValidUntil: time.Now().Add(time.Hour)},
			},
			Count: 3,
		}, nil
	}

	discounts, err := svc.GetDiscounts(ctx, 5, 0, 10, scope.Filter{})
	is.NoErr(err)

	is.True(discounts.Data[0].CurrentlyValid)
	is.True(!discounts.Data[1].CurrentlyValid)
	is.True(!discounts.Data[2].CurrentlyValid)
}

func TestToggleUnknownDiscount(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.ToggleDiscountFunc = func(ctx context.Context, productID, discountID int64) (types.ProductDiscount, error) {
		return types.ProductDiscount{}, storage.ErrNoRows
	}

	_, err := svc.ToggleDiscount(ctx, 5, 99, scope.Filter{})
	is.True(errors.Is(err, ErrDiscountNotFound))
}

func testSetup(t *testing.T) (*is.I, context.Context, ProductManagement, *ProductStorageMock) {
	is := is.New(t)

	mock := &ProductStorageMock{
		AddProductFunc: func(ctx context.Context, p types.Product) (types.Product, error) {
			p.ID = 5
			return p, nil
		},
		GetProductFunc: func(ctx context.Context, id int64) (types.Product, error) {
			return types.Product{ID: id, OrganizationID: 1, Name: "tomato soup", Price: 1000}, nil
		},
		QueryProductsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Product], error) {
			return types.Collection[types.Product]{}, nil
		},
		UpdateProductFunc: func(ctx context.Context, p types.Product) error { return nil },
		DeleteProductFunc: func(ctx context.Context, id int64) error { return nil },
		AddDiscountFunc: func(ctx context.Context, d types.ProductDiscount) (types.ProductDiscount, error) {
			d.ID = 1
			return d, nil
		},
		GetDiscountFunc: func(ctx context.Context, productID, discountID int64) (types.ProductDiscount, error) {
			return types.ProductDiscount{ID: discountID, ProductID: productID}, nil
		},
		QueryDiscountsFunc: func(ctx context.Context, productID int64, conditions ...storage.ConditionFunc) (types.Collection[types.ProductDiscount], error) {
			return types.Collection[types.ProductDiscount]{}, nil
		},
		UpdateDiscountFunc: func(ctx context.Context, d types.ProductDiscount) error { return nil },
		ToggleDiscountFunc: func(ctx context.Context, productID, discountID int64) (types.ProductDiscount, error) {
			return types.ProductDiscount{ID: discountID, ProductID: productID, Active: true}, nil
		},
		DeleteDiscountFunc: func(ctx context.Context, productID, discountID int64) error { return nil },
	}

	return is, context.Background(), New(mock), mock
}
