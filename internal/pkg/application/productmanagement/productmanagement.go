package productmanagement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

var ErrProductNotFound = fmt.Errorf("product not found")
var ErrProductDeleted = fmt.Errorf("product has been deleted")
var ErrProductExists = fmt.Errorf("product with that name already exists")
var ErrNameInvalid = fmt.Errorf("product name must be between 2 and 32 characters")
var ErrPriceInvalid = fmt.Errorf("product price must not be negative")
var ErrDiscountNotFound = fmt.Errorf("discount not found")
var ErrDiscountInvalid = fmt.Errorf("invalid discount")

//go:generate moq -rm -out productstorage_mock.go . ProductStorage
type ProductStorage interface {
	AddProduct(ctx context.Context, p types.Product) (types.Product, error)
	GetProduct(ctx context.Context, id int64) (types.Product, error)
	QueryProducts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Product], error)
	UpdateProduct(ctx context.Context, p types.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	AddDiscount(ctx context.Context, d types.ProductDiscount) (types.ProductDiscount, error)
	GetDiscount(ctx context.Context, productID, discountID int64) (types.ProductDiscount, error)
	QueryDiscounts(ctx context.Context, productID int64, conditions ...storage.ConditionFunc) (types.Collection[types.ProductDiscount], error)
	UpdateDiscount(ctx context.Context, d types.ProductDiscount) error
	ToggleDiscount(ctx context.Context, productID, discountID int64) (types.ProductDiscount, error)
	DeleteDiscount(ctx context.Context, productID, discountID int64) error
}

type ProductManagement interface {
	CreateProduct(ctx context.Context, p types.Product, f scope.Filter) (types.Product, error)
	GetProducts(ctx context.Context, f scope.Filter, search string, offset, limit int) (types.Collection[types.Product], error)
	GetProduct(ctx context.Context, productID int64, f scope.Filter) (types.Product, error)
	UpdateProduct(ctx context.Context, p types.Product, f scope.Filter) (types.Product, error)
	DeleteProduct(ctx context.Context, productID int64, f scope.Filter) error

	CreateDiscount(ctx context.Context, productID int64, d types.ProductDiscount, f scope.Filter) (types.ProductDiscount, error)
	GetDiscounts(ctx context.Context, productID int64, offset, limit int, f scope.Filter) (types.Collection[types.ProductDiscount], error)
	UpdateDiscount(ctx context.Context, productID, discountID int64, d types.ProductDiscount, f scope.Filter) (types.ProductDiscount, error)
	ToggleDiscount(ctx context.Context, productID, discountID int64, f scope.Filter) (types.ProductDiscount, error)
	DeleteDiscount(ctx context.Context, productID, discountID int64, f scope.Filter) error
}

type service struct {
	storage ProductStorage
}

func New(storage ProductStorage) ProductManagement {
	return &service{
		storage: storage,
	}
}

func validateName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < 2 || n > 32 {
		return ErrNameInvalid
	}
	return nil
}

// getScoped reads a product and applies the organization scope by hand;
// products are fetched by id so scoping cannot ride along in the query.
func (s *service) getScoped(ctx context.Context, productID int64, f scope.Filter) (types.Product, error) {
	p, err := s.storage.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Product{}, ErrProductNotFound
		}
		return types.Product{}, err
	}

	if f.OrganizationID != nil && p.OrganizationID != *f.OrganizationID {
		return types.Product{}, ErrProductNotFound
	}

	return p, nil
}

func (s *service) CreateProduct(ctx context.Context, p types.Product, f scope.Filter) (types.Product, error) {
	if err := validateName(p.Name); err != nil {
		return types.Product{}, err
	}
	if p.Price < 0 {
		return types.Product{}, ErrPriceInvalid
	}

	if f.OrganizationID != nil {
		p.OrganizationID = *f.OrganizationID
	}

	created, err := s.storage.AddProduct(ctx, p)
	if errors.Is(err, storage.ErrAlreadyExist) {
		return types.Product{}, ErrProductExists
	}

	return created, err
}

func (s *service) GetProducts(ctx context.Context, f scope.Filter, search string, offset, limit int) (types.Collection[types.Product], error) {
	conditions := []storage.ConditionFunc{}
	if f.OrganizationID != nil {
		conditions = append(conditions, storage.WithOrganization(*f.OrganizationID))
	}
	if search != "" {
		conditions = append(conditions, storage.WithSearch(search))
	}
	conditions = append(conditions, storage.WithOffset(offset), storage.WithLimit(limit))

	return s.storage.QueryProducts(ctx, conditions...)
}

func (s *service) GetProduct(ctx context.Context, productID int64, f scope.Filter) (types.Product, error) {
	return s.getScoped(ctx, productID, f)
}

func (s *service) UpdateProduct(ctx context.Context, p types.Product, f scope.Filter) (types.Product, error) {
	if err := validateName(p.Name); err != nil {
		return types.Product{}, err
	}
	if p.Price < 0 {
		return types.Product{}, ErrPriceInvalid
	}

	current, err := s.getScoped(ctx, p.ID, f)
	if err != nil {
		return types.Product{}, err
	}
	if current.IsDeleted {
		return types.Product{}, ErrProductDeleted
	}

	current.Name = p.Name
	current.Price = p.Price

	err = s.storage.UpdateProduct(ctx, current)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return types.Product{}, ErrProductExists
		}
		if errors.Is(err, storage.ErrNoRows) {
			return types.Product{}, ErrProductNotFound
		}
		return types.Product{}, err
	}

	return current, nil
}

// DeleteProduct soft-deletes: the row stays so existing assignments and logs
// keep a name and price to point at.
func (s *service) DeleteProduct(ctx context.Context, productID int64, f scope.Filter) error {
	current, err := s.getScoped(ctx, productID, f)
	if err != nil {
		return err
	}
	if current.IsDeleted {
		return ErrProductDeleted
	}

	err = s.storage.DeleteProduct(ctx, productID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrProductNotFound
	}

	return err
}

func (s *service) CreateDiscount(ctx context.Context, productID int64, d types.ProductDiscount, f scope.Filter) (types.ProductDiscount, error) {
	product, err := s.getScoped(ctx, productID, f)
	if err != nil {
		return types.ProductDiscount{}, err
	}
	if product.IsDeleted {
		return types.ProductDiscount{}, ErrProductDeleted
	}

	if err := ValidateDiscount(d); err != nil {
		return types.ProductDiscount{}, err
	}

	d.ProductID = productID

	created, err := s.storage.AddDiscount(ctx, d)
	if err != nil {
		return types.ProductDiscount{}, err
	}

	created.CurrentlyValid = IsEffective(created, time.Now())

	return created, nil
}

func (s *service) GetDiscounts(ctx context.Context, productID int64, offset, limit int, f scope.Filter) (types.Collection[types.ProductDiscount], error) {
	_, err := s.getScoped(ctx, productID, f)
	if err != nil {
		return types.Collection[types.ProductDiscount]{}, err
	}

	discounts, err := s.storage.QueryDiscounts(ctx, productID, storage.WithOffset(offset), storage.WithLimit(limit))
	if err != nil {
		return types.Collection[types.ProductDiscount]{}, err
	}

	now := time.Now()
	for i := range discounts.Data {
		discounts.Data[i].CurrentlyValid = IsEffective(discounts.Data[i], now)
	}

	return discounts, nil
}

func (s *service) UpdateDiscount(ctx context.Context, productID, discountID int64, d types.ProductDiscount, f scope.Filter) (types.ProductDiscount, error) {
	_, err := s.getScoped(ctx, productID, f)
	if err != nil {
		return types.ProductDiscount{}, err
	}

	if err := ValidateDiscount(d); err != nil {
		return types.ProductDiscount{}, err
	}

	d.ID = discountID
	d.ProductID = productID

	err = s.storage.UpdateDiscount(ctx, d)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ProductDiscount{}, ErrDiscountNotFound
		}
		return types.ProductDiscount{}, err
	}

	d.CurrentlyValid = IsEffective(d, time.Now())

	return d, nil
}

func (s *service) ToggleDiscount(ctx context.Context, productID, discountID int64, f scope.Filter) (types.ProductDiscount, error) {
	_, err := s.getScoped(ctx, productID, f)
	if err != nil {
		return types.ProductDiscount{}, err
	}

	toggled, err := s.storage.ToggleDiscount(ctx, productID, discountID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ProductDiscount{}, ErrDiscountNotFound
		}
		return types.ProductDiscount{}, err
	}

	toggled.CurrentlyValid = IsEffective(toggled, time.Now())

	return toggled, nil
}

func (s *service) DeleteDiscount(ctx context.Context, productID, discountID int64, f scope.Filter) error {
	_, err := s.getScoped(ctx, productID, f)
	if err != nil {
		return err
	}

	err = s.storage.DeleteDiscount(ctx, productID, discountID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrDiscountNotFound
	}

	return err
}
