package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func (s *Storage) AddProduct(ctx context.Context, p types.Product) (types.Product, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO products (organization_id, name, price)
		VALUES (@organization_id, @name, @price)
		RETURNING product_id
	`, pgx.NamedArgs{
		"organization_id": p.OrganizationID,
		"name":            p.Name,
		"price":           p.Price,
	}).Scan(&p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return types.Product{}, ErrAlreadyExist
		}
		return types.Product{}, err
	}

	return p, nil
}

// GetProduct returns soft-deleted products too, flagged as such; historical
// records keep referring to them by id.
func (s *Storage) GetProduct(ctx context.Context, id int64) (types.Product, error) {
	var p types.Product

	err := s.pool.QueryRow(ctx, `
		SELECT product_id, organization_id, name, price, deleted
		FROM products
		WHERE product_id = @product_id
	`, pgx.NamedArgs{
		"product_id": id,
	}).Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Price, &p.IsDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Product{}, ErrNoRows
		}
		return types.Product{}, err
	}

	return p, nil
}

// QueryProducts lists assignable products: soft-deleted rows are excluded
// unless the deleted condition is set.
func (s *Storage) QueryProducts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Product], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{}
	if clause := condition.orgClause(); clause != "" {
		where = append(where, clause)
	}
	if condition.Search != "" {
		where = append(where, "name ILIKE @search")
	}
	if !condition.IncludeDeleted {
		where = append(where, "deleted = FALSE")
	}
	if len(where) == 0 {
		where = append(where, "TRUE")
	}

	query := `
		SELECT product_id, organization_id, name, price, deleted,
			count(*) OVER () AS filtered,
			(SELECT count(*) FROM products WHERE NOT deleted) AS total
		FROM products
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY ` + condition.SortBy("name") + ` ` + condition.SortOrder() + `
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Product]{}, err
	}

	var p types.Product
	var filtered, total int64

	products := make([]types.Product, 0)

	_, err = pgx.ForEachRow(rows, []any{&p.ID, &p.OrganizationID, &p.Name, &p.Price, &p.IsDeleted, &filtered, &total}, func() error {
		products = append(products, p)
		return nil
	})
	if err != nil {
		return types.Collection[types.Product]{}, err
	}

	return types.Collection[types.Product]{
		Data:          products,
		Count:         uint64(len(products)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(total),
		FilteredCount: uint64(filtered),
	}, nil
}

func (s *Storage) UpdateProduct(ctx context.Context, p types.Product) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE products
		SET name = @name, price = @price, modified_on = CURRENT_TIMESTAMP
		WHERE product_id = @product_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"product_id": p.ID,
		"name":       p.Name,
		"price":      p.Price,
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrAlreadyExist
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE products
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE product_id = @product_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"product_id": id,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) AddDiscount(ctx context.Context, d types.ProductDiscount) (types.ProductDiscount, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO product_discounts (product_id, new_price, discount_percent, valid_from, valid_until, active)
		VALUES (@product_id, @new_price, @discount_percent, @valid_from, @valid_until, @active)
		RETURNING discount_id
	`, pgx.NamedArgs{
		"product_id":       d.ProductID,
		"new_price":        d.NewPrice,
		"discount_percent": d.DiscountPercent,
		"valid_from":       d.ValidFrom.UTC(),
		"valid_until":      d.ValidUntil.UTC(),
		"active":           d.Active,
	}).Scan(&d.ID)
	if err != nil {
		return types.ProductDiscount{}, err
	}

	return d, nil
}

func (s *Storage) GetDiscount(ctx context.Context, productID, discountID int64) (types.ProductDiscount, error) {
	var d types.ProductDiscount

	err := s.pool.QueryRow(ctx, `
		SELECT discount_id, product_id, new_price, discount_percent, valid_from, valid_until, active
		FROM product_discounts
		WHERE discount_id = @discount_id AND product_id = @product_id
	`, pgx.NamedArgs{
		"discount_id": discountID,
		"product_id":  productID,
	}).Scan(&d.ID, &d.ProductID, &d.NewPrice, &d.DiscountPercent, &d.ValidFrom, &d.ValidUntil, &d.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ProductDiscount{}, ErrNoRows
		}
		return types.ProductDiscount{}, err
	}

	return d, nil
}

func (s *Storage) QueryDiscounts(ctx context.Context, productID int64, conditions ...ConditionFunc) (types.Collection[types.ProductDiscount], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()
	args["product_id"] = productID

	query := `
		SELECT discount_id, product_id, new_price, discount_percent, valid_from, valid_until, active,
			count(*) OVER () AS filtered
		FROM product_discounts
		WHERE product_id = @product_id
		ORDER BY valid_from DESC
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.ProductDiscount]{}, err
	}

	var d types.ProductDiscount
	var filtered int64

	discounts := make([]types.ProductDiscount, 0)

	_, err = pgx.ForEachRow(rows, []any{&d.ID, &d.ProductID, &d.NewPrice, &d.DiscountPercent, &d.ValidFrom, &d.ValidUntil, &d.Active, &filtered}, func() error {
		discounts = append(discounts, d)
		return nil
	})
	if err != nil {
		return types.Collection[types.ProductDiscount]{}, err
	}

	return types.Collection[types.ProductDiscount]{
		Data:          discounts,
		Count:         uint64(len(discounts)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(filtered),
		FilteredCount: uint64(filtered),
	}, nil
}

func (s *Storage) UpdateDiscount(ctx context.Context, d types.ProductDiscount) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE product_discounts
		SET new_price = @new_price, discount_percent = @discount_percent, valid_from = @valid_from, valid_until = @valid_until, active = @active, modified_on = CURRENT_TIMESTAMP
		WHERE discount_id = @discount_id AND product_id = @product_id
	`, pgx.NamedArgs{
		"discount_id":      d.ID,
		"product_id":       d.ProductID,
		"new_price":        d.NewPrice,
		"discount_percent": d.DiscountPercent,
		"valid_from":       d.ValidFrom.UTC(),
		"valid_until":      d.ValidUntil.UTC(),
		"active":           d.Active,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) ToggleDiscount(ctx context.Context, productID, discountID int64) (types.ProductDiscount, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE product_discounts
		SET active = NOT active, modified_on = CURRENT_TIMESTAMP
		WHERE discount_id = @discount_id AND product_id = @product_id
	`, pgx.NamedArgs{
		"discount_id": discountID,
		"product_id":  productID,
	})
	if err != nil {
		return types.ProductDiscount{}, err
	}
	if tag.RowsAffected() == 0 {
		return types.ProductDiscount{}, ErrNoRows
	}

	return s.GetDiscount(ctx, productID, discountID)
}

func (s *Storage) DeleteDiscount(ctx context.Context, productID, discountID int64) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM product_discounts
		WHERE discount_id = @discount_id AND product_id = @product_id
	`, pgx.NamedArgs{
		"discount_id": discountID,
		"product_id":  productID,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
