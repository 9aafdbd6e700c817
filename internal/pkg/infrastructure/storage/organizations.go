package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func (s *Storage) AddOrganization(ctx context.Context, org types.Organization) (types.Organization, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO organizations (name, active)
		VALUES (@name, @active)
		RETURNING organization_id
	`, pgx.NamedArgs{
		"name":   org.Name,
		"active": org.Active,
	}).Scan(&org.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return types.Organization{}, ErrAlreadyExist
		}
		return types.Organization{}, err
	}

	return org, nil
}

func (s *Storage) GetOrganization(ctx context.Context, id int64) (types.Organization, error) {
	var org types.Organization

	err := s.pool.QueryRow(ctx, `
		SELECT organization_id, name, active
		FROM organizations
		WHERE organization_id = @organization_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"organization_id": id,
	}).Scan(&org.ID, &org.Name, &org.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Organization{}, ErrNoRows
		}
		return types.Organization{}, err
	}

	return org, nil
}

func (s *Storage) QueryOrganizations(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Organization], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{"deleted = FALSE"}
	if condition.Search != "" {
		where = append(where, "name ILIKE @search")
	}

	query := `
		SELECT organization_id, name, active,
			count(*) OVER () AS filtered,
			(SELECT count(*) FROM organizations WHERE NOT deleted) AS total
		FROM organizations
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY ` + condition.SortBy("name") + ` ` + condition.SortOrder() + `
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Organization]{}, err
	}

	var org types.Organization
	var filtered, total int64

	orgs := make([]types.Organization, 0)

	_, err = pgx.ForEachRow(rows, []any{&org.ID, &org.Name, &org.Active, &filtered, &total}, func() error {
		orgs = append(orgs, org)
		return nil
	})
	if err != nil {
		return types.Collection[types.Organization]{}, err
	}

	return types.Collection[types.Organization]{
		Data:          orgs,
		Count:         uint64(len(orgs)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(total),
		FilteredCount: uint64(filtered),
	}, nil
}

func (s *Storage) UpdateOrganization(ctx context.Context, org types.Organization) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE organizations
		SET name = @name, active = @active, modified_on = CURRENT_TIMESTAMP
		WHERE organization_id = @organization_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"organization_id": org.ID,
		"name":            org.Name,
		"active":          org.Active,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteOrganization(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE organizations
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE organization_id = @organization_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"organization_id": id,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
