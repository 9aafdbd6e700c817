package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func (s *Storage) AddShelf(ctx context.Context, shelf types.Shelf) (types.Shelf, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO shelves (name, location, organization_id)
		VALUES (@name, @location, @organization_id)
		RETURNING shelf_id
	`, pgx.NamedArgs{
		"name":            shelf.Name,
		"location":        shelf.Location,
		"organization_id": shelf.OrganizationID,
	}).Scan(&shelf.ID)
	if err != nil {
		return types.Shelf{}, err
	}

	return shelf, nil
}

func (s *Storage) GetShelf(ctx context.Context, conditions ...ConditionFunc) (types.Shelf, error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{"deleted = FALSE"}
	if condition.ShelfID != nil {
		where = append(where, "shelf_id = @shelf_id")
	}
	if clause := condition.orgClause(); clause != "" {
		where = append(where, clause)
	}

	var shelf types.Shelf

	err := s.pool.QueryRow(ctx, `
		SELECT shelf_id, name, location, organization_id
		FROM shelves
		WHERE `+strings.Join(where, " AND "), args).Scan(&shelf.ID, &shelf.Name, &shelf.Location, &shelf.OrganizationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Shelf{}, ErrNoRows
		}
		return types.Shelf{}, err
	}

	return shelf, nil
}

func (s *Storage) QueryShelves(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Shelf], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{"deleted = FALSE"}
	if clause := condition.orgClause(); clause != "" {
		where = append(where, clause)
	}
	if condition.Search != "" {
		where = append(where, "(name ILIKE @search OR location ILIKE @search)")
	}

	query := `
		SELECT shelf_id, name, location, organization_id,
			count(*) OVER () AS filtered,
			(SELECT count(*) FROM shelves WHERE NOT deleted) AS total
		FROM shelves
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY ` + condition.SortBy("name") + ` ` + condition.SortOrder() + `
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Shelf]{}, err
	}

	var shelf types.Shelf
	var filtered, total int64

	shelves := make([]types.Shelf, 0)

	_, err = pgx.ForEachRow(rows, []any{&shelf.ID, &shelf.Name, &shelf.Location, &shelf.OrganizationID, &filtered, &total}, func() error {
		shelves = append(shelves, shelf)
		return nil
	})
	if err != nil {
		return types.Collection[types.Shelf]{}, err
	}

	return types.Collection[types.Shelf]{
		Data:          shelves,
		Count:         uint64(len(shelves)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(total),
		FilteredCount: uint64(filtered),
	}, nil
}

func (s *Storage) UpdateShelf(ctx context.Context, shelf types.Shelf) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE shelves
		SET name = @name, location = @location, organization_id = @organization_id, modified_on = CURRENT_TIMESTAMP
		WHERE shelf_id = @shelf_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"shelf_id":        shelf.ID,
		"name":            shelf.Name,
		"location":        shelf.Location,
		"organization_id": shelf.OrganizationID,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteShelf(ctx context.Context, shelfID int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE shelves
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE shelf_id = @shelf_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"shelf_id": shelfID,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) CountPositions(ctx context.Context, shelfID int64) (int64, error) {
	var count int64

	err := s.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM shelf_positions
		WHERE shelf_id = @shelf_id
	`, pgx.NamedArgs{
		"shelf_id": shelfID,
	}).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *Storage) AddPosition(ctx context.Context, p types.ShelfPosition) (types.ShelfPosition, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO shelf_positions (shelf_id, row_number, column_number, product_id, max_current_product_capacity, low_stock_threshold_percent)
		VALUES (@shelf_id, @row_number, @column_number, @product_id, @max_current_product_capacity, @low_stock_threshold_percent)
		RETURNING position_id
	`, pgx.NamedArgs{
		"shelf_id":                     p.ShelfID,
		"row_number":                   p.Row,
		"column_number":                p.Column,
		"product_id":                   p.ProductID,
		"max_current_product_capacity": p.MaxCurrentProductCapacity,
		"low_stock_threshold_percent":  p.LowStockThresholdPercent,
	}).Scan(&p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return types.ShelfPosition{}, ErrAlreadyExist
		}
		return types.ShelfPosition{}, err
	}

	p.IsLowStock = p.LowStock()

	return p, nil
}

// GetPosition resolves a position either by id or, when an NFC tag condition
// is set, through the pairing bound to that tag.
func (s *Storage) GetPosition(ctx context.Context, conditions ...ConditionFunc) (types.ShelfPosition, error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	join := ""
	where := []string{}

	if condition.ShelfID != nil {
		where = append(where, "p.shelf_id = @shelf_id")
	}
	if condition.PositionID != nil {
		where = append(where, "p.position_id = @position_id")
	}
	if condition.NfcTag != "" {
		join = "JOIN pairings pr ON pr.shelf_position_id = p.position_id"
		where = append(where, "pr.nfc_tag = @nfc_tag")
	}
	if condition.OrganizationID != nil || condition.Unassigned {
		join += " JOIN shelves sh ON sh.shelf_id = p.shelf_id"
		if condition.Unassigned {
			where = append(where, "sh.organization_id IS NULL")
		} else {
			where = append(where, "sh.organization_id = @organization_id")
		}
	}

	if len(where) == 0 {
		return types.ShelfPosition{}, ErrNoRows
	}

	query := `
		SELECT p.position_id, p.shelf_id, p.row_number, p.column_number, p.product_id, p.current_stock_percent, p.max_current_product_capacity, p.low_stock_threshold_percent
		FROM shelf_positions p ` + join + `
		WHERE ` + strings.Join(where, " AND ")

	var p types.ShelfPosition

	err := s.pool.QueryRow(ctx, query, args).Scan(&p.ID, &p.ShelfID, &p.Row, &p.Column, &p.ProductID, &p.CurrentStockPercent, &p.MaxCurrentProductCapacity, &p.LowStockThresholdPercent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ShelfPosition{}, ErrNoRows
		}
		return types.ShelfPosition{}, err
	}

	p.IsLowStock = p.LowStock()

	return p, nil
}

func (s *Storage) QueryPositions(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ShelfPosition], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{"p.shelf_id = @shelf_id"}

	query := `
		SELECT p.position_id, p.shelf_id, p.row_number, p.column_number, p.product_id, p.current_stock_percent, p.max_current_product_capacity, p.low_stock_threshold_percent,
			count(*) OVER () AS filtered,
			(SELECT count(*) FROM shelf_positions WHERE shelf_id = @shelf_id) AS total
		FROM shelf_positions p
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY p.row_number ASC, p.column_number ASC
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.ShelfPosition]{}, err
	}

	var p types.ShelfPosition
	var filtered, total int64

	positions := make([]types.ShelfPosition, 0)

	_, err = pgx.ForEachRow(rows, []any{&p.ID, &p.ShelfID, &p.Row, &p.Column, &p.ProductID, &p.CurrentStockPercent, &p.MaxCurrentProductCapacity, &p.LowStockThresholdPercent, &filtered, &total}, func() error {
		p.IsLowStock = p.LowStock()
		positions = append(positions, p)
		return nil
	})
	if err != nil {
		return types.Collection[types.ShelfPosition]{}, err
	}

	return types.Collection[types.ShelfPosition]{
		Data:          positions,
		Count:         uint64(len(positions)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(total),
		FilteredCount: uint64(filtered),
	}, nil
}

func (s *Storage) UpdatePosition(ctx context.Context, p types.ShelfPosition) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE shelf_positions
		SET row_number = @row_number, column_number = @column_number, modified_on = CURRENT_TIMESTAMP
		WHERE position_id = @position_id AND shelf_id = @shelf_id
	`, pgx.NamedArgs{
		"position_id":   p.ID,
		"shelf_id":      p.ShelfID,
		"row_number":    p.Row,
		"column_number": p.Column,
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

// UpdatePositionAssignment applies a reconciled assignment in one statement.
// Other readers never observe a partially applied assignment.
func (s *Storage) UpdatePositionAssignment(ctx context.Context, positionID int64, productID *int64, thresholdPercent int, capacity *int, stockPercent *int) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE shelf_positions
		SET product_id = @product_id,
			low_stock_threshold_percent = @low_stock_threshold_percent,
			max_current_product_capacity = @max_current_product_capacity,
			current_stock_percent = @current_stock_percent,
			modified_on = CURRENT_TIMESTAMP
		WHERE position_id = @position_id
	`, pgx.NamedArgs{
		"position_id":                  positionID,
		"product_id":                   productID,
		"low_stock_threshold_percent":  thresholdPercent,
		"max_current_product_capacity": capacity,
		"current_stock_percent":        stockPercent,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// SetPositionStock is the telemetry write path. It touches the stock reading
// only, never the assignment columns.
func (s *Storage) SetPositionStock(ctx context.Context, positionID int64, stockPercent int) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE shelf_positions
		SET current_stock_percent = @current_stock_percent, modified_on = CURRENT_TIMESTAMP
		WHERE position_id = @position_id
	`, pgx.NamedArgs{
		"position_id":           positionID,
		"current_stock_percent": stockPercent,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeletePosition(ctx context.Context, shelfID, positionID int64) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE pairings
		SET shelf_position_id = NULL, modified_on = CURRENT_TIMESTAMP
		WHERE shelf_position_id = @position_id
	`, pgx.NamedArgs{
		"position_id": positionID,
	})
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `
		DELETE FROM shelf_positions
		WHERE position_id = @position_id AND shelf_id = @shelf_id
	`, pgx.NamedArgs{
		"position_id": positionID,
		"shelf_id":    shelfID,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// GetPositionLog reads the status-log history of the sensor slot bound to a
// position, most recent first. The log is an append-only read-through; rows
// are never deduplicated or reordered beyond the time sort.
func (s *Storage) GetPositionLog(ctx context.Context, positionID int64, conditions ...ConditionFunc) (types.Collection[types.StatusLog], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()
	args["position_id"] = positionID

	query := `
		SELECT l.time, l.battery_percent,
			count(*) OVER () AS filtered
		FROM status_logs l
		JOIN pairings pr ON pr.device_id = l.device_id
		WHERE pr.shelf_position_id = @position_id
		ORDER BY l.time DESC
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.StatusLog]{}, err
	}

	var entry types.StatusLog
	var t time.Time
	var filtered int64

	logs := make([]types.StatusLog, 0)

	_, err = pgx.ForEachRow(rows, []any{&t, &entry.BatteryPercent, &filtered}, func() error {
		entry.Timestamp = t
		logs = append(logs, entry)
		return nil
	})
	if err != nil {
		return types.Collection[types.StatusLog]{}, err
	}

	return types.Collection[types.StatusLog]{
		Data:          logs,
		Count:         uint64(len(logs)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(filtered),
		FilteredCount: uint64(filtered),
	}, nil
}
