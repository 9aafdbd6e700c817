package shelfmanagement

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

var ErrShelfNotFound = fmt.Errorf("shelf not found")
var ErrPositionNotFound = fmt.Errorf("shelf position not found")
var ErrProductNotFound = fmt.Errorf("product not found")
var ErrProductDeleted = fmt.Errorf("product has been deleted")
var ErrShelfHasPositions = fmt.Errorf("shelf still has positions")
var ErrPositionTaken = fmt.Errorf("position already exists at row/column")

//go:generate moq -rm -out shelfstorage_mock.go . ShelfStorage
type ShelfStorage interface {
	AddShelf(ctx context.Context, shelf types.Shelf) (types.Shelf, error)
	GetShelf(ctx context.Context, conditions ...storage.ConditionFunc) (types.Shelf, error)
	QueryShelves(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Shelf], error)
	UpdateShelf(ctx context.Context, shelf types.Shelf) error
	DeleteShelf(ctx context.Context, shelfID int64) error
	CountPositions(ctx context.Context, shelfID int64) (int64, error)

	AddPosition(ctx context.Context, p types.ShelfPosition) (types.ShelfPosition, error)
	GetPosition(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error)
	QueryPositions(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ShelfPosition], error)
	UpdatePosition(ctx context.Context, p types.ShelfPosition) error
	UpdatePositionAssignment(ctx context.Context, positionID int64, productID *int64, thresholdPercent int, capacity *int, stockPercent *int) error
	DeletePosition(ctx context.Context, shelfID, positionID int64) error
	GetPositionLog(ctx context.Context, positionID int64, conditions ...storage.ConditionFunc) (types.Collection[types.StatusLog], error)

	GetProduct(ctx context.Context, id int64) (types.Product, error)
}

type ShelfManagement interface {
	CreateShelf(ctx context.Context, shelf types.Shelf) (types.Shelf, error)
	GetShelves(ctx context.Context, f scope.Filter, search string, offset, limit int) (types.Collection[types.Shelf], error)
	GetShelf(ctx context.Context, shelfID int64, f scope.Filter) (types.Shelf, error)
	UpdateShelf(ctx context.Context, shelf types.Shelf, f scope.Filter) error
	DeleteShelf(ctx context.Context, shelfID int64, f scope.Filter) error

	CreatePosition(ctx context.Context, shelfID int64, p types.ShelfPosition, f scope.Filter) (types.ShelfPosition, error)
	GetPosition(ctx context.Context, shelfID int64, ref string, f scope.Filter) (types.ShelfPosition, error)
	UpdatePosition(ctx context.Context, shelfID int64, ref string, p types.ShelfPosition, f scope.Filter) (types.ShelfPosition, error)
	DeletePosition(ctx context.Context, shelfID int64, ref string, f scope.Filter) error

	AssignProduct(ctx context.Context, shelfID int64, ref string, fields map[string]any, f scope.Filter) (types.ShelfPosition, error)
	GetPositionLog(ctx context.Context, shelfID int64, ref string, offset, limit int, f scope.Filter) (types.Collection[types.StatusLog], error)
}

type service struct {
	storage ShelfStorage
}

func New(storage ShelfStorage) ShelfManagement {
	return &service{
		storage: storage,
	}
}

func scopeConditions(f scope.Filter) []storage.ConditionFunc {
	if f.IncludeUnassigned {
		return []storage.ConditionFunc{storage.WithUnassigned()}
	}
	if f.OrganizationID != nil {
		return []storage.ConditionFunc{storage.WithOrganization(*f.OrganizationID)}
	}
	return nil
}

// positionRef resolves the position addressing used by the API: a numeric ref
// is a position id, anything else is treated as an NFC tag and resolved
// through the pairing bound to it.
func positionRef(shelfID int64, ref string) []storage.ConditionFunc {
	conditions := []storage.ConditionFunc{storage.WithShelfID(shelfID)}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return append(conditions, storage.WithPositionID(id))
	}

	return append(conditions, storage.WithNfcTag(ref))
}

func (s *service) CreateShelf(ctx context.Context, shelf types.Shelf) (types.Shelf, error) {
	return s.storage.AddShelf(ctx, shelf)
}

func (s *service) GetShelves(ctx context.Context, f scope.Filter, search string, offset, limit int) (types.Collection[types.Shelf], error) {
	conditions := scopeConditions(f)
	if search != "" {
		conditions = append(conditions, storage.WithSearch(search))
	}
	conditions = append(conditions, storage.WithOffset(offset), storage.WithLimit(limit))

	return s.storage.QueryShelves(ctx, conditions...)
}

func (s *service) GetShelf(ctx context.Context, shelfID int64, f scope.Filter) (types.Shelf, error) {
	conditions := append(scopeConditions(f), storage.WithShelfID(shelfID))

	shelf, err := s.storage.GetShelf(ctx, conditions...)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Shelf{}, ErrShelfNotFound
		}
		return types.Shelf{}, err
	}

	positions, err := s.storage.QueryPositions(ctx, storage.WithShelfID(shelfID))
	if err != nil {
		return types.Shelf{}, err
	}
	shelf.Positions = positions.Data

	return shelf, nil
}

func (s *service) UpdateShelf(ctx context.Context, shelf types.Shelf, f scope.Filter) error {
	conditions := append(scopeConditions(f), storage.WithShelfID(shelf.ID))

	_, err := s.storage.GetShelf(ctx, conditions...)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrShelfNotFound
		}
		return err
	}

	err = s.storage.UpdateShelf(ctx, shelf)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrShelfNotFound
	}

	return err
}

// DeleteShelf enforces the deletion ordering: all positions must be removed
// first. The storage layer does not guard this.
func (s *service) DeleteShelf(ctx context.Context, shelfID int64, f scope.Filter) error {
	conditions := append(scopeConditions(f), storage.WithShelfID(shelfID))

	_, err := s.storage.GetShelf(ctx, conditions...)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrShelfNotFound
		}
		return err
	}

	count, err := s.storage.CountPositions(ctx, shelfID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrShelfHasPositions
	}

	err = s.storage.DeleteShelf(ctx, shelfID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrShelfNotFound
	}

	return err
}

func (s *service) CreatePosition(ctx context.Context, shelfID int64, p types.ShelfPosition, f scope.Filter) (types.ShelfPosition, error) {
	conditions := append(scopeConditions(f), storage.WithShelfID(shelfID))

	_, err := s.storage.GetShelf(ctx, conditions...)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfPosition{}, ErrShelfNotFound
		}
		return types.ShelfPosition{}, err
	}

	p.ShelfID = shelfID
	if p.LowStockThresholdPercent <= 0 || p.LowStockThresholdPercent >= 100 {
		p.LowStockThresholdPercent = DefaultLowStockThresholdPercent
	}

	created, err := s.storage.AddPosition(ctx, p)
	if errors.Is(err, storage.ErrAlreadyExist) {
		return types.ShelfPosition{}, ErrPositionTaken
	}

	return created, err
}

func (s *service) GetPosition(ctx context.Context, shelfID int64, ref string, f scope.Filter) (types.ShelfPosition, error) {
	conditions := append(positionRef(shelfID, ref), scopeConditions(f)...)

	p, err := s.storage.GetPosition(ctx, conditions...)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfPosition{}, ErrPositionNotFound
		}
		return types.ShelfPosition{}, err
	}

	return p, nil
}

func (s *service) UpdatePosition(ctx context.Context, shelfID int64, ref string, p types.ShelfPosition, f scope.Filter) (types.ShelfPosition, error) {
	current, err := s.GetPosition(ctx, shelfID, ref, f)
	if err != nil {
		return types.ShelfPosition{}, err
	}

	current.Row = p.Row
	current.Column = p.Column

	err = s.storage.UpdatePosition(ctx, current)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return types.ShelfPosition{}, ErrPositionTaken
		}
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfPosition{}, ErrPositionNotFound
		}
		return types.ShelfPosition{}, err
	}

	current.IsLowStock = current.LowStock()

	return current, nil
}

func (s *service) DeletePosition(ctx context.Context, shelfID int64, ref string, f scope.Filter) error {
	p, err := s.GetPosition(ctx, shelfID, ref, f)
	if err != nil {
		return err
	}

	err = s.storage.DeletePosition(ctx, shelfID, p.ID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrPositionNotFound
	}

	return err
}

// AssignProduct applies a partial assignment to a position. The payload is
// normalized, reconciled against a fresh read of the persisted position and
// written in a single storage update.
func (s *service) AssignProduct(ctx context.Context, shelfID int64, ref string, fields map[string]any, f scope.Filter) (types.ShelfPosition, error) {
	log := logging.GetFromContext(ctx)

	patch := NormalizeAssignment(fields)

	if patch.ProductID != nil {
		product, err := s.storage.GetProduct(ctx, *patch.ProductID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return types.ShelfPosition{}, ErrProductNotFound
			}
			return types.ShelfPosition{}, err
		}
		if product.IsDeleted {
			return types.ShelfPosition{}, ErrProductDeleted
		}
	}

	// Fresh read so a stale client cache can never clobber the live stock
	// reading. A failed read is non-fatal: the assignment proceeds with an
	// unknown stock value.
	conditions := append(positionRef(shelfID, ref), scopeConditions(f)...)

	current, err := s.storage.GetPosition(ctx, conditions...)
	if err != nil {
		log.Warn("could not read current position state, proceeding without stock reading", "shelf_id", shelfID, "position_ref", ref, "err", err.Error())
		current = types.ShelfPosition{}
	} else {
		// The ref may have been an NFC tag; address the write by id.
		ref = strconv.FormatInt(current.ID, 10)
	}

	final := Reconcile(current, patch)

	positionID, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return types.ShelfPosition{}, ErrPositionNotFound
	}

	err = s.storage.UpdatePositionAssignment(ctx, positionID, final.ProductID, final.LowStockThresholdPercent, final.MaxCurrentProductCapacity, final.CurrentStockPercent)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfPosition{}, ErrPositionNotFound
		}
		return types.ShelfPosition{}, err
	}

	updated, err := s.storage.GetPosition(ctx, storage.WithShelfID(shelfID), storage.WithPositionID(positionID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfPosition{}, ErrPositionNotFound
		}
		return types.ShelfPosition{}, err
	}

	return updated, nil
}

func (s *service) GetPositionLog(ctx context.Context, shelfID int64, ref string, offset, limit int, f scope.Filter) (types.Collection[types.StatusLog], error) {
	p, err := s.GetPosition(ctx, shelfID, ref, f)
	if err != nil {
		return types.Collection[types.StatusLog]{}, err
	}

	return s.storage.GetPositionLog(ctx, p.ID, storage.WithOffset(offset), storage.WithLimit(limit))
}
