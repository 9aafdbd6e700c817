package shelfmanagement

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func TestAssignProductWritesOnce(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	stock := 42
	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		return types.ShelfPosition{ID: 3, ShelfID: 1, CurrentStockPercent: &stock, LowStockThresholdPercent: 20}, nil
	}

	_, err := svc.AssignProduct(ctx, 1, "3", map[string]any{"product_id": float64(7)}, scope.Filter{})
	is.NoErr(err)

	is.Equal(len(mock.UpdatePositionAssignmentCalls()), 1)
	is.Equal(len(mock.UpdatePositionCalls()), 0)
}

func TestAssignProductCarriesStockForward(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	stock := 42
	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		return types.ShelfPosition{ID: 3, ShelfID: 1, CurrentStockPercent: &stock, LowStockThresholdPercent: 20}, nil
	}

	_, err := svc.AssignProduct(ctx, 1, "3", map[string]any{"product_id": float64(7)}, scope.Filter{})
	is.NoErr(err)

	call := mock.UpdatePositionAssignmentCalls()[0]
	is.Equal(call.PositionID, int64(3))
	is.True(call.ProductID != nil)
	is.Equal(*call.ProductID, int64(7))
	is.True(call.StockPercent != nil)
	is.Equal(*call.StockPercent, 42)
}

func TestAssignProductRemovalResetsButKeepsStock(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	stock := 42
	productID := int64(7)
	capacity := 100
	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		return types.ShelfPosition{
			ID: 3, ShelfID: 1,
			ProductID:                 &productID,
			CurrentStockPercent:       &stock,
			MaxCurrentProductCapacity: &capacity,
			LowStockThresholdPercent:  35,
		}, nil
	}

	_, err := svc.AssignProduct(ctx, 1, "3", map[string]any{"product_id": nil}, scope.Filter{})
	is.NoErr(err)

	call := mock.UpdatePositionAssignmentCalls()[0]
	is.Equal(call.ProductID, (*int64)(nil))
	is.Equal(call.ThresholdPercent, DefaultLowStockThresholdPercent)
	is.Equal(call.Capacity, (*int)(nil))
	is.True(call.StockPercent != nil)
	is.Equal(*call.StockPercent, 42)
}

func TestAssignProductProceedsWhenFreshReadFails(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	reads := 0
	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		reads++
		if reads == 1 {
			return types.ShelfPosition{}, errors.New("connection reset")
		}
		return types.ShelfPosition{ID: 3, ShelfID: 1}, nil
	}

	_, err := svc.AssignProduct(ctx, 1, "3", map[string]any{"product_id": float64(7)}, scope.Filter{})
	is.NoErr(err)

	call := mock.UpdatePositionAssignmentCalls()[0]
	is.Equal(call.StockPercent, (*int)(nil))
}

func TestAssignProductRejectsUnknownProduct(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetProductFunc = func(ctx context.Context, id int64) (types.Product, error) {
		return types.Product{}, storage.ErrNoRows
	}

	_, err := svc.AssignProduct(ctx, 1, "3", map[string]any{"product_id": float64(99)}, scope.Filter{})
	is.True(errors.Is(err, ErrProductNotFound))
	is.Equal(len(mock.UpdatePositionAssignmentCalls()), 0)
}

func TestAssignProductRejectsSoftDeletedProduct(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetProductFunc = func(ctx context.Context, id int64) (types.Product, error) {
		return types.Product{ID: id, Name: "gone", IsDeleted: true}, nil
	}

	_, err := svc.AssignProduct(ctx, 1, "3", map[string]any{"product_id": float64(7)}, scope.Filter{})
	is.True(errors.Is(err, ErrProductDeleted))
	is.Equal(len(mock.UpdatePositionAssignmentCalls()), 0)
}

func TestAssignProductResolvesNfcTagToPositionID(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		return types.ShelfPosition{ID: 11, ShelfID: 1}, nil
	}

	_, err := svc.AssignProduct(ctx, 1, "04:A2:19:6F", map[string]any{"product_id": float64(7)}, scope.Filter{})
	is.NoErr(err)

	call := mock.UpdatePositionAssignmentCalls()[0]
	is.Equal(call.PositionID, int64(11))
}

func TestDeleteShelfWithPositionsIsRejected(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.CountPositionsFunc = func(ctx context.Context, shelfID int64) (int64, error) {
		return 4, nil
	}

	err := svc.DeleteShelf(ctx, 1, scope.Filter{})
	is.True(errors.Is(err, ErrShelfHasPositions))
	is.Equal(len(mock.DeleteShelfCalls()), 0)
}

func TestDeleteEmptyShelf(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	err := svc.DeleteShelf(ctx, 1, scope.Filter{})
	is.NoErr(err)
	is.Equal(len(mock.DeleteShelfCalls()), 1)
}

func TestCreatePositionDefaultsThreshold(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	_, err := svc.CreatePosition(ctx, 1, types.ShelfPosition{Row: 1, Column: 2}, scope.Filter{})
	is.NoErr(err)

	is.Equal(mock.AddPositionCalls()[0].P.LowStockThresholdPercent, DefaultLowStockThresholdPercent)
}

func TestCreatePositionOnTakenSlot(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.AddPositionFunc = func(ctx context.Context, p types.ShelfPosition) (types.ShelfPosition, error) {
		return types.ShelfPosition{}, storage.ErrAlreadyExist
	}

	_, err := svc.CreatePosition(ctx, 1, types.ShelfPosition{Row: 1, Column: 2}, scope.Filter{})
	is.True(errors.Is(err, ErrPositionTaken))
}

func TestGetShelfOutsideScopeIsNotFound(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.GetShelfFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Shelf, error) {
		return types.Shelf{}, storage.ErrNoRows
	}

	orgID := int64(2)
	_, err := svc.GetShelf(ctx, 1, scope.Filter{OrganizationID: &orgID})
	is.True(errors.Is(err, ErrShelfNotFound))
}

func testSetup(t *testing.T) (*is.I, context.Context, ShelfManagement, *ShelfStorageMock) {
	is := is.New(t)

	mock := &ShelfStorageMock{
		AddShelfFunc: func(ctx context.Context, shelf types.Shelf) (types.Shelf, error) {
			shelf.ID = 1
			return shelf, nil
		},
		GetShelfFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Shelf, error) {
			return types.Shelf{ID: 1, Name: "A1"}, nil
		},
		QueryShelvesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Shelf], error) {
			return types.Collection[types.Shelf]{}, nil
		},
		UpdateShelfFunc: func(ctx context.Context, shelf types.Shelf) error { return nil },
		DeleteShelfFunc: func(ctx context.Context, shelfID int64) error { return nil },
		CountPositionsFunc: func(ctx context.Context, shelfID int64) (int64, error) {
			return 0, nil
		},
		AddPositionFunc: func(ctx context.Context, p types.ShelfPosition) (types.ShelfPosition, error) {
			p.ID = 3
			return p, nil
		},
		GetPositionFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
			return types.ShelfPosition{ID: 3, ShelfID: 1, LowStockThresholdPercent: 20}, nil
		},
		QueryPositionsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ShelfPosition], error) {
			return types.Collection[types.ShelfPosition]{}, nil
		},
		UpdatePositionFunc: func(ctx context.Context, p types.ShelfPosition) error { return nil },
		UpdatePositionAssignmentFunc: func(ctx context.Context, positionID int64, productID *int64, thresholdPercent int, capacity *int, stockPercent *int) error {
			return nil
		},
		DeletePositionFunc: func(ctx context.Context, shelfID, positionID int64) error { return nil },
		GetPositionLogFunc: func(ctx context.Context, positionID int64, conditions ...storage.ConditionFunc) (types.Collection[types.StatusLog], error) {
			return types.Collection[types.StatusLog]{}, nil
		},
		GetProductFunc: func(ctx context.Context, id int64) (types.Product, error) {
			return types.Product{ID: id, Name: "tomato soup", Price: 1000}, nil
		},
	}

	return is, context.Background(), New(mock), mock
}
