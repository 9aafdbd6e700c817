package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/devicemanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/shelfmanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/internal/pkg/presentation/api/auth"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func newTestRequest(method, target string, body []byte, session scope.Session) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(auth.WithSession(req.Context(), session))
}

func TestQueryShelvesPagingMetadata(t *testing.T) {
	is := is.New(t)

	mock := &shelfmanagement.ShelfStorageMock{
		QueryShelvesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Shelf], error) {
			return types.Collection[types.Shelf]{
				Data:          []types.Shelf{{ID: 21, Name: "aisle 3"}, {ID: 22, Name: "aisle 4"}},
				Count:         2,
				Offset:        20,
				Limit:         10,
				TotalCount:    50,
				FilteredCount: 23,
			}, nil
		},
	}

	req := newTestRequest(http.MethodGet, "/api/v0/shelf?page=3&limit=10", nil, scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	queryShelvesHandler(shelfmanagement.New(mock)).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var response CollectionResponse[types.Shelf]
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))

	is.Equal(uint64(10), response.Meta.Limit)
	is.Equal(uint64(3), response.Meta.Page)
	is.Equal(uint64(20), response.Meta.CurrentOffset)
	is.True(response.Meta.HasNextPage)
	is.Equal(uint64(50), response.Meta.TotalResults)
	is.Equal(uint64(23), response.Meta.FilteredTotalResults)
	is.Equal(2, len(response.Items))
}

func TestEmptyCollectionSerializesItemsAsEmptyArray(t *testing.T) {
	is := is.New(t)

	mock := &shelfmanagement.ShelfStorageMock{
		QueryShelvesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Shelf], error) {
			return types.Collection[types.Shelf]{Limit: 25}, nil
		},
	}

	req := newTestRequest(http.MethodGet, "/api/v0/shelf", nil, scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	queryShelvesHandler(shelfmanagement.New(mock)).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.True(bytes.Contains(res.Body.Bytes(), []byte(`"items":[]`)))
}

func TestGetUnknownShelfRespondsWith404(t *testing.T) {
	is := is.New(t)

	mock := &shelfmanagement.ShelfStorageMock{
		GetShelfFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Shelf, error) {
			return types.Shelf{}, storage.ErrNoRows
		},
	}

	router := chi.NewRouter()
	router.Get("/api/v0/shelf/{shelfID}", getShelfHandler(shelfmanagement.New(mock)))

	req := newTestRequest(http.MethodGet, "/api/v0/shelf/999", nil, scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &body))
	is.Equal("shelf not found", body.Error.Message)
}

func TestCreateShelfForcesSessionOrganization(t *testing.T) {
	is := is.New(t)

	mock := &shelfmanagement.ShelfStorageMock{
		AddShelfFunc: func(ctx context.Context, shelf types.Shelf) (types.Shelf, error) {
			shelf.ID = 1
			return shelf, nil
		},
	}

	orgID := int64(7)
	session := scope.Session{Role: scope.RoleOrgAdmin, OrganizationID: &orgID}

	// The body claims another organization; the session wins.
	body := []byte(`{"name": "back wall", "organization_id": 99}`)

	req := newTestRequest(http.MethodPost, "/api/v0/shelf", body, session)
	res := httptest.NewRecorder()

	createShelfHandler(shelfmanagement.New(mock)).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(mock.AddShelfCalls()))
	is.Equal(int64(7), *mock.AddShelfCalls()[0].Shelf.OrganizationID)
}

func TestAssignProductPatch(t *testing.T) {
	is := is.New(t)

	stock := 40
	mock := &shelfmanagement.ShelfStorageMock{
		GetProductFunc: func(ctx context.Context, id int64) (types.Product, error) {
			return types.Product{ID: id, Name: "oat milk", Price: 2195}, nil
		},
		GetPositionFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
			return types.ShelfPosition{ID: 11, ShelfID: 3, Row: 1, Column: 2, CurrentStockPercent: &stock, LowStockThresholdPercent: 20}, nil
		},
		UpdatePositionAssignmentFunc: func(ctx context.Context, positionID int64, productID *int64, thresholdPercent int, capacity *int, stockPercent *int) error {
			return nil
		},
	}

	router := chi.NewRouter()
	router.Patch("/api/v0/shelf/{shelfID}/shelf-position/{posRef}", assignProductHandler(shelfmanagement.New(mock)))

	body := []byte(`{"product_id": 5, "low_stock_threshold_percent": 35}`)

	req := newTestRequest(http.MethodPatch, "/api/v0/shelf/3/shelf-position/11", body, scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(mock.UpdatePositionAssignmentCalls()))

	call := mock.UpdatePositionAssignmentCalls()[0]
	is.Equal(int64(11), call.PositionID)
	is.Equal(int64(5), *call.ProductID)
	is.Equal(35, call.ThresholdPercent)
	is.Equal(40, *call.StockPercent)
}

func TestAssignProductPatchOnProductRoute(t *testing.T) {
	is := is.New(t)

	mock := &shelfmanagement.ShelfStorageMock{
		GetProductFunc: func(ctx context.Context, id int64) (types.Product, error) {
			return types.Product{ID: id, Name: "oat milk", Price: 2195}, nil
		},
		GetPositionFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
			return types.ShelfPosition{ID: 11, ShelfID: 3, Row: 1, Column: 2, LowStockThresholdPercent: 20}, nil
		},
		UpdatePositionAssignmentFunc: func(ctx context.Context, positionID int64, productID *int64, thresholdPercent int, capacity *int, stockPercent *int) error {
			return nil
		},
	}

	router := chi.NewRouter()
	router.Patch("/api/v0/shelf/{shelfID}/shelf-position/{posRef}/product", assignProductHandler(shelfmanagement.New(mock)))

	req := newTestRequest(http.MethodPatch, "/api/v0/shelf/3/shelf-position/11/product", []byte(`{"product_id": 5}`), scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(mock.UpdatePositionAssignmentCalls()))
	is.Equal(int64(5), *mock.UpdatePositionAssignmentCalls()[0].ProductID)
}

func TestNfcTagNullClearsBinding(t *testing.T) {
	is := is.New(t)

	mock := &devicemanagement.DeviceStorageMock{
		GetPairingFunc: func(ctx context.Context, pairingCode string) (types.Pairing, error) {
			return types.Pairing{PairingCode: pairingCode, DeviceID: 2, SlotNumber: 1}, nil
		},
		SetPairingNfcTagFunc: func(ctx context.Context, pairingCode string, nfcTag *string) error {
			return nil
		},
		GetSensorDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfSensorDevice, error) {
			return types.ShelfSensorDevice{ID: 2, GatewayID: 1, SerialNumber: "SSD-0001"}, nil
		},
	}

	dm := devicemanagement.New(mock, &messaging.MsgContextMock{})

	router := chi.NewRouter()
	router.Patch("/api/v0/shelf-device/{pairingCode}/nfc", assignNfcTagHandler(dm))

	body := []byte(`{"nfc_tag": null}`)
	req := newTestRequest(http.MethodPatch, "/api/v0/shelf-device/c0ffee/nfc", body, scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(mock.SetPairingNfcTagCalls()))
	is.Equal((*string)(nil), mock.SetPairingNfcTagCalls()[0].NfcTag)
}

func TestNfcPatchWithoutTagFieldIsRejected(t *testing.T) {
	is := is.New(t)

	mock := &devicemanagement.DeviceStorageMock{}
	dm := devicemanagement.New(mock, &messaging.MsgContextMock{})

	router := chi.NewRouter()
	router.Patch("/api/v0/shelf-device/{pairingCode}/nfc", assignNfcTagHandler(dm))

	req := newTestRequest(http.MethodPatch, "/api/v0/shelf-device/c0ffee/nfc", []byte(`{}`), scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.Equal(0, len(mock.SetPairingNfcTagCalls()))
}

func TestAssignUnknownProductRespondsWith404(t *testing.T) {
	is := is.New(t)

	mock := &shelfmanagement.ShelfStorageMock{
		GetProductFunc: func(ctx context.Context, id int64) (types.Product, error) {
			return types.Product{}, storage.ErrNoRows
		},
	}

	router := chi.NewRouter()
	router.Patch("/api/v0/shelf/{shelfID}/shelf-position/{posRef}", assignProductHandler(shelfmanagement.New(mock)))

	req := newTestRequest(http.MethodPatch, "/api/v0/shelf/3/shelf-position/11", []byte(`{"product_id": 5}`), scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
	is.Equal(0, len(mock.UpdatePositionAssignmentCalls()))
}

func TestDeleteShelfWithPositionsRespondsWith409(t *testing.T) {
	is := is.New(t)

	mock := &shelfmanagement.ShelfStorageMock{
		GetShelfFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Shelf, error) {
			return types.Shelf{ID: 3}, nil
		},
		CountPositionsFunc: func(ctx context.Context, shelfID int64) (int64, error) {
			return 6, nil
		},
	}

	router := chi.NewRouter()
	router.Delete("/api/v0/shelf/{shelfID}", deleteShelfHandler(shelfmanagement.New(mock)))

	req := newTestRequest(http.MethodDelete, "/api/v0/shelf/3", nil, scope.Session{Role: scope.RoleSysAdmin})
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusConflict, res.Code)
	is.Equal(0, len(mock.DeleteShelfCalls()))
}

func TestPagingDefaults(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/shelf", nil)
	offset, limit := paging(req)

	is.Equal(0, offset)
	is.Equal(defaultPageSize, limit)
}

func TestPagingIgnoresNonsenseValues(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/shelf?page=-2&limit=banana", nil)
	offset, limit := paging(req)

	is.Equal(0, offset)
	is.Equal(defaultPageSize, limit)
}

func TestRequestFilterScopesOrgSessions(t *testing.T) {
	is := is.New(t)

	orgID := int64(4)
	session := scope.Session{Role: scope.RoleOrgUser, OrganizationID: &orgID}

	// An org session asking for another organization is still pinned to its own.
	req := newTestRequest(http.MethodGet, "/api/v0/shelf?organization_id=9", nil, session)

	f := requestFilter(req)
	is.Equal(int64(4), *f.OrganizationID)
	is.Equal(false, f.IncludeUnassigned)
}
