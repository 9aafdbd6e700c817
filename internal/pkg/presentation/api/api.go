package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/devicemanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/organizations"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/productmanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/application/shelfmanagement"
	"github.com/shelfware/shelf-mgmt/internal/pkg/presentation/api/auth"
)

var tracer = otel.Tracer("shelf-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, sm shelfmanagement.ShelfManagement, pm productmanagement.ProductManagement, dm devicemanagement.DeviceManagement, om organizations.Organizations) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireSession())

			r.Route("/organization", func(r chi.Router) {
				r.Get("/", queryOrganizationsHandler(om))
				r.Post("/", createOrganizationHandler(om))
				r.Get("/{organizationID}", getOrganizationHandler(om))
				r.Put("/{organizationID}", updateOrganizationHandler(om))
				r.Delete("/{organizationID}", deleteOrganizationHandler(om))
			})

			r.Route("/shelf", func(r chi.Router) {
				r.Get("/", queryShelvesHandler(sm))
				r.Post("/", createShelfHandler(sm))
				r.Get("/{shelfID}", getShelfHandler(sm))
				r.Put("/{shelfID}", updateShelfHandler(sm))
				r.Delete("/{shelfID}", deleteShelfHandler(sm))

				r.Route("/{shelfID}/shelf-position", func(r chi.Router) {
					r.Get("/", queryPositionsHandler(sm))
					r.Post("/", createPositionHandler(sm))
					r.Get("/{posRef}", getPositionHandler(sm))
					r.Put("/{posRef}", updatePositionHandler(sm))
					r.Patch("/{posRef}", assignProductHandler(sm))
					r.Patch("/{posRef}/product", assignProductHandler(sm))
					r.Delete("/{posRef}", deletePositionHandler(sm))
					r.Get("/{posRef}/log", getPositionLogHandler(sm))
				})
			})

			r.Route("/product", func(r chi.Router) {
				r.Get("/", queryProductsHandler(pm))
				r.Post("/", createProductHandler(pm))
				r.Get("/{productID}", getProductHandler(pm))
				r.Put("/{productID}", updateProductHandler(pm))
				r.Delete("/{productID}", deleteProductHandler(pm))

				r.Route("/{productID}/discount", func(r chi.Router) {
					r.Get("/", queryDiscountsHandler(pm))
					r.Post("/", createDiscountHandler(pm))
					r.Put("/{discountID}", updateDiscountHandler(pm))
					r.Put("/{discountID}/toggle", toggleDiscountHandler(pm))
					r.Delete("/{discountID}", deleteDiscountHandler(pm))
				})
			})

			r.Route("/gateway-device", func(r chi.Router) {
				r.Get("/", queryGatewayDevicesHandler(dm))
				r.Post("/", createGatewayDeviceHandler(dm))
				r.Get("/{gatewayID}", getGatewayDeviceHandler(dm))
				r.Put("/{gatewayID}", updateGatewayDeviceHandler(dm))
				r.Delete("/{gatewayID}", deleteGatewayDeviceHandler(dm))
			})

			r.Route("/shelf-device", func(r chi.Router) {
				r.Get("/", querySensorDevicesHandler(dm))
				r.Post("/", registerSensorDeviceHandler(dm))
				r.Get("/{deviceID}", getSensorDeviceHandler(dm))
				r.Get("/{deviceID}/logs", getDeviceLogsHandler(dm))
				r.Patch("/{pairingCode}/nfc", assignNfcTagHandler(dm))
			})

			r.Patch("/pairing/{pairingCode}", updatePairingHandler(dm))
		})
	})

	return router, nil
}

const defaultPageSize = 25

// paging reads the 1-based page and the page size from the query string and
// turns them into an offset/limit pair.
func paging(r *http.Request) (offset, limit int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	return (page - 1) * limit, limit
}

// requestFilter resolves the caller's organization scope from the session and
// the selection query parameters.
func requestFilter(r *http.Request) scope.Filter {
	session := auth.GetSessionFromContext(r.Context())

	var selectedOrgID *int64
	if v, err := strconv.ParseInt(r.URL.Query().Get("organization_id"), 10, 64); err == nil {
		selectedOrgID = &v
	}

	showUnassignedOnly := r.URL.Query().Get("unassigned") == "true"

	return scope.ResolveOrgFilter(session, selectedOrgID, showUnassignedOnly)
}

// statusFromError translates service sentinels into response codes. Anything
// unrecognized is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, shelfmanagement.ErrShelfNotFound),
		errors.Is(err, shelfmanagement.ErrPositionNotFound),
		errors.Is(err, shelfmanagement.ErrProductNotFound),
		errors.Is(err, productmanagement.ErrProductNotFound),
		errors.Is(err, productmanagement.ErrDiscountNotFound),
		errors.Is(err, devicemanagement.ErrGatewayNotFound),
		errors.Is(err, devicemanagement.ErrDeviceNotFound),
		errors.Is(err, devicemanagement.ErrPairingNotFound),
		errors.Is(err, devicemanagement.ErrPositionUnknown),
		errors.Is(err, organizations.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shelfmanagement.ErrShelfHasPositions),
		errors.Is(err, shelfmanagement.ErrPositionTaken),
		errors.Is(err, shelfmanagement.ErrProductDeleted),
		errors.Is(err, productmanagement.ErrProductDeleted),
		errors.Is(err, productmanagement.ErrProductExists),
		errors.Is(err, devicemanagement.ErrSerialTaken),
		errors.Is(err, organizations.ErrNameTaken):
		return http.StatusConflict
	case errors.Is(err, productmanagement.ErrNameInvalid),
		errors.Is(err, productmanagement.ErrPriceInvalid),
		errors.Is(err, productmanagement.ErrDiscountInvalid),
		errors.Is(err, devicemanagement.ErrNoSlots),
		errors.Is(err, organizations.ErrNameInvalid):
		return http.StatusBadRequest
	case errors.Is(err, organizations.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
