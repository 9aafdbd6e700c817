package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/shelfmanagement"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func queryShelvesHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-shelves")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		offset, limit := paging(r)

		shelves, err := svc.GetShelves(ctx, requestFilter(r), r.URL.Query().Get("search"), offset, limit)
		if err != nil {
			log.Error("unable to query shelves", "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, shelves)
	}
}

func createShelfHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-shelf")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var shelf types.Shelf
		err = json.Unmarshal(body, &shelf)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// An org-scoped session creates shelves in its own organization.
		f := requestFilter(r)
		if f.OrganizationID != nil {
			shelf.OrganizationID = f.OrganizationID
		}

		created, err := svc.CreateShelf(ctx, shelf)
		if err != nil {
			log.Error("unable to create shelf", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getShelfHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-shelf")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		shelf, err := svc.GetShelf(ctx, shelfID, requestFilter(r))
		if err != nil {
			log.Debug("shelf not found", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, shelf)
	}
}

func updateShelfHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-shelf")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var shelf types.Shelf
		err = json.Unmarshal(body, &shelf)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		shelf.ID = shelfID

		err = svc.UpdateShelf(ctx, shelf, requestFilter(r))
		if err != nil {
			log.Error("unable to update shelf", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, shelf)
	}
}

func deleteShelfHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-shelf")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.DeleteShelf(ctx, shelfID, requestFilter(r))
		if err != nil {
			log.Error("unable to delete shelf", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryPositionsHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-shelf-positions")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		shelf, err := svc.GetShelf(ctx, shelfID, requestFilter(r))
		if err != nil {
			log.Debug("shelf not found", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, types.Collection[types.ShelfPosition]{
			Data:          shelf.Positions,
			Count:         uint64(len(shelf.Positions)),
			TotalCount:    uint64(len(shelf.Positions)),
			FilteredCount: uint64(len(shelf.Positions)),
		})
	}
}

func createPositionHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-shelf-position")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var p types.ShelfPosition
		err = json.Unmarshal(body, &p)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.CreatePosition(ctx, shelfID, p, requestFilter(r))
		if err != nil {
			log.Error("unable to create shelf position", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getPositionHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-shelf-position")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p, err := svc.GetPosition(ctx, shelfID, chi.URLParam(r, "posRef"), requestFilter(r))
		if err != nil {
			log.Debug("shelf position not found", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

func updatePositionHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-shelf-position")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var p types.ShelfPosition
		err = json.Unmarshal(body, &p)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdatePosition(ctx, shelfID, chi.URLParam(r, "posRef"), p, requestFilter(r))
		if err != nil {
			log.Error("unable to update shelf position", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// assignProductHandler is the partial assignment edit: the body is a loose
// field map, normalized and reconciled by the service.
func assignProductHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "assign-product")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		fields := map[string]any{}
		err = json.Unmarshal(body, &fields)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		updated, err := svc.AssignProduct(ctx, shelfID, chi.URLParam(r, "posRef"), fields, requestFilter(r))
		if err != nil {
			log.Error("unable to assign product", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func deletePositionHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-shelf-position")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.DeletePosition(ctx, shelfID, chi.URLParam(r, "posRef"), requestFilter(r))
		if err != nil {
			log.Error("unable to delete shelf position", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getPositionLogHandler(svc shelfmanagement.ShelfManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-shelf-position-log")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		shelfID, err := strconv.ParseInt(chi.URLParam(r, "shelfID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		offset, limit := paging(r)

		logs, err := svc.GetPositionLog(ctx, shelfID, chi.URLParam(r, "posRef"), offset, limit, requestFilter(r))
		if err != nil {
			log.Error("unable to fetch shelf position log", "shelf_id", shelfID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, logs)
	}
}
