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

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/organizations"
	"github.com/shelfware/shelf-mgmt/internal/pkg/presentation/api/auth"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func queryOrganizationsHandler(svc organizations.Organizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-organizations")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		offset, limit := paging(r)

		orgs, err := svc.GetOrganizations(ctx, offset, limit)
		if err != nil {
			log.Error("unable to query organizations", "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, orgs)
	}
}

func createOrganizationHandler(svc organizations.Organizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-organization")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var org types.Organization
		err = json.Unmarshal(body, &org)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.CreateOrganization(ctx, auth.GetSessionFromContext(ctx), org)
		if err != nil {
			log.Error("unable to create organization", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getOrganizationHandler(svc organizations.Organizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-organization")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "organizationID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		org, err := svc.GetOrganization(ctx, id)
		if err != nil {
			log.Debug("organization not found", "organization_id", id, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, org)
	}
}

func updateOrganizationHandler(svc organizations.Organizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-organization")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "organizationID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var org types.Organization
		err = json.Unmarshal(body, &org)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		org.ID = id

		err = svc.UpdateOrganization(ctx, auth.GetSessionFromContext(ctx), org)
		if err != nil {
			log.Error("unable to update organization", "organization_id", id, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, org)
	}
}

func deleteOrganizationHandler(svc organizations.Organizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-organization")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "organizationID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.DeleteOrganization(ctx, auth.GetSessionFromContext(ctx), id)
		if err != nil {
			log.Error("unable to delete organization", "organization_id", id, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
