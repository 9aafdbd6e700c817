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

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/productmanagement"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func queryProductsHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-products")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		offset, limit := paging(r)

		products, err := svc.GetProducts(ctx, requestFilter(r), r.URL.Query().Get("search"), offset, limit)
		if err != nil {
			log.Error("unable to query products", "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, products)
	}
}

func createProductHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-product")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var p types.Product
		err = json.Unmarshal(body, &p)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.CreateProduct(ctx, p, requestFilter(r))
		if err != nil {
			log.Error("unable to create product", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getProductHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-product")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p, err := svc.GetProduct(ctx, productID, requestFilter(r))
		if err != nil {
			log.Debug("product not found", "product_id", productID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

func updateProductHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-product")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var p types.Product
		err = json.Unmarshal(body, &p)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		p.ID = productID

		updated, err := svc.UpdateProduct(ctx, p, requestFilter(r))
		if err != nil {
			log.Error("unable to update product", "product_id", productID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteProductHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-product")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.DeleteProduct(ctx, productID, requestFilter(r))
		if err != nil {
			log.Error("unable to delete product", "product_id", productID, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryDiscountsHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-discounts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		offset, limit := paging(r)

		discounts, err := svc.GetDiscounts(ctx, productID, offset, limit, requestFilter(r))
		if err != nil {
			log.Error("unable to query discounts", "product_id", productID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, discounts)
	}
}

func createDiscountHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-discount")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var d types.ProductDiscount
		err = json.Unmarshal(body, &d)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.CreateDiscount(ctx, productID, d, requestFilter(r))
		if err != nil {
			log.Error("unable to create discount", "product_id", productID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func updateDiscountHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-discount")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		discountID, err := strconv.ParseInt(chi.URLParam(r, "discountID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var d types.ProductDiscount
		err = json.Unmarshal(body, &d)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateDiscount(ctx, productID, discountID, d, requestFilter(r))
		if err != nil {
			log.Error("unable to update discount", "discount_id", discountID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func toggleDiscountHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "toggle-discount")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		discountID, err := strconv.ParseInt(chi.URLParam(r, "discountID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		toggled, err := svc.ToggleDiscount(ctx, productID, discountID, requestFilter(r))
		if err != nil {
			log.Error("unable to toggle discount", "discount_id", discountID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toggled)
	}
}

func deleteDiscountHandler(svc productmanagement.ProductManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-discount")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		discountID, err := strconv.ParseInt(chi.URLParam(r, "discountID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.DeleteDiscount(ctx, productID, discountID, requestFilter(r))
		if err != nil {
			log.Error("unable to delete discount", "discount_id", discountID, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
