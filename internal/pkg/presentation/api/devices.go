package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/devicemanagement"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func queryGatewayDevicesHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-gateway-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		offset, limit := paging(r)

		gateways, err := svc.GetGatewayDevices(ctx, r.URL.Query().Get("search"), offset, limit)
		if err != nil {
			log.Error("unable to query gateway devices", "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, gateways)
	}
}

func createGatewayDeviceHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-gateway-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var g types.GatewayDevice
		err = json.Unmarshal(body, &g)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.CreateGatewayDevice(ctx, g)
		if err != nil {
			log.Error("unable to create gateway device", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getGatewayDeviceHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-gateway-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		gatewayID, err := strconv.ParseInt(chi.URLParam(r, "gatewayID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		g, err := svc.GetGatewayDevice(ctx, gatewayID)
		if err != nil {
			log.Debug("gateway device not found", "gateway_id", gatewayID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, g)
	}
}

func updateGatewayDeviceHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-gateway-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		gatewayID, err := strconv.ParseInt(chi.URLParam(r, "gatewayID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var g types.GatewayDevice
		err = json.Unmarshal(body, &g)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		g.ID = gatewayID

		err = svc.UpdateGatewayDevice(ctx, g)
		if err != nil {
			log.Error("unable to update gateway device", "gateway_id", gatewayID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, g)
	}
}

func deleteGatewayDeviceHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-gateway-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		gatewayID, err := strconv.ParseInt(chi.URLParam(r, "gatewayID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.DeleteGatewayDevice(ctx, gatewayID)
		if err != nil {
			log.Error("unable to delete gateway device", "gateway_id", gatewayID, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func querySensorDevicesHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-shelf-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		offset, limit := paging(r)

		devices, err := svc.GetSensorDevices(ctx, r.URL.Query().Get("search"), offset, limit)
		if err != nil {
			log.Error("unable to query shelf devices", "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, devices)
	}
}

func registerSensorDeviceHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "register-shelf-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var d types.ShelfSensorDevice
		err = json.Unmarshal(body, &d)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.RegisterSensorDevice(ctx, d)
		if err != nil {
			log.Error("unable to register shelf device", "serial", d.SerialNumber, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getSensorDeviceHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-shelf-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		deviceID, err := strconv.ParseInt(chi.URLParam(r, "deviceID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		d, err := svc.GetSensorDevice(ctx, deviceID)
		if err != nil {
			log.Debug("shelf device not found", "device_id", deviceID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, d)
	}
}

func getDeviceLogsHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-shelf-device-logs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		deviceID, err := strconv.ParseInt(chi.URLParam(r, "deviceID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		q := r.URL.Query()

		var timeMin, timeMax *time.Time
		if v, tErr := time.Parse(time.RFC3339, q.Get("timestamp_min")); tErr == nil {
			timeMin = &v
		}
		if v, tErr := time.Parse(time.RFC3339, q.Get("timestamp_max")); tErr == nil {
			timeMax = &v
		}

		var batteryMin, batteryMax *int
		if v, bErr := strconv.Atoi(q.Get("battery_percent_min")); bErr == nil {
			batteryMin = &v
		}
		if v, bErr := strconv.Atoi(q.Get("battery_percent_max")); bErr == nil {
			batteryMax = &v
		}

		offset, limit := paging(r)

		logs, err := svc.GetDeviceLogs(ctx, deviceID, timeMin, timeMax, batteryMin, batteryMax, offset, limit)
		if err != nil {
			log.Error("unable to fetch shelf device logs", "device_id", deviceID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeCollection(w, logs)
	}
}

// assignNfcTagHandler writes a scanned tag onto the pairing identified by the
// pairing code in the path. A null nfc_tag clears the current tag and thereby
// unbinds the pairing.
func assignNfcTagHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "assign-nfc-tag")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		pairingCode := chi.URLParam(r, "pairingCode")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch struct {
			NfcTag *string `json:"nfc_tag"`
		}
		fields := map[string]json.RawMessage{}
		if err = json.Unmarshal(body, &fields); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err = json.Unmarshal(body, &patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if _, present := fields["nfc_tag"]; !present {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		device, err := svc.AssignNfcTag(ctx, pairingCode, patch.NfcTag)
		if err != nil {
			log.Error("unable to assign nfc tag", "pairing_code", pairingCode, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, device)
	}
}

// updatePairingHandler edits the binding of a single pairing. The nfc_tag and
// shelf_position_id fields are applied independently and both accept null to
// clear the current value.
func updatePairingHandler(svc devicemanagement.DeviceManagement) http.HandlerFunc {
	type pairingPatch struct {
		NfcTag          *string `json:"nfc_tag"`
		ShelfPositionID *int64  `json:"shelf_position_id"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-pairing")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		pairingCode := chi.URLParam(r, "pairingCode")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		fields := map[string]json.RawMessage{}
		err = json.Unmarshal(body, &fields)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch pairingPatch
		err = json.Unmarshal(body, &patch)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		_, hasTag := fields["nfc_tag"]
		_, hasPosition := fields["shelf_position_id"]
		if !hasTag && !hasPosition {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var device types.ShelfSensorDevice

		if hasTag {
			device, err = svc.AssignNfcTag(ctx, pairingCode, patch.NfcTag)
			if err != nil {
				log.Error("unable to assign nfc tag", "pairing_code", pairingCode, "err", err.Error())
				writeError(w, err)
				return
			}
		}

		if hasPosition {
			device, err = svc.BindPairing(ctx, pairingCode, patch.ShelfPositionID)
			if err != nil {
				log.Error("unable to bind pairing", "pairing_code", pairingCode, "err", err.Error())
				writeError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, device)
	}
}
