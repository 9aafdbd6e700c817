package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

var tracer = otel.Tracer("shelf-mgmt-client")

// ShelfMgmtClient is the REST client used by the hardware gateway and the
// NFC pairing workflows. All failures come back as *Failure.
type ShelfMgmtClient interface {
	ListGatewayDevices(ctx context.Context, page, limit int, serialFilter string) ([]types.GatewayDevice, error)
	GetShelfSensorDevice(ctx context.Context, deviceID int64) (types.ShelfSensorDevice, error)
	GetSensorDeviceLogs(ctx context.Context, deviceID int64, page, limit int) ([]types.StatusLog, error)
	AssignNfcTag(ctx context.Context, pairingCode, nfcTag string) (types.ShelfSensorDevice, error)
}

type shelfMgmtClient struct {
	url   string
	token string

	httpClient http.Client
}

func New(serviceURL, token string) ShelfMgmtClient {
	return &shelfMgmtClient{
		url:   serviceURL,
		token: token,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// collection mirrors the service's paged response envelope.
type collection[T any] struct {
	Items []T `json:"items"`
}

func (c *shelfMgmtClient) ListGatewayDevices(ctx context.Context, page, limit int, serialFilter string) ([]types.GatewayDevice, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-gateway-devices")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := fmt.Sprintf("%s/api/v0/gateway-device?page=%d&limit=%d", c.url, page, limit)
	if serialFilter != "" {
		url += "&search=" + neturl.QueryEscape(serialFilter)
	}

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	result := collection[types.GatewayDevice]{}
	if jsonErr := json.Unmarshal(body, &result); jsonErr != nil {
		err = remoteFailure(fmt.Errorf("failed to unmarshal response body: %w", jsonErr))
		return nil, err
	}

	return result.Items, nil
}

func (c *shelfMgmtClient) GetShelfSensorDevice(ctx context.Context, deviceID int64) (types.ShelfSensorDevice, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-shelf-sensor-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.get(ctx, fmt.Sprintf("%s/api/v0/shelf-device/%d", c.url, deviceID))
	if err != nil {
		return types.ShelfSensorDevice{}, err
	}

	device := types.ShelfSensorDevice{}
	if jsonErr := json.Unmarshal(body, &device); jsonErr != nil {
		err = remoteFailure(fmt.Errorf("failed to unmarshal response body: %w", jsonErr))
		return types.ShelfSensorDevice{}, err
	}

	return device, nil
}

func (c *shelfMgmtClient) GetSensorDeviceLogs(ctx context.Context, deviceID int64, page, limit int) ([]types.StatusLog, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-sensor-device-logs")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := fmt.Sprintf("%s/api/v0/shelf-device/%d/logs?page=%d&limit=%d", c.url, deviceID, page, limit)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	result := collection[types.StatusLog]{}
	if jsonErr := json.Unmarshal(body, &result); jsonErr != nil {
		err = remoteFailure(fmt.Errorf("failed to unmarshal response body: %w", jsonErr))
		return nil, err
	}

	return result.Items, nil
}

// AssignNfcTag writes a scanned tag onto the pairing identified by the
// pairing code and returns the updated device detail.
func (c *shelfMgmtClient) AssignNfcTag(ctx context.Context, pairingCode, nfcTag string) (types.ShelfSensorDevice, error) {
	var err error
	ctx, span := tracer.Start(ctx, "assign-nfc-tag")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("assigning nfc tag", "pairing_code", pairingCode)

	payload, err := json.Marshal(map[string]string{"nfc_tag": nfcTag})
	if err != nil {
		return types.ShelfSensorDevice{}, remoteFailure(err)
	}

	url := c.url + "/api/v0/shelf-device/" + pairingCode + "/nfc"

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		err = remoteFailure(fmt.Errorf("failed to create http request: %w", err))
		return types.ShelfSensorDevice{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return types.ShelfSensorDevice{}, err
	}

	device := types.ShelfSensorDevice{}
	if jsonErr := json.Unmarshal(body, &device); jsonErr != nil {
		err = remoteFailure(fmt.Errorf("failed to unmarshal response body: %w", jsonErr))
		return types.ShelfSensorDevice{}, err
	}

	return device, nil
}

func (c *shelfMgmtClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, remoteFailure(fmt.Errorf("failed to create http request: %w", err))
	}

	return c.do(req)
}

func (c *shelfMgmtClient) do(req *http.Request) ([]byte, error) {
	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, remoteFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, remoteFailure(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, failureFromResponse(resp.StatusCode, body)
	}

	return body, nil
}
