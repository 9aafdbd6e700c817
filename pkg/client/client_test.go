package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

func TestAssignNfcTag(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/shelf-device/8e27c2a2-0a04-4e4f-95ba-4a9e4ca7e234/nfc"),
			expects.RequestMethod("PATCH"),
			expects.RequestHeaderContains("Content-Type", "application/json"),
			expects.RequestBodyContaining(`"nfc_tag":"04:A2:19:6F"`),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(deviceResponse)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "testtoken")

	device, err := c.AssignNfcTag(context.Background(), "8e27c2a2-0a04-4e4f-95ba-4a9e4ca7e234", "04:A2:19:6F")
	is.NoErr(err)
	is.Equal("SSD-0042", device.SerialNumber)
	is.Equal(4, device.NumberOfSlots)
}

func TestListGatewayDevicesUnwrapsEnvelope(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/gateway-device"),
			expects.RequestMethod("GET"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(gatewayListResponse)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "testtoken")

	gateways, err := c.ListGatewayDevices(context.Background(), 1, 25, "")
	is.NoErr(err)
	is.Equal(2, len(gateways))
	is.Equal("GW-0001", gateways[0].SerialNumber)
}

func TestSerialFilterSurvivesQueryEscaping(t *testing.T) {
	is := is.New(t)

	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(gatewayListResponse))
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")

	_, err := c.ListGatewayDevices(context.Background(), 1, 25, "GW 0001&slot=2")
	is.NoErr(err)
	is.Equal("GW 0001&slot=2", received)
}

func TestNotFoundBecomesTypedFailure(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/shelf-device/nope/nfc"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(404),
			response.Body([]byte(`{"error": {"message": "pairing not found"}}`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "testtoken")

	_, err := c.AssignNfcTag(context.Background(), "nope", "04:A2:19:6F")

	var failure *Failure
	is.True(errors.As(err, &failure))
	is.Equal(FailureNotFound, failure.Kind)
	is.Equal("pairing not found", failure.Message)
}

func TestUnreachableServiceBecomesRemoteFailure(t *testing.T) {
	is := is.New(t)

	c := New("http://127.0.0.1:1", "testtoken")

	_, err := c.GetShelfSensorDevice(context.Background(), 1)

	var failure *Failure
	is.True(errors.As(err, &failure))
	is.Equal(FailureRemote, failure.Kind)
}

func TestMessageExtractionPriority(t *testing.T) {
	is := is.New(t)

	// error.message beats the flat message field
	is.Equal("from error object", messageFromBody([]byte(`{"error": {"message": "from error object"}, "message": "flat"}`)))

	// flat message beats error as a plain string
	is.Equal("flat", messageFromBody([]byte(`{"message": "flat", "error": "plain"}`)))

	// error as a plain string is last before the fallback
	is.Equal("plain", messageFromBody([]byte(`{"error": "plain"}`)))

	// unreadable bodies fall back to the hardcoded message
	is.Equal(fallbackMessage, messageFromBody([]byte(`<html>502 Bad Gateway</html>`)))
	is.Equal(fallbackMessage, messageFromBody([]byte(`{}`)))
}

func TestStatusCodesMapOntoFailureKinds(t *testing.T) {
	is := is.New(t)

	is.Equal(FailureValidation, failureFromResponse(400, nil).Kind)
	is.Equal(FailureNotFound, failureFromResponse(404, nil).Kind)
	is.Equal(FailureConflict, failureFromResponse(409, nil).Kind)
	is.Equal(FailureRemote, failureFromResponse(500, nil).Kind)
	is.Equal(FailureRemote, failureFromResponse(502, nil).Kind)
}

const deviceResponse string = `{
	"id": 42,
	"gateway_id": 7,
	"serial_number": "SSD-0042",
	"number_of_slots": 4,
	"pairings": [
		{"pairing_code": "8e27c2a2-0a04-4e4f-95ba-4a9e4ca7e234", "device_id": 42, "slot_number": 1, "shelf_position_id": 11, "nfc_tag": "04:A2:19:6F"}
	]
}`

const gatewayListResponse string = `{
	"metadata": {"limit": 25, "page": 1, "current_offset": 0, "has_next_page": false, "total_results": 2, "filtered_total_results": 2},
	"items": [
		{"id": 1, "serial_number": "GW-0001"},
		{"id": 2, "serial_number": "GW-0002"}
	]
}`
