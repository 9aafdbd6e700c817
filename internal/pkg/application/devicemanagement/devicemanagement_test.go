package devicemanagement

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"

	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func TestRegisterSensorDeviceMintsOnePairingCodePerSlot(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	_, err := svc.RegisterSensorDevice(ctx, types.ShelfSensorDevice{
		GatewayID:     1,
		SerialNumber:  "SSD-0001",
		NumberOfSlots: 4,
	})
	is.NoErr(err)

	codes := mock.AddSensorDeviceCalls()[0].PairingCodes
	is.Equal(len(codes), 4)

	seen := map[string]bool{}
	for _, code := range codes {
		is.True(len(code) == 36)
		is.True(!seen[code])
		seen[code] = true
	}
}

func TestRegisterSensorDeviceRequiresSlots(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	_, err := svc.RegisterSensorDevice(ctx, types.ShelfSensorDevice{GatewayID: 1, SerialNumber: "SSD-0001"})
	is.True(errors.Is(err, ErrNoSlots))
	is.Equal(len(mock.AddSensorDeviceCalls()), 0)
}

func TestRegisterSensorDeviceOnUnknownGateway(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	mock.GetGatewayDeviceFunc = func(ctx context.Context, id int64) (types.GatewayDevice, error) {
		return types.GatewayDevice{}, storage.ErrNoRows
	}

	_, err := svc.RegisterSensorDevice(ctx, types.ShelfSensorDevice{GatewayID: 99, SerialNumber: "SSD-0001", NumberOfSlots: 2})
	is.True(errors.Is(err, ErrGatewayNotFound))
}

func TestGetGatewayDevicesEmbedsFleets(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	mock.QueryGatewayDevicesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.GatewayDevice], error) {
		return types.Collection[types.GatewayDevice]{
			Data:  []types.GatewayDevice{{ID: 1, SerialNumber: "GW-0001"}},
			Count: 1,
		}, nil
	}
	mock.QuerySensorDevicesFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ShelfSensorDevice], error) {
		return types.Collection[types.ShelfSensorDevice]{
			Data:  []types.ShelfSensorDevice{{ID: 2, GatewayID: 1, SerialNumber: "SSD-0001"}},
			Count: 1,
		}, nil
	}

	gateways, err := svc.GetGatewayDevices(ctx, "", 0, 10)
	is.NoErr(err)
	is.Equal(len(gateways.Data), 1)
	is.Equal(len(gateways.Data[0].Devices), 1)
	is.Equal(gateways.Data[0].Devices[0].SerialNumber, "SSD-0001")
}

func TestFlattenSensorDevices(t *testing.T) {
	is := is.New(t)

	devices := FlattenSensorDevices([]types.GatewayDevice{
		{ID: 1, Devices: []types.ShelfSensorDevice{{ID: 10}, {ID: 11}}},
		{ID: 2},
		{ID: 3, Devices: []types.ShelfSensorDevice{{ID: 12}}},
	})

	is.Equal(len(devices), 3)
	is.Equal(devices[0].ID, int64(10))
	is.Equal(devices[2].ID, int64(12))
}

func TestAssignNfcTagReturnsDeviceDetail(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	tag := "04:A2:19:6F"
	device, err := svc.AssignNfcTag(ctx, "0c7ad1fd-a2a2-4381-afc1-11d27a806c50", &tag)
	is.NoErr(err)

	call := mock.SetPairingNfcTagCalls()[0]
	is.Equal(call.PairingCode, "0c7ad1fd-a2a2-4381-afc1-11d27a806c50")
	is.Equal(*call.NfcTag, "04:A2:19:6F")
	is.Equal(device.ID, int64(2))
}

func TestClearingNfcTagWritesNull(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	// A cleared tag must end up as NULL in storage, never as an empty
	// string, so that the pairing reads back as unbound.
	_, err := svc.AssignNfcTag(ctx, "0c7ad1fd-a2a2-4381-afc1-11d27a806c50", nil)
	is.NoErr(err)

	call := mock.SetPairingNfcTagCalls()[0]
	is.Equal(call.NfcTag, (*string)(nil))
}

func TestAssignNfcTagOnUnknownPairing(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	mock.GetPairingFunc = func(ctx context.Context, pairingCode string) (types.Pairing, error) {
		return types.Pairing{}, storage.ErrNoRows
	}

	tag := "04:A2:19:6F"
	_, err := svc.AssignNfcTag(ctx, "nope", &tag)
	is.True(errors.Is(err, ErrPairingNotFound))
}

func TestBindPairingVerifiesPositionExists(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		return types.ShelfPosition{}, storage.ErrNoRows
	}

	positionID := int64(99)
	_, err := svc.BindPairing(ctx, "0c7ad1fd-a2a2-4381-afc1-11d27a806c50", &positionID)
	is.True(err != nil)
	is.Equal(len(mock.SetPairingPositionCalls()), 0)
}

func TestStatusMessageUpdatesDeviceAndGateway(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	battery := 87
	ts := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	err := svc.HandleStatusMessage(ctx, types.StatusMessage{
		SerialNumber:   "SSD-0001",
		BatteryPercent: &battery,
		Timestamp:      ts,
	})
	is.NoErr(err)

	is.Equal(len(mock.SetDeviceStatusCalls()), 1)
	is.Equal(*mock.SetDeviceStatusCalls()[0].BatteryPercent, 87)
	is.Equal(len(mock.AddStatusLogCalls()), 1)
	is.Equal(mock.SetGatewayLastConnectedCalls()[0].GatewayID, int64(1))
	is.Equal(mock.SetGatewayLastConnectedCalls()[0].T, ts)
}

func TestStatusMessageWithoutBatterySkipsLog(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	err := svc.HandleStatusMessage(ctx, types.StatusMessage{SerialNumber: "SSD-0001", Timestamp: time.Now()})
	is.NoErr(err)

	is.Equal(len(mock.SetDeviceStatusCalls()), 1)
	is.Equal(len(mock.AddStatusLogCalls()), 0)
}

func TestSlotReadingOnBoundPairingSetsStock(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	positionID := int64(3)
	nfcTag := "04:A2:19:6F"
	mock.GetPairingBySlotFunc = func(ctx context.Context, deviceID int64, slotNumber int) (types.Pairing, error) {
		return types.Pairing{PairingCode: "c0ffee", DeviceID: deviceID, SlotNumber: slotNumber, ShelfPositionID: &positionID, NfcTag: &nfcTag}, nil
	}

	err := svc.HandleStatusMessage(ctx, types.StatusMessage{
		SerialNumber: "SSD-0001",
		Slots:        []types.SlotReading{{SlotNumber: 1, StockPercent: 55}},
		Timestamp:    time.Now(),
	})
	is.NoErr(err)

	call := mock.SetPositionStockCalls()[0]
	is.Equal(call.PositionID, int64(3))
	is.Equal(call.StockPercent, 55)
}

func TestSlotReadingOnUnboundPairingIsIgnored(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	mock.GetPairingBySlotFunc = func(ctx context.Context, deviceID int64, slotNumber int) (types.Pairing, error) {
		return types.Pairing{PairingCode: "c0ffee", DeviceID: deviceID, SlotNumber: slotNumber}, nil
	}

	err := svc.HandleStatusMessage(ctx, types.StatusMessage{
		SerialNumber: "SSD-0001",
		Slots:        []types.SlotReading{{SlotNumber: 1, StockPercent: 55}},
		Timestamp:    time.Now(),
	})
	is.NoErr(err)

	is.Equal(len(mock.SetPositionStockCalls()), 0)
}

func TestCrossingThresholdPublishesLowStockEvent(t *testing.T) {
	is, ctx, svc, mock, msgCtx := testSetup(t)

	positionID := int64(3)
	productID := int64(7)
	nfcTag := "04:A2:19:6F"
	stock := 50
	mock.GetPairingBySlotFunc = func(ctx context.Context, deviceID int64, slotNumber int) (types.Pairing, error) {
		return types.Pairing{PairingCode: "c0ffee", DeviceID: deviceID, SlotNumber: slotNumber, ShelfPositionID: &positionID, NfcTag: &nfcTag}, nil
	}
	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		return types.ShelfPosition{
			ID: 3, ShelfID: 1,
			ProductID:                &productID,
			CurrentStockPercent:      &stock,
			LowStockThresholdPercent: 20,
		}, nil
	}

	err := svc.HandleStatusMessage(ctx, types.StatusMessage{
		SerialNumber: "SSD-0001",
		Slots:        []types.SlotReading{{SlotNumber: 1, StockPercent: 15}},
		Timestamp:    time.Now(),
	})
	is.NoErr(err)

	is.Equal(len(msgCtx.PublishOnTopicCalls()), 1)

	published := msgCtx.PublishOnTopicCalls()[0].Message
	is.Equal(published.TopicName(), "shelfstock.lowStockFlagged")

	var event LowStockFlagged
	is.NoErr(json.Unmarshal(published.Body(), &event))
	is.Equal(event.ShelfPositionID, int64(3))
	is.Equal(event.CurrentStockPercent, 15)
	is.Equal(event.ThresholdPercent, 20)
}

func TestAlreadyLowPositionDoesNotRepublish(t *testing.T) {
	is, ctx, svc, mock, msgCtx := testSetup(t)

	positionID := int64(3)
	productID := int64(7)
	nfcTag := "04:A2:19:6F"
	stock := 10
	mock.GetPairingBySlotFunc = func(ctx context.Context, deviceID int64, slotNumber int) (types.Pairing, error) {
		return types.Pairing{PairingCode: "c0ffee", DeviceID: deviceID, SlotNumber: slotNumber, ShelfPositionID: &positionID, NfcTag: &nfcTag}, nil
	}
	mock.GetPositionFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
		return types.ShelfPosition{
			ID: 3, ShelfID: 1,
			ProductID:                &productID,
			CurrentStockPercent:      &stock,
			LowStockThresholdPercent: 20,
		}, nil
	}

	err := svc.HandleStatusMessage(ctx, types.StatusMessage{
		SerialNumber: "SSD-0001",
		Slots:        []types.SlotReading{{SlotNumber: 1, StockPercent: 5}},
		Timestamp:    time.Now(),
	})
	is.NoErr(err)

	is.Equal(len(mock.SetPositionStockCalls()), 1)
	is.Equal(len(msgCtx.PublishOnTopicCalls()), 0)
}

func TestStatusMessageFromUnknownDevice(t *testing.T) {
	is, ctx, svc, mock, _ := testSetup(t)

	mock.GetSensorDeviceFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfSensorDevice, error) {
		return types.ShelfSensorDevice{}, storage.ErrNoRows
	}

	err := svc.HandleStatusMessage(ctx, types.StatusMessage{SerialNumber: "nope", Timestamp: time.Now()})
	is.True(errors.Is(err, ErrDeviceNotFound))
}

func testSetup(t *testing.T) (*is.I, context.Context, DeviceManagement, *DeviceStorageMock, *messaging.MsgContextMock) {
	is := is.New(t)

	mock := &DeviceStorageMock{
		AddGatewayDeviceFunc: func(ctx context.Context, g types.GatewayDevice) (types.GatewayDevice, error) {
			g.ID = 1
			return g, nil
		},
		GetGatewayDeviceFunc: func(ctx context.Context, id int64) (types.GatewayDevice, error) {
			return types.GatewayDevice{ID: id, SerialNumber: "GW-0001"}, nil
		},
		QueryGatewayDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.GatewayDevice], error) {
			return types.Collection[types.GatewayDevice]{}, nil
		},
		UpdateGatewayDeviceFunc:     func(ctx context.Context, g types.GatewayDevice) error { return nil },
		SetGatewayLastConnectedFunc: func(ctx context.Context, gatewayID int64, t time.Time) error { return nil },
		DeleteGatewayDeviceFunc:     func(ctx context.Context, id int64) error { return nil },
		AddSensorDeviceFunc: func(ctx context.Context, d types.ShelfSensorDevice, pairingCodes []string) (types.ShelfSensorDevice, error) {
			d.ID = 2
			return d, nil
		},
		GetSensorDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfSensorDevice, error) {
			return types.ShelfSensorDevice{ID: 2, GatewayID: 1, SerialNumber: "SSD-0001", NumberOfSlots: 4}, nil
		},
		QuerySensorDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ShelfSensorDevice], error) {
			return types.Collection[types.ShelfSensorDevice]{}, nil
		},
		GetPairingFunc: func(ctx context.Context, pairingCode string) (types.Pairing, error) {
			return types.Pairing{PairingCode: pairingCode, DeviceID: 2, SlotNumber: 1}, nil
		},
		GetPairingBySlotFunc: func(ctx context.Context, deviceID int64, slotNumber int) (types.Pairing, error) {
			return types.Pairing{}, storage.ErrNoRows
		},
		SetPairingNfcTagFunc:   func(ctx context.Context, pairingCode string, nfcTag *string) error { return nil },
		SetPairingPositionFunc: func(ctx context.Context, pairingCode string, positionID *int64) error { return nil },
		SetDeviceStatusFunc: func(ctx context.Context, deviceID int64, batteryPercent *int, reportedAt time.Time) error {
			return nil
		},
		AddStatusLogFunc: func(ctx context.Context, deviceID int64, batteryPercent int, t time.Time) error { return nil },
		GetDeviceLogsFunc: func(ctx context.Context, deviceID int64, conditions ...storage.ConditionFunc) (types.Collection[types.StatusLog], error) {
			return types.Collection[types.StatusLog]{}, nil
		},
		GetPositionFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error) {
			return types.ShelfPosition{ID: 3, ShelfID: 1, LowStockThresholdPercent: 20}, nil
		},
		SetPositionStockFunc: func(ctx context.Context, positionID int64, stockPercent int) error { return nil },
	}

	msgCtx := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	return is, context.Background(), New(mock, msgCtx), mock, msgCtx
}
