package devicemanagement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"

	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

var ErrGatewayNotFound = fmt.Errorf("gateway device not found")
var ErrDeviceNotFound = fmt.Errorf("shelf sensor device not found")
var ErrPairingNotFound = fmt.Errorf("pairing not found")
var ErrSerialTaken = fmt.Errorf("serial number already registered")
var ErrNoSlots = fmt.Errorf("device must have at least one slot")
var ErrPositionUnknown = fmt.Errorf("shelf position does not exist")

//go:generate moq -rm -out devicestorage_mock.go . DeviceStorage
type DeviceStorage interface {
	AddGatewayDevice(ctx context.Context, g types.GatewayDevice) (types.GatewayDevice, error)
	GetGatewayDevice(ctx context.Context, id int64) (types.GatewayDevice, error)
	QueryGatewayDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.GatewayDevice], error)
	UpdateGatewayDevice(ctx context.Context, g types.GatewayDevice) error
	SetGatewayLastConnected(ctx context.Context, gatewayID int64, t time.Time) error
	DeleteGatewayDevice(ctx context.Context, id int64) error

	AddSensorDevice(ctx context.Context, d types.ShelfSensorDevice, pairingCodes []string) (types.ShelfSensorDevice, error)
	GetSensorDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfSensorDevice, error)
	QuerySensorDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ShelfSensorDevice], error)

	GetPairing(ctx context.Context, pairingCode string) (types.Pairing, error)
	GetPairingBySlot(ctx context.Context, deviceID int64, slotNumber int) (types.Pairing, error)
	SetPairingNfcTag(ctx context.Context, pairingCode string, nfcTag *string) error
	SetPairingPosition(ctx context.Context, pairingCode string, positionID *int64) error

	SetDeviceStatus(ctx context.Context, deviceID int64, batteryPercent *int, reportedAt time.Time) error
	AddStatusLog(ctx context.Context, deviceID int64, batteryPercent int, t time.Time) error
	GetDeviceLogs(ctx context.Context, deviceID int64, conditions ...storage.ConditionFunc) (types.Collection[types.StatusLog], error)

	GetPosition(ctx context.Context, conditions ...storage.ConditionFunc) (types.ShelfPosition, error)
	SetPositionStock(ctx context.Context, positionID int64, stockPercent int) error
}

type DeviceManagement interface {
	CreateGatewayDevice(ctx context.Context, g types.GatewayDevice) (types.GatewayDevice, error)
	GetGatewayDevices(ctx context.Context, search string, offset, limit int) (types.Collection[types.GatewayDevice], error)
	GetGatewayDevice(ctx context.Context, gatewayID int64) (types.GatewayDevice, error)
	UpdateGatewayDevice(ctx context.Context, g types.GatewayDevice) error
	DeleteGatewayDevice(ctx context.Context, gatewayID int64) error

	RegisterSensorDevice(ctx context.Context, d types.ShelfSensorDevice) (types.ShelfSensorDevice, error)
	GetSensorDevice(ctx context.Context, deviceID int64) (types.ShelfSensorDevice, error)
	GetSensorDevices(ctx context.Context, search string, offset, limit int) (types.Collection[types.ShelfSensorDevice], error)
	GetDeviceLogs(ctx context.Context, deviceID int64, timeMin, timeMax *time.Time, batteryMin, batteryMax *int, offset, limit int) (types.Collection[types.StatusLog], error)

	AssignNfcTag(ctx context.Context, pairingCode string, nfcTag *string) (types.ShelfSensorDevice, error)
	BindPairing(ctx context.Context, pairingCode string, positionID *int64) (types.ShelfSensorDevice, error)

	HandleStatusMessage(ctx context.Context, msg types.StatusMessage) error
	RegisterTopicMessageHandler(ctx context.Context) error
}

// FlattenSensorDevices collapses gateway fleets into a single device list for
// cross-gateway views. Order follows the gateway order.
func FlattenSensorDevices(gateways []types.GatewayDevice) []types.ShelfSensorDevice {
	devices := make([]types.ShelfSensorDevice, 0)
	for _, g := range gateways {
		devices = append(devices, g.Devices...)
	}
	return devices
}

type service struct {
	storage   DeviceStorage
	messenger messaging.MsgContext
}

func New(storage DeviceStorage, messenger messaging.MsgContext) DeviceManagement {
	return &service{
		storage:   storage,
		messenger: messenger,
	}
}

func (s *service) RegisterTopicMessageHandler(ctx context.Context) error {
	return s.messenger.RegisterTopicMessageHandler("shelf-sensor-status", NewSensorStatusHandler(s))
}

func (s *service) CreateGatewayDevice(ctx context.Context, g types.GatewayDevice) (types.GatewayDevice, error) {
	created, err := s.storage.AddGatewayDevice(ctx, g)
	if errors.Is(err, storage.ErrAlreadyExist) {
		return types.GatewayDevice{}, ErrSerialTaken
	}

	return created, err
}

// GetGatewayDevices returns gateways with their sensor fleets embedded.
func (s *service) GetGatewayDevices(ctx context.Context, search string, offset, limit int) (types.Collection[types.GatewayDevice], error) {
	conditions := []storage.ConditionFunc{}
	if search != "" {
		conditions = append(conditions, storage.WithSearch(search))
	}
	conditions = append(conditions, storage.WithOffset(offset), storage.WithLimit(limit))

	gateways, err := s.storage.QueryGatewayDevices(ctx, conditions...)
	if err != nil {
		return types.Collection[types.GatewayDevice]{}, err
	}

	for i := range gateways.Data {
		devices, err := s.storage.QuerySensorDevices(ctx, storage.WithGatewayID(gateways.Data[i].ID))
		if err != nil {
			return types.Collection[types.GatewayDevice]{}, err
		}
		gateways.Data[i].Devices = devices.Data
	}

	return gateways, nil
}

func (s *service) GetGatewayDevice(ctx context.Context, gatewayID int64) (types.GatewayDevice, error) {
	g, err := s.storage.GetGatewayDevice(ctx, gatewayID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.GatewayDevice{}, ErrGatewayNotFound
		}
		return types.GatewayDevice{}, err
	}

	devices, err := s.storage.QuerySensorDevices(ctx, storage.WithGatewayID(gatewayID))
	if err != nil {
		return types.GatewayDevice{}, err
	}
	g.Devices = devices.Data

	return g, nil
}

func (s *service) UpdateGatewayDevice(ctx context.Context, g types.GatewayDevice) error {
	err := s.storage.UpdateGatewayDevice(ctx, g)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrGatewayNotFound
	}
	if errors.Is(err, storage.ErrAlreadyExist) {
		return ErrSerialTaken
	}

	return err
}

func (s *service) DeleteGatewayDevice(ctx context.Context, gatewayID int64) error {
	err := s.storage.DeleteGatewayDevice(ctx, gatewayID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrGatewayNotFound
	}

	return err
}

// RegisterSensorDevice stores the device and mints one immutable pairing code
// per slot. Codes are uuids; they identify the pairing for its whole life and
// are never reused.
func (s *service) RegisterSensorDevice(ctx context.Context, d types.ShelfSensorDevice) (types.ShelfSensorDevice, error) {
	if d.NumberOfSlots < 1 {
		return types.ShelfSensorDevice{}, ErrNoSlots
	}

	_, err := s.storage.GetGatewayDevice(ctx, d.GatewayID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfSensorDevice{}, ErrGatewayNotFound
		}
		return types.ShelfSensorDevice{}, err
	}

	codes := make([]string, d.NumberOfSlots)
	for i := range codes {
		codes[i] = uuid.NewString()
	}

	created, err := s.storage.AddSensorDevice(ctx, d, codes)
	if errors.Is(err, storage.ErrAlreadyExist) {
		return types.ShelfSensorDevice{}, ErrSerialTaken
	}

	return created, err
}

func (s *service) GetSensorDevice(ctx context.Context, deviceID int64) (types.ShelfSensorDevice, error) {
	d, err := s.storage.GetSensorDevice(ctx, storage.WithDeviceID(deviceID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfSensorDevice{}, ErrDeviceNotFound
		}
		return types.ShelfSensorDevice{}, err
	}

	return d, nil
}

func (s *service) GetSensorDevices(ctx context.Context, search string, offset, limit int) (types.Collection[types.ShelfSensorDevice], error) {
	conditions := []storage.ConditionFunc{}
	if search != "" {
		conditions = append(conditions, storage.WithSearch(search))
	}
	conditions = append(conditions, storage.WithOffset(offset), storage.WithLimit(limit))

	return s.storage.QuerySensorDevices(ctx, conditions...)
}

func (s *service) GetDeviceLogs(ctx context.Context, deviceID int64, timeMin, timeMax *time.Time, batteryMin, batteryMax *int, offset, limit int) (types.Collection[types.StatusLog], error) {
	_, err := s.GetSensorDevice(ctx, deviceID)
	if err != nil {
		return types.Collection[types.StatusLog]{}, err
	}

	return s.storage.GetDeviceLogs(ctx, deviceID,
		storage.WithTimestampBetween(timeMin, timeMax),
		storage.WithBatteryBetween(batteryMin, batteryMax),
		storage.WithOffset(offset), storage.WithLimit(limit))
}

// AssignNfcTag writes the physical tag onto the pairing, or clears it when
// nfcTag is nil, and returns the full device detail so the caller sees the
// updated pairing list.
func (s *service) AssignNfcTag(ctx context.Context, pairingCode string, nfcTag *string) (types.ShelfSensorDevice, error) {
	p, err := s.storage.GetPairing(ctx, pairingCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfSensorDevice{}, ErrPairingNotFound
		}
		return types.ShelfSensorDevice{}, err
	}

	err = s.storage.SetPairingNfcTag(ctx, pairingCode, nfcTag)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfSensorDevice{}, ErrPairingNotFound
		}
		return types.ShelfSensorDevice{}, err
	}

	return s.GetSensorDevice(ctx, p.DeviceID)
}

// BindPairing points a pairing at a shelf position, or clears the binding
// when positionID is nil.
func (s *service) BindPairing(ctx context.Context, pairingCode string, positionID *int64) (types.ShelfSensorDevice, error) {
	p, err := s.storage.GetPairing(ctx, pairingCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfSensorDevice{}, ErrPairingNotFound
		}
		return types.ShelfSensorDevice{}, err
	}

	if positionID != nil {
		_, err = s.storage.GetPosition(ctx, storage.WithPositionID(*positionID))
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return types.ShelfSensorDevice{}, fmt.Errorf("%w: %d", ErrPositionUnknown, *positionID)
			}
			return types.ShelfSensorDevice{}, err
		}
	}

	err = s.storage.SetPairingPosition(ctx, pairingCode, positionID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ShelfSensorDevice{}, ErrPairingNotFound
		}
		return types.ShelfSensorDevice{}, err
	}

	return s.GetSensorDevice(ctx, p.DeviceID)
}

// HandleStatusMessage applies one device check-in: it stamps the device and
// its gateway, appends to the status log and pushes slot readings through
// bound pairings onto shelf positions. A position crossing its low stock
// threshold raises an event.
func (s *service) HandleStatusMessage(ctx context.Context, msg types.StatusMessage) error {
	log := logging.GetFromContext(ctx)

	device, err := s.storage.GetSensorDevice(ctx, storage.WithSerialNumber(msg.SerialNumber))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrDeviceNotFound
		}
		return err
	}

	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	err = s.storage.SetDeviceStatus(ctx, device.ID, msg.BatteryPercent, ts)
	if err != nil {
		return err
	}

	if msg.BatteryPercent != nil {
		err = s.storage.AddStatusLog(ctx, device.ID, *msg.BatteryPercent, ts)
		if err != nil {
			return err
		}
	}

	err = s.storage.SetGatewayLastConnected(ctx, device.GatewayID, ts)
	if err != nil {
		return err
	}

	for _, reading := range msg.Slots {
		pairing, err := s.storage.GetPairingBySlot(ctx, device.ID, reading.SlotNumber)
		if err != nil {
			log.Warn("reading from unknown slot", "slot_number", reading.SlotNumber, "err", err.Error())
			continue
		}

		if !pairing.Bound() {
			continue
		}

		err = s.applyStockReading(ctx, *pairing.ShelfPositionID, reading.StockPercent, ts)
		if err != nil {
			log.Error("could not apply stock reading", "shelf_position_id", *pairing.ShelfPositionID, "err", err.Error())
		}
	}

	return nil
}

func (s *service) applyStockReading(ctx context.Context, positionID int64, stockPercent int, ts time.Time) error {
	position, err := s.storage.GetPosition(ctx, storage.WithPositionID(positionID))
	if err != nil {
		return err
	}

	wasLow := position.LowStock()

	err = s.storage.SetPositionStock(ctx, positionID, stockPercent)
	if err != nil {
		return err
	}

	position.CurrentStockPercent = &stockPercent

	if !wasLow && position.LowStock() {
		return s.messenger.PublishOnTopic(ctx, &LowStockFlagged{
			ShelfPositionID:     position.ID,
			ShelfID:             position.ShelfID,
			ProductID:           position.ProductID,
			CurrentStockPercent: stockPercent,
			ThresholdPercent:    position.LowStockThresholdPercent,
			Timestamp:           ts,
		})
	}

	return nil
}
