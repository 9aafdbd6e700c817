package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func (s *Storage) AddGatewayDevice(ctx context.Context, g types.GatewayDevice) (types.GatewayDevice, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO gateway_devices (serial_number, last_connected)
		VALUES (@serial_number, @last_connected)
		RETURNING gateway_id
	`, pgx.NamedArgs{
		"serial_number":  g.SerialNumber,
		"last_connected": g.LastConnected,
	}).Scan(&g.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return types.GatewayDevice{}, ErrAlreadyExist
		}
		return types.GatewayDevice{}, err
	}

	return g, nil
}

func (s *Storage) GetGatewayDevice(ctx context.Context, id int64) (types.GatewayDevice, error) {
	var g types.GatewayDevice

	err := s.pool.QueryRow(ctx, `
		SELECT gateway_id, serial_number, last_connected
		FROM gateway_devices
		WHERE gateway_id = @gateway_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"gateway_id": id,
	}).Scan(&g.ID, &g.SerialNumber, &g.LastConnected)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.GatewayDevice{}, ErrNoRows
		}
		return types.GatewayDevice{}, err
	}

	return g, nil
}

func (s *Storage) QueryGatewayDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.GatewayDevice], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{"deleted = FALSE"}
	if condition.Search != "" {
		where = append(where, "serial_number ILIKE @search")
	}
	if condition.SerialNumber != "" {
		where = append(where, "serial_number = @serial_number")
	}

	query := `
		SELECT gateway_id, serial_number, last_connected,
			count(*) OVER () AS filtered,
			(SELECT count(*) FROM gateway_devices WHERE NOT deleted) AS total
		FROM gateway_devices
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY ` + condition.SortBy("serial_number") + ` ` + condition.SortOrder() + `
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.GatewayDevice]{}, err
	}

	var g types.GatewayDevice
	var filtered, total int64

	gateways := make([]types.GatewayDevice, 0)

	_, err = pgx.ForEachRow(rows, []any{&g.ID, &g.SerialNumber, &g.LastConnected, &filtered, &total}, func() error {
		gateways = append(gateways, g)
		return nil
	})
	if err != nil {
		return types.Collection[types.GatewayDevice]{}, err
	}

	return types.Collection[types.GatewayDevice]{
		Data:          gateways,
		Count:         uint64(len(gateways)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(total),
		FilteredCount: uint64(filtered),
	}, nil
}

func (s *Storage) UpdateGatewayDevice(ctx context.Context, g types.GatewayDevice) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE gateway_devices
		SET serial_number = @serial_number, modified_on = CURRENT_TIMESTAMP
		WHERE gateway_id = @gateway_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"gateway_id":    g.ID,
		"serial_number": g.SerialNumber,
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrAlreadyExist
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetGatewayLastConnected(ctx context.Context, gatewayID int64, t time.Time) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE gateway_devices
		SET last_connected = @last_connected, modified_on = CURRENT_TIMESTAMP
		WHERE gateway_id = @gateway_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"gateway_id":     gatewayID,
		"last_connected": t.UTC(),
	})

	return err
}

// DeleteGatewayDevice removes the gateway's fleet with it; pairings and
// status logs go via the cascade on shelf_sensor_devices.
func (s *Storage) DeleteGatewayDevice(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM shelf_sensor_devices
		WHERE gateway_id = @gateway_id
	`, pgx.NamedArgs{
		"gateway_id": id,
	})
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE gateway_devices
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE gateway_id = @gateway_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"gateway_id": id,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// AddSensorDevice registers a shelf sensor device and one pairing per slot.
// The pairing codes are minted by the caller, one per slot, slot numbers
// starting at 1.
func (s *Storage) AddSensorDevice(ctx context.Context, d types.ShelfSensorDevice, pairingCodes []string) (types.ShelfSensorDevice, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO shelf_sensor_devices (gateway_id, serial_number, number_of_slots)
		VALUES (@gateway_id, @serial_number, @number_of_slots)
		RETURNING device_id
	`, pgx.NamedArgs{
		"gateway_id":      d.GatewayID,
		"serial_number":   d.SerialNumber,
		"number_of_slots": d.NumberOfSlots,
	}).Scan(&d.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return types.ShelfSensorDevice{}, ErrAlreadyExist
		}
		return types.ShelfSensorDevice{}, err
	}

	for i, code := range pairingCodes {
		_, err = s.pool.Exec(ctx, `
			INSERT INTO pairings (pairing_code, device_id, slot_number)
			VALUES (@pairing_code, @device_id, @slot_number)
		`, pgx.NamedArgs{
			"pairing_code": code,
			"device_id":    d.ID,
			"slot_number":  i + 1,
		})
		if err != nil {
			return types.ShelfSensorDevice{}, err
		}

		d.Pairings = append(d.Pairings, types.Pairing{
			PairingCode: code,
			DeviceID:    d.ID,
			SlotNumber:  i + 1,
		})
	}

	return d, nil
}

func (s *Storage) GetSensorDevice(ctx context.Context, conditions ...ConditionFunc) (types.ShelfSensorDevice, error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{}
	if condition.DeviceID != nil {
		where = append(where, "device_id = @device_id")
	}
	if condition.SerialNumber != "" {
		where = append(where, "serial_number = @serial_number")
	}
	if len(where) == 0 {
		return types.ShelfSensorDevice{}, ErrNoRows
	}

	var d types.ShelfSensorDevice

	err := s.pool.QueryRow(ctx, `
		SELECT device_id, gateway_id, serial_number, number_of_slots, last_reported, current_battery_percent
		FROM shelf_sensor_devices
		WHERE `+strings.Join(where, " AND "), args).Scan(&d.ID, &d.GatewayID, &d.SerialNumber, &d.NumberOfSlots, &d.LastReported, &d.CurrentBatteryPercent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ShelfSensorDevice{}, ErrNoRows
		}
		return types.ShelfSensorDevice{}, err
	}

	d.Pairings, err = s.getPairings(ctx, d.ID)
	if err != nil {
		return types.ShelfSensorDevice{}, err
	}

	return d, nil
}

func (s *Storage) QuerySensorDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ShelfSensorDevice], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()

	where := []string{}
	if condition.GatewayID != nil {
		where = append(where, "gateway_id = @gateway_id")
	}
	if condition.Search != "" {
		where = append(where, "serial_number ILIKE @search")
	}
	if len(where) == 0 {
		where = append(where, "TRUE")
	}

	query := `
		SELECT device_id, gateway_id, serial_number, number_of_slots, last_reported, current_battery_percent,
			count(*) OVER () AS filtered
		FROM shelf_sensor_devices
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY serial_number ASC
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.ShelfSensorDevice]{}, err
	}

	var d types.ShelfSensorDevice
	var filtered int64

	devices := make([]types.ShelfSensorDevice, 0)

	_, err = pgx.ForEachRow(rows, []any{&d.ID, &d.GatewayID, &d.SerialNumber, &d.NumberOfSlots, &d.LastReported, &d.CurrentBatteryPercent, &filtered}, func() error {
		devices = append(devices, d)
		return nil
	})
	if err != nil {
		return types.Collection[types.ShelfSensorDevice]{}, err
	}

	for i := range devices {
		devices[i].Pairings, err = s.getPairings(ctx, devices[i].ID)
		if err != nil {
			return types.Collection[types.ShelfSensorDevice]{}, err
		}
	}

	return types.Collection[types.ShelfSensorDevice]{
		Data:          devices,
		Count:         uint64(len(devices)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(filtered),
		FilteredCount: uint64(filtered),
	}, nil
}

func (s *Storage) getPairings(ctx context.Context, deviceID int64) ([]types.Pairing, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT pairing_code, device_id, slot_number, shelf_position_id, nfc_tag
		FROM pairings
		WHERE device_id = @device_id
		ORDER BY slot_number ASC
	`, pgx.NamedArgs{
		"device_id": deviceID,
	})
	if err != nil {
		return nil, err
	}

	var p types.Pairing

	pairings := make([]types.Pairing, 0)

	_, err = pgx.ForEachRow(rows, []any{&p.PairingCode, &p.DeviceID, &p.SlotNumber, &p.ShelfPositionID, &p.NfcTag}, func() error {
		pairings = append(pairings, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pairings, nil
}

func (s *Storage) GetPairing(ctx context.Context, pairingCode string) (types.Pairing, error) {
	var p types.Pairing

	err := s.pool.QueryRow(ctx, `
		SELECT pairing_code, device_id, slot_number, shelf_position_id, nfc_tag
		FROM pairings
		WHERE pairing_code = @pairing_code
	`, pgx.NamedArgs{
		"pairing_code": pairingCode,
	}).Scan(&p.PairingCode, &p.DeviceID, &p.SlotNumber, &p.ShelfPositionID, &p.NfcTag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Pairing{}, ErrNoRows
		}
		return types.Pairing{}, err
	}

	return p, nil
}

func (s *Storage) GetPairingBySlot(ctx context.Context, deviceID int64, slotNumber int) (types.Pairing, error) {
	var p types.Pairing

	err := s.pool.QueryRow(ctx, `
		SELECT pairing_code, device_id, slot_number, shelf_position_id, nfc_tag
		FROM pairings
		WHERE device_id = @device_id AND slot_number = @slot_number
	`, pgx.NamedArgs{
		"device_id":   deviceID,
		"slot_number": slotNumber,
	}).Scan(&p.PairingCode, &p.DeviceID, &p.SlotNumber, &p.ShelfPositionID, &p.NfcTag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Pairing{}, ErrNoRows
		}
		return types.Pairing{}, err
	}

	return p, nil
}

// SetPairingNfcTag binds a physical tag to a slot, or clears the binding when
// nfcTag is nil. The pairing code itself is immutable and never reused across
// devices.
func (s *Storage) SetPairingNfcTag(ctx context.Context, pairingCode string, nfcTag *string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE pairings
		SET nfc_tag = @nfc_tag, modified_on = CURRENT_TIMESTAMP
		WHERE pairing_code = @pairing_code
	`, pgx.NamedArgs{
		"pairing_code": pairingCode,
		"nfc_tag":      nfcTag,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetPairingPosition(ctx context.Context, pairingCode string, positionID *int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE pairings
		SET shelf_position_id = @shelf_position_id, modified_on = CURRENT_TIMESTAMP
		WHERE pairing_code = @pairing_code
	`, pgx.NamedArgs{
		"pairing_code":      pairingCode,
		"shelf_position_id": positionID,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// SetDeviceStatus records a check-in: battery level and last-reported time.
func (s *Storage) SetDeviceStatus(ctx context.Context, deviceID int64, batteryPercent *int, reportedAt time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE shelf_sensor_devices
		SET current_battery_percent = COALESCE(@current_battery_percent, current_battery_percent),
			last_reported = @last_reported,
			modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id
	`, pgx.NamedArgs{
		"device_id":               deviceID,
		"current_battery_percent": batteryPercent,
		"last_reported":           reportedAt.UTC(),
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) AddStatusLog(ctx context.Context, deviceID int64, batteryPercent int, t time.Time) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO status_logs (time, device_id, battery_percent)
		VALUES (@time, @device_id, @battery_percent)
		ON CONFLICT DO NOTHING
	`, pgx.NamedArgs{
		"time":            t.UTC(),
		"device_id":       deviceID,
		"battery_percent": batteryPercent,
	})

	return err
}

// GetDeviceLogs returns the append-only status history, most recent first,
// optionally filtered by time and battery ranges.
func (s *Storage) GetDeviceLogs(ctx context.Context, deviceID int64, conditions ...ConditionFunc) (types.Collection[types.StatusLog], error) {
	condition := newCondition(conditions...)
	args := condition.NamedArgs()
	args["device_id"] = deviceID

	where := []string{"device_id = @device_id"}
	if condition.TimestampMin != nil {
		where = append(where, "time >= @timestamp_min")
	}
	if condition.TimestampMax != nil {
		where = append(where, "time <= @timestamp_max")
	}
	if condition.BatteryMin != nil {
		where = append(where, "battery_percent >= @battery_percent_min")
	}
	if condition.BatteryMax != nil {
		where = append(where, "battery_percent <= @battery_percent_max")
	}

	query := `
		SELECT time, battery_percent,
			count(*) OVER () AS filtered,
			(SELECT count(*) FROM status_logs WHERE device_id = @device_id) AS total
		FROM status_logs
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY time DESC
		` + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.StatusLog]{}, err
	}

	var entry types.StatusLog
	var filtered, total int64

	logs := make([]types.StatusLog, 0)

	_, err = pgx.ForEachRow(rows, []any{&entry.Timestamp, &entry.BatteryPercent, &filtered, &total}, func() error {
		logs = append(logs, entry)
		return nil
	})
	if err != nil {
		return types.Collection[types.StatusLog]{}, err
	}

	return types.Collection[types.StatusLog]{
		Data:          logs,
		Count:         uint64(len(logs)),
		Offset:        uint64(condition.Offset()),
		Limit:         uint64(condition.Limit()),
		TotalCount:    uint64(total),
		FilteredCount: uint64(filtered),
	}, nil
}
