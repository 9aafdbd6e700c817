package types

import (
	"time"
)

type Organization struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Shelf struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Location       *string `json:"location,omitempty"`
	OrganizationID *int64  `json:"organization_id,omitempty"`

	Positions []ShelfPosition `json:"positions,omitempty"`
}

// ShelfPosition is a single row/column slot on a shelf. Positions are unique
// by (row, column) within their shelf. The stock reading and capacity survive
// administrative edits even when no product is assigned, so that sensor
// history is not lost.
type ShelfPosition struct {
	ID      int64 `json:"id"`
	ShelfID int64 `json:"shelf_id"`
	Row     int   `json:"row"`
	Column  int   `json:"column"`

	ProductID                 *int64 `json:"product_id"`
	CurrentStockPercent       *int   `json:"current_stock_percent"`
	MaxCurrentProductCapacity *int   `json:"max_current_product_capacity"`
	LowStockThresholdPercent  int    `json:"low_stock_threshold_percent"`

	IsLowStock bool `json:"is_low_stock"`
}

// LowStock reports whether the position should be flagged: a product is
// assigned and the live reading is at or below the threshold.
func (p ShelfPosition) LowStock() bool {
	return p.ProductID != nil && p.CurrentStockPercent != nil && *p.CurrentStockPercent <= p.LowStockThresholdPercent
}

// Product prices are integer minor units of the configured currency.
type Product struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	IsDeleted      bool   `json:"is_deleted"`
}

// ProductDiscount carries exactly one of NewPrice or DiscountPercent.
// CurrentlyValid is derived at read time, never trusted from storage.
type ProductDiscount struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	NewPrice        *int64    `json:"new_price,omitempty"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	Active          bool      `json:"active"`

	CurrentlyValid bool `json:"currently_valid"`
}

type GatewayDevice struct {
	ID            int64      `json:"id"`
	SerialNumber  string     `json:"serial_number"`
	LastConnected *time.Time `json:"last_connected,omitempty"`

	Devices []ShelfSensorDevice `json:"devices,omitempty"`
}

type ShelfSensorDevice struct {
	ID                    int64      `json:"id"`
	GatewayID             int64      `json:"gateway_id"`
	SerialNumber          string     `json:"serial_number"`
	NumberOfSlots         int        `json:"number_of_slots"`
	LastReported          *time.Time `json:"last_reported,omitempty"`
	CurrentBatteryPercent *int       `json:"current_battery_percent,omitempty"`

	Pairings []Pairing `json:"pairings,omitempty"`
}

// Pairing ties one physical sensor slot to a shelf position via an NFC tag.
// The pairing code is minted at device registration and never changes.
type Pairing struct {
	PairingCode     string  `json:"pairing_code"`
	DeviceID        int64   `json:"device_id"`
	SlotNumber      int     `json:"slot_number"`
	ShelfPositionID *int64  `json:"shelf_position_id"`
	NfcTag          *string `json:"nfc_tag"`
}

// Bound reports whether the pairing resolves telemetry to a logical position.
// An unbound pairing is a valid state in its own right, not to be conflated
// with a position that has no product.
func (p Pairing) Bound() bool {
	return p.ShelfPositionID != nil && p.NfcTag != nil
}

type StatusLog struct {
	Timestamp      time.Time `json:"timestamp"`
	BatteryPercent int       `json:"battery_percent"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64

	// FilteredCount is the number of rows matching the active filter,
	// TotalCount the unfiltered table size.
	FilteredCount uint64
}

// StatusMessage is the check-in a shelf sensor device reports through the
// message broker: battery level and per-slot stock readings.
type StatusMessage struct {
	SerialNumber   string        `json:"serialNumber"`
	BatteryPercent *int          `json:"batteryPercent,omitempty"`
	Slots          []SlotReading `json:"slots,omitempty"`
	Timestamp      time.Time     `json:"timestamp"`
}

type SlotReading struct {
	SlotNumber   int `json:"slotNumber"`
	StockPercent int `json:"stockPercent"`
}
