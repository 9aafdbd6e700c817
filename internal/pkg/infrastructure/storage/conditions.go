package storage

import (
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	OrganizationID *int64
	Unassigned     bool

	ShelfID    *int64
	PositionID *int64
	ProductID  *int64
	GatewayID  *int64
	DeviceID   *int64

	NfcTag       string
	SerialNumber string
	Search       string

	TimestampMin *time.Time
	TimestampMax *time.Time
	BatteryMin   *int
	BatteryMax   *int

	IncludeDeleted bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.OrganizationID != nil {
		args["organization_id"] = *c.OrganizationID
	}
	if c.ShelfID != nil {
		args["shelf_id"] = *c.ShelfID
	}
	if c.PositionID != nil {
		args["position_id"] = *c.PositionID
	}
	if c.ProductID != nil {
		args["product_id"] = *c.ProductID
	}
	if c.GatewayID != nil {
		args["gateway_id"] = *c.GatewayID
	}
	if c.DeviceID != nil {
		args["device_id"] = *c.DeviceID
	}
	if c.NfcTag != "" {
		args["nfc_tag"] = c.NfcTag
	}
	if c.SerialNumber != "" {
		args["serial_number"] = c.SerialNumber
	}
	if c.Search != "" {
		args["search"] = "%" + c.Search + "%"
	}
	if c.TimestampMin != nil {
		args["timestamp_min"] = c.TimestampMin.UTC()
	}
	if c.TimestampMax != nil {
		args["timestamp_max"] = c.TimestampMax.UTC()
	}
	if c.BatteryMin != nil {
		args["battery_percent_min"] = *c.BatteryMin
	}
	if c.BatteryMax != nil {
		args["battery_percent_max"] = *c.BatteryMax
	}
	if c.offset != nil {
		args["offset"] = *c.offset
	}
	if c.limit != nil {
		args["limit"] = *c.limit
	}

	return args
}

func (c Condition) SortBy(def string) string {
	if c.sortBy == "" {
		return def
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""
	if c.offset != nil {
		offsetLimit += "OFFSET @offset "
	}
	if c.limit != nil {
		offsetLimit += "LIMIT @limit "
	}
	return offsetLimit
}

// orgClause is the scope slice: an explicit organization, only unassigned
// entities, or no restriction. The two set states are mutually exclusive;
// unassigned takes precedence.
func (c Condition) orgClause() string {
	if c.Unassigned {
		return "organization_id IS NULL"
	}
	if c.OrganizationID != nil {
		return "organization_id = @organization_id"
	}
	return ""
}

var searchRe = regexp.MustCompile(`[^a-zA-ZåäöÅÄÖ0-9 _,;().-]+|[%]`)

func WithSearch(s string) ConditionFunc {
	return func(c *Condition) *Condition {
		s = searchRe.ReplaceAllString(s, "")
		c.Search = strings.TrimSpace(s)
		return c
	}
}

func WithOrganization(id int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.OrganizationID = &id
		return c
	}
}

func WithUnassigned() ConditionFunc {
	return func(c *Condition) *Condition {
		c.Unassigned = true
		return c
	}
}

func WithShelfID(id int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ShelfID = &id
		return c
	}
}

func WithPositionID(id int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.PositionID = &id
		return c
	}
}

func WithProductID(id int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ProductID = &id
		return c
	}
}

func WithGatewayID(id int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.GatewayID = &id
		return c
	}
}

func WithDeviceID(id int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = &id
		return c
	}
}

func WithNfcTag(tag string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.NfcTag = tag
		return c
	}
}

func WithSerialNumber(serial string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SerialNumber = serial
		return c
	}
}

func WithTimestampBetween(min, max *time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TimestampMin = min
		c.TimestampMax = max
		return c
	}
}

func WithBatteryBetween(min, max *int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.BatteryMin = min
		c.BatteryMax = max
		return c
	}
}

func WithDeleted() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeDeleted = true
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func newCondition(conditions ...ConditionFunc) *Condition {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}
	return condition
}
