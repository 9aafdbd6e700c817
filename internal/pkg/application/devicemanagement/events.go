package devicemanagement

import (
	"encoding/json"
	"time"
)

// LowStockFlagged is published when a status report takes a bound shelf
// position from above its threshold to at or below it.
type LowStockFlagged struct {
	ShelfPositionID     int64     `json:"shelfPositionID"`
	ShelfID             int64     `json:"shelfID"`
	ProductID           *int64    `json:"productID,omitempty"`
	CurrentStockPercent int       `json:"currentStockPercent"`
	ThresholdPercent    int       `json:"thresholdPercent"`
	Timestamp           time.Time `json:"timestamp"`
}

func (l *LowStockFlagged) ContentType() string {
	return "application/json"
}
func (l *LowStockFlagged) TopicName() string {
	return "shelfstock.lowStockFlagged"
}
func (l *LowStockFlagged) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
