package schema

import (
	"time"
)

// APICallRecord represents the api_call_records table - an audit row per
// outbound provider call. Best effort; a failed audit write never fails
// the call itself.
type APICallRecord struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Client    string    `gorm:"column:client;not null;type:text;index"`
	Operation string    `gorm:"column:operation;not null;type:text"`
	Timestamp time.Time `gorm:"column:timestamp;not null;default:now()"`
}

// TableName specifies the table name for the APICallRecord model
func (APICallRecord) TableName() string {
	return "api_call_records"
}
