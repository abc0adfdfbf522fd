package model

import "time"

// KVEntry is one persisted key of the page state when the PostgreSQL backend
// is selected.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(255);primaryKey" json:"key"`
	Value     []byte    `gorm:"type:bytea;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string { return "kv_entries" }
