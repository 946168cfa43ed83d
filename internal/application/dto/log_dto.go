package dto

import (
	"encoding/json"
	"time"
)

// LogEntryResponse representación HTTP de un registro de auditoría.
type LogEntryResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}
