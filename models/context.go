package models

import "time"

// ContextItem is one entry of the long-term key-value memory.
type ContextItem struct {
	Key       string    `json:"key"`
	Value     any       `json:"value"`
	Category  string    `json:"category,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
