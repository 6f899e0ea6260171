package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is a free-form JSON object attached to most records. It
// serializes itself to a TEXT column.
type Metadata map[string]any

// Value implements driver.Valuer, storing the metadata as JSON text.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("error encoding metadata: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner, reading JSON text back into the map.
func (m *Metadata) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into Metadata", src)
	}

	if len(data) == 0 {
		*m = Metadata{}
		return nil
	}
	return json.Unmarshal(data, m)
}
