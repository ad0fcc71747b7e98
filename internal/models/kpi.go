package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Value is a KPI value. An undefined value marks an aggregate that has no
// mathematical meaning for its input (empty average, zero denominator) and
// is encoded as JSON null.
type Value struct {
	Number  float64
	Defined bool
}

// Defined returns a defined value.
func Defined(v float64) Value {
	return Value{Number: v, Defined: true}
}

// Undefined returns the undefined sentinel.
func Undefined() Value {
	return Value{}
}

// IsUndefined reports whether v is the undefined sentinel.
func (v Value) IsUndefined() bool {
	return !v.Defined
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.Number)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Undefined()
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Defined(n)
	return nil
}

// Row is a single KPI result row.
// swagger:model Row
type Row struct {
	// Group key, null for ungrouped metrics
	// example: Dubai|2024-01
	Key *string `json:"key"`

	// Categorical part of the key
	// example: Dubai
	Dimension string `json:"dimension,omitempty"`

	// Period part of the key (YYYY-MM-DD or YYYY-MM)
	// example: 2024-01
	Period string `json:"period,omitempty"`

	// Value, null when undefined
	// example: 1.5
	Value Value `json:"value" swaggertype:"number"`

	// Data problems found in rows contributing to this group
	Warnings []string `json:"warnings,omitempty"`
}

// ResultSet is the computed result of one metric, ordered ascending by key.
// swagger:model ResultSet
type ResultSet struct {
	Metric     string    `json:"metric"`
	Rows       []Row     `json:"rows"`
	ComputedAt time.Time `json:"computed_at"`
}
