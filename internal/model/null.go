package model

import (
	"encoding/json"
	"time"
)

// NullFloat is a float64 that may be unavailable. Invalid values come from
// unparsable source tokens or non-finite arithmetic and serialize as JSON null.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float wraps a plain float64 as a valid NullFloat.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullFloat{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Float64); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// NullTime is a timestamp that may be unavailable.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// Timestamp wraps a time.Time as a valid NullTime.
func Timestamp(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

func (n NullTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time)
}

func (n *NullTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullTime{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Time); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
