package requests

import (
	"encoding/json"
	"strconv"
)

// Value is an integer that may be not available
// a missing Value encodes as JSON null so it never reads as zero
type Value struct {
	N  int64
	OK bool
}

// Some returns an available Value
func Some(n int64) Value { return Value{N: n, OK: true} }

// None returns the not available Value
func None() Value { return Value{} }

// Get returns the number and whether it is available
func (v Value) Get() (int64, bool) { return v.N, v.OK }

// String renders the number or "N/A"
func (v Value) String() string {
	if !v.OK {
		return "N/A"
	}
	return strconv.FormatInt(v.N, 10)
}

// MarshalJSON encodes a number or null
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.OK {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(v.N, 10)), nil
}

// UnmarshalJSON decodes a number or null
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = None()
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = Some(n)
	return nil
}
