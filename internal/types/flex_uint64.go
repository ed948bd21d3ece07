package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexUint64 is an optional id that can be unmarshaled from a JSON number,
// a JSON string, or null.
type FlexUint64 struct {
	value uint64
	set   bool
}

// NewFlexUint64 returns a set FlexUint64.
func NewFlexUint64(v uint64) FlexUint64 {
	return FlexUint64{value: v, set: true}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = FlexUint64{}
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = NewFlexUint64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("FlexUint64: invalid uint64 string %q: %w", s, err)
		}
		*f = NewFlexUint64(val)
		return nil
	}

	return fmt.Errorf("FlexUint64: unexpected type, expected number, string or null")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexUint64) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Ptr returns the id, or nil when it was absent or null.
func (f FlexUint64) Ptr() *uint64 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// IsSet reports whether an id was supplied.
func (f FlexUint64) IsSet() bool {
	return f.set
}
