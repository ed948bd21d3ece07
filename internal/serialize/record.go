package serialize

import (
	"bytes"
	"encoding/json"
)

// Record is an ordered key-value structure. Keys keep insertion order when
// encoded to JSON: primitive fields first, then relationships.
type Record struct {
	keys   []string
	values map[string]any
}

func (r *Record) set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present. Excluded keys are never present.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the keys in output order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Record returns the nested record under key, if there is one.
func (r Record) Record(key string) (Record, bool) {
	v, ok := r.values[key].(Record)
	return v, ok
}

// Records returns the nested record list under key, if there is one.
func (r Record) Records(key string) ([]Record, bool) {
	v, ok := r.values[key].([]Record)
	return v, ok
}

// Map converts the record, recursively, into plain maps and slices.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		switch v := r.values[k].(type) {
		case Record:
			out[k] = v.Map()
		case []Record:
			list := make([]any, len(v))
			for i, item := range v {
				list[i] = item.Map()
			}
			out[k] = list
		default:
			out[k] = v
		}
	}
	return out
}

// MarshalJSON implements the json.Marshaler interface.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
