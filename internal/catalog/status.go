package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawStatus is the nr_status field of a source record. Dumps carry it as a
// number, a numeric string or null; anything else is kept in Invalid and the
// record is treated as unrestricted.
type RawStatus struct {
	Value   int
	Set     bool
	Invalid string
}

// StatusOf returns a set status, mostly for building raw records in code
func StatusOf(v int) RawStatus {
	return RawStatus{Value: v, Set: true}
}

// UnmarshalJSON accepts any JSON value; unusable ones end up in Invalid
func (s *RawStatus) UnmarshalJSON(data []byte) error {
	*s = RawStatus{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		s.Invalid = string(data)
		return nil
	}

	switch v := v.(type) {
	case float64:
		s.setFloat(v, string(data))
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			s.Invalid = v
			return nil
		}
		s.setFloat(f, v)
	default:
		s.Invalid = string(data)
	}
	return nil
}

func (s *RawStatus) setFloat(f float64, raw string) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		s.Invalid = raw
		return
	}
	s.Value = int(f)
	s.Set = true
}

// MarshalJSON writes the status back as a number or null
func (s RawStatus) MarshalJSON() ([]byte, error) {
	if !s.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.Value)), nil
}
