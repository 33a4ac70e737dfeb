package availability

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned when availability input cannot be parsed
// into the canonical structure
var ErrInvalidFormat = errors.New("invalid availability format")

// Normalize converts heterogeneous availability input into the canonical
// {days: [...]} structure. Accepted inputs:
//   - a JSON-encoded string (or []byte) containing any of the shapes below
//   - a bare array of day entries, which is wrapped as {days: [...]}
//   - an object; a missing "days" key yields {days: []}
//   - an already-canonical Canonical value, returned re-cased
//
// Weekday names are re-cased to canonical form ("monday" -> "Monday").
// Day names that are not real weekdays are preserved untouched apart from
// casing; they simply never match a lookup. Normalize is idempotent.
func Normalize(raw any) (*Canonical, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("%w: availability is nil", ErrInvalidFormat)
	case *Canonical:
		if v == nil {
			return nil, fmt.Errorf("%w: availability is nil", ErrInvalidFormat)
		}
		return recase(v), nil
	case Canonical:
		return recase(&v), nil
	case []DayEntry:
		return recase(&Canonical{Days: v}), nil
	case string:
		return normalizeJSON([]byte(v))
	case []byte:
		return normalizeJSON(v)
	case json.RawMessage:
		return normalizeJSON([]byte(v))
	default:
		// Structured input from a decoded payload (maps, slices). Round-trip
		// through JSON so one code path handles every shape.
		doc, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return normalizeJSON(doc)
	}
}

func normalizeJSON(doc []byte) (*Canonical, error) {
	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	switch doc[0] {
	case '[':
		var days []DayEntry
		if err := json.Unmarshal(doc, &days); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return recase(&Canonical{Days: days}), nil
	case '{':
		var c Canonical
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if c.Days == nil {
			c.Days = []DayEntry{}
		}
		return recase(&c), nil
	case '"':
		// A JSON string wrapping another JSON document (double-encoded input)
		var inner string
		if err := json.Unmarshal(doc, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return normalizeJSON([]byte(inner))
	default:
		return nil, fmt.Errorf("%w: availability must be an object or array", ErrInvalidFormat)
	}
}

// UnmarshalJSON accepts "duration" as an input alias for the canonical
// "duration_minutes" key. When both keys are present the canonical one wins.
// Marshaling always writes duration_minutes.
func (b *TimeBlock) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start           string `json:"start"`
		DurationMinutes *int   `json:"duration_minutes"`
		Duration        *int   `json:"duration"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.Start = raw.Start
	switch {
	case raw.DurationMinutes != nil:
		b.DurationMinutes = *raw.DurationMinutes
	case raw.Duration != nil:
		b.DurationMinutes = *raw.Duration
	default:
		b.DurationMinutes = 0
	}
	return nil
}

// recase copies the structure with every day name in canonical form
func recase(c *Canonical) *Canonical {
	out := &Canonical{Days: make([]DayEntry, len(c.Days))}
	for i, d := range c.Days {
		out.Days[i] = DayEntry{
			Day:        CanonicalDay(d.Day),
			TimeBlocks: d.TimeBlocks,
		}
	}
	return out
}

// CanonicalDay re-cases a weekday name to Capitalized form: first letter
// upper, the rest lower ("MONDAY" -> "Monday"). Non-weekday strings are
// re-cased the same way, not rejected.
func CanonicalDay(day string) string {
	if day == "" {
		return day
	}
	lower := strings.ToLower(day)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
