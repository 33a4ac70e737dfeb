package availability

import (
	"errors"
	"fmt"
	"time"
)

// OwnerKind identifies which kind of participant owns a window
type OwnerKind string

const (
	OwnerFamily   OwnerKind = "family"
	OwnerProvider OwnerKind = "provider"
)

// TimeBlock is one contiguous interval of availability within a day,
// expressed as a wall-clock start ("HH:MM:SS") and a duration in minutes.
type TimeBlock struct {
	Start           string `json:"start"`
	DurationMinutes int    `json:"duration_minutes"`
}

// DayEntry holds the time blocks for one weekday
type DayEntry struct {
	Day        string      `json:"day"`
	TimeBlocks []TimeBlock `json:"time_blocks"`
}

// Canonical is the normalized availability structure all engine logic operates on
type Canonical struct {
	Days []DayEntry `json:"days"`
}

// Window describes when one participant is free. Exactly one of RRule or
// Availability must be populated. StartDate and EndDate bound the calendar
// range the window is active for; nil means open-ended. All time-of-day
// values are interpreted in Timezone.
type Window struct {
	ID           string
	OwnerKind    OwnerKind
	OwnerID      string
	StartDate    *time.Time
	EndDate      *time.Time
	Timezone     string
	RRule        string
	Availability *Canonical
}

// ErrMissingSchedule is returned when a window carries neither representation
var ErrMissingSchedule = errors.New("must have either rrule or availability")

// Validate checks the window's structural invariants
func (w *Window) Validate() error {
	if w.RRule == "" && w.Availability == nil {
		return ErrMissingSchedule
	}
	if w.StartDate != nil && w.EndDate != nil && w.EndDate.Before(*w.StartDate) {
		return fmt.Errorf("end_date %s precedes start_date %s",
			w.EndDate.Format("2006-01-02"), w.StartDate.Format("2006-01-02"))
	}
	return nil
}

// HasBlocks reports whether the window carries at least one time block
func (w *Window) HasBlocks() bool {
	if w.Availability == nil {
		return false
	}
	for _, d := range w.Availability.Days {
		if len(d.TimeBlocks) > 0 {
			return true
		}
	}
	return false
}

// Entry returns the day entry matching the given weekday name, or nil.
// The lookup is case-insensitive; stored day names are canonical.
func (c *Canonical) Entry(day string) *DayEntry {
	canonical := CanonicalDay(day)
	for i := range c.Days {
		if c.Days[i].Day == canonical {
			return &c.Days[i]
		}
	}
	return nil
}

// Bounds returns the block's interval as seconds since midnight, half-open
// [start, end). An unparseable start time yields an error so the caller can
// skip the block without rejecting the whole window.
func (b TimeBlock) Bounds() (start, end int, err error) {
	t, err := parseClock(b.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid block start %q: %w", b.Start, err)
	}
	start = t.Hour()*3600 + t.Minute()*60 + t.Second()
	end = start + b.DurationMinutes*60
	return start, end, nil
}

// Contains reports whether the given second-of-day falls inside the block
// (inclusive start, exclusive end). Malformed blocks never match.
func (b TimeBlock) Contains(secondOfDay int) bool {
	start, end, err := b.Bounds()
	if err != nil {
		return false
	}
	return secondOfDay >= start && secondOfDay < end
}

// Overlaps reports whether two blocks intersect. Malformed blocks on either
// side never overlap.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	s1, e1, err := b.Bounds()
	if err != nil {
		return false
	}
	s2, e2, err := other.Bounds()
	if err != nil {
		return false
	}
	return s1 < e2 && s2 < e1
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}
