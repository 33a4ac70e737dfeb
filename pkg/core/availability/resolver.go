package availability

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// IsAvailableAt reports whether the window covers the given instant.
// The instant is converted into the window's timezone before any check, so
// callers can pass instants in any zone. The decision, in order:
//
//  1. The local calendar date must fall within [StartDate, EndDate] where set.
//  2. An rrule window matches when the recurrence rule produces an occurrence
//     on the local date. Rules are treated as day-granularity: a matching day
//     counts as available for the whole day.
//  3. An availability window matches when the local weekday has a day entry
//     and the local time-of-day falls inside any of its blocks, inclusive of
//     the block start and exclusive of its end.
//
// Blocks with unparseable start times are skipped rather than failing the
// window. An unknown timezone or unparseable rrule is returned as an error;
// those are the only error conditions, so a nil-error false always means the
// window does not cover the instant.
func IsAvailableAt(w *Window, instant time.Time) (bool, error) {
	loc, err := loadZone(w.Timezone)
	if err != nil {
		return false, err
	}

	local := instant.In(loc)
	localDate := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	if w.StartDate != nil && localDate.Before(dateOnly(*w.StartDate, loc)) {
		return false, nil
	}
	if w.EndDate != nil && localDate.After(dateOnly(*w.EndDate, loc)) {
		return false, nil
	}

	if w.RRule != "" {
		return ruleMatchesDay(w, localDate, loc)
	}

	if w.Availability == nil {
		return false, nil
	}

	entry := w.Availability.Entry(local.Weekday().String())
	if entry == nil {
		return false, nil
	}

	secondOfDay := local.Hour()*3600 + local.Minute()*60 + local.Second()
	for _, block := range entry.TimeBlocks {
		if block.Contains(secondOfDay) {
			return true, nil
		}
	}
	return false, nil
}

// RuleWeekdays expands an rrule window's occurrences between from and to and
// returns the set of canonical weekday names it lands on. Used by overlap
// scoring, where rrule windows are matched at day granularity.
func RuleWeekdays(w *Window, from, to time.Time) (map[string]bool, error) {
	loc, err := loadZone(w.Timezone)
	if err != nil {
		return nil, err
	}

	rule, err := buildRule(w, dateOnly(from, loc), loc)
	if err != nil {
		return nil, err
	}

	days := make(map[string]bool)
	for _, occ := range rule.Between(from.In(loc), to.In(loc), true) {
		days[occ.Weekday().String()] = true
	}
	return days, nil
}

// ruleMatchesDay evaluates the recurrence rule for one local calendar day
func ruleMatchesDay(w *Window, day time.Time, loc *time.Location) (bool, error) {
	rule, err := buildRule(w, day, loc)
	if err != nil {
		return false, err
	}

	dayEnd := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return len(rule.Between(day, dayEnd, true)) > 0, nil
}

// buildRule parses the window's rrule, anchoring DTSTART when the rule
// itself carries none: at the window's start date if set, otherwise a year
// before the queried day so open-ended weekly rules still generate
// occurrences that cover it.
func buildRule(w *Window, day time.Time, loc *time.Location) (*rrule.RRule, error) {
	opt, err := rrule.StrToROption(w.RRule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule %q: %w", w.RRule, err)
	}

	if opt.Dtstart.IsZero() {
		if w.StartDate != nil {
			opt.Dtstart = dateOnly(*w.StartDate, loc)
		} else {
			opt.Dtstart = day.AddDate(-1, 0, 0)
		}
	}

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build rrule %q: %w", w.RRule, err)
	}
	return rule, nil
}

func loadZone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
