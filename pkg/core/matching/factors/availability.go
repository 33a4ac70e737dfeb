package factors

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/core/matching"
)

// rruleHorizonDays is how far ahead an open-ended request is expanded when
// testing rrule-backed candidate windows
const rruleHorizonDays = 28

// AvailabilityFactor awards full credit when at least one of the candidate's
// windows overlaps the requested window and nothing otherwise. Overlap means
// a shared weekday whose [start, start+duration) block ranges intersect.
// Candidate windows backed by a recurrence rule are matched at day
// granularity: an occurrence on a requested weekday counts as an all-day
// block.
type AvailabilityFactor struct {
	points int
}

// NewAvailabilityFactor creates an AvailabilityFactor worth the given points
func NewAvailabilityFactor(points int) *AvailabilityFactor {
	return &AvailabilityFactor{points: points}
}

func (f *AvailabilityFactor) Name() string {
	return "Availability"
}

func (f *AvailabilityFactor) Score(req *matching.Request, cand *matching.Candidate) (int, string) {
	if !overlapsAny(req.Window, cand.Windows) {
		return 0, ""
	}
	return f.points, "Available during requested time"
}

func overlapsAny(requested *availability.Window, windows []*availability.Window) bool {
	if requested == nil || requested.Availability == nil {
		return false
	}
	for _, w := range windows {
		if w == nil {
			continue
		}
		if w.Availability != nil && blockOverlap(requested.Availability, w.Availability) {
			return true
		}
		if w.Availability == nil && w.RRule != "" && ruleOverlap(requested, w) {
			return true
		}
	}
	return false
}

// blockOverlap tests every requested day/block pair against the candidate's
// entry for the same canonical weekday
func blockOverlap(requested, candidate *availability.Canonical) bool {
	for _, day := range requested.Days {
		entry := candidate.Entry(day.Day)
		if entry == nil {
			continue
		}
		for _, reqBlock := range day.TimeBlocks {
			for _, candBlock := range entry.TimeBlocks {
				if reqBlock.Overlaps(candBlock) {
					return true
				}
			}
		}
	}
	return false
}

// ruleOverlap expands the candidate's recurrence rule over the requested
// date range (or a fixed horizon when the request is open-ended) and checks
// whether any occurrence lands on a requested weekday.
func ruleOverlap(requested *availability.Window, w *availability.Window) bool {
	from, to := ruleHorizon(requested, w)
	weekdays, err := availability.RuleWeekdays(w, from, to)
	if err != nil {
		// Unparseable rules never match; the caller logs the window as bad data
		return false
	}

	for _, day := range requested.Availability.Days {
		if len(day.TimeBlocks) == 0 {
			continue
		}
		if weekdays[availability.CanonicalDay(day.Day)] {
			return true
		}
	}
	return false
}

// ruleHorizon picks the date range the candidate's rule is expanded over.
// It is derived from the inputs alone, never the wall clock, so identical
// requests score identically on any day: request dates first, then the
// candidate window's dates, then the rule's own DTSTART, and finally a fixed
// epoch for fully undated windows.
func ruleHorizon(requested, candidate *availability.Window) (time.Time, time.Time) {
	if from, to, ok := windowHorizon(requested); ok {
		return from, to
	}
	if from, to, ok := windowHorizon(candidate); ok {
		return from, to
	}
	if opt, err := rrule.StrToROption(candidate.RRule); err == nil && !opt.Dtstart.IsZero() {
		return opt.Dtstart, opt.Dtstart.AddDate(0, 0, rruleHorizonDays)
	}
	from := time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, rruleHorizonDays)
}

func windowHorizon(w *availability.Window) (time.Time, time.Time, bool) {
	switch {
	case w.StartDate != nil && w.EndDate != nil:
		return *w.StartDate, *w.EndDate, true
	case w.StartDate != nil:
		return *w.StartDate, w.StartDate.AddDate(0, 0, rruleHorizonDays), true
	case w.EndDate != nil:
		return w.EndDate.AddDate(0, 0, -rruleHorizonDays), *w.EndDate, true
	}
	return time.Time{}, time.Time{}, false
}
