package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Validate_NeitherRepresentation(t *testing.T) {
	w := &Window{Timezone: "UTC"}

	err := w.Validate()
	require.Error(t, err)
	assert.EqualError(t, err, "must have either rrule or availability")
}

func TestWindow_Validate_RRuleOnly(t *testing.T) {
	w := &Window{Timezone: "UTC", RRule: "FREQ=WEEKLY;BYDAY=MO"}

	assert.NoError(t, w.Validate())
}

func TestWindow_Validate_AvailabilityOnly(t *testing.T) {
	w := &Window{Timezone: "UTC", Availability: &Canonical{}}

	assert.NoError(t, w.Validate())
}

func TestWindow_Validate_EndBeforeStart(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	w := &Window{
		Timezone:     "UTC",
		StartDate:    &start,
		EndDate:      &end,
		Availability: &Canonical{},
	}

	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precedes start_date")
}

func TestCanonical_Entry_CaseInsensitiveLookup(t *testing.T) {
	c := &Canonical{Days: []DayEntry{{Day: "Monday"}, {Day: "Friday"}}}

	assert.NotNil(t, c.Entry("monday"))
	assert.NotNil(t, c.Entry("FRIDAY"))
	assert.Nil(t, c.Entry("Tuesday"))
}

func TestTimeBlock_Bounds(t *testing.T) {
	block := TimeBlock{Start: "09:30:00", DurationMinutes: 60}

	start, end, err := block.Bounds()
	require.NoError(t, err)
	assert.Equal(t, 9*3600+30*60, start)
	assert.Equal(t, 10*3600+30*60, end)
}

func TestTimeBlock_Bounds_Invalid(t *testing.T) {
	block := TimeBlock{Start: "9am", DurationMinutes: 60}

	_, _, err := block.Bounds()
	assert.Error(t, err)
}

func TestTimeBlock_Contains_HalfOpen(t *testing.T) {
	block := TimeBlock{Start: "09:00:00", DurationMinutes: 60}

	assert.True(t, block.Contains(9*3600), "start is inclusive")
	assert.True(t, block.Contains(9*3600+1800))
	assert.False(t, block.Contains(10*3600), "end is exclusive")
	assert.False(t, block.Contains(8*3600+3599))
}

func TestTimeBlock_Overlaps(t *testing.T) {
	morning := TimeBlock{Start: "09:00:00", DurationMinutes: 60}

	assert.True(t, morning.Overlaps(TimeBlock{Start: "09:30:00", DurationMinutes: 60}))
	assert.True(t, morning.Overlaps(TimeBlock{Start: "08:30:00", DurationMinutes: 31}))
	assert.False(t, morning.Overlaps(TimeBlock{Start: "10:00:00", DurationMinutes: 60}), "touching blocks do not overlap")
	assert.False(t, morning.Overlaps(TimeBlock{Start: "11:00:00", DurationMinutes: 30}))
	assert.False(t, morning.Overlaps(TimeBlock{Start: "bad", DurationMinutes: 30}))
}

func TestWindow_HasBlocks(t *testing.T) {
	empty := &Window{Availability: &Canonical{Days: []DayEntry{{Day: "Monday"}}}}
	assert.False(t, empty.HasBlocks())

	populated := &Window{Availability: &Canonical{Days: []DayEntry{
		{Day: "Monday", TimeBlocks: []TimeBlock{{Start: "09:00:00", DurationMinutes: 30}}},
	}}}
	assert.True(t, populated.HasBlocks())

	rruleOnly := &Window{RRule: "FREQ=WEEKLY;BYDAY=MO"}
	assert.False(t, rruleOnly.HasBlocks())
}
