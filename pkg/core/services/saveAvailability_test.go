package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carewell/provider-match/pkg/core/availability"
)

func TestSaveAvailability_CanonicalizesOnWrite(t *testing.T) {
	directory := &fakeDirectory{}

	record, err := SaveAvailability(context.Background(), directory, zap.NewNop(), SaveAvailabilityInput{
		OwnerKind:    availability.OwnerProvider,
		OwnerID:      "p1",
		Timezone:     "America/New_York",
		Availability: `[{"day":"monday","time_blocks":[{"start":"09:00:00","duration_minutes":60}]}]`,
	})
	require.NoError(t, err)

	require.Len(t, directory.inserted, 1)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "provider", record.OwnerKind)

	// Bare array wrapped and weekday re-cased in the stored JSON
	assert.JSONEq(t,
		`{"days":[{"day":"Monday","time_blocks":[{"start":"09:00:00","duration_minutes":60}]}]}`,
		string(record.AvailabilityJSON))
}

func TestSaveAvailability_RRuleWindow(t *testing.T) {
	directory := &fakeDirectory{}

	record, err := SaveAvailability(context.Background(), directory, zap.NewNop(), SaveAvailabilityInput{
		OwnerKind: availability.OwnerProvider,
		OwnerID:   "p1",
		Timezone:  "UTC",
		RRule:     "FREQ=WEEKLY;BYDAY=MO,WE",
	})
	require.NoError(t, err)

	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,WE", record.RRule)
	assert.Empty(t, record.AvailabilityJSON)
}

func TestSaveAvailability_RejectsEmptyWindow(t *testing.T) {
	directory := &fakeDirectory{}

	_, err := SaveAvailability(context.Background(), directory, zap.NewNop(), SaveAvailabilityInput{
		OwnerKind: availability.OwnerFamily,
		OwnerID:   "f1",
		Timezone:  "UTC",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, availability.ErrMissingSchedule)
	assert.Empty(t, directory.inserted)
}

func TestSaveAvailability_RejectsInvalidRRule(t *testing.T) {
	directory := &fakeDirectory{}

	_, err := SaveAvailability(context.Background(), directory, zap.NewNop(), SaveAvailabilityInput{
		OwnerKind: availability.OwnerProvider,
		OwnerID:   "p1",
		Timezone:  "UTC",
		RRule:     "FREQ=SOMETIMES",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
	assert.Empty(t, directory.inserted)
}

func TestSaveAvailability_RejectsMalformedInput(t *testing.T) {
	directory := &fakeDirectory{}

	_, err := SaveAvailability(context.Background(), directory, zap.NewNop(), SaveAvailabilityInput{
		OwnerKind:    availability.OwnerFamily,
		OwnerID:      "f1",
		Timezone:     "UTC",
		Availability: `{"days": [`,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, availability.ErrInvalidFormat)
	assert.Empty(t, directory.inserted)
}
