package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carewell/provider-match/pkg/db"
)

func TestCheckSlot_AvailableInstant(t *testing.T) {
	directory := &fakeDirectory{
		providers: []db.Provider{{ID: "p1", Name: "Ana", CapacityTotal: 5}},
		windows:   map[string][]db.AvailabilityWindow{"p1": {mondayWindowRecord("p1")}},
	}

	// 2026-09-07 is a Monday; the window covers 09:00-11:00 UTC
	free, err := CheckSlot(context.Background(), directory, zap.NewNop(), "p1",
		time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, free)
}

func TestCheckSlot_UnavailableInstant(t *testing.T) {
	directory := &fakeDirectory{
		providers: []db.Provider{{ID: "p1", Name: "Ana", CapacityTotal: 5}},
		windows:   map[string][]db.AvailabilityWindow{"p1": {mondayWindowRecord("p1")}},
	}

	free, err := CheckSlot(context.Background(), directory, zap.NewNop(), "p1",
		time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, free)
}

func TestCheckSlot_NoWindows(t *testing.T) {
	directory := &fakeDirectory{
		providers: []db.Provider{{ID: "p1", Name: "Ana", CapacityTotal: 5}},
	}

	free, err := CheckSlot(context.Background(), directory, zap.NewNop(), "p1",
		time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, free)
}

func TestCheckSlot_UnknownProvider(t *testing.T) {
	directory := &fakeDirectory{}

	_, err := CheckSlot(context.Background(), directory, zap.NewNop(), "ghost",
		time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCheckSlot_MalformedWindowSkipped(t *testing.T) {
	bad := mondayWindowRecord("p1")
	bad.AvailabilityJSON = []byte(`not json`)

	directory := &fakeDirectory{
		providers: []db.Provider{{ID: "p1", Name: "Ana", CapacityTotal: 5}},
		windows:   map[string][]db.AvailabilityWindow{"p1": {bad, mondayWindowRecord("p1")}},
	}

	free, err := CheckSlot(context.Background(), directory, zap.NewNop(), "p1",
		time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, free)
}
