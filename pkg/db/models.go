package db

import "time"

// Provider is one care provider in the directory with the static attributes
// matching needs
type Provider struct {
	ID             string
	Name           string
	Languages      []string
	Specialties    []string
	AgeMin         int
	AgeMax         int
	CapacityTotal  int
	CapacityFilled int
}

// AvailabilityWindow is the stored form of one participant's availability.
// Exactly one of RRule / AvailabilityJSON is populated; AvailabilityJSON
// holds the canonical {days: [...]} structure, canonicalized on write.
// Windows are superseded rather than amended: a changed schedule is stored
// as a new row with a later start date.
type AvailabilityWindow struct {
	ID        string
	OwnerKind string
	OwnerID   string
	StartDate *time.Time
	EndDate   *time.Time
	Timezone  string

	RRule            string
	AvailabilityJSON []byte

	CreatedAt time.Time
}
