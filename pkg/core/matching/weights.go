package matching

// Default factor weights. The four factors sum to 100 when a candidate
// earns full credit on each.
const (
	// DefaultLanguagePoints is awarded in full for a target-language match
	DefaultLanguagePoints = 40

	// DefaultAgeFullPoints is awarded when the requester's grade/age falls
	// inside the candidate's range
	DefaultAgeFullPoints = 30

	// DefaultAgePartialPoints is awarded when it falls outside
	DefaultAgePartialPoints = 10

	// DefaultAvailabilityPoints is awarded when at least one of the
	// candidate's windows overlaps the requested window
	DefaultAvailabilityPoints = 20

	// DefaultCapacityPoints scales with the candidate's remaining headroom
	DefaultCapacityPoints = 10
)

// DefaultLimit is the number of matches returned when the caller does not
// ask for more
const DefaultLimit = 4
