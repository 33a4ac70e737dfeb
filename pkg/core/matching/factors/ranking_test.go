package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carewell/provider-match/pkg/core/availability"
	"github.com/carewell/provider-match/pkg/core/matching"
)

// End-to-end ranking with the full default factor set

func fullFitCandidate(id, language string) *matching.Candidate {
	return &matching.Candidate{
		ID:             id,
		Name:           id,
		Languages:      []string{language},
		AgeMin:         4,
		AgeMax:         8,
		CapacityTotal:  10,
		CapacityFilled: 3,
		Windows:        []*availability.Window{window("Monday", "09:00:00", 120)},
	}
}

func TestRank_DefaultWeights_FullBreakdown(t *testing.T) {
	req := &matching.Request{
		Window:         window("Monday", "09:30:00", 60),
		TargetLanguage: "English",
		RequesterAge:   6,
	}

	speaksEnglish := fullFitCandidate("english-speaker", "English")
	speaksSpanish := fullFitCandidate("spanish-speaker", "Spanish")
	noOverlap := fullFitCandidate("busy-elsewhere", "English")
	noOverlap.Windows = []*availability.Window{window("Thursday", "09:00:00", 60)}
	atCapacity := fullFitCandidate("at-capacity", "English")
	atCapacity.CapacityFilled = 10

	results, err := matching.Rank(req,
		[]*matching.Candidate{speaksSpanish, speaksEnglish, noOverlap, atCapacity},
		10, DefaultSet())
	require.NoError(t, err)

	// at-capacity is excluded before scoring
	require.Len(t, results, 3)

	// 40 language + 30 age + 20 overlap + 7 headroom
	assert.Equal(t, "english-speaker", results[0].CandidateID)
	assert.Equal(t, 97, results[0].Score)
	assert.Equal(t, []string{
		"Language match: English",
		"Age-appropriate: Grade 6 within range",
		"Available during requested time",
		"Current availability: 70%",
	}, results[0].Rationale)

	// 40 + 30 + 0 + 7: language matched but no availability overlap
	assert.Equal(t, "busy-elsewhere", results[1].CandidateID)
	assert.Equal(t, 77, results[1].Score)

	// 0 + 30 + 20 + 7: no language match
	assert.Equal(t, "spanish-speaker", results[2].CandidateID)
	assert.Equal(t, 57, results[2].Score)
}

func TestRank_DefaultWeights_StableTieOrder(t *testing.T) {
	req := &matching.Request{
		Window:         window("Monday", "09:30:00", 60),
		TargetLanguage: "English",
		RequesterAge:   6,
	}

	twinA := fullFitCandidate("twin-a", "English")
	twinB := fullFitCandidate("twin-b", "English")

	results, err := matching.Rank(req, []*matching.Candidate{twinA, twinB}, 10, DefaultSet())
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "twin-a", results[0].CandidateID)
	assert.Equal(t, "twin-b", results[1].CandidateID)
}

func TestDefaultWeights_SumToOneHundred(t *testing.T) {
	w := DefaultWeights()

	assert.Equal(t, 100, w.Language+w.AgeFull+w.Availability+w.Capacity)
}
