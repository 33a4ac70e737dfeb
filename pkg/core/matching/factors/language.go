package factors

import (
	"fmt"

	"github.com/carewell/provider-match/pkg/core/matching"
)

// LanguageFactor awards full credit when the candidate supports the
// request's target language and nothing otherwise. No partial credit:
// an appointment in the wrong language is no better than a near miss.
type LanguageFactor struct {
	points int
}

// NewLanguageFactor creates a LanguageFactor worth the given points
func NewLanguageFactor(points int) *LanguageFactor {
	return &LanguageFactor{points: points}
}

func (f *LanguageFactor) Name() string {
	return "Language"
}

func (f *LanguageFactor) Score(req *matching.Request, cand *matching.Candidate) (int, string) {
	if req.TargetLanguage == "" {
		return 0, ""
	}
	if !cand.SpeaksLanguage(req.TargetLanguage) {
		return 0, ""
	}
	return f.points, fmt.Sprintf("Language match: %s", req.TargetLanguage)
}
