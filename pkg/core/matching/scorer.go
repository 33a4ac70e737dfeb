package matching

// Score computes the candidate's total fit score by summing every factor's
// points, collecting one rationale string per factor that contributed.
// With well-formed inputs and the default factor set the maximum is 100;
// the total is not independently clamped.
func Score(req *Request, cand *Candidate, factors []Factor) (int, []string) {
	total := 0
	rationale := []string{}

	for _, factor := range factors {
		points, why := factor.Score(req, cand)
		if points == 0 {
			continue
		}
		total += points
		if why != "" {
			rationale = append(rationale, why)
		}
	}

	return total, rationale
}
