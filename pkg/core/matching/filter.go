package matching

// FilterByCapacity removes candidates with no remaining capacity. This is a
// hard exclusion, not a scored factor: a provider at or over capacity is
// never returned regardless of how well it would otherwise fit. The filter
// is pure and preserves input order.
func FilterByCapacity(candidates []*Candidate) []*Candidate {
	eligible := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.RemainingCapacity() > 0 {
			eligible = append(eligible, c)
		}
	}
	return eligible
}
