package markov

// ModelStats holds aggregated statistics for a built model.
type ModelStats struct {
	Order            int     // words per prefix
	DistinctPrefixes int     // distinct prefix keys in the table
	Capacity         int     // table capacity
	LoadFactor       float64 // DistinctPrefixes / Capacity
	MaxProbe         int     // longest probe displacement in the table
	TotalTransitions int     // sum of suffix counts over all prefixes
	MaxFanout        int     // largest suffix count of any single prefix
	StarterCount     int     // suffixes recorded for the start prefix
}

// Stats returns a snapshot of statistics for the model. StarterCount is the
// number of transitions out of the all-NonWord start state, i.e. how many
// times generation can begin (always 1 for a non-empty single source text).
func (m *Model) Stats() ModelStats {
	ts := m.table.Stats()
	st := ModelStats{
		Order:            m.order,
		DistinctPrefixes: ts.Entries,
		Capacity:         ts.Capacity,
		LoadFactor:       ts.LoadFactor,
		MaxProbe:         ts.MaxProbe,
	}

	m.table.Range(func(_ string, values []string) bool {
		st.TotalTransitions += len(values)
		if len(values) > st.MaxFanout {
			st.MaxFanout = len(values)
		}
		return true
	})

	if starters, ok := m.table.Get(m.startPrefix()); ok {
		st.StarterCount = len(starters)
	}
	return st
}
