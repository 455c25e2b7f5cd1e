package markov

// TransitionMatrix returns the row-stochastic transition matrix over
// States(): P(K, K∪{q}) = λ_q / Σ_{q'∈K^O} λ_q' for q in K's outer fringe,
// P(Q,Q)=1, and 0 elsewhere (spec §4.5).
func (m *Model) TransitionMatrix() [][]float64 {
	n := len(m.order)
	full := m.sp.Domain().Full()
	T := make([][]float64, n)
	for i, k := range m.order {
		row := make([]float64, n)
		if k.Equal(full) {
			row[i] = 1
		} else {
			fringe := m.sp.OuterFringe(k)
			total := 0.0
			for _, q := range fringe {
				total += m.rates[q]
			}
			for _, q := range fringe {
				next := k.WithItem(q)
				row[m.indexOf(next)] = m.rates[q] / total
			}
		}
		T[i] = row
	}
	return T
}

// absorbingIndex returns the index of the full-mastery state Q in States().
func (m *Model) absorbingIndex() int {
	return m.indexOf(m.sp.Domain().Full())
}
