package wave

// Enablement tracks, per direction, how many distinct tiles in the
// neighbor cell at the opposite offset still permit the owning tile
// here. Counters are indexed by the analysis direction order, so the
// whole structure is one flat int slice.
//
// A tile stays locally viable while every counter that started positive
// remains positive; a counter that starts at zero belongs to a boundary
// the sample never exercised and is inert (no rule ever decrements it).
type Enablement struct {
	counts []int
}

func newEnablement(counts []int) *Enablement {
	return &Enablement{counts: counts}
}

// Count returns the counter for direction index di.
func (e *Enablement) Count(di int) int { return e.counts[di] }

// RemoveFrom subtracts k from direction di's counter and reports
// whether it is still positive. Underflow into negative values is
// permitted: contradiction recovery never revisits such counters.
func (e *Enablement) RemoveFrom(di, k int) bool {
	e.counts[di] -= k

	return e.counts[di] > 0
}

// clone returns an independent copy of the counters.
func (e *Enablement) clone() *Enablement {
	c := make([]int, len(e.counts))
	copy(c, e.counts)

	return &Enablement{counts: c}
}
