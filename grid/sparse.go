package grid

import (
	"github.com/katalvlaran/waven/space"
)

// Sparse stores values for a subset of a space's coordinates. Reads of
// unset coordinates return the absent sentinel chosen at construction;
// writing the sentinel removes the entry, so Len counts only cells that
// hold a non-absent value.
type Sparse[V comparable] struct {
	sp     *space.Space
	absent V
	items  map[string]sparseEntry[V]
}

type sparseEntry[V comparable] struct {
	at  space.Vector
	val V
}

// NewSparse builds an empty Sparse over sp with the given absent
// sentinel (use the zero value of V for the common case).
func NewSparse[V comparable](sp *space.Space, absent V) (*Sparse[V], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}

	return &Sparse[V]{sp: sp, absent: absent, items: make(map[string]sparseEntry[V])}, nil
}

// Space returns the backing space.
func (s *Sparse[V]) Space() *space.Space { return s.sp }

// Absent returns the sentinel read back for unset coordinates.
func (s *Sparse[V]) Absent() V { return s.absent }

// Len returns the number of set entries.
func (s *Sparse[V]) Len() int { return len(s.items) }

// At returns the value at c, or the absent sentinel when unset or when
// c lies outside the space.
func (s *Sparse[V]) At(c space.Vector) V {
	w := s.sp.Wrap(c)
	if e, ok := s.items[w.Key()]; ok {
		return e.val
	}

	return s.absent
}

// Has reports whether a non-absent value is stored at c.
func (s *Sparse[V]) Has(c space.Vector) bool {
	_, ok := s.items[s.sp.Wrap(c).Key()]

	return ok
}

// Set stores v at c. Writing the absent sentinel deletes the entry.
// Coordinates outside the space yield ErrOutOfBounds.
func (s *Sparse[V]) Set(c space.Vector, v V) error {
	w := s.sp.Wrap(c)
	if !s.sp.Contains(w) {
		return ErrOutOfBounds
	}
	k := w.Key()
	if v == s.absent {
		delete(s.items, k)

		return nil
	}
	s.items[k] = sparseEntry[V]{at: w, val: v}

	return nil
}

// Each invokes fn for every set entry. Iteration order is unspecified;
// returning false stops early.
func (s *Sparse[V]) Each(fn func(c space.Vector, v V) bool) {
	for _, e := range s.items {
		if !fn(e.at, e.val) {
			return
		}
	}
}

// Clone returns a deep copy sharing only the immutable space.
func (s *Sparse[V]) Clone() *Sparse[V] {
	items := make(map[string]sparseEntry[V], len(s.items))
	for k, e := range s.items {
		items[k] = e
	}

	return &Sparse[V]{sp: s.sp, absent: s.absent, items: items}
}
