package space

// Space is an immutable axis-aligned box in ℤⁿ with a periodicity flag
// per axis. Axis ranges, row-major strides and the total point count
// are computed once at construction and reused by every lookup.
//
// Ordering contract: flat indices and Points enumerate coordinates
// row-major with the first axis varying slowest and the last axis
// varying fastest.
type Space struct {
	min, max   Vector
	periodic   []bool
	ranges     []int
	strides    []int
	pointCount int
}

// New builds a Space spanning [min, max] inclusive on every axis.
// periodic selects, per axis, whether coordinates wrap modulo the axis
// range; its length must equal the vector dimension.
//
// Stage 1 (Validate): equal dimensions, min[d] ≤ max[d] everywhere.
// Stage 2 (Memoize): ranges, strides (last axis innermost), point count.
// Complexity: O(n).
func New(min, max Vector, periodic []bool) (*Space, error) {
	n := min.Dim()
	if n == 0 || n != max.Dim() || n != len(periodic) {
		return nil, ErrDimensionMismatch
	}
	for d := 0; d < n; d++ {
		if min.At(d) > max.At(d) {
			return nil, ErrRangeInverted
		}
	}

	s := &Space{
		min:      min,
		max:      max,
		periodic: make([]bool, n),
		ranges:   make([]int, n),
		strides:  make([]int, n),
	}
	copy(s.periodic, periodic)

	s.pointCount = 1
	for d := 0; d < n; d++ {
		s.ranges[d] = max.At(d) - min.At(d) + 1
		s.pointCount *= s.ranges[d]
	}
	stride := 1
	for d := n - 1; d >= 0; d-- {
		s.strides[d] = stride
		stride *= s.ranges[d]
	}

	return s, nil
}

// NewBox builds a non-periodic Space from the origin to size−1 on each
// axis: NewBox(4, 3) spans x ∈ [0,3], y ∈ [0,2]. Sizes must be ≥ 1.
func NewBox(sizes ...int) (*Space, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptyVector
	}
	minC := make([]int, len(sizes))
	maxC := make([]int, len(sizes))
	for d, sz := range sizes {
		if sz < 1 {
			return nil, ErrRangeInverted
		}
		maxC[d] = sz - 1
	}
	min, err := NewVector(minC...)
	if err != nil {
		return nil, err
	}
	max, err := NewVector(maxC...)
	if err != nil {
		return nil, err
	}

	return New(min, max, make([]bool, len(sizes)))
}

// Dim returns the dimension count.
func (s *Space) Dim() int { return s.min.Dim() }

// Min returns the inclusive lower corner.
func (s *Space) Min() Vector { return s.min }

// Max returns the inclusive upper corner.
func (s *Space) Max() Vector { return s.max }

// Periodic reports whether axis d wraps.
func (s *Space) Periodic(d int) bool { return s.periodic[d] }

// Range returns the extent of axis d (Max[d] − Min[d] + 1).
func (s *Space) Range(d int) int { return s.ranges[d] }

// PointCount returns the number of coordinates in the box.
func (s *Space) PointCount() int { return s.pointCount }

// Contains reports whether c addresses a cell of s: the dimension must
// match, and every non-periodic axis must hold Min[d] ≤ c[d] ≤ Max[d].
// Periodic axes accept any integer.
// Complexity: O(n).
func (s *Space) Contains(c Vector) bool {
	if c.Dim() != s.Dim() {
		return false
	}
	for d := 0; d < s.Dim(); d++ {
		if s.periodic[d] {
			continue
		}
		if v := c.At(d); v < s.min.At(d) || v > s.max.At(d) {
			return false
		}
	}

	return true
}

// Wrap maps c back into [Min, Max] on every periodic axis using
// mathematical modulo (the result is always in range, even for
// arbitrarily negative inputs). Non-periodic axes pass through
// unchanged; callers test Contains separately. A dimension-mismatched
// vector is returned unchanged (Contains then reports false).
// Complexity: O(n).
func (s *Space) Wrap(c Vector) Vector {
	if c.Dim() != s.Dim() {
		return c
	}
	out := c.Comps()
	for d := 0; d < s.Dim(); d++ {
		if !s.periodic[d] {
			continue
		}
		r := s.ranges[d]
		m := (out[d] - s.min.At(d)) % r
		if m < 0 {
			m += r
		}
		out[d] = m + s.min.At(d)
	}

	return Vector{comps: out}
}

// FlatIndex returns the row-major index of c in [0, PointCount).
// Periodic axes are wrapped first; a coordinate outside a non-periodic
// axis yields ErrOutOfBounds, a dimension mismatch ErrDimensionMismatch.
// Complexity: O(n).
func (s *Space) FlatIndex(c Vector) (int, error) {
	if c.Dim() != s.Dim() {
		return 0, ErrDimensionMismatch
	}
	w := s.Wrap(c)
	idx := 0
	for d := 0; d < s.Dim(); d++ {
		off := w.At(d) - s.min.At(d)
		if off < 0 || off >= s.ranges[d] {
			return 0, ErrOutOfBounds
		}
		idx += off * s.strides[d]
	}

	return idx, nil
}

// CoordsAt decodes a flat index back into a coordinate, inverting
// FlatIndex. Returns ErrIndexRange for i outside [0, PointCount).
// Complexity: O(n).
func (s *Space) CoordsAt(i int) (Vector, error) {
	if i < 0 || i >= s.pointCount {
		return Vector{}, ErrIndexRange
	}
	comps := make([]int, s.Dim())
	for d := 0; d < s.Dim(); d++ {
		comps[d] = i/s.strides[d] + s.min.At(d)
		i %= s.strides[d]
	}

	return Vector{comps: comps}, nil
}

// Points enumerates every coordinate of the box in flat-index order:
// first axis slowest, last axis fastest. The slice is freshly
// allocated on each call; the ordering is a public contract.
// Complexity: O(n·PointCount).
func (s *Space) Points() []Vector {
	pts := make([]Vector, s.pointCount)
	for i := 0; i < s.pointCount; i++ {
		pts[i], _ = s.CoordsAt(i)
	}

	return pts
}

// Unit derives the direction box of s: every axis of range > 1 spans
// [−1, +1], degenerate axes collapse to [0, 0], and periodicity flags
// carry over. The zero offset is a member of the box but never carries
// adjacency semantics; consumers enumerate the non-zero offsets.
func (s *Space) Unit() *Space {
	n := s.Dim()
	minC := make([]int, n)
	maxC := make([]int, n)
	for d := 0; d < n; d++ {
		if s.ranges[d] > 1 {
			minC[d] = -1
			maxC[d] = 1
		}
	}
	min := Vector{comps: minC}
	max := Vector{comps: maxC}
	u, _ := New(min, max, s.periodic)

	return u
}
