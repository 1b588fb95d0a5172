package grid

import (
	"github.com/katalvlaran/waven/space"
)

// Dense is a dense value store over every coordinate of a space.Space,
// backed by a flat slice in Space.Points() order.
type Dense[V any] struct {
	sp   *space.Space
	data []V
}

// NewDense allocates a Dense of zero values over sp.
// Complexity: O(PointCount).
func NewDense[V any](sp *space.Space) (*Dense[V], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}

	return &Dense[V]{sp: sp, data: make([]V, sp.PointCount())}, nil
}

// NewDenseFill allocates a Dense over sp, calling fill once per cell.
// Cells are filled in enumeration order.
func NewDenseFill[V any](sp *space.Space, fill func() V) (*Dense[V], error) {
	d, err := NewDense[V](sp)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = fill()
	}

	return d, nil
}

// NewDenseFillAt allocates a Dense over sp, calling fill with each
// cell's coordinate in enumeration order.
func NewDenseFillAt[V any](sp *space.Space, fill func(space.Vector) V) (*Dense[V], error) {
	d, err := NewDense[V](sp)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		c, cerr := sp.CoordsAt(i)
		if cerr != nil {
			return nil, cerr
		}
		d.data[i] = fill(c)
	}

	return d, nil
}

// NewDenseFromSlice adopts vals as the backing storage, interpreted in
// Space.Points() order. The slice is copied; its length must equal
// sp.PointCount() (ErrLengthMismatch otherwise).
func NewDenseFromSlice[V any](sp *space.Space, vals []V) (*Dense[V], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if len(vals) != sp.PointCount() {
		return nil, ErrLengthMismatch
	}
	data := make([]V, len(vals))
	copy(data, vals)

	return &Dense[V]{sp: sp, data: data}, nil
}

// Space returns the backing space.
func (d *Dense[V]) Space() *space.Space { return d.sp }

// Len returns the cell count (== Space().PointCount()).
func (d *Dense[V]) Len() int { return len(d.data) }

// At returns the value at c. Periodic axes wrap first; coordinates
// outside a non-periodic axis yield ErrOutOfBounds.
func (d *Dense[V]) At(c space.Vector) (V, error) {
	i, err := d.sp.FlatIndex(c)
	if err != nil {
		var zero V

		return zero, ErrOutOfBounds
	}

	return d.data[i], nil
}

// Set stores v at c, wrapping periodic axes first.
func (d *Dense[V]) Set(c space.Vector, v V) error {
	i, err := d.sp.FlatIndex(c)
	if err != nil {
		return ErrOutOfBounds
	}
	d.data[i] = v

	return nil
}

// AtIndex returns the value at flat index i.
func (d *Dense[V]) AtIndex(i int) (V, error) {
	if i < 0 || i >= len(d.data) {
		var zero V

		return zero, ErrIndexRange
	}

	return d.data[i], nil
}

// SetIndex stores v at flat index i.
func (d *Dense[V]) SetIndex(i int, v V) error {
	if i < 0 || i >= len(d.data) {
		return ErrIndexRange
	}
	d.data[i] = v

	return nil
}

// Flat returns the backing slice in enumeration order. The slice is
// shared with the Dense; treat it as read-only or use Clone first.
func (d *Dense[V]) Flat() []V { return d.data }

// Clone returns a Dense over the same space with a copied backing
// slice. Element values are copied as-is; V is a value type by
// contract.
// Complexity: O(PointCount).
func (d *Dense[V]) Clone() *Dense[V] {
	data := make([]V, len(d.data))
	copy(data, d.data)

	return &Dense[V]{sp: d.sp, data: data}
}
