package wave

import (
	"github.com/katalvlaran/waven/grid"
	"github.com/katalvlaran/waven/space"
)

// Wave is the per-cell node array a run produces. On success every
// node holds exactly one possibility; on contradiction the partial
// state is preserved so callers can locate the dead cell.
type Wave[T comparable] struct {
	nodes *grid.Dense[*Node[T]]
}

// Space returns the output space the wave spans.
func (w *Wave[T]) Space() *space.Space { return w.nodes.Space() }

// NodeAt returns the node at c (wrapping periodic axes), or
// grid.ErrOutOfBounds.
func (w *Wave[T]) NodeAt(c space.Vector) (*Node[T], error) {
	return w.nodes.At(c)
}

// NodeAtIndex returns the node at flat index i.
func (w *Wave[T]) NodeAtIndex(i int) (*Node[T], error) {
	return w.nodes.AtIndex(i)
}

// Len returns the cell count.
func (w *Wave[T]) Len() int { return w.nodes.Len() }

// Collapsed projects the wave onto a tile grid by reading each node's
// sole possibility. Returns ErrNotCollapsed when any cell is undecided
// or dead — call only after a successful run.
func (w *Wave[T]) Collapsed() (*grid.Dense[T], error) {
	out, err := grid.NewDense[T](w.nodes.Space())
	if err != nil {
		return nil, err
	}
	for i := 0; i < w.nodes.Len(); i++ {
		n, _ := w.nodes.AtIndex(i)
		t, serr := n.Sole()
		if serr != nil {
			return nil, serr
		}
		if err = out.SetIndex(i, t); err != nil {
			return nil, err
		}
	}

	return out, nil
}
