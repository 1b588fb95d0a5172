package wave

import (
	"math"

	"github.com/katalvlaran/waven/tiling"
)

// Node is one cell's wave state: its still-possible tiles with their
// enablement counters, plus incrementally maintained weight and entropy
// totals. Nodes are created by cloning a per-run prototype and mutated
// only through Ban.
type Node[T comparable] struct {
	an *tiling.Analysis[T]

	// order preserves a deterministic possibility iteration order; the
	// map gives O(1) membership and counter access.
	order    []T
	possible map[T]*Enablement

	totalW, totalWLogW float64
	entropy            float64
	unresolvable       bool
}

// newPrototype builds the shared initial node: every weighted tile
// possible, counters seeded from the analysis support table, totals
// equal to the full multiset.
// Complexity: O(tiles × directions).
func newPrototype[T comparable](an *tiling.Analysis[T]) *Node[T] {
	tiles := an.Tiles()
	n := &Node[T]{
		an:       an,
		order:    tiles,
		possible: make(map[T]*Enablement, len(tiles)),
	}
	for _, t := range tiles {
		n.possible[t] = newEnablement(an.Support(t))
	}
	total := an.TotalWeight()
	n.totalW = total.W
	n.totalWLogW = total.WLogW
	n.entropy = an.MaxEntropy()

	return n
}

// clone deep-copies the possibility map and every counter, so each
// cell starts from an equal state without rescanning the rule set.
// Complexity: O(tiles × directions).
func (n *Node[T]) clone() *Node[T] {
	c := &Node[T]{
		an:         n.an,
		order:      make([]T, len(n.order)),
		possible:   make(map[T]*Enablement, len(n.possible)),
		totalW:     n.totalW,
		totalWLogW: n.totalWLogW,
		entropy:    n.entropy,
	}
	copy(c.order, n.order)
	for t, e := range n.possible {
		c.possible[t] = e.clone()
	}

	return c
}

// Ban removes t from the node's possibilities and updates the weight
// and entropy totals. Banning the last possibility marks the node
// unresolvable (the contradiction signal); once unresolvable, further
// bans are skipped. Banning a tile that is not possible returns
// ErrUnknownTile.
func (n *Node[T]) Ban(t T) error {
	if n.unresolvable {
		return nil
	}
	if _, ok := n.possible[t]; !ok {
		return ErrUnknownTile
	}
	delete(n.possible, t)
	for i, o := range n.order {
		if o == t {
			n.order = append(n.order[:i], n.order[i+1:]...)

			break
		}
	}
	if len(n.order) == 0 {
		n.unresolvable = true

		return nil
	}

	w, err := n.an.Weight(t)
	if err != nil {
		return err
	}
	n.totalW -= w.W
	n.totalWLogW -= w.WLogW
	n.entropy = math.Log(n.totalW) - n.totalWLogW/n.totalW

	return nil
}

// enab returns t's counters, or nil when t is no longer possible.
func (n *Node[T]) enab(t T) *Enablement { return n.possible[t] }

// Possible returns the remaining tiles in deterministic order (a copy).
func (n *Node[T]) Possible() []T {
	out := make([]T, len(n.order))
	copy(out, n.order)

	return out
}

// Count returns the number of remaining possibilities.
func (n *Node[T]) Count() int { return len(n.order) }

// Has reports whether t is still possible here.
func (n *Node[T]) Has(t T) bool {
	_, ok := n.possible[t]

	return ok
}

// TotalWeight returns the summed weight of the remaining possibilities.
func (n *Node[T]) TotalWeight() float64 { return n.totalW }

// Entropy returns the cell's current Shannon entropy.
func (n *Node[T]) Entropy() float64 { return n.entropy }

// Unresolvable reports whether every possibility has been banned.
func (n *Node[T]) Unresolvable() bool { return n.unresolvable }

// Sole returns the single remaining tile, or ErrNotCollapsed when the
// cell is undecided or dead.
func (n *Node[T]) Sole() (T, error) {
	if len(n.order) != 1 {
		var zero T

		return zero, ErrNotCollapsed
	}

	return n.order[0], nil
}
