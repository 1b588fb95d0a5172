package tiling

import (
	"fmt"

	"github.com/katalvlaran/waven/space"
)

// Rule is a directed adjacency fact: Origin may appear with Adjacent at
// offset Direction. Rules compare structurally; a rule and its inverse
// are distinct facts, and the analysis stores both when learning from a
// sample.
type Rule[T comparable] struct {
	// Origin is the tile at the reference cell.
	Origin T
	// Adjacent is the tile at the neighboring cell.
	Adjacent T
	// Direction is the non-zero offset from origin cell to neighbor.
	Direction space.Vector
}

// NewRule builds a Rule. Direction validity (non-zero, in the direction
// space, matching dimension) is enforced by the enclosing Analysis.
func NewRule[T comparable](origin, adjacent T, dir space.Vector) Rule[T] {
	return Rule[T]{Origin: origin, Adjacent: adjacent, Direction: dir}
}

// Inverse returns the mirrored fact: Adjacent may appear with Origin at
// the negated offset.
func (r Rule[T]) Inverse() Rule[T] {
	return Rule[T]{Origin: r.Adjacent, Adjacent: r.Origin, Direction: r.Direction.Neg()}
}

// Equal reports structural equality.
func (r Rule[T]) Equal(o Rule[T]) bool {
	return r.Origin == o.Origin && r.Adjacent == o.Adjacent && r.Direction.Equal(o.Direction)
}

// String implements fmt.Stringer: "A -(0,1)-> B".
func (r Rule[T]) String() string {
	return fmt.Sprintf("%v -%s-> %v", r.Origin, r.Direction, r.Adjacent)
}

// ruleKey identifies a rule inside the analysis hash set. Directions
// are collapsed to their index in the analysis direction list, so the
// key is a plain comparable struct.
type ruleKey[T comparable] struct {
	origin, adjacent T
	dir              int
}
