package wave

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/waven/grid"
	"github.com/katalvlaran/waven/space"
	"github.com/katalvlaran/waven/tiling"
)

// Runner drives Wave Function Collapse runs of one analysis over one
// output space. A Runner is read-only after construction; concurrent
// runs are safe as long as each gets its own RNG.
type Runner[T comparable] struct {
	out   *space.Space
	an    *tiling.Analysis[T]
	proto *Node[T]
}

// New builds a Runner. The analysis direction space and the output
// space must agree on dimension count.
func New[T comparable](out *space.Space, an *tiling.Analysis[T]) (*Runner[T], error) {
	if out == nil {
		return nil, ErrNilSpace
	}
	if an == nil {
		return nil, ErrNilAnalysis
	}
	if an.DirSpace().Dim() != out.Dim() {
		return nil, ErrDimensionMismatch
	}

	return &Runner[T]{out: out, an: an, proto: newPrototype(an)}, nil
}

// Space returns the output space.
func (r *Runner[T]) Space() *space.Space { return r.out }

// Analysis returns the adjacency model the runner collapses against.
func (r *Runner[T]) Analysis() *tiling.Analysis[T] { return r.an }

// banItem is one pending propagation fact: tile was banned at the cell
// with the given flat index.
type banItem[T comparable] struct {
	idx  int
	tile T
}

// Run executes one collapse with empty options. A nil rng selects a
// fixed deterministic stream.
func (r *Runner[T]) Run(rng *rand.Rand) (*Wave[T], error) {
	return r.RunWith(rng, DefaultRunOptions[T]())
}

// RunWith executes one collapse seeded by opts.
//
// Stage 1 (Allocate): clone the prototype node into every output cell.
// Stage 2 (Seed): apply predetermined bans and tile assignments,
// pushing every removal onto the propagation stack; out-of-bounds
// entries are silently dropped.
// Stage 3 (Settle): propagate the seeds to quiescence.
// Stage 4 (Loop): select the lowest-entropy undecided cell (RNG
// tie-break), pick a tile weighted by frequency, collapse, propagate.
//
// On success every node holds exactly one possibility and the wave is
// returned with a nil error. On contradiction the partial wave is
// returned with ErrContradiction; rerun with a different seed to retry.
//
// Complexity: O(cells × tiles × directions) propagation work plus an
// O(cells) selection scan per collapse.
func (r *Runner[T]) RunWith(rng *rand.Rand, opts RunOptions[T]) (*Wave[T], error) {
	rng = rngOrDefault(rng)

	nodes, err := grid.NewDenseFill(r.out, func() *Node[T] { return r.proto.clone() })
	if err != nil {
		return nil, err
	}
	w := &Wave[T]{nodes: nodes}

	stack := make([]banItem[T], 0, 64)

	// Predetermined bans. Bans of already-impossible tiles are no-ops:
	// pushing them would corrupt neighbor counters.
	for _, b := range opts.Bans {
		idx, ok := r.cellIndex(b.At)
		if !ok {
			continue
		}
		node, _ := nodes.AtIndex(idx)
		if !node.Has(b.Tile) {
			continue
		}
		if err = node.Ban(b.Tile); err != nil {
			return w, err
		}
		if node.Unresolvable() {
			return w, ErrContradiction
		}
		stack = append(stack, banItem[T]{idx: idx, tile: b.Tile})
	}

	// Predetermined tiles: last entry per cell wins.
	seen := make(map[int]int)
	chosen := make([]Predetermined[T], 0, len(opts.Tiles))
	for _, p := range opts.Tiles {
		idx, ok := r.cellIndex(p.At)
		if !ok {
			continue
		}
		if at, dup := seen[idx]; dup {
			chosen[at] = p

			continue
		}
		seen[idx] = len(chosen)
		chosen = append(chosen, p)
	}
	for _, p := range chosen {
		idx, _ := r.cellIndex(p.At)
		if err = r.collapse(nodes, idx, p.Tile, &stack); err != nil {
			return w, err
		}
	}

	if err = r.propagate(nodes, &stack); err != nil {
		return w, err
	}

	for {
		sel := r.selectLowestEntropy(nodes, rng)
		if sel < 0 {
			return w, nil
		}
		node, _ := nodes.AtIndex(sel)
		t, perr := r.weightedPick(node, rng)
		if perr != nil {
			return w, perr
		}
		if err = r.collapse(nodes, sel, t, &stack); err != nil {
			return w, err
		}
		if err = r.propagate(nodes, &stack); err != nil {
			return w, err
		}
	}
}

// cellIndex resolves a coordinate to its flat index, reporting false
// for out-of-bounds or mismatched coordinates (silently-ignored seeds).
func (r *Runner[T]) cellIndex(c space.Vector) (int, bool) {
	cw := r.out.Wrap(c)
	if !r.out.Contains(cw) {
		return 0, false
	}
	idx, err := r.out.FlatIndex(cw)
	if err != nil {
		return 0, false
	}

	return idx, true
}

// collapse reduces the node at idx to the single tile t, banning every
// alternative and pushing each removal. The bans run even when the
// caller supplied the choice, so propagation reflects every forbidden
// alternative. Collapsing toward an impossible tile empties the node
// and surfaces ErrContradiction.
func (r *Runner[T]) collapse(nodes *grid.Dense[*Node[T]], idx int, t T, stack *[]banItem[T]) error {
	node, err := nodes.AtIndex(idx)
	if err != nil {
		return err
	}
	for _, other := range node.Possible() {
		if other == t {
			continue
		}
		if berr := node.Ban(other); berr != nil {
			return berr
		}
		*stack = append(*stack, banItem[T]{idx: idx, tile: other})
	}
	if node.Unresolvable() {
		return ErrContradiction
	}

	return nil
}

// propagate drains the ban stack depth-first. For each banned tile at
// cell c and each direction d, the wrapped neighbor c+d loses one unit
// of support for every tile the banned one used to enable there; tiles
// whose support reaches zero are banned in turn and pushed.
func (r *Runner[T]) propagate(nodes *grid.Dense[*Node[T]], stack *[]banItem[T]) error {
	dirs := r.an.Directions()

	for len(*stack) > 0 {
		item := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]

		c, err := r.out.CoordsAt(item.idx)
		if err != nil {
			return err
		}

		for di, d := range dirs {
			ca, aerr := c.Add(d)
			if aerr != nil {
				return aerr
			}
			ca = r.out.Wrap(ca)
			if !r.out.Contains(ca) {
				continue
			}
			ai, ierr := r.out.FlatIndex(ca)
			if ierr != nil {
				return ierr
			}
			adj, _ := nodes.AtIndex(ai)
			if adj.Unresolvable() {
				continue
			}

			oppIdx := r.an.OppositeIndex(di)
			for _, ta := range adj.Possible() {
				if !r.an.ContainsIndexed(item.tile, ta, di) {
					continue
				}
				e := adj.enab(ta)
				if e == nil {
					continue
				}
				if e.RemoveFrom(oppIdx, 1) {
					continue
				}
				if berr := adj.Ban(ta); berr != nil {
					return berr
				}
				if adj.Unresolvable() {
					return ErrContradiction
				}
				*stack = append(*stack, banItem[T]{idx: ai, tile: ta})
			}
		}
	}

	return nil
}

// selectLowestEntropy scans for the undecided node with the smallest
// entropy, breaking exact ties uniformly at random. Returns −1 when
// every node is decided.
func (r *Runner[T]) selectLowestEntropy(nodes *grid.Dense[*Node[T]], rng *rand.Rand) int {
	best := -1
	bestEntropy := 0.0
	ties := 0

	for i := 0; i < nodes.Len(); i++ {
		node, _ := nodes.AtIndex(i)
		if node.Count() <= 1 {
			continue
		}
		switch {
		case best < 0 || node.Entropy() < bestEntropy:
			best = i
			bestEntropy = node.Entropy()
			ties = 1
		case node.Entropy() == bestEntropy:
			ties++
			if rng.Intn(ties) == 0 {
				best = i
			}
		}
	}

	return best
}

// weightedPick draws one of the node's remaining tiles with probability
// proportional to its analysis weight. A non-positive total weight is a
// never-expected state and surfaces ErrInternal.
func (r *Runner[T]) weightedPick(node *Node[T], rng *rand.Rand) (T, error) {
	var zero T
	total := node.TotalWeight()
	if total <= 0 {
		return zero, fmt.Errorf("%w: weighted pick over total weight %v", ErrInternal, total)
	}

	roll := rng.Float64() * total
	tiles := node.Possible()
	for _, t := range tiles {
		w, err := r.an.Weight(t)
		if err != nil {
			return zero, err
		}
		if roll < w.W {
			return t, nil
		}
		roll -= w.W
	}

	// Float drift can leave roll marginally above the last weight.
	return tiles[len(tiles)-1], nil
}
