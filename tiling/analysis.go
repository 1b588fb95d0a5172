package tiling

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/waven/grid"
	"github.com/katalvlaran/waven/space"
)

// Weight pairs a tile's frequency with its precomputed w·ln w term, so
// entropy updates stay subtraction-only during a run.
type Weight struct {
	// W is the tile frequency (occurrence count, ≥ 1).
	W float64
	// WLogW is W·ln(W), zero when W == 1.
	WLogW float64
}

func weightOf(count int) Weight {
	w := float64(count)

	return Weight{W: w, WLogW: w * math.Log(w)}
}

// SampleOptions tunes FromSample.
type SampleOptions[T comparable] struct {
	// Ignore designates an absent tile value: cells holding it are
	// excluded from counting and never participate in learned rules.
	// Nil disables the filter.
	Ignore *T
}

// DefaultSampleOptions returns SampleOptions with no ignored tile.
func DefaultSampleOptions[T comparable]() SampleOptions[T] {
	return SampleOptions[T]{}
}

// Analysis is the read-only adjacency model: rule set, tile weights,
// weight totals, maximum entropy and per-(tile, direction) support
// counts. Safe for concurrent use once constructed.
type Analysis[T comparable] struct {
	dirSpace *space.Space
	dirs     []space.Vector // non-zero offsets, flat-index order
	dirIndex map[string]int // Vector.Key() → position in dirs
	opp      []int          // opp[i] = index of dirs[i].Neg()

	rules   []Rule[T]
	ruleSet map[ruleKey[T]]struct{}

	tiles   []T // deterministic order (sorted by formatted value)
	weights map[T]Weight
	total   Weight
	maxEnt  float64

	support map[T][]int // per tile, per direction index
}

// newAnalysis wires the direction tables shared by both constructors.
func newAnalysis[T comparable](sample *space.Space) *Analysis[T] {
	ds := sample.Unit()
	an := &Analysis[T]{
		dirSpace: ds,
		dirIndex: make(map[string]int),
		ruleSet:  make(map[ruleKey[T]]struct{}),
		weights:  make(map[T]Weight),
		support:  make(map[T][]int),
	}
	for _, d := range ds.Points() {
		if d.IsZero() {
			continue
		}
		an.dirIndex[d.Key()] = len(an.dirs)
		an.dirs = append(an.dirs, d)
	}
	an.opp = make([]int, len(an.dirs))
	for i, d := range an.dirs {
		an.opp[i] = an.dirIndex[d.Neg().Key()]
	}

	return an
}

// FromSample learns an Analysis from an example tiling.
//
// Stage 1 (Directions): derive the unit direction box of sample.Space().
// Stage 2 (Scan): for every cell, count its tile and, for every
// non-zero offset d, record the rule (tile, neighbor, d) plus its
// inverse whenever the wrapped neighbor is in bounds. Duplicates are
// dropped; cells holding the ignored tile contribute nothing.
// Stage 3 (Finalize): weights from counts, totals, maximum entropy,
// support table.
//
// Complexity: O(PointCount × 3ⁿ) time.
func FromSample[T comparable](sample *grid.Dense[T], opts *SampleOptions[T]) (*Analysis[T], error) {
	if sample == nil {
		return nil, ErrNilSample
	}
	var ignore *T
	if opts != nil {
		ignore = opts.Ignore
	}
	ignored := func(t T) bool { return ignore != nil && t == *ignore }

	sp := sample.Space()
	an := newAnalysis[T](sp)
	counts := make(map[T]int)

	for i := 0; i < sp.PointCount(); i++ {
		c, err := sp.CoordsAt(i)
		if err != nil {
			return nil, err
		}
		t, err := sample.AtIndex(i)
		if err != nil {
			return nil, err
		}
		if ignored(t) {
			continue
		}
		counts[t]++

		for di, d := range an.dirs {
			ca, aerr := c.Add(d)
			if aerr != nil {
				return nil, aerr
			}
			ca = sp.Wrap(ca)
			if !sp.Contains(ca) {
				continue
			}
			ta, terr := sample.At(ca)
			if terr != nil {
				return nil, terr
			}
			if ignored(ta) {
				continue
			}
			an.insert(NewRule(t, ta, d), di)
			an.insert(NewRule(ta, t, d.Neg()), an.opp[di])
		}
	}

	if err := an.finalize(counts); err != nil {
		return nil, err
	}

	return an, nil
}

// FromRules builds an Analysis from explicit rules and tile counts.
// Rules are deduplicated; no inverse is added automatically. Every rule
// direction must match the space dimension, be non-zero and lie within
// the unit direction box; every tile a rule names must carry a count;
// all counts must be ≥ 1.
func FromRules[T comparable](sp *space.Space, rules []Rule[T], counts map[T]int) (*Analysis[T], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	an := newAnalysis[T](sp)

	for _, r := range rules {
		if r.Direction.Dim() != sp.Dim() {
			return nil, fmt.Errorf("%w: rule %s", ErrDimensionMismatch, r)
		}
		if r.Direction.IsZero() {
			return nil, fmt.Errorf("%w: rule %s", ErrZeroDirection, r)
		}
		di, ok := an.dirIndex[r.Direction.Key()]
		if !ok {
			return nil, fmt.Errorf("%w: rule %s", ErrDirectionRange, r)
		}
		if _, ok = counts[r.Origin]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownTile, r.Origin)
		}
		if _, ok = counts[r.Adjacent]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownTile, r.Adjacent)
		}
		an.insert(r, di)
	}

	if err := an.finalize(counts); err != nil {
		return nil, err
	}

	return an, nil
}

// insert adds r to the set unless already present. di is the index of
// r.Direction in the direction list.
func (an *Analysis[T]) insert(r Rule[T], di int) {
	k := ruleKey[T]{origin: r.Origin, adjacent: r.Adjacent, dir: di}
	if _, dup := an.ruleSet[k]; dup {
		return
	}
	an.ruleSet[k] = struct{}{}
	an.rules = append(an.rules, r)
}

// finalize derives weights, totals, maximum entropy and the support
// table from occurrence counts.
func (an *Analysis[T]) finalize(counts map[T]int) error {
	if len(counts) == 0 {
		return ErrNoTiles
	}
	for t, n := range counts {
		if n < 1 {
			return fmt.Errorf("%w: %v has count %d", ErrNonPositiveWeight, t, n)
		}
		an.weights[t] = weightOf(n)
		an.tiles = append(an.tiles, t)
	}
	sort.Slice(an.tiles, func(i, j int) bool {
		return fmt.Sprint(an.tiles[i]) < fmt.Sprint(an.tiles[j])
	})

	for _, w := range an.weights {
		an.total.W += w.W
		an.total.WLogW += w.WLogW
	}
	an.maxEnt = Entropy(an.total)

	for _, t := range an.tiles {
		an.support[t] = make([]int, len(an.dirs))
	}
	for _, r := range an.rules {
		di := an.dirIndex[r.Direction.Key()]
		an.support[r.Adjacent][an.opp[di]]++
	}

	return nil
}

// Entropy computes the Shannon entropy of a weight multiset:
// ln(ΣW) − Σ(W·lnW)/ΣW. A single-tile multiset yields zero.
func Entropy(total Weight) float64 {
	return math.Log(total.W) - total.WLogW/total.W
}

// DirSpace returns the unit direction box of the analyzed space.
func (an *Analysis[T]) DirSpace() *space.Space { return an.dirSpace }

// Directions returns the non-zero adjacency offsets in their fixed
// enumeration order. The returned slice is a copy.
func (an *Analysis[T]) Directions() []space.Vector {
	out := make([]space.Vector, len(an.dirs))
	copy(out, an.dirs)

	return out
}

// DirectionCount returns the number of non-zero adjacency offsets.
func (an *Analysis[T]) DirectionCount() int { return len(an.dirs) }

// OppositeIndex maps a direction index to the index of its negation.
func (an *Analysis[T]) OppositeIndex(di int) int { return an.opp[di] }

// Contains reports whether the fact (origin, adjacent, dir) is in the
// rule set. Unknown directions report false. Amortized O(1).
func (an *Analysis[T]) Contains(origin, adjacent T, dir space.Vector) bool {
	di, ok := an.dirIndex[dir.Key()]
	if !ok {
		return false
	}

	return an.ContainsIndexed(origin, adjacent, di)
}

// ContainsIndexed is Contains with the direction given by its index in
// Directions(); this is the hot-path form the wave engine calls.
func (an *Analysis[T]) ContainsIndexed(origin, adjacent T, di int) bool {
	_, ok := an.ruleSet[ruleKey[T]{origin: origin, adjacent: adjacent, dir: di}]

	return ok
}

// Rules returns the deduplicated rules in insertion order (a copy).
func (an *Analysis[T]) Rules() []Rule[T] {
	out := make([]Rule[T], len(an.rules))
	copy(out, an.rules)

	return out
}

// RuleCount returns the number of distinct rules.
func (an *Analysis[T]) RuleCount() int { return len(an.rules) }

// Tiles returns every weighted tile in a deterministic order (a copy).
func (an *Analysis[T]) Tiles() []T {
	out := make([]T, len(an.tiles))
	copy(out, an.tiles)

	return out
}

// Weight returns the weight pair of t, or ErrUnknownTile.
func (an *Analysis[T]) Weight(t T) (Weight, error) {
	w, ok := an.weights[t]
	if !ok {
		return Weight{}, fmt.Errorf("%w: %v", ErrUnknownTile, t)
	}

	return w, nil
}

// TotalWeight returns the summed weight pair over all tiles.
func (an *Analysis[T]) TotalWeight() Weight { return an.total }

// MaxEntropy returns the Shannon entropy of the full tile multiset —
// the entropy every cell starts a run with.
func (an *Analysis[T]) MaxEntropy() float64 { return an.maxEnt }

// Support returns, for each direction index, how many distinct rules
// permit t as the adjacent tile from the opposite direction: the
// initial enablement counters of t. The returned slice is a copy.
func (an *Analysis[T]) Support(t T) []int {
	row, ok := an.support[t]
	if !ok {
		return make([]int, len(an.dirs))
	}
	out := make([]int, len(row))
	copy(out, row)

	return out
}
