package tiling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waven/grid"
	"github.com/katalvlaran/waven/space"
	"github.com/katalvlaran/waven/tiling"
)

// strip builds a 1-D non-periodic sample from the given tiles.
func strip(t *testing.T, tiles ...string) *grid.Dense[string] {
	t.Helper()
	s, err := space.NewBox(len(tiles))
	require.NoError(t, err)
	d, err := grid.NewDenseFromSlice(s, tiles)
	require.NoError(t, err)

	return d
}

// TestFromSample_RoundTrip verifies that every adjacent pair of the
// sample appears as a rule, and that every learned rule has its
// learned inverse.
func TestFromSample_RoundTrip(t *testing.T) {
	sample := strip(t, "A", "B", "A")
	an, err := tiling.FromSample(sample, nil)
	require.NoError(t, err)

	sp := sample.Space()
	for _, c := range sp.Points() {
		tc, aerr := sample.At(c)
		require.NoError(t, aerr)
		for _, d := range an.Directions() {
			ca, serr := c.Add(d)
			require.NoError(t, serr)
			ca = sp.Wrap(ca)
			if !sp.Contains(ca) {
				continue
			}
			ta, terr := sample.At(ca)
			require.NoError(t, terr)
			require.True(t, an.Contains(tc, ta, d), "pair (%v,%v,%s) missing", tc, ta, d)
		}
	}

	for _, r := range an.Rules() {
		inv := r.Inverse()
		require.True(t, an.Contains(inv.Origin, inv.Adjacent, inv.Direction),
			"rule %s lacks inverse", r)
	}
	require.Equal(t, 4, an.RuleCount())
}

// TestFromSample_Weights verifies counts, totals and the maximum
// entropy arithmetic.
func TestFromSample_Weights(t *testing.T) {
	an, err := tiling.FromSample(strip(t, "A", "B", "A"), nil)
	require.NoError(t, err)

	wa, err := an.Weight("A")
	require.NoError(t, err)
	require.Equal(t, 2.0, wa.W)
	require.InDelta(t, 2*math.Log(2), wa.WLogW, 1e-12)

	wb, err := an.Weight("B")
	require.NoError(t, err)
	require.Equal(t, 1.0, wb.W)
	require.Zero(t, wb.WLogW)

	total := an.TotalWeight()
	require.Equal(t, 3.0, total.W)
	require.InDelta(t, 2*math.Log(2), total.WLogW, 1e-12)
	require.InDelta(t, math.Log(3)-2*math.Log(2)/3, an.MaxEntropy(), 1e-12)

	_, err = an.Weight("Z")
	require.ErrorIs(t, err, tiling.ErrUnknownTile)
}

// TestFromSample_SingleTile verifies the degenerate one-tile analysis:
// self-adjacency both ways and zero entropy from the start.
func TestFromSample_SingleTile(t *testing.T) {
	an, err := tiling.FromSample(strip(t, "X", "X", "X", "X", "X"), nil)
	require.NoError(t, err)

	require.Equal(t, 2, an.RuleCount())
	require.True(t, an.Contains("X", "X", space.Vec(1)))
	require.True(t, an.Contains("X", "X", space.Vec(-1)))

	w, err := an.Weight("X")
	require.NoError(t, err)
	require.Equal(t, 5.0, w.W)
	require.InDelta(t, 0, an.MaxEntropy(), 1e-12)
}

// TestFromSample_Support verifies the initial enablement table: one
// supporter per direction for each tile of a strict alternation.
func TestFromSample_Support(t *testing.T) {
	an, err := tiling.FromSample(strip(t, "A", "B", "A", "B", "A", "B"), nil)
	require.NoError(t, err)

	require.Equal(t, 2, an.DirectionCount())
	for _, tile := range an.Tiles() {
		for di, n := range an.Support(tile) {
			require.Equal(t, 1, n, "Support(%v)[%d]", tile, di)
		}
	}
	for di := range an.Directions() {
		require.Equal(t, di, an.OppositeIndex(an.OppositeIndex(di)))
	}
}

// TestFromSample_Ignore verifies the absent-tile filter: ignored cells
// contribute neither weights nor rules.
func TestFromSample_Ignore(t *testing.T) {
	hole := "_"
	opts := tiling.DefaultSampleOptions[string]()
	opts.Ignore = &hole

	an, err := tiling.FromSample(strip(t, "A", "_", "B"), &opts)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"A", "B"}, an.Tiles())
	require.Equal(t, 0, an.RuleCount(), "pairs through the hole are not adjacencies")

	_, err = an.Weight("_")
	require.ErrorIs(t, err, tiling.ErrUnknownTile)
}

// TestFromSample_Periodic verifies wrap-around adjacency: the strip
// ends are neighbors on a periodic axis.
func TestFromSample_Periodic(t *testing.T) {
	s, err := space.New(space.Vec(0), space.Vec(2), []bool{true})
	require.NoError(t, err)
	sample, err := grid.NewDenseFromSlice(s, []string{"A", "B", "C"})
	require.NoError(t, err)

	an, err := tiling.FromSample(sample, nil)
	require.NoError(t, err)

	require.True(t, an.Contains("C", "A", space.Vec(1)), "wrap pair C→A")
	require.True(t, an.Contains("A", "C", space.Vec(-1)))
	require.Equal(t, 6, an.RuleCount())
}

// TestFromSample_TwoD verifies the 2-D direction box (8 offsets) and
// diagonal rule learning on the checker sample.
func TestFromSample_TwoD(t *testing.T) {
	s, err := space.NewBox(2, 2)
	require.NoError(t, err)
	sample, err := grid.NewDenseFromSlice(s, []string{"A", "B", "B", "A"})
	require.NoError(t, err)

	an, err := tiling.FromSample(sample, nil)
	require.NoError(t, err)

	require.Equal(t, 8, an.DirectionCount())
	require.True(t, an.Contains("A", "A", space.Vec(1, 1)), "diagonal self-pair")
	require.True(t, an.Contains("A", "B", space.Vec(0, 1)))
	require.True(t, an.Contains("B", "A", space.Vec(1, 0)))
	require.False(t, an.Contains("A", "A", space.Vec(0, 1)), "orthogonal self-pair never observed")
}

// TestFromRules_Validation walks every construction failure.
func TestFromRules_Validation(t *testing.T) {
	s, err := space.NewBox(4)
	require.NoError(t, err)
	counts := map[string]int{"A": 1, "B": 1}

	cases := []struct {
		name   string
		rules  []tiling.Rule[string]
		counts map[string]int
		err    error
	}{
		{"DimMismatch", []tiling.Rule[string]{tiling.NewRule("A", "B", space.Vec(1, 0))}, counts, tiling.ErrDimensionMismatch},
		{"ZeroDirection", []tiling.Rule[string]{tiling.NewRule("A", "B", space.Vec(0))}, counts, tiling.ErrZeroDirection},
		{"DirectionRange", []tiling.Rule[string]{tiling.NewRule("A", "B", space.Vec(2))}, counts, tiling.ErrDirectionRange},
		{"UnknownTile", []tiling.Rule[string]{tiling.NewRule("A", "C", space.Vec(1))}, counts, tiling.ErrUnknownTile},
		{"NonPositive", nil, map[string]int{"A": 0}, tiling.ErrNonPositiveWeight},
		{"NoTiles", nil, map[string]int{}, tiling.ErrNoTiles},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, cerr := tiling.FromRules(s, tc.rules, tc.counts)
			require.ErrorIs(t, cerr, tc.err)
		})
	}

	_, err = tiling.FromRules[string](nil, nil, counts)
	require.ErrorIs(t, err, tiling.ErrNilSpace)
	_, err = tiling.FromSample[string](nil, nil)
	require.ErrorIs(t, err, tiling.ErrNilSample)
}

// TestFromRules_NoAutoInverse pins the explicit-path contract: callers
// add inverses themselves.
func TestFromRules_NoAutoInverse(t *testing.T) {
	s, err := space.NewBox(4)
	require.NoError(t, err)

	an, err := tiling.FromRules(s,
		[]tiling.Rule[string]{
			tiling.NewRule("A", "B", space.Vec(1)),
			tiling.NewRule("A", "B", space.Vec(1)), // duplicate, dropped
		},
		map[string]int{"A": 2, "B": 3},
	)
	require.NoError(t, err)

	require.Equal(t, 1, an.RuleCount())
	require.True(t, an.Contains("A", "B", space.Vec(1)))
	require.False(t, an.Contains("B", "A", space.Vec(-1)), "no automatic inverse")
}

// TestRule_Inverse verifies the mirrored fact.
func TestRule_Inverse(t *testing.T) {
	r := tiling.NewRule("A", "B", space.Vec(0, 1))
	inv := r.Inverse()

	require.Equal(t, "B", inv.Origin)
	require.Equal(t, "A", inv.Adjacent)
	require.True(t, inv.Direction.Equal(space.Vec(0, -1)))
	require.True(t, inv.Inverse().Equal(r))
}
