package compose_test

import (
	"iter"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/KasperOmsK/compose"
	"github.com/KasperOmsK/compose/internal/iterx"

	"github.com/stretchr/testify/require"
)

func increment(x int) int { return x + 1 }
func square(x int) int    { return x * x }
func isEven(x int) bool   { return x%2 == 0 }

func TestMapLift_TransformsValues(t *testing.T) {
	mapInts := compose.MapLift(compose.ComposeForward(increment, square))

	require.Equal(t, []int{1, 4, 9}, mapInts([]int{0, 1, 2}))
}

func TestMapLift_ChangesType(t *testing.T) {
	lengths := compose.MapLift(func(s string) int { return len(s) })

	require.Equal(t, []int{1, 0, 3}, lengths([]string{"a", "", "abc"}))
}

func TestMapLift_EmptyInput(t *testing.T) {
	mapInts := compose.MapLift(increment)

	out := mapInts(nil)
	require.NotNil(t, out)
	require.Empty(t, out)

	out = mapInts([]int{})
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestMapLift_DoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3}
	out := compose.MapLift(square)(in)

	require.Equal(t, []int{1, 2, 3}, in)

	// the result must not alias the input
	out[0] = 100
	require.Equal(t, 1, in[0])
}

func TestMapLift_Naturality(t *testing.T) {
	inputs := [][]int{nil, {0}, {0, 1, 2}, {-3, 7, 10, 11}}

	for _, in := range inputs {
		composedFirst := compose.MapLift(compose.ComposeForward(increment, square))(in)
		liftedFirst := compose.MapLift(square)(compose.MapLift(increment)(in))

		require.Equal(t, liftedFirst, composedFirst)
	}
}

func TestFilterLift_FiltersCorrectly(t *testing.T) {
	filterEven := compose.FilterLift(isEven)

	require.Equal(t, []int{0, 2, 4}, filterEven([]int{0, 1, 2, 3, 4}))
}

func TestFilterLift_Stable(t *testing.T) {
	type Record struct {
		Key   string
		Value int
	}
	in := []Record{{"a", 5}, {"b", 2}, {"c", 8}, {"d", 1}, {"e", 6}}

	out := compose.FilterLift(func(r Record) bool { return r.Value > 1 })(in)

	require.Equal(t, []Record{{"a", 5}, {"b", 2}, {"c", 8}, {"e", 6}}, out)
	require.LessOrEqual(t, len(out), len(in))
}

func TestFilterLift_RetainsOnlyMatches(t *testing.T) {
	in := []int{9, 4, 4, 7, 0, -2, 13, 8}
	out := compose.FilterLift(isEven)(in)

	for _, v := range out {
		require.True(t, isEven(v))
	}

	// retained elements appear in the same relative order as in the input
	next := 0
	for _, v := range out {
		idx := slices.Index(in[next:], v)
		require.GreaterOrEqual(t, idx, 0)
		next += idx + 1
	}
}

func TestFilterLift_EmptyAndNoMatch(t *testing.T) {
	filterEven := compose.FilterLift(isEven)

	out := filterEven(nil)
	require.NotNil(t, out)
	require.Empty(t, out)

	out = filterEven([]int{1, 3, 5})
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestFilterLift_DoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := compose.FilterLift(isEven)(in)
	out[0] = 100

	require.Equal(t, []int{1, 2, 3, 4}, in)
}

func TestMapThenFilter_MatchesManualLoop(t *testing.T) {
	in := []int{0, 1, 2, 3, 4, 5, 6}
	f := compose.ComposeForward(increment, square)

	pipeline := compose.ComposeForward(compose.MapLift(f), compose.FilterLift(isEven))

	var manual []int
	for _, v := range in {
		if m := f(v); isEven(m) {
			manual = append(manual, m)
		}
	}

	require.Equal(t, manual, compose.Pipe(in, pipeline))
	require.Equal(t, manual, compose.Pipe2(in, compose.MapLift(f), compose.FilterLift(isEven)))
}

func TestFlatMapLift_FlattensInOrder(t *testing.T) {
	flat := compose.FlatMapLift(func(v int) []int {
		return []int{v, v * 10}
	})

	require.Equal(t, []int{1, 10, 2, 20, 3, 30}, flat([]int{1, 2, 3}))
}

func TestFlatMapLift_MatchesMapThenFlatten(t *testing.T) {
	split := func(in string) []string { return strings.Split(in, ",") }
	in := []string{"A,B,C", "D,E,F"}

	v1 := compose.FlatMapLift(split)(in)
	v2 := compose.Flatten(compose.MapLift(split)(in))

	require.Equal(t, v1, v2)
}

func TestFlatten_Empty(t *testing.T) {
	out := compose.Flatten[int](nil)
	require.NotNil(t, out)
	require.Empty(t, out)

	require.Equal(t, []int{1}, compose.Flatten([][]int{{}, {1}, nil}))
}

func TestChunkLift_PanicInvalidChunkSize(t *testing.T) {
	require.Panics(t, func() {
		compose.ChunkLift[int](-1)
	})

	require.Panics(t, func() {
		compose.ChunkLift[int](0)
	})
}

func TestChunkLift_GroupsCorrectly(t *testing.T) {
	chunks := compose.ChunkLift[int](2)([]int{1, 2, 3, 4, 5})

	require.Equal(t, [][]int{
		{1, 2},
		{3, 4},
		{5},
	}, chunks)
}

func TestChunkLift_ChunksDoNotAlias(t *testing.T) {
	in := []int{1, 2, 3, 4}
	chunks := compose.ChunkLift[int](2)(in)

	chunks[0] = append(chunks[0], 99)
	chunks[1][0] = 42

	require.Equal(t, []int{1, 2, 3, 4}, in)
	require.Equal(t, []int{42, 4}, chunks[1])
}

func TestChunkLift_HugeChunkSize(t *testing.T) {
	require.Equal(t, [][]int{{1, 2, 3}}, compose.ChunkLift[int](math.MaxInt)([]int{1, 2, 3}))
	require.Equal(t, [][]int{{1, 2, 3}}, compose.ChunkLift[int](math.MaxInt-1)([]int{1, 2, 3}))
	require.Empty(t, compose.ChunkLift[int](math.MaxInt)(nil))
}

func TestGroupByLift_ConsecutiveRuns(t *testing.T) {
	groups := compose.GroupByLift(func(s string) string { return s })([]string{"A", "A", "B", "B", "A"})

	require.Equal(t, [][]string{
		{"A", "A"},
		{"B", "B"},
		{"A"},
	}, groups)
}

func TestGroupByLift_ByDerivedKey(t *testing.T) {
	byTens := compose.GroupByLift(func(i int) int { return i / 10 })

	require.Equal(t, [][]int{{1, 5}, {12, 19}, {42}}, byTens([]int{1, 5, 12, 19, 42}))
}

func TestGroupByLift_EmptyInput(t *testing.T) {
	groupBy := compose.GroupByLift(func(i int) int { return i })

	for _, in := range [][]int{nil, {}} {
		out := groupBy(in)
		require.NotNil(t, out)
		require.Empty(t, out)
	}
}

func TestGroupByLift_GroupsDoNotAlias(t *testing.T) {
	in := []int{1, 1, 2, 2}
	groups := compose.GroupByLift(func(i int) int { return i })(in)

	groups[0] = append(groups[0], 99)
	groups[1][0] = 42

	require.Equal(t, []int{1, 1, 2, 2}, in)
	require.Equal(t, []int{42, 2}, groups[1])
}

func TestGroupByLift_ComposesWithMapLift(t *testing.T) {
	sum := func(group []int) int {
		total := 0
		for _, v := range group {
			total += v
		}
		return total
	}
	sumRuns := compose.ComposeForward(
		compose.GroupByLift(isEven),
		compose.MapLift(sum),
	)

	require.Equal(t, []int{2, 4, 4}, compose.Pipe([]int{0, 2, 1, 3, 4}, sumRuns))
}

func TestMapSeq_TransformsLazily(t *testing.T) {
	calls := 0
	counted := func(v int) int {
		calls++
		return v * 2
	}

	seq := compose.MapSeq(counted)(seqOf(1, 2, 3))
	require.Equal(t, 0, calls)

	require.Equal(t, []int{2, 4, 6}, iterx.Collect(seq))
	require.Equal(t, 3, calls)
}

func TestMapSeq_StopsWhenConsumerStops(t *testing.T) {
	calls := 0
	counted := func(v int) int {
		calls++
		return v
	}

	seq := compose.MapSeq(counted)(seqOf(1, 2, 3, 4, 5))

	require.Equal(t, []int{1, 2}, iterx.Collect(iterx.Take(seq, 2)))
	require.Equal(t, 2, calls)
}

func TestFilterSeq_FiltersCorrectly(t *testing.T) {
	seq := compose.FilterSeq(isEven)(seqOf(1, 2, 3, 4, 5))

	require.Equal(t, []int{2, 4}, iterx.Collect(seq))
}

func TestSeqLifts_MatchSliceLifts(t *testing.T) {
	in := []int{0, 1, 2, 3, 4, 5}
	f := compose.ComposeForward(increment, square)

	eager := compose.ComposeForward(compose.MapLift(f), compose.FilterLift(isEven))
	lazy := compose.Chain(
		compose.MapSeq(f),
		compose.FilterSeq(isEven),
	)

	require.Equal(t, eager(in), iterx.Collect(lazy(iterx.FromSlice(in))))
}

func TestLifts_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { compose.MapLift[int, int](nil) })
	require.Panics(t, func() { compose.FilterLift[int](nil) })
	require.Panics(t, func() { compose.FlatMapLift[int, int](nil) })
	require.Panics(t, func() { compose.MapSeq[int, int](nil) })
	require.Panics(t, func() { compose.FilterSeq[int](nil) })
	require.Panics(t, func() { compose.GroupByLift[int, int](nil) })
}

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
