package compose

import "iter"

type (

	// MapFunc is a pure mapping function that transforms a value of type In
	// into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be kept.
	Predicate[T any] func(item T) bool
)

// MapLift lifts fn into a function over slices.
//
// The returned function produces a new slice of the same length as its
// input, where element i is fn applied to input element i. The input slice
// is never modified. A nil or empty input yields an empty, non-nil slice.
//
// MapLift panics if fn is nil.
func MapLift[In, Out any](fn MapFunc[In, Out]) func([]In) []Out {
	if fn == nil {
		panic("compose.MapLift: nil function")
	}
	return func(in []In) []Out {
		out := make([]Out, len(in))
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	}
}

// FilterLift lifts predicate into a function over slices.
//
// The returned function produces a new slice holding exactly the elements
// for which predicate returns true, in their original relative order. The
// input slice is never modified. A nil or empty input yields an empty,
// non-nil slice.
//
// FilterLift panics if predicate is nil.
func FilterLift[T any](predicate Predicate[T]) func([]T) []T {
	if predicate == nil {
		panic("compose.FilterLift: nil predicate")
	}
	return func(in []T) []T {
		out := make([]T, 0, len(in))
		for _, v := range in {
			if predicate(v) {
				out = append(out, v)
			}
		}
		return out
	}
}

// FlatMapLift lifts fn into a function over slices that concatenates the
// slices returned by fn, in input order.
//
// FlatMapLift(fn) is equivalent to ComposeForward(MapLift(fn), Flatten[Out]).
//
// FlatMapLift panics if fn is nil.
func FlatMapLift[In, Out any](fn MapFunc[In, []Out]) func([]In) []Out {
	if fn == nil {
		panic("compose.FlatMapLift: nil function")
	}
	return ComposeForward(MapLift(fn), Flatten[Out])
}

// Flatten concatenates slices in order into a new slice.
func Flatten[T any](slices [][]T) []T {
	n := 0
	for _, s := range slices {
		n += len(s)
	}
	out := make([]T, 0, n)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// ChunkLift returns a function that splits a slice into consecutive chunks
// of chunkSize elements. The final chunk may be smaller than chunkSize.
//
// Every chunk has its own backing array, so retaining or modifying one
// chunk never affects another chunk or the input.
//
// ChunkLift panics if chunkSize is not positive.
func ChunkLift[T any](chunkSize int) func([]T) [][]T {
	if chunkSize <= 0 {
		panic("compose.ChunkLift: chunkSize must be positive")
	}
	return func(in []T) [][]T {
		n := len(in) / chunkSize
		if len(in)%chunkSize != 0 {
			n++
		}
		out := make([][]T, 0, n)
		for start, end := 0, 0; start < len(in); start = end {
			end = start + min(chunkSize, len(in)-start)
			chunk := make([]T, end-start)
			copy(chunk, in[start:end])
			out = append(out, chunk)
		}
		return out
	}
}

// GroupByLift returns a function that groups consecutive values sharing
// the same key.
//
// Values are never reordered: a group ends as soon as the key changes, so
// given keys
//
//	A, A, B, B, A
//
// the result is
//
//	[A, A], [B, B], [A]
//
// Sort the input by key first if one group per key is wanted. Every group
// has its own backing array. A nil or empty input yields an empty, non-nil
// slice.
//
// GroupByLift panics if keyFunc is nil.
func GroupByLift[T any, K comparable](keyFunc func(T) K) func([]T) [][]T {
	if keyFunc == nil {
		panic("compose.GroupByLift: nil key function")
	}
	return func(in []T) [][]T {
		out := make([][]T, 0)
		var group []T
		var current K
		for _, v := range in {
			k := keyFunc(v)
			if len(group) > 0 && k != current {
				out = append(out, group)
				group = nil
			}
			current = k
			group = append(group, v)
		}
		if len(group) > 0 {
			out = append(out, group)
		}
		return out
	}
}

// MapSeq is the lazy form of MapLift: the returned function wraps an
// iter.Seq and applies fn to each value as it is pulled.
//
// Nothing is evaluated until the resulting sequence is iterated, and
// iteration stops as soon as the consumer stops.
//
// MapSeq panics if fn is nil.
func MapSeq[In, Out any](fn MapFunc[In, Out]) func(iter.Seq[In]) iter.Seq[Out] {
	if fn == nil {
		panic("compose.MapSeq: nil function")
	}
	return func(seq iter.Seq[In]) iter.Seq[Out] {
		return func(yield func(Out) bool) {
			for in := range seq {
				if !yield(fn(in)) {
					return
				}
			}
		}
	}
}

// FilterSeq is the lazy form of FilterLift: the returned function wraps an
// iter.Seq and yields only the values for which predicate returns true.
//
// FilterSeq panics if predicate is nil.
func FilterSeq[T any](predicate Predicate[T]) func(iter.Seq[T]) iter.Seq[T] {
	if predicate == nil {
		panic("compose.FilterSeq: nil predicate")
	}
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for in := range seq {
				if predicate(in) {
					if !yield(in) {
						return
					}
				}
			}
		}
	}
}
