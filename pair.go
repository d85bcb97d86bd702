package compose

// Pair is a 2-tuple value.
type Pair[A, B any] struct {
	first  A
	second B
}

// NewPair is the canonical constructor for a Pair.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// First returns the first value in the Pair.
func (p Pair[A, B]) First() A {
	return p.first
}

// Second returns the second value in the Pair.
func (p Pair[A, B]) Second() B {
	return p.second
}

// Unpack returns both members of the Pair.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// MapFirst lifts f into a function that applies it to the first element of
// a Pair, carrying the second element through unchanged.
//
// MapFirst panics if f is nil.
func MapFirst[A, B, C any](f func(A) B) func(Pair[A, C]) Pair[B, C] {
	if f == nil {
		panic("compose.MapFirst: nil function")
	}
	return func(p Pair[A, C]) Pair[B, C] {
		return NewPair(f(p.first), p.second)
	}
}

// MapSecond lifts f into a function that applies it to the second element
// of a Pair, carrying the first element through unchanged.
//
// MapSecond panics if f is nil.
func MapSecond[A, B, C any](f func(A) B) func(Pair[C, A]) Pair[C, B] {
	if f == nil {
		panic("compose.MapSecond: nil function")
	}
	return func(p Pair[C, A]) Pair[C, B] {
		return NewPair(p.first, f(p.second))
	}
}

// FirstOf returns a Property focused on the first element of a Pair.
func FirstOf[A, B any]() Property[Pair[A, B], A] {
	return Field(func(p *Pair[A, B]) *A { return &p.first })
}

// SecondOf returns a Property focused on the second element of a Pair.
func SecondOf[A, B any]() Property[Pair[A, B], B] {
	return Field(func(p *Pair[A, B]) *B { return &p.second })
}
