package compose

// Pipe applies a to f and returns the result.
//
// Pipe is the named form of the left-to-right application operator:
// Pipe(a, f) reads as "a piped into f". Chains are written by nesting,
// Pipe(Pipe(a, f), g), or with Pipe2 and Pipe3.
func Pipe[A, B any](a A, f func(A) B) B {
	return f(a)
}

// Pipe2 pipes a through f and then g. It is equivalent to
// Pipe(Pipe(a, f), g).
func Pipe2[A, B, C any](a A, f func(A) B, g func(B) C) C {
	return g(f(a))
}

// Pipe3 pipes a through f, g and h, in that order.
func Pipe3[A, B, C, D any](a A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(a)))
}

// ComposeForward returns a function that feeds its argument to f and the
// result of f to g.
//
// ComposeForward(f, g)(x) == g(f(x))
//
// The returned function holds f and g as they were when ComposeForward was
// called; rebinding the caller's variables afterwards does not affect it.
//
// ComposeForward panics if f or g is nil.
func ComposeForward[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	if f == nil || g == nil {
		panic("compose.ComposeForward: nil function")
	}
	return func(a A) C {
		return g(f(a))
	}
}

// ComposeBackward is ComposeForward with its operands swapped, so that
// ComposeBackward(g, f) reads as "g after f".
//
// ComposeBackward(g, f)(x) == g(f(x))
//
// ComposeBackward panics if g or f is nil.
func ComposeBackward[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	if f == nil || g == nil {
		panic("compose.ComposeBackward: nil function")
	}
	return func(a A) C {
		return g(f(a))
	}
}

// Chain folds fns left to right into a single function, so that
// Chain(f, g, h)(x) == h(g(f(x))). Chain with no arguments returns Identity.
//
// fns is copied; later writes to the caller's slice have no effect.
//
// Chain panics if any element of fns is nil.
func Chain[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		return Identity[T]
	}
	for _, fn := range fns {
		if fn == nil {
			panic("compose.Chain: nil function")
		}
	}
	frozen := make([]func(T) T, len(fns))
	copy(frozen, fns)

	return func(v T) T {
		for _, fn := range frozen {
			v = fn(v)
		}
		return v
	}
}

// Identity returns v unchanged. It is the left and right identity of
// ComposeForward and ComposeBackward.
func Identity[T any](v T) T {
	return v
}

// Tap returns a function that calls fn with its argument and then returns
// the argument unchanged. It is useful for logging or inspecting values at
// a point in a composed chain.
//
// Tap panics if fn is nil.
func Tap[T any](fn func(T)) func(T) T {
	if fn == nil {
		panic("compose.Tap: nil function")
	}
	return func(v T) T {
		fn(v)
		return v
	}
}

// Endo is a function from a type to itself. It offers a fluent, method
// chained spelling of composition for same-type pipelines:
//
//	shout := compose.Endo[string](strings.TrimSpace).
//		Then(strings.ToUpper).
//		Then(func(s string) string { return s + "!" })
type Endo[T any] func(T) T

// Then returns an Endo that runs e and then next.
func (e Endo[T]) Then(next func(T) T) Endo[T] {
	return ComposeForward((func(T) T)(e), next)
}

// After returns an Endo that runs prev and then e.
func (e Endo[T]) After(prev func(T) T) Endo[T] {
	return ComposeBackward((func(T) T)(e), prev)
}

// Apply pipes v into e.
func (e Endo[T]) Apply(v T) T {
	return e(v)
}
