/*
Package compose provides generic combinators for building data
transformation pipelines out of single-argument functions, and for lifting
field-level functions into transformations of whole immutable values.

Everything in this package is built around the plain unary function
func(A) B. Combinators take unary functions and return new unary
functions, so their results can be combined again with the same
combinators.

Go has no user-defined infix operators, so the classic operators are
exposed as named functions:

	a |> f       Pipe(a, f)
	a |> f |> g  Pipe2(a, f, g), or Pipe(Pipe(a, f), g)
	f >>> g      ComposeForward(f, g)
	g <<< f      ComposeBackward(g, f)

Both composition functions return a function computing g(f(x)); only the
order of the operands differs. Composition is associative, and Chain folds
any number of same-type functions left to right.

MapLift and FilterLift lift element-level functions into functions over
slices. MapSeq and FilterSeq do the same for iter.Seq, lazily. Lifted
functions are ordinary unary functions and compose like any other:

	incrThenSquare := compose.ComposeForward(increment, square)

	compose.Pipe(3, incrThenSquare) // 16

	evensOfSquares := compose.ComposeForward(
		compose.MapLift(incrThenSquare),
		compose.FilterLift(isEven),
	)
	compose.Pipe([]int{0, 1, 2, 3, 4}, evensOfSquares) // [4 16]

A Property is a reusable reference to one field of a value type, the Go
rendition of a writable key path. Transformer turns a Property into a
generator of whole-value transformers which copy the value, update one
field and return the copy:

	age := compose.Field(func(u *User) *int { return &u.Age })
	name := compose.Field(func(u *User) *string { return &u.Name })

	birthday := compose.Transformer(age)(increment)
	shout := compose.Transformer(name)(strings.ToUpper)

	older := compose.ComposeBackward(shout, birthday)(user)

The input value is never written; transformers over different fields
commute. Copies are shallow, so slice, map and pointer fields keep sharing
their referents with the input.

All functions returned by this package hold only the values they were built
from and never modify their inputs, so they are safe for concurrent use.
Passing a nil function or a zero Property to a constructor panics
immediately.
*/
package compose
