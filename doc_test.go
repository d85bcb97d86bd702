package compose_test

import (
	"fmt"
	"strings"

	"github.com/KasperOmsK/compose"
)

type User struct {
	Name     string
	Location string
	Age      int
}

// Example walks through the toolkit: piping, composing, lifting into slices
// and lifting field functions into whole-value transformers.
func Example() {
	incr := func(x int) int { return x + 1 }
	square := func(x int) int { return x * x }
	isEven := func(x int) bool { return x%2 == 0 }

	// 3 |> incr |> square
	fmt.Println(compose.Pipe2(3, incr, square))

	// 3 |> (incr >>> square)
	incrThenSquare := compose.ComposeForward(incr, square)
	fmt.Println(compose.Pipe(3, incrThenSquare))

	// Lifted functions are unary functions too, so they compose.
	mapInts := compose.MapLift(incrThenSquare)
	filterEven := compose.FilterLift(isEven)
	fmt.Println(mapInts([]int{0, 1, 2}))
	fmt.Println(filterEven([]int{0, 1, 2, 3, 4}))
	fmt.Println(compose.Pipe([]int{0, 1, 2, 3, 4}, compose.ComposeForward(mapInts, filterEven)))

	// Field-level functions lift into whole-value transformers.
	age := compose.Field(func(u *User) *int { return &u.Age })
	name := compose.Field(func(u *User) *string { return &u.Name })

	user := User{Name: "Jane Doe", Location: "NYC", Age: 59}
	older := compose.ComposeBackward(
		compose.Transformer(name)(strings.ToUpper),
		compose.Transformer(age)(incr),
	)(user)

	fmt.Println(older.Name, older.Age)
	fmt.Println(user.Name, user.Age)

	// Output:
	// 16
	// 16
	// [1 4 9]
	// [0 2 4]
	// [4 16]
	// JANE DOE 60
	// Jane Doe 59
}

func ExampleComposeBackward() {
	incr := func(x int) int { return x + 1 }
	square := func(x int) int { return x * x }

	// square <<< incr reads as "square after incr"
	fmt.Println(compose.ComposeBackward(square, incr)(3))
	fmt.Println(compose.ComposeForward(incr, square)(3))

	// Output:
	// 16
	// 16
}

func ExampleChain() {
	slug := compose.Chain(
		strings.TrimSpace,
		strings.ToLower,
		func(s string) string { return strings.ReplaceAll(s, " ", "-") },
	)

	fmt.Println(slug("  Function Composition "))

	// Output:
	// function-composition
}

func ExampleMapSecond() {
	pair := compose.NewPair(42, "hello")
	shout := compose.MapSecond[string, string, int](strings.ToUpper)

	first, second := shout(pair).Unpack()
	fmt.Println(first, second)

	// Output:
	// 42 HELLO
}

func ExampleNest() {
	type Address struct{ City string }
	type Customer struct {
		Name    string
		Address Address
	}

	city := compose.Nest(
		compose.Field(func(c *Customer) *Address { return &c.Address }),
		compose.Field(func(a *Address) *string { return &a.City }),
	)

	c := Customer{Name: "ann", Address: Address{City: "nyc"}}
	fmt.Println(city.Modify(c, strings.ToUpper).Address.City, c.Address.City)

	// Output:
	// NYC nyc
}
