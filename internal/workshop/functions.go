// Package workshop holds the example functions, values and scenarios the
// demo command runs through the compose toolkit.
package workshop

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KasperOmsK/compose"
)

func Increment(x int) int {
	return x + 1
}

func Square(x int) int {
	return x * x
}

func IsEven(x int) bool {
	return x%2 == 0
}

// Upper returns a locale-aware uppercasing function for tag.
//
// A cases.Caser keeps internal state and is not safe for concurrent use, so
// each call of the returned function builds its own.
func Upper(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Upper(tag).String(s)
	}
}

// User is the example value whose fields the property transformers target.
type User struct {
	Name     string
	Location string
	Age      int
}

var (
	UserName     = compose.Field(func(u *User) *string { return &u.Name })
	UserLocation = compose.Field(func(u *User) *string { return &u.Location })
	UserAge      = compose.Field(func(u *User) *int { return &u.Age })
)
