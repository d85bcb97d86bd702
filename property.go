package compose

// Property is a reusable reference to one field of type V inside values of
// type R. It supports reading the field and a non-destructive write that
// returns an updated copy of the value.
//
// A Property does not hold any particular R; the same Property can be used
// with any number of values. The zero Property is not usable; construct one
// with NewProperty, Field, or Nest.
type Property[R, V any] struct {
	get func(R) V
	set func(R, V) R
}

// NewProperty builds a Property from an explicit getter and setter.
//
// set must not modify its argument in place; it returns a value equal to
// its argument except for the targeted field.
//
// NewProperty panics if get or set is nil.
func NewProperty[R, V any](get func(R) V, set func(R, V) R) Property[R, V] {
	if get == nil || set == nil {
		panic("compose.NewProperty: nil accessor")
	}
	return Property[R, V]{get: get, set: set}
}

// Field builds a Property from a function that returns the address of the
// field inside a value of type R:
//
//	age := compose.Field(func(u *User) *int { return &u.Age })
//
// Reads and writes go through the address of a private copy of the value,
// so the caller's value is never written. The copy is shallow: fields that
// are slices, maps or pointers still share their referents with the input.
//
// addr must return the address of a field of the value it is given, not of
// some other variable.
//
// Field panics if addr is nil.
func Field[R, V any](addr func(*R) *V) Property[R, V] {
	if addr == nil {
		panic("compose.Field: nil address function")
	}
	return Property[R, V]{
		get: func(r R) V {
			return *addr(&r)
		},
		set: func(r R, v V) R {
			*addr(&r) = v
			return r
		},
	}
}

func (p Property[R, V]) valid() bool {
	return p.get != nil && p.set != nil
}

// Get returns the field's value in r.
func (p Property[R, V]) Get(r R) V {
	return p.get(r)
}

// Set returns a copy of r with the field replaced by v.
func (p Property[R, V]) Set(r R, v V) R {
	return p.set(r, v)
}

// Modify returns a copy of r with the field replaced by fn applied to its
// current value.
func (p Property[R, V]) Modify(r R, fn func(V) V) R {
	return p.set(r, fn(p.get(r)))
}

// Nest returns a Property that reaches through outer and then inner,
// focusing on a field nested one level deeper.
//
// Nest panics if either Property is the zero Property.
func Nest[R, V, W any](outer Property[R, V], inner Property[V, W]) Property[R, W] {
	if !outer.valid() || !inner.valid() {
		panic("compose.Nest: zero Property")
	}
	return Property[R, W]{
		get: func(r R) W {
			return inner.get(outer.get(r))
		},
		set: func(r R, w W) R {
			return outer.set(r, inner.set(outer.get(r), w))
		},
	}
}

// Transformer turns a Property into a generator of whole-value
// transformers. Given a field-level function t, the generator returns a
// function that maps r to a copy of r whose field is t applied to the
// field's current value. All other fields are copied unchanged.
//
//	birthday := compose.Transformer(age)(func(n int) int { return n + 1 })
//	older := birthday(user) // user itself is unchanged
//
// Transformers over different fields commute. Transformers over the same
// field are applied in composition order.
//
// Transformer panics if p is the zero Property, and the generator panics if
// t is nil.
func Transformer[R, V any](p Property[R, V]) func(func(V) V) func(R) R {
	if !p.valid() {
		panic("compose.Transformer: zero Property")
	}
	return func(t func(V) V) func(R) R {
		if t == nil {
			panic("compose.Transformer: nil transform")
		}
		return func(r R) R {
			return p.set(r, t(p.get(r)))
		}
	}
}
