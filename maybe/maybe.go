package maybe

/*
A Maybe is an optional value: either Just(x), carrying a value x, or Nothing.
The list packages in this module use it to signal structural emptiness —
popping, peeking or taking the head of an empty list yields Nothing, never a
fault.

Matching follows the switch-idiom:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        // v has been bound
    case m.Nothing():
    }

*/

type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Unwrap() (T, bool)
}

type option[T any] struct {
	value T
	ok    bool
}

func Just[T any](x T) Maybe[T] {
	return option[T]{value: x, ok: true}
}

func Nothing[T any]() Maybe[T] {
	return option[T]{}
}

func (m option[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the carried value, or def for Nothing.
func (m option[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Map applies f to the carried value; Nothing stays Nothing.
func (m option[T]) Map(f func(T) T) Maybe[T] {
	if m.ok {
		return Just(f(m.value))
	}
	return m
}

// Unwrap returns the carried value together with a flag telling whether there
// was one. For Nothing the value is T's zero value.
func (m option[T]) Unwrap() (T, bool) {
	return m.value, m.ok
}

// AndThen chains a Maybe into a function which may itself come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value carried by x, possibly changing the value's type.
// Nothing maps to Nothing.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m option[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.ok {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.ok {
		return mm
	}
	return nil
}
