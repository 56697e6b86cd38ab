package kparsec2

import (
	"github.com/belyaev-mikhail/kparsec2/input"
)

// Map the value of a successful parse through f.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return newParser(p.String, func(in input.Input[T]) Result[T, B] {
		r := p.Parse(in)
		if !r.IsSuccess() {
			return Forward[B](r)
		}
		return Ok(r.Rest, f(r.Value))
	})
}

// FlatMap continues parsing with the parser f selects for the value of p.
func FlatMap[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return newParser(p.String, func(in input.Input[T]) Result[T, B] {
		r := p.Parse(in)
		if !r.IsSuccess() {
			return Forward[B](r)
		}
		return f(r.Value).Parse(r.Rest)
	})
}

// Filter fails with expected as the expectation if the value of p does not satisfy pred.
//
// The failure is reported where p started, with the rejected value as what was found.
func Filter[T, A any](p Parser[T, A], expected string, pred func(A) bool) Parser[T, A] {
	return newParser(constName(expected), func(in input.Input[T]) Result[T, A] {
		r := p.Parse(in)
		if r.IsSuccess() && !pred(r.Value) {
			return FailWith[A](in, expected, r.Value)
		}
		return r
	})
}

// MapNotNull maps the value of p through f, failing where f reports no value.
func MapNotNull[T, A, B any](p Parser[T, A], f func(A) (B, bool)) Parser[T, B] {
	return newParser(p.String, func(in input.Input[T]) Result[T, B] {
		r := p.Parse(in)
		if !r.IsSuccess() {
			return Forward[B](r)
		}
		value, ok := f(r.Value)
		if !ok {
			return FailWith[B](in, p.String(), r.Value)
		}
		return Ok(r.Rest, value)
	})
}

// Ignore the value of p.
func Ignore[T, A any](p Parser[T, A]) Parser[T, Unit] {
	return As(p, Unit{})
}

// As replaces the value of p with value.
func As[T, A, B any](p Parser[T, A], value B) Parser[T, B] {
	return Map(p, func(A) B { return value })
}
