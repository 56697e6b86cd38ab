package kparsec2

import (
	"github.com/belyaev-mikhail/kparsec2/input"
)

// Peek matches p without consuming anything.
func Peek[T, A any](p Parser[T, A]) Parser[T, A] {
	return newParser(p.String, func(in input.Input[T]) Result[T, A] {
		r := p.Parse(in)
		if r.IsSuccess() {
			r.Rest = in
		}
		return r
	})
}

// Not succeeds without consuming anything where p fails, and fails where p matches.
func Not[T, A any](p Parser[T, A]) Parser[T, Unit] {
	name := func() string { return "!" + group(p.String()) }
	return newParser(name, func(in input.Input[T]) Result[T, Unit] {
		r := p.Parse(in)
		switch r.Kind {
		case KindSuccess:
			return Fail[Unit](in, name())
		case KindFailure:
			return Ok(in, Unit{})
		}
		return Forward[Unit](r)
	})
}
