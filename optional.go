package kparsec2

import (
	"github.com/belyaev-mikhail/kparsec2/input"
)

// Optional matches p or nothing. The value is nil if p failed.
func Optional[T, A any](p Parser[T, A]) Parser[T, *A] {
	return newParser(optionalName(p), func(in input.Input[T]) Result[T, *A] {
		r := p.Parse(in)
		switch r.Kind {
		case KindSuccess:
			return Ok(r.Rest, &r.Value)
		case KindFailure:
			return Ok[T, *A](in, nil)
		}
		return Forward[*A](r)
	})
}

// Recover matches p, or nothing with the value returned by value if p failed.
func Recover[T, A any](p Parser[T, A], value func() A) Parser[T, A] {
	return newParser(optionalName(p), func(in input.Input[T]) Result[T, A] {
		r := p.Parse(in)
		if r.Kind == KindFailure {
			return Ok(in, value())
		}
		return r
	})
}

// OrElse matches p, or nothing with value if p failed.
func OrElse[T, A any](p Parser[T, A], value A) Parser[T, A] {
	return Recover(p, func() A { return value })
}

// Commit turns failures of p into errors.
//
// Use it once enough input has matched to know that nothing else could: after an opening quote,
// a missing closing quote is an invalid string rather than a reason to try something else.
func Commit[T, A any](p Parser[T, A]) Parser[T, A] {
	return newParser(p.String, func(in input.Input[T]) Result[T, A] {
		r := p.Parse(in)
		if r.Kind == KindFailure {
			r.Kind = KindError
		}
		return r
	})
}

func optionalName[T, A any](p Parser[T, A]) func() string {
	return func() string { return group(p.String()) + "?" }
}
