package kparsec2

import (
	"github.com/belyaev-mikhail/kparsec2/input"
)

type choice[T, R any] struct {
	alternatives []Parser[T, R]
}

// OneOf tries alternatives in order and returns the result of the first one that does not fail.
//
// An error from any alternative is returned immediately. If every alternative fails, the
// failure of the alternative that got furthest past the input is reported, or, when none got
// past it, a failure expecting any of the alternatives.
//
// Nested OneOf parsers are flattened, so diagnostics list every leaf alternative.
func OneOf[T, R any](alternatives ...Parser[T, R]) Parser[T, R] {
	flat := make([]Parser[T, R], 0, len(alternatives))
	for _, alternative := range alternatives {
		if nested, ok := alternative.(*choice[T, R]); ok {
			flat = append(flat, nested.alternatives...)
		} else {
			flat = append(flat, alternative)
		}
	}
	return &choice[T, R]{alternatives: flat}
}

// Or is OneOf(a, b).
func Or[T, R any](a, b Parser[T, R]) Parser[T, R] {
	return OneOf(a, b)
}

func (c *choice[T, R]) String() string { return joinNames(" | ", c.alternatives...)() }

func (c *choice[T, R]) Parse(in input.Input[T]) Result[T, R] {
	var deepest *Diagnostic
	for _, alternative := range c.alternatives {
		r := alternative.Parse(in)
		if r.Kind != KindFailure {
			return r
		}
		if r.Diag.Offset > in.Offset() && (deepest == nil || r.Diag.Offset > deepest.Offset) {
			deepest = r.Diag
		}
	}
	if deepest != nil {
		return Result[T, R]{Kind: KindFailure, Diag: deepest}
	}
	return Fail[R](in, c.String())
}
