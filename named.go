package kparsec2

import (
	"github.com/belyaev-mikhail/kparsec2/input"
)

type named[T, R any] struct {
	name   string
	parser Parser[T, R]
}

// Named gives p a name to be used in diagnostics.
//
// Failures of p that did not get past the input are reported as expecting name. Failures from
// deeper inside p are more precise than the name and are kept as they are.
func Named[T, R any](name string, p Parser[T, R]) Parser[T, R] {
	return &named[T, R]{name: name, parser: p}
}

func (n *named[T, R]) String() string { return n.name }

func (n *named[T, R]) Parse(in input.Input[T]) Result[T, R] {
	r := n.parser.Parse(in)
	if r.Kind == KindFailure && r.Diag.Offset <= in.Offset() {
		diag := *r.Diag
		diag.Expected = n.name
		r.Diag = &diag
	}
	return r
}
