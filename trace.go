package kparsec2

import (
	"github.com/go-logr/logr"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// Trace logs every invocation of p and its outcome to logger.
//
// Invocations are logged at verbosity 1, matches and failures at verbosity 2 and errors through
// logger.Error.
func Trace[T, R any](p Parser[T, R], logger logr.Logger) Parser[T, R] {
	return newParser(p.String, func(in input.Input[T]) Result[T, R] {
		name := p.String()
		logger.V(1).Info("enter", "parser", name, "at", in.Location())
		r := p.Parse(in)
		switch r.Kind {
		case KindSuccess:
			logger.V(2).Info("match", "parser", name, "at", in.Location(), "rest", r.Rest.Location())
		case KindFailure:
			logger.V(2).Info("no match", "parser", name, "at", r.Diag.Location, "expected", r.Diag.Expected,
				"found", r.Diag.FoundString())
		case KindError:
			logger.Error(r.Err(), "error", "parser", name, "at", r.Diag.Location, "expected", r.Diag.Expected)
		}
		return r
	})
}
