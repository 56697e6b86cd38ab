package kparsec2

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/belyaev-mikhail/kparsec2/input"
)

const unbounded = -1

// fold is the loop every repetition combinator is built on.
type fold[T, A, R any] struct {
	p        Parser[T, A]
	min, max int
	init     R
	step     func(R, A) R
}

func (f *fold[T, A, R]) String() string {
	base := group(f.p.String())
	switch {
	case f.min == f.max:
		return fmt.Sprintf("%s × %d", base, f.min)
	case f.min == 0 && f.max == unbounded:
		return base + "*"
	case f.min == 1 && f.max == unbounded:
		return base + "+"
	case f.max == unbounded:
		return fmt.Sprintf("%s × (%d..)", base, f.min)
	}
	return fmt.Sprintf("%s × (%d..%d)", base, f.min, f.max)
}

func (f *fold[T, A, R]) Parse(in input.Input[T]) Result[T, R] {
	acc := f.init
	count := 0
	for f.max == unbounded || count < f.max {
		r := f.p.Parse(in)
		if r.Kind == KindError {
			return Forward[R](r)
		}
		if r.Kind == KindFailure {
			if count < f.min {
				return Forward[R](r)
			}
			break
		}
		// A match that consumed nothing would match forever.
		if r.Rest == in {
			break
		}
		acc = f.step(acc, r.Value)
		in = r.Rest
		count++
	}
	if count < f.min {
		return Fail[R](in, f.String())
	}
	return Ok(in, acc)
}

func group(name string) string {
	if strings.Contains(name, " ") {
		return "(" + name + ")"
	}
	return name
}

func appendTo[A any](acc []A, v A) []A { return append(acc, v) }

// ManyFold matches p zero or more times, folding the values into init with step.
//
// The loop stops at the first failure of p, or at the first match of p that consumes nothing;
// the value of such a match is not folded. step must not modify init in place.
func ManyFold[T, A, R any](p Parser[T, A], init R, step func(R, A) R) Parser[T, R] {
	return &fold[T, A, R]{p: p, min: 0, max: unbounded, init: init, step: step}
}

// ManyOneFold is ManyFold requiring at least one match. When there is none, the failure of p
// is returned.
func ManyOneFold[T, A, R any](p Parser[T, A], init R, step func(R, A) R) Parser[T, R] {
	return &fold[T, A, R]{p: p, min: 1, max: unbounded, init: init, step: step}
}

// Many matches p zero or more times.
func Many[T, A any](p Parser[T, A]) Parser[T, []A] {
	return ManyFold(p, nil, appendTo[A])
}

// ManyOne matches p one or more times.
func ManyOne[T, A any](p Parser[T, A]) Parser[T, []A] {
	return ManyOneFold(p, nil, appendTo[A])
}

// Repeat matches p exactly n times. Falling short re-surfaces the failure that stopped it.
func Repeat[T, A any](n int, p Parser[T, A]) Parser[T, []A] {
	if n < 0 {
		panic(errors.AssertionFailedf("kparsec2: negative repeat count %d", n))
	}
	return &fold[T, A, []A]{p: p, min: n, max: n, step: appendTo[A]}
}

type separated[T, A, S, R any] struct {
	p    Parser[T, A]
	sep  Parser[T, S]
	init R
	step func(R, A) R
}

func (s *separated[T, A, S, R]) String() string {
	return fmt.Sprintf("%s{%s}", group(s.p.String()), s.sep)
}

func (s *separated[T, A, S, R]) Parse(in input.Input[T]) Result[T, R] {
	acc := s.init
	first := s.p.Parse(in)
	switch first.Kind {
	case KindError:
		return Forward[R](first)
	case KindFailure:
		return Ok(in, acc)
	}
	acc = s.step(acc, first.Value)
	in = first.Rest
	for {
		sep := s.sep.Parse(in)
		if sep.Kind == KindError {
			return Forward[R](sep)
		}
		if sep.Kind == KindFailure {
			break
		}
		next := s.p.Parse(sep.Rest)
		if next.Kind == KindError {
			return Forward[R](next)
		}
		if next.Kind == KindFailure || next.Rest == in {
			break
		}
		acc = s.step(acc, next.Value)
		in = next.Rest
	}
	return Ok(in, acc)
}

// SeparatedByFold matches p repeatedly with sep between the matches, folding the values into
// init with step.
//
// No match at all is an empty, successful result. An element that fails after a separator ends
// the list before that separator. step must not modify init in place.
func SeparatedByFold[T, A, S, R any](p Parser[T, A], sep Parser[T, S], init R, step func(R, A) R) Parser[T, R] {
	return &separated[T, A, S, R]{p: p, sep: sep, init: init, step: step}
}

// SeparatedBy matches p repeatedly with sep between the matches.
func SeparatedBy[T, A, S any](p Parser[T, A], sep Parser[T, S]) Parser[T, []A] {
	return SeparatedByFold(p, sep, nil, appendTo[A])
}
