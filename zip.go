package kparsec2

import (
	"fmt"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// Pair of values parsed in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%s, %s)", describe(p.First), describe(p.Second)) }

// ZipWith runs a then b, combining their values with f.
func ZipWith[T, A, B, R any](a Parser[T, A], b Parser[T, B], f func(A, B) R) Parser[T, R] {
	return newParser(joinNames[fmt.Stringer](" + ", a, b), func(in input.Input[T]) Result[T, R] {
		ra := a.Parse(in)
		if !ra.IsSuccess() {
			return Forward[R](ra)
		}
		rb := b.Parse(ra.Rest)
		if !rb.IsSuccess() {
			return Forward[R](rb)
		}
		return Ok(rb.Rest, f(ra.Value, rb.Value))
	})
}

// ZipWith3 runs a, b and c in sequence, combining their values with f.
func ZipWith3[T, A, B, C, R any](a Parser[T, A], b Parser[T, B], c Parser[T, C], f func(A, B, C) R) Parser[T, R] {
	return newParser(joinNames[fmt.Stringer](" + ", a, b, c), func(in input.Input[T]) Result[T, R] {
		ra := a.Parse(in)
		if !ra.IsSuccess() {
			return Forward[R](ra)
		}
		rb := b.Parse(ra.Rest)
		if !rb.IsSuccess() {
			return Forward[R](rb)
		}
		rc := c.Parse(rb.Rest)
		if !rc.IsSuccess() {
			return Forward[R](rc)
		}
		return Ok(rc.Rest, f(ra.Value, rb.Value, rc.Value))
	})
}

// ZipWith4 runs a, b, c and d in sequence, combining their values with f.
func ZipWith4[T, A, B, C, D, R any](
	a Parser[T, A], b Parser[T, B], c Parser[T, C], d Parser[T, D], f func(A, B, C, D) R,
) Parser[T, R] {
	return newParser(joinNames[fmt.Stringer](" + ", a, b, c, d), func(in input.Input[T]) Result[T, R] {
		ra := a.Parse(in)
		if !ra.IsSuccess() {
			return Forward[R](ra)
		}
		rb := b.Parse(ra.Rest)
		if !rb.IsSuccess() {
			return Forward[R](rb)
		}
		rc := c.Parse(rb.Rest)
		if !rc.IsSuccess() {
			return Forward[R](rc)
		}
		rd := d.Parse(rc.Rest)
		if !rd.IsSuccess() {
			return Forward[R](rd)
		}
		return Ok(rd.Rest, f(ra.Value, rb.Value, rc.Value, rd.Value))
	})
}

// Zip runs a then b and pairs their values.
func Zip[T, A, B any](a Parser[T, A], b Parser[T, B]) Parser[T, Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{x, y} })
}

// Then runs a then b, keeping the value of b.
func Then[T, A, B any](a Parser[T, A], b Parser[T, B]) Parser[T, B] {
	return ZipWith(a, b, func(_ A, y B) B { return y })
}

// Skip runs a then b, keeping the value of a.
func Skip[T, A, B any](a Parser[T, A], b Parser[T, B]) Parser[T, A] {
	return ZipWith(a, b, func(x A, _ B) A { return x })
}

// Between parses p enclosed by open and close, keeping the value of p.
func Between[T, O, A, C any](open Parser[T, O], p Parser[T, A], close Parser[T, C]) Parser[T, A] {
	return ZipWith3(open, p, close, func(_ O, x A, _ C) A { return x })
}

// SequenceFold runs parsers in sequence, folding their values into init with step.
//
// step must not modify init in place: the same init is used for every parse.
func SequenceFold[T, A, R any](init R, step func(R, A) R, parsers ...Parser[T, A]) Parser[T, R] {
	return newParser(joinNames(" + ", parsers...), func(in input.Input[T]) Result[T, R] {
		acc := init
		for _, p := range parsers {
			r := p.Parse(in)
			if !r.IsSuccess() {
				return Forward[R](r)
			}
			acc = step(acc, r.Value)
			in = r.Rest
		}
		return Ok(in, acc)
	})
}

// Sequence runs parsers in sequence and collects their values.
func Sequence[T, A any](parsers ...Parser[T, A]) Parser[T, []A] {
	return SequenceFold(nil, func(acc []A, v A) []A { return append(acc, v) }, parsers...)
}
