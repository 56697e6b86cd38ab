package kparsec2

import (
	"io"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// Parse applies p to in.
func Parse[T, R any](p Parser[T, R], in input.Input[T]) Result[T, R] {
	return p.Parse(in)
}

// ParseString applies p to the runes of s.
func ParseString[R any](p Parser[rune, R], s string, options ...Option) Result[rune, R] {
	c := configure(options)
	src := input.Runes(s)
	return run(p, input.New[rune](src, c.location(src)), c)
}

// ParseReader applies p to the runes read from r.
//
// The error is only set if reading r failed.
func ParseReader[R any](p Parser[rune, R], r io.Reader, options ...Option) (Result[rune, R], error) {
	c := configure(options)
	src, err := input.NewReaderSource(r, c.bufferSize)
	if err != nil {
		return Result[rune, R]{}, err
	}
	result := run(p, input.New[rune](src, c.location(src)), c)
	if err := src.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func run[R any](p Parser[rune, R], in input.Input[rune], c *config) Result[rune, R] {
	if c.logger != nil {
		p = Trace(p, *c.logger)
	}
	r := p.Parse(in)
	if r.IsSuccess() && !c.allowTrailing && r.Rest.HasNext() {
		r = Fail[R](r.Rest, "<EOF>")
	}
	if !r.IsSuccess() && c.filename != "" {
		diag := *r.Diag
		diag.Location = input.Named{Filename: c.filename, Position: diag.Location}
		r.Diag = &diag
	}
	return r
}
