package kparsec2

import (
	"strings"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// A Parser parses a prefix of an input of T tokens into a value of type R.
//
// Parsers must not retain or mutate state between invocations: the same Parser value may be
// invoked any number of times, on any number of inputs, and concurrently on distinct inputs.
// The identity of a Parser value is significant; packrat memoization keys results by it.
type Parser[T, R any] interface {
	// Parse a prefix of in.
	Parse(in input.Input[T]) Result[T, R]
	// String is the human-readable description of what the parser matches. It is used as the
	// expectation of diagnostics.
	String() string
}

// Unit is the value of parsers that only recognise input.
type Unit = struct{}

// New creates a Parser from a function.
func New[T, R any](name string, parse func(in input.Input[T]) Result[T, R]) Parser[T, R] {
	return newParser(constName(name), parse)
}

type parserFunc[T, R any] struct {
	name  func() string
	parse func(in input.Input[T]) Result[T, R]
}

func newParser[T, R any](name func() string, parse func(in input.Input[T]) Result[T, R]) *parserFunc[T, R] {
	return &parserFunc[T, R]{name: name, parse: parse}
}

func (p *parserFunc[T, R]) Parse(in input.Input[T]) Result[T, R] { return p.parse(in) }

func (p *parserFunc[T, R]) String() string { return p.name() }

func constName(name string) func() string {
	return func() string { return name }
}

// joinNames renders the names of parsers lazily, so that describing a grammar costs nothing
// until a diagnostic is actually printed.
func joinNames[P interface{ String() string }](sep string, parsers ...P) func() string {
	return func() string {
		names := make([]string, len(parsers))
		for i, p := range parsers {
			names[i] = p.String()
		}
		return strings.Join(names, sep)
	}
}
