// Package input provides the position side of parsing: token Sources, Locations tracking
// positions in them, and immutable Inputs pairing the two.
//
// Every consuming operation on an Input returns a new Input and leaves the receiver intact.
// Retaining an Input is therefore all it takes to be able to backtrack to it.
package input

import (
	"io"
)

// Input is an immutable parse position: a Source paired with its Location.
//
// Implementations are pointer types, and the identity of the values returned by Advance and
// Drop matters: a parser that returns the very Input it was given has consumed nothing.
type Input[T any] interface {
	// Current token. Only defined if HasNext returns true.
	Current() T
	HasNext() bool
	// Advance past the current token. At end of input the receiver itself is returned.
	Advance() Input[T]
	// Drop n tokens, or as many as remain.
	Drop(n int) Input[T]
	// Location of the current token.
	Location() Position
	// Offset is the number of tokens consumed since the start of the input.
	Offset() int
	// Source positioned at the current token.
	Source() Source[T]
}

// Simple is the basic Input: a Source and the Location of its current token.
type Simple[T any] struct {
	source   Source[T]
	location Location[T]
	offset   int
}

var _ Input[any] = (*Simple[any])(nil)

// New creates an Input reading src whose first token is at loc.
func New[T any](src Source[T], loc Location[T]) *Simple[T] {
	return &Simple[T]{source: src, location: loc}
}

// String creates an Input over the runes of s, tracking lines and columns.
func String(s string) *Simple[rune] {
	return New[rune](Runes(s), StartOfText())
}

// Managed creates an Input over the runes of s whose line and column are only computed when
// a location is rendered.
func Managed(s string) *Simple[rune] {
	src := Runes(s)
	return New[rune](src, NewLocationManager(src).Start())
}

// Tokens creates an Input over a slice of tokens, tracking offsets.
func Tokens[T any](tokens []T) *Simple[T] {
	return New[T](Slice(tokens), OffsetLocation[T]{})
}

// Reader creates an Input over the runes read from r, tracking lines and columns.
func Reader(r io.Reader, bufferSize int) (*Simple[rune], error) {
	src, err := NewReaderSource(r, bufferSize)
	if err != nil {
		return nil, err
	}
	return New[rune](src, StartOfText()), nil
}

func (s *Simple[T]) Current() T { return s.source.Current() }

func (s *Simple[T]) HasNext() bool { return s.source.HasNext() }

func (s *Simple[T]) Location() Position { return s.location }

func (s *Simple[T]) Offset() int { return s.offset }

func (s *Simple[T]) Source() Source[T] { return s.source }

func (s *Simple[T]) Advance() Input[T] {
	if !s.source.HasNext() {
		return s
	}
	token := s.source.Current()
	return &Simple[T]{
		source:   s.source.Advance(),
		location: s.location.Advance(token),
		offset:   s.offset + 1,
	}
}

func (s *Simple[T]) Drop(n int) Input[T] {
	if n <= 0 || !s.source.HasNext() {
		return s
	}
	skipper, canSkip := s.location.(Skipper[T])
	_, canDrop := s.source.(Dropper[T])
	bounded, isBounded := s.source.(Bounded)
	if canSkip && canDrop && isBounded {
		n = min(n, bounded.MaxLength())
		return &Simple[T]{
			source:   Drop(s.source, n),
			location: skipper.Skip(n),
			offset:   s.offset + n,
		}
	}
	return DropEach[T](s, n)
}

func (s *Simple[T]) String() string {
	return s.location.String()
}

// DropEach drops n tokens from in by advancing it n times.
func DropEach[T any](in Input[T], n int) Input[T] {
	for ; n > 0 && in.HasNext(); n-- {
		in = in.Advance()
	}
	return in
}

// TakeFrom returns up to n tokens from the front of in without consuming them.
func TakeFrom[T any](in Input[T], n int) []T {
	return Take(in.Source(), n)
}

// AsSource views an Input as a Source.
func AsSource[T any](in Input[T]) Source[T] { return inputSource[T]{in} }

type inputSource[T any] struct{ in Input[T] }

func (s inputSource[T]) Current() T { return s.in.Current() }

func (s inputSource[T]) HasNext() bool { return s.in.HasNext() }

func (s inputSource[T]) Advance() Source[T] { return inputSource[T]{s.in.Advance()} }
