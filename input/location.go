package input

import "fmt"

// Position is a rendered parse position.
//
// Rendering may be deferred: a Position only has to produce its textual form when String is
// called, which typically only happens when a diagnostic is printed.
type Position interface {
	fmt.Stringer
}

// A Location tracks the position of an Input by observing every consumed token.
//
// Locations are immutable values. Two Locations compare equal with == iff they describe the
// same position, regardless of how they were reached.
type Location[T any] interface {
	Position
	// Advance returns the Location following the consumption of token.
	Advance(token T) Location[T]
}

// Skipper is implemented by Locations that can advance over n tokens without looking at them.
type Skipper[T any] interface {
	Skip(n int) Location[T]
}

// CharLocation tracks lines and columns of a rune stream.
//
// Lines start at 1 and columns at 0; a newline increments the line and resets the column.
type CharLocation struct {
	Line   int
	Column int
}

var _ Location[rune] = CharLocation{}

// StartOfText is the CharLocation of the first rune of a text.
func StartOfText() CharLocation { return CharLocation{Line: 1} }

// Step is the typed form of Advance.
func (c CharLocation) Step(r rune) CharLocation {
	if r == '\n' {
		return CharLocation{Line: c.Line + 1}
	}
	return CharLocation{Line: c.Line, Column: c.Column + 1}
}

func (c CharLocation) Advance(r rune) Location[rune] { return c.Step(r) }

func (c CharLocation) String() string { return fmt.Sprintf("%d:%d", c.Line, c.Column) }

func (c CharLocation) GoString() string {
	return fmt.Sprintf("CharLocation{Line: %d, Column: %d}", c.Line, c.Column)
}

// OffsetLocation counts consumed tokens.
type OffsetLocation[T any] struct {
	Offset int
}

var (
	_ Location[any] = OffsetLocation[any]{}
	_ Skipper[any]  = OffsetLocation[any]{}
)

func (o OffsetLocation[T]) Advance(T) Location[T] { return OffsetLocation[T]{o.Offset + 1} }

func (o OffsetLocation[T]) Skip(n int) Location[T] { return OffsetLocation[T]{o.Offset + n} }

func (o OffsetLocation[T]) String() string { return fmt.Sprintf("%d", o.Offset) }

// NoLocation does not track anything.
type NoLocation[T any] struct{}

func (n NoLocation[T]) Advance(T) Location[T] { return n }

func (n NoLocation[T]) Skip(int) Location[T] { return n }

func (NoLocation[T]) String() string { return "<unknown>" }

// Named prefixes a Position with a file name, the way compilers render positions.
type Named struct {
	Filename string
	Position Position
}

func (n Named) String() string {
	if n.Filename == "" {
		return n.Position.String()
	}
	return n.Filename + ":" + n.Position.String()
}
