// Package packrat memoizes parse results per parser and input position.
//
// Memoized parsers store their results in a table attached to the input they are invoked on. A
// table belongs to one input position: advancing the input attaches a fresh, empty one. Since a
// compound input advances to the same compound every time, all the alternatives that reach a
// position from a memoized parser share its table.
package packrat

import (
	"github.com/belyaev-mikhail/kparsec2"
	"github.com/belyaev-mikhail/kparsec2/input"
)

type memoKey struct {
	parser any
	at     any
}

// Table of memoized results attached to an input.
//
// A table must not be shared between goroutines; neither may the inputs carrying it.
type Table struct {
	results map[memoKey]any
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{results: map[memoKey]any{}}
}

// Advance implements input.Component.
func (t *Table) Advance(n int) input.Component {
	if n == 0 {
		return t
	}
	return NewTable()
}

// Len is the number of results stored.
func (t *Table) Len() int { return len(t.results) }

func (t *Table) String() string { return "packrat" }

// Key of the Table component.
var Key = input.NewKey[*Table]("packrat")

// Attach a Table to in unless one is attached already.
func Attach[T any](in input.Input[T]) *input.Compound[T] {
	return input.PutIfAbsent(in, Key, NewTable)
}

type memo[T, R any] struct {
	parser kparsec2.Parser[T, R]
}

// Memo wraps p so that its results are memoized.
//
// Results are keyed by the returned wrapper: wrapping the same parser twice gives two parsers
// that do not share results. Memoizing never changes results, only how often p runs.
func Memo[T, R any](p kparsec2.Parser[T, R]) kparsec2.Parser[T, R] {
	return &memo[T, R]{parser: p}
}

func (m *memo[T, R]) String() string { return m.parser.String() }

func (m *memo[T, R]) Parse(in input.Input[T]) kparsec2.Result[T, R] {
	attached := Attach(in)
	table := input.MustGet[T](attached, Key)
	key := memoKey{parser: m, at: attached}
	if cached, ok := table.results[key]; ok {
		return cached.(kparsec2.Result[T, R])
	}
	r := m.parser.Parse(attached)
	table.results[key] = r
	return r
}
