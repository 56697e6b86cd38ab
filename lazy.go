package kparsec2

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/belyaev-mikhail/kparsec2/input"
)

type lazy[T, R any] struct {
	name   string
	once   sync.Once
	thunk  func() Parser[T, R]
	parser Parser[T, R]
}

// Lazy creates a parser that delegates to the parser returned by thunk, calling thunk on first use
// only. Grammar rules can then refer to rules declared after them.
func Lazy[T, R any](name string, thunk func() Parser[T, R]) Parser[T, R] {
	return &lazy[T, R]{name: name, thunk: thunk}
}

func (l *lazy[T, R]) String() string { return l.name }

func (l *lazy[T, R]) Parse(in input.Input[T]) Result[T, R] {
	l.once.Do(func() {
		l.parser = l.thunk()
		l.thunk = nil
	})
	return l.parser.Parse(in)
}

// Ref is a placeholder for a parser that is not built yet.
type Ref[T, R any] struct {
	name   string
	parser Parser[T, R]
}

// NewRef creates an empty Ref. It must be Set before it is used.
func NewRef[T, R any](name string) *Ref[T, R] {
	return &Ref[T, R]{name: name}
}

// Set the parser r delegates to.
func (r *Ref[T, R]) Set(p Parser[T, R]) { r.parser = p }

func (r *Ref[T, R]) String() string { return r.name }

func (r *Ref[T, R]) Parse(in input.Input[T]) Result[T, R] {
	if r.parser == nil {
		panic(errors.AssertionFailedf("kparsec2: %q used before it was set", r.name))
	}
	return r.parser.Parse(in)
}

// Recursive builds a self-referential parser: f receives a reference to the parser it returns.
func Recursive[T, R any](name string, f func(self Parser[T, R]) Parser[T, R]) Parser[T, R] {
	ref := NewRef[T, R](name)
	ref.Set(f(ref))
	return ref
}
