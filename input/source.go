package input

import "iter"

// A Source is a possibly unbounded sequence of tokens.
//
// Sources are values: Advance returns the Source positioned after the current token and never
// modifies the receiver, so any retained Source stays valid.
type Source[T any] interface {
	// Current token. Only defined if HasNext returns true.
	Current() T
	HasNext() bool
	// Advance past the current token. Advancing an exhausted Source returns it unchanged.
	Advance() Source[T]
}

// Dropper is implemented by Sources that can skip n tokens faster than n calls to Advance.
type Dropper[T any] interface {
	Drop(n int) Source[T]
}

// Taker is implemented by Sources that can copy their next tokens in bulk.
type Taker[T any] interface {
	// TakeTo appends up to n tokens to buf and returns the extended slice.
	TakeTo(buf []T, n int) []T
}

// Bounded is implemented by Sources that know how many tokens remain.
type Bounded interface {
	MaxLength() int
}

// Drop n tokens from src.
func Drop[T any](src Source[T], n int) Source[T] {
	if n <= 0 {
		return src
	}
	if d, ok := src.(Dropper[T]); ok {
		return d.Drop(n)
	}
	for ; n > 0 && src.HasNext(); n-- {
		src = src.Advance()
	}
	return src
}

// Take returns up to n tokens from the front of src.
func Take[T any](src Source[T], n int) []T {
	if t, ok := src.(Taker[T]); ok {
		return t.TakeTo(make([]T, 0, n), n)
	}
	out := make([]T, 0, n)
	for ; n > 0 && src.HasNext(); n-- {
		out = append(out, src.Current())
		src = src.Advance()
	}
	return out
}

// All iterates over the remaining tokens of src.
func All[T any](src Source[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for src.HasNext() {
			if !yield(src.Current()) {
				return
			}
			src = src.Advance()
		}
	}
}

// SliceSource is a Source over an in-memory slice.
type SliceSource[T any] struct {
	data   []T
	offset int
}

var (
	_ Source[any]  = SliceSource[any]{}
	_ Dropper[any] = SliceSource[any]{}
	_ Taker[any]   = SliceSource[any]{}
	_ Bounded      = SliceSource[any]{}
)

// Slice creates a Source over data. The slice must not be modified afterwards.
func Slice[T any](data []T) SliceSource[T] { return SliceSource[T]{data: data} }

// Runes creates a Source over the runes of s.
func Runes(s string) SliceSource[rune] { return Slice([]rune(s)) }

func (s SliceSource[T]) Current() T { return s.data[s.offset] }

func (s SliceSource[T]) HasNext() bool { return s.offset < len(s.data) }

func (s SliceSource[T]) Advance() Source[T] {
	if !s.HasNext() {
		return s
	}
	return SliceSource[T]{data: s.data, offset: s.offset + 1}
}

func (s SliceSource[T]) Drop(n int) Source[T] {
	return SliceSource[T]{data: s.data, offset: min(s.offset+max(n, 0), len(s.data))}
}

func (s SliceSource[T]) TakeTo(buf []T, n int) []T {
	end := min(s.offset+max(n, 0), len(s.data))
	return append(buf, s.data[s.offset:end]...)
}

func (s SliceSource[T]) MaxLength() int { return len(s.data) - s.offset }

// Remaining tokens as a slice sharing the underlying array.
func (s SliceSource[T]) Remaining() []T { return s.data[s.offset:] }
