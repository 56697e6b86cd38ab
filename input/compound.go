package input

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// A Component is a payload attached to a Compound input.
type Component interface {
	// Advance is called whenever the owning input moves forward by n tokens; the result is
	// attached to the new input. n may be zero.
	Advance(n int) Component
}

// Key identifies a kind of Component. Keys are compared by identity: two keys created by
// separate NewKey calls never collide, even with the same name and type.
type Key[C Component] struct {
	id *keyID
}

type keyID struct{ name string }

// NewKey creates a new Component kind.
func NewKey[C Component](name string) Key[C] {
	return Key[C]{id: &keyID{name: name}}
}

func (k Key[C]) String() string { return k.id.name }

type entry struct {
	id    *keyID
	value Component
}

// Compound decorates an Input with an ordered set of Components.
//
// A Compound remembers the inputs Advance and Drop returned, so every path through the grammar
// that moves forward from it the same way reaches the same Compound and sees the same
// Components there.
type Compound[T any] struct {
	base       Input[T]
	components []entry

	once  sync.Once
	next  Input[T]
	drops sync.Map // int -> Input[T]
}

var _ Input[any] = (*Compound[any])(nil)

// Wrap in in a Compound, unless it already is one.
func Wrap[T any](in Input[T]) *Compound[T] {
	if c, ok := in.(*Compound[T]); ok {
		return c
	}
	return &Compound[T]{base: in}
}

// Base returns the undecorated Input.
func (c *Compound[T]) Base() Input[T] { return c.base }

func (c *Compound[T]) Current() T { return c.base.Current() }

func (c *Compound[T]) HasNext() bool { return c.base.HasNext() }

func (c *Compound[T]) Location() Position { return c.base.Location() }

func (c *Compound[T]) Offset() int { return c.base.Offset() }

func (c *Compound[T]) Source() Source[T] { return c.base.Source() }

func (c *Compound[T]) Advance() Input[T] {
	c.once.Do(func() {
		next := c.base.Advance()
		if next == c.base {
			c.next = c
			return
		}
		c.next = &Compound[T]{base: next, components: c.advanced(1)}
	})
	return c.next
}

func (c *Compound[T]) Drop(n int) Input[T] {
	if n <= 0 {
		return c
	}
	if n == 1 {
		return c.Advance()
	}
	if cached, ok := c.drops.Load(n); ok {
		return cached.(Input[T])
	}
	var dropped Input[T] = c
	if next := c.base.Drop(n); next != c.base {
		dropped = &Compound[T]{base: next, components: c.advanced(next.Offset() - c.base.Offset())}
	}
	actual, _ := c.drops.LoadOrStore(n, dropped)
	return actual.(Input[T])
}

func (c *Compound[T]) advanced(n int) []entry {
	out := make([]entry, len(c.components))
	for i, e := range c.components {
		out[i] = entry{id: e.id, value: e.value.Advance(n)}
	}
	return out
}

func (c *Compound[T]) lookup(id *keyID) (Component, bool) {
	for _, e := range c.components {
		if e.id == id {
			return e.value, true
		}
	}
	return nil, false
}

func (c *Compound[T]) String() string {
	if len(c.components) == 0 {
		return c.base.Location().String()
	}
	names := make([]string, 0, len(c.components))
	for _, e := range c.components {
		names = append(names, e.id.name)
	}
	return c.base.Location().String() + " with " + strings.Join(names, ", ")
}

// Get the Component attached to in under key.
func Get[T any, C Component](in Input[T], key Key[C]) (C, bool) {
	var zero C
	c, ok := in.(*Compound[T])
	if !ok {
		return zero, false
	}
	value, ok := c.lookup(key.id)
	if !ok {
		return zero, false
	}
	return value.(C), true
}

// MustGet is like Get but panics if no Component is attached under key.
//
// Looking up a component that was never attached is a programming error in the grammar.
func MustGet[T any, C Component](in Input[T], key Key[C]) C {
	value, ok := Get(in, key)
	if !ok {
		panic(errors.AssertionFailedf("input: no component %q attached at %s", key.String(), in.Location()))
	}
	return value
}

// Put attaches value under key, replacing any Component already attached under it.
func Put[T any, C Component](in Input[T], key Key[C], value C) *Compound[T] {
	c := Wrap(in)
	components := make([]entry, 0, len(c.components)+1)
	replaced := false
	for _, e := range c.components {
		if e.id == key.id {
			e.value = value
			replaced = true
		}
		components = append(components, e)
	}
	if !replaced {
		components = append(components, entry{id: key.id, value: value})
	}
	return &Compound[T]{base: c.base, components: components}
}

// PutIfAbsent attaches the Component created by create unless one is already attached under
// key.
func PutIfAbsent[T any, C Component](in Input[T], key Key[C], create func() C) *Compound[T] {
	c := Wrap(in)
	if _, ok := c.lookup(key.id); ok {
		return c
	}
	return Put[T](c, key, create())
}
