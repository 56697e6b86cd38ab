// Package stateful threads user-defined state through a parse.
//
// State lives in slots attached to the input. Setting a slot returns a new input and leaves the
// old one untouched, so state set by an alternative that ends up failing is never seen by the
// alternatives tried after it.
package stateful

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/belyaev-mikhail/kparsec2"
	"github.com/belyaev-mikhail/kparsec2/input"
)

type state[S any] struct {
	value S
}

// Advance implements input.Component. State carries over unchanged.
func (s *state[S]) Advance(int) input.Component { return s }

func (s *state[S]) String() string { return fmt.Sprint(s.value) }

// Slot holds a value of type S. Slots are distinct even if their names and types are the same.
type Slot[S any] struct {
	key input.Key[*state[S]]
}

// NewSlot creates a new Slot.
func NewSlot[S any](name string) Slot[S] {
	return Slot[S]{key: input.NewKey[*state[S]](name)}
}

func (s Slot[S]) String() string { return s.key.String() }

// Init sets the value of slot on in.
func Init[T, S any](in input.Input[T], slot Slot[S], value S) *input.Compound[T] {
	return input.Put(in, slot.key, &state[S]{value: value})
}

// Lookup the value of slot on in.
func Lookup[T, S any](in input.Input[T], slot Slot[S]) (S, bool) {
	st, ok := input.Get(in, slot.key)
	if !ok {
		var zero S
		return zero, false
	}
	return st.value, true
}

func mustLookup[T, S any](in input.Input[T], slot Slot[S]) S {
	value, ok := Lookup(in, slot)
	if !ok {
		panic(errors.AssertionFailedf("stateful: slot %q is not set at %s", slot.String(), in.Location()))
	}
	return value
}

// Get matches nothing with the value of slot.
//
// Reading a slot that was never set is a bug in the grammar and panics.
func Get[T, S any](slot Slot[S]) kparsec2.Parser[T, S] {
	return kparsec2.New("get "+slot.String(), func(in input.Input[T]) kparsec2.Result[T, S] {
		return kparsec2.Ok(in, mustLookup(in, slot))
	})
}

// Set matches nothing, setting slot to value.
func Set[T, S any](slot Slot[S], value S) kparsec2.Parser[T, kparsec2.Unit] {
	return kparsec2.New("set "+slot.String(), func(in input.Input[T]) kparsec2.Result[T, kparsec2.Unit] {
		return kparsec2.Ok[T](Init(in, slot, value), kparsec2.Unit{})
	})
}

// Modify matches nothing, replacing the value of slot with f of it. The new value is returned.
//
// Modifying a slot that was never set panics, see Get.
func Modify[T, S any](slot Slot[S], f func(S) S) kparsec2.Parser[T, S] {
	return kparsec2.New("modify "+slot.String(), func(in input.Input[T]) kparsec2.Result[T, S] {
		value := f(mustLookup(in, slot))
		return kparsec2.Ok[T](Init(in, slot, value), value)
	})
}

// ModifyIfSet is like Modify, but tolerates an unset slot: f is then called with the zero value
// and false.
func ModifyIfSet[T, S any](slot Slot[S], f func(S, bool) S) kparsec2.Parser[T, S] {
	return kparsec2.New("modify "+slot.String(), func(in input.Input[T]) kparsec2.Result[T, S] {
		value := f(Lookup(in, slot))
		return kparsec2.Ok[T](Init(in, slot, value), value)
	})
}

// Require matches nothing with the value of slot if it is set and satisfies pred, and fails
// expecting expected otherwise.
func Require[T, S any](slot Slot[S], expected string, pred func(S) bool) kparsec2.Parser[T, S] {
	return kparsec2.New(expected, func(in input.Input[T]) kparsec2.Result[T, S] {
		value, ok := Lookup(in, slot)
		if !ok || !pred(value) {
			return kparsec2.Fail[S](in, expected)
		}
		return kparsec2.Ok(in, value)
	})
}

// Load the value of slot at the current input of a kparsec2.Do body.
func Load[T, S any](s *kparsec2.Scope[T], slot Slot[S]) (S, bool) {
	return Lookup(s.Input(), slot)
}

// Store value in slot at the current input of a kparsec2.Do body.
func Store[T, S any](s *kparsec2.Scope[T], slot Slot[S], value S) {
	s.SetInput(Init(s.Input(), slot, value))
}
