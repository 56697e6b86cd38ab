package kparsec2

import (
	"github.com/belyaev-mikhail/kparsec2/input"
)

// Scope threads the input through the body of a Do parser.
type Scope[T any] struct {
	in   input.Input[T]
	kind Kind
	diag *Diagnostic
}

// Input the next Bind will parse.
func (s *Scope[T]) Input() input.Input[T] { return s.in }

// SetInput replaces the input the next Bind will parse.
func (s *Scope[T]) SetInput(in input.Input[T]) { s.in = in }

// Fail records a failure expecting expected at the current input. It always returns false, so
// that a body can end with "return zero, s.Fail(...)".
func (s *Scope[T]) Fail(expected string) bool {
	s.kind = KindFailure
	s.diag = &Diagnostic{Expected: expected, Found: foundAt(s.in), Location: s.in.Location(), Offset: s.in.Offset()}
	return false
}

func (s *Scope[T]) record(kind Kind, diag *Diagnostic) {
	s.kind = kind
	s.diag = diag
}

// Bind parses p at the current input of s. On success the input moves past the match and the
// value is returned with true. Otherwise the result is recorded in s and false is returned; the
// body should return false as well.
func Bind[T, R any](s *Scope[T], p Parser[T, R]) (R, bool) {
	r := p.Parse(s.in)
	if !r.IsSuccess() {
		s.record(r.Kind, r.Diag)
		var zero R
		return zero, false
	}
	s.in = r.Rest
	return r.Value, true
}

// TryBind is like Bind, but a failure of p leaves s untouched and only reports false. Errors are
// recorded and end the Do parser whatever the body returns.
func TryBind[T, R any](s *Scope[T], p Parser[T, R]) (R, bool) {
	r := p.Parse(s.in)
	if !r.IsSuccess() {
		if r.IsError() {
			s.record(r.Kind, r.Diag)
		}
		var zero R
		return zero, false
	}
	s.in = r.Rest
	return r.Value, true
}

// Do creates a parser from a function that parses with Bind and TryBind.
//
// The body returns its value and true on success. When it returns false the last failure
// recorded in the scope is the result, or a failure expecting name if there is none.
func Do[T, R any](name string, body func(s *Scope[T]) (R, bool)) Parser[T, R] {
	return newParser(constName(name), func(in input.Input[T]) Result[T, R] {
		s := &Scope[T]{in: in, kind: KindSuccess}
		value, ok := body(s)
		switch {
		case s.kind == KindError:
			return Result[T, R]{Kind: KindError, Diag: s.diag}
		case ok:
			return Ok(s.in, value)
		case s.diag != nil:
			return Result[T, R]{Kind: s.kind, Diag: s.diag}
		}
		return Fail[R](in, name)
	})
}
