package kparsec2

import (
	"fmt"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// Kind of a Result.
type Kind int

const (
	// KindSuccess results carry a value and the rest of the input.
	KindSuccess Kind = iota
	// KindFailure results mean the parser did not match. Choices try their next alternative,
	// loops stop and optionals use their default.
	KindFailure
	// KindError results mean the input is invalid. They are never recovered from by the
	// combinators of this package.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Result of applying a Parser to an input.
type Result[T, R any] struct {
	Kind Kind
	// Rest of the input following the parsed prefix. Only set on success.
	Rest input.Input[T]
	// Value parsed. Only set on success.
	Value R
	// Diag describes the mismatch. Only set on failure and error.
	Diag *Diagnostic
}

// Ok creates a successful Result.
func Ok[T, R any](rest input.Input[T], value R) Result[T, R] {
	return Result[T, R]{Kind: KindSuccess, Rest: rest, Value: value}
}

// Fail creates a failed Result at in, expecting expected and finding in's current token.
func Fail[R, T any](in input.Input[T], expected string) Result[T, R] {
	return FailWith[R](in, expected, foundAt(in))
}

// FailWith creates a failed Result at in.
func FailWith[R, T any](in input.Input[T], expected string, found any) Result[T, R] {
	return Result[T, R]{Kind: KindFailure, Diag: diagnose(in, expected, found)}
}

// Fatal creates a Result of kind KindError at in.
func Fatal[R, T any](in input.Input[T], expected string, found any) Result[T, R] {
	return Result[T, R]{Kind: KindError, Diag: diagnose(in, expected, found)}
}

func diagnose[T any](in input.Input[T], expected string, found any) *Diagnostic {
	return &Diagnostic{Expected: expected, Found: found, Location: in.Location(), Offset: in.Offset()}
}

// Forward an unsuccessful Result as a Result of another value type.
func Forward[B, T, A any](r Result[T, A]) Result[T, B] {
	return Result[T, B]{Kind: r.Kind, Diag: r.Diag}
}

func (r Result[T, R]) IsSuccess() bool { return r.Kind == KindSuccess }

func (r Result[T, R]) IsFailure() bool { return r.Kind == KindFailure }

func (r Result[T, R]) IsError() bool { return r.Kind == KindError }

// Err returns nil on success and a *ParseError otherwise.
func (r Result[T, R]) Err() error {
	if r.Kind == KindSuccess {
		return nil
	}
	return &ParseError{Kind: r.Kind, Diagnostic: r.Diag}
}

// Get the parsed value, or the error of an unsuccessful Result.
func (r Result[T, R]) Get() (R, error) {
	return r.Value, r.Err()
}

// MustGet returns the parsed value and panics with a *ParseError if the Result is not a
// success.
func (r Result[T, R]) MustGet() R {
	if err := r.Err(); err != nil {
		panic(err)
	}
	return r.Value
}

// MustRest returns the rest of the input and panics with a *ParseError if the Result is not a
// success.
func (r Result[T, R]) MustRest() input.Input[T] {
	if err := r.Err(); err != nil {
		panic(err)
	}
	return r.Rest
}

func (r Result[T, R]) String() string {
	if r.Kind == KindSuccess {
		return fmt.Sprintf("success(%s at %s)", describe(r.Value), r.Rest.Location())
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Diag)
}
