package kparsec2

import (
	"github.com/belyaev-mikhail/kparsec2/input"
)

// EOF matches the end of the input.
func EOF[T any]() Parser[T, Unit] {
	return newParser(constName("<EOF>"), func(in input.Input[T]) Result[T, Unit] {
		if in.HasNext() {
			return Fail[Unit](in, "<EOF>")
		}
		return Ok(in, Unit{})
	})
}

// Succeed matches nothing with value.
func Succeed[T, R any](value R) Parser[T, R] {
	return newParser(constName("<success>"), func(in input.Input[T]) Result[T, R] {
		return Ok(in, value)
	})
}

// Failing never matches, expecting expected.
func Failing[T, R any](expected string) Parser[T, R] {
	return newParser(constName(expected), func(in input.Input[T]) Result[T, R] {
		return Fail[R](in, expected)
	})
}

// Cursor matches nothing with the input itself as its value.
func Cursor[T any]() Parser[T, input.Input[T]] {
	return newParser(constName("<cursor>"), func(in input.Input[T]) Result[T, input.Input[T]] {
		return Ok(in, in)
	})
}
