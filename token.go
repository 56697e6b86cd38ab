package kparsec2

import (
	"reflect"
	"slices"
	"strings"

	"github.com/belyaev-mikhail/kparsec2/input"
)

type tokenParser[T any] struct {
	name  string
	match func(T) bool
}

func (t *tokenParser[T]) String() string { return t.name }

func (t *tokenParser[T]) Parse(in input.Input[T]) Result[T, T] {
	if !in.HasNext() {
		return Fail[T](in, t.name)
	}
	current := in.Current()
	if !t.match(current) {
		return Fail[T](in, t.name)
	}
	return Ok(in.Advance(), current)
}

// Any matches any single token.
func Any[T any]() Parser[T, T] {
	return &tokenParser[T]{name: "<any>", match: func(T) bool { return true }}
}

// TokenFunc matches a single token satisfying pred.
func TokenFunc[T any](name string, pred func(T) bool) Parser[T, T] {
	return &tokenParser[T]{name: name, match: pred}
}

// Token matches the token equal to value.
func Token[T comparable](value T) Parser[T, T] {
	return &tokenParser[T]{name: describe(value), match: func(t T) bool { return t == value }}
}

// NotToken matches any single token except value.
func NotToken[T comparable](value T) Parser[T, T] {
	return &tokenParser[T]{name: "!" + describe(value), match: func(t T) bool { return t != value }}
}

// OneOfTokens matches a single token equal to any of tokens.
func OneOfTokens[T comparable](tokens ...T) Parser[T, T] {
	if len(tokens) == 1 {
		return Token(tokens[0])
	}
	set := tokenSet(tokens)
	return &tokenParser[T]{name: describeSet("<one of [", tokens), match: func(t T) bool {
		_, ok := set[t]
		return ok
	}}
}

// NotOneOf matches any single token except tokens.
func NotOneOf[T comparable](tokens ...T) Parser[T, T] {
	if len(tokens) == 1 {
		return NotToken(tokens[0])
	}
	set := tokenSet(tokens)
	return &tokenParser[T]{name: describeSet("<not one of [", tokens), match: func(t T) bool {
		_, ok := set[t]
		return !ok
	}}
}

func tokenSet[T comparable](tokens []T) map[T]struct{} {
	set := make(map[T]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func describeSet[T any](prefix string, tokens []T) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, t := range tokens {
		b.WriteString(describe(t))
	}
	b.WriteString("]>")
	return b.String()
}

// TokenAs matches a single token of dynamic type S.
func TokenAs[T, S any]() Parser[T, S] {
	name := reflect.TypeFor[S]().String()
	return newParser(constName(name), func(in input.Input[T]) Result[T, S] {
		if !in.HasNext() {
			return Fail[S](in, name)
		}
		s, ok := any(in.Current()).(S)
		if !ok {
			return Fail[S](in, name)
		}
		return Ok(in.Advance(), s)
	})
}

// Tokens matches the exact sequence of tokens.
func Tokens[T comparable](tokens ...T) Parser[T, []T] {
	name := describeSeq(tokens)
	return newParser(constName(name), func(in input.Input[T]) Result[T, []T] {
		rest := in
		for _, t := range tokens {
			if !rest.HasNext() || rest.Current() != t {
				return FailWith[[]T](in, name, found(in, len(tokens)))
			}
			rest = rest.Advance()
		}
		return Ok(rest, slices.Clone(tokens))
	})
}

func describeSeq[T any](tokens []T) string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = describe(t)
	}
	return strings.Join(names, " + ")
}

// found returns up to n tokens from in, or EndOfInput if there are none.
func found[T any](in input.Input[T], n int) any {
	taken := input.TakeFrom(in, n)
	if len(taken) == 0 {
		return foundAt(in)
	}
	return taken
}

// ManyTokens matches the longest run of tokens satisfying pred.
func ManyTokens[T any](name string, pred func(T) bool) Parser[T, []T] {
	return Named(name, Many(TokenFunc(name, pred)))
}

// ManyOneTokens matches the longest non-empty run of tokens satisfying pred.
func ManyOneTokens[T any](name string, pred func(T) bool) Parser[T, []T] {
	return Named(name, ManyOne(TokenFunc(name, pred)))
}

// Choice consumes a single token and continues with the parser body selects for it.
func Choice[T, R any](name string, body func(T) Parser[T, R]) Parser[T, R] {
	return newParser(constName(name), func(in input.Input[T]) Result[T, R] {
		if !in.HasNext() {
			return Fail[R](in, name)
		}
		return body(in.Current()).Parse(in.Advance())
	})
}

// PeekChoice is like Choice, but the selected parser starts at the selecting token.
func PeekChoice[T, R any](name string, body func(T) Parser[T, R]) Parser[T, R] {
	return newParser(constName(name), func(in input.Input[T]) Result[T, R] {
		if !in.HasNext() {
			return Fail[R](in, name)
		}
		return body(in.Current()).Parse(in)
	})
}
