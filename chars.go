package kparsec2

import (
	"strconv"
	"strings"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// Literal matches the exact text s.
func Literal(s string) Parser[rune, string] {
	name := strconv.Quote(s)
	runes := []rune(s)
	return newParser(constName(name), func(in input.Input[rune]) Result[rune, string] {
		rest := in
		for _, r := range runes {
			if !rest.HasNext() || rest.Current() != r {
				return FailWith[string](in, name, foundText(in, len(runes)))
			}
			rest = rest.Advance()
		}
		return Ok(rest, s)
	})
}

func foundText(in input.Input[rune], n int) any {
	taken := input.TakeFrom(in, n)
	if len(taken) == 0 {
		return foundAt(in)
	}
	return string(taken)
}

// OneOfRunes matches a single rune contained in chars.
func OneOfRunes(chars string) Parser[rune, rune] {
	if n := []rune(chars); len(n) == 1 {
		return Token(n[0])
	}
	return TokenFunc("<one of "+strconv.Quote(chars)+">", func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// NoneOfRunes matches a single rune not contained in chars.
func NoneOfRunes(chars string) Parser[rune, rune] {
	return TokenFunc("<none of "+strconv.Quote(chars)+">", func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

func runesToString[T any](p Parser[T, []rune]) Parser[T, string] {
	return Map(p, func(r []rune) string { return string(r) })
}

// ManyAsString matches p zero or more times, collecting the runes into a string.
func ManyAsString[T any](p Parser[T, rune]) Parser[T, string] {
	return runesToString(Many(p))
}

// ManyOneAsString matches p one or more times, collecting the runes into a string.
func ManyOneAsString[T any](p Parser[T, rune]) Parser[T, string] {
	return runesToString(ManyOne(p))
}

// RunesWhile matches the longest, possibly empty, run of runes satisfying pred.
func RunesWhile(name string, pred func(rune) bool) Parser[rune, string] {
	return newParser(constName(name), func(in input.Input[rune]) Result[rune, string] {
		var b strings.Builder
		for in.HasNext() && pred(in.Current()) {
			b.WriteRune(in.Current())
			in = in.Advance()
		}
		return Ok(in, b.String())
	})
}
