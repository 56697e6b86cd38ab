package text

import (
	"maps"
	"slices"
	"strconv"

	"github.com/belyaev-mikhail/kparsec2"
)

// DefaultEscapes maps the runes following a backslash in a quoted string to the runes they
// stand for.
var DefaultEscapes = map[rune]rune{
	'r': '\r',
	'n': '\n',
	't': '\t',
	'b': '\b',
	'0': 0,
}

// DefaultComplexEscapes maps the runes following a backslash in a quoted string to parsers of the
// rest of the escape sequence: \xHH and \uHHHH.
var DefaultComplexEscapes = map[rune]kparsec2.Parser[rune, rune]{
	'x': hexRune(2),
	'u': hexRune(4),
}

func hexRune(n int) kparsec2.Parser[rune, rune] {
	return kparsec2.Map(kparsec2.Repeat(n, HexDigit), func(digits []rune) rune {
		v, _ := strconv.ParseUint(string(digits), 16, 32)
		return rune(v)
	})
}

func quotedRune(open, close rune, escapes map[rune]rune, complexEscapes map[rune]kparsec2.Parser[rune, rune]) kparsec2.Parser[rune, rune] {
	simple := escapeMap(escapes, open, close)
	simpleKeys := slices.Sorted(maps.Keys(simple))
	complexKeys := slices.Sorted(maps.Keys(complexEscapes))

	alternatives := []kparsec2.Parser[rune, rune]{
		kparsec2.Map(kparsec2.OneOfTokens(simpleKeys...), func(r rune) rune { return simple[r] }),
	}
	if len(complexKeys) > 0 {
		alternatives = append(alternatives, kparsec2.FlatMap(kparsec2.OneOfTokens(complexKeys...), func(r rune) kparsec2.Parser[rune, rune] {
			return complexEscapes[r]
		}))
	}
	escaped := kparsec2.Then(kparsec2.Token('\\'), kparsec2.Commit(kparsec2.OneOf(alternatives...)))
	return kparsec2.OneOf(kparsec2.NotOneOf(open, close, '\\'), escaped)
}

func escapeMap(escapes map[rune]rune, quotes ...rune) map[rune]rune {
	out := maps.Clone(escapes)
	if out == nil {
		out = map[rune]rune{}
	}
	for _, q := range quotes {
		out[q] = q
	}
	out['\\'] = '\\'
	return out
}

// QuotedString matches a string between open and close, with the escape sequences described by
// escapes and complexEscapes, and returns its unescaped value.
//
// A missing closing quote or an invalid escape sequence is an error.
func QuotedString(open, close rune, escapes map[rune]rune, complexEscapes map[rune]kparsec2.Parser[rune, rune]) kparsec2.Parser[rune, string] {
	return kparsec2.Between(
		kparsec2.Token(open),
		kparsec2.ManyAsString(quotedRune(open, close, escapes, complexEscapes)),
		kparsec2.Commit(kparsec2.Token(close)),
	)
}

// QuotedRune matches a single, possibly escaped, rune between open and close.
func QuotedRune(open, close rune, escapes map[rune]rune, complexEscapes map[rune]kparsec2.Parser[rune, rune]) kparsec2.Parser[rune, rune] {
	return kparsec2.Between(
		kparsec2.Token(open),
		kparsec2.Commit(quotedRune(open, close, escapes, complexEscapes)),
		kparsec2.Commit(kparsec2.Token(close)),
	)
}

var (
	// StringLiteral matches a double quoted string with the default escapes.
	StringLiteral = QuotedString('"', '"', DefaultEscapes, DefaultComplexEscapes)
	// RuneLiteral matches a single quoted rune with the default escapes.
	RuneLiteral = QuotedRune('\'', '\'', DefaultEscapes, DefaultComplexEscapes)
)
