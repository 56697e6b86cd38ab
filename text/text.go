// Package text provides parsers for the common building blocks of textual grammars.
package text

import (
	"unicode"

	"github.com/belyaev-mikhail/kparsec2"
)

var (
	// Whitespace matches a single white space rune.
	Whitespace = kparsec2.TokenFunc("whitespace", unicode.IsSpace)
	// Spaces matches any amount of white space.
	Spaces = kparsec2.Named("whitespaces", kparsec2.ManyAsString(Whitespace))
	// Spaces1 matches at least one white space rune.
	Spaces1 = kparsec2.Named("whitespaces", kparsec2.ManyOneAsString(Whitespace))
	// Newline matches "\n", "\r\n" or a lone "\r".
	Newline = kparsec2.Named("newline", kparsec2.OneOf(
		kparsec2.Ignore(kparsec2.Token('\n')),
		kparsec2.Ignore(kparsec2.Then(kparsec2.Token('\r'), kparsec2.Optional(kparsec2.Token('\n')))),
	))
)

// Identifier matches a letter or underscore followed by any number of letters, digits and
// underscores.
var Identifier = kparsec2.Named("identifier", kparsec2.ZipWith(
	kparsec2.TokenFunc("letter", func(r rune) bool { return r == '_' || unicode.IsLetter(r) }),
	kparsec2.RunesWhile("identifier", func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}),
	func(first rune, rest string) string { return string(first) + rest },
))
