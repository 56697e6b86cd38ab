package text

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/belyaev-mikhail/kparsec2"
	"github.com/belyaev-mikhail/kparsec2/input"
)

const graphemeWindow = 8

// Grapheme matches a single extended grapheme cluster, a user-perceived character that may span
// several runes.
var Grapheme = kparsec2.New("grapheme", func(in input.Input[rune]) kparsec2.Result[rune, string] {
	if !in.HasNext() {
		return kparsec2.Fail[string](in, "grapheme")
	}
	for n := graphemeWindow; ; n *= 2 {
		window := input.TakeFrom(in, n)
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(window), -1)
		runes := utf8.RuneCountInString(cluster)
		if runes < len(window) || len(window) < n {
			return kparsec2.Ok(in.Drop(runes), cluster)
		}
	}
})
