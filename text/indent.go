package text

import (
	"github.com/belyaev-mikhail/kparsec2"
	"github.com/belyaev-mikhail/kparsec2/stateful"
)

var (
	blank       = kparsec2.RunesWhile("indentation", func(r rune) bool { return r == ' ' || r == '\t' })
	blankLines  = kparsec2.Many(kparsec2.Then(blank, Newline))
	indentation = kparsec2.Then(blankLines, blank)
)

// Indent matches a newline and the indentation of the next non-blank line, and returns the
// change of indentation: the width of the indentation minus the width stored in slot, taken as 0
// if slot is not set. The new width is stored in slot.
func Indent(slot stateful.Slot[int]) kparsec2.Parser[rune, int] {
	return kparsec2.Do("indent", func(s *kparsec2.Scope[rune]) (int, bool) {
		if _, ok := kparsec2.Bind(s, Newline); !ok {
			return 0, false
		}
		ws, ok := kparsec2.Bind(s, indentation)
		if !ok {
			return 0, false
		}
		previous, _ := stateful.Load(s, slot)
		stateful.Store(s, slot, len(ws))
		return len(ws) - previous, true
	})
}
