package kparsec2

import (
	"io"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// Match of a regular expression.
type Match struct {
	// Text matched by the whole expression.
	Text string
	// Groups holds the text of each capturing group, empty for groups that did not participate.
	Groups []string
}

func (m Match) String() string { return m.Text }

// Regexp matches pattern at the start of the input.
//
// The input is fed to the regular expression engine rune by rune. It is not read further than
// the engine needs.
func Regexp(pattern string) (Parser[rune, Match], error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	name := "regexp(" + pattern + ")"
	return newParser(constName(name), func(in input.Input[rune]) Result[rune, Match] {
		reader := &runeReader{in: in}
		loc := re.FindReaderSubmatchIndex(reader)
		if loc == nil {
			return Fail[Match](in, name)
		}
		match := Match{Text: reader.text(loc[0], loc[1])}
		for i := 2; i+1 < len(loc); i += 2 {
			if loc[i] < 0 {
				match.Groups = append(match.Groups, "")
			} else {
				match.Groups = append(match.Groups, reader.text(loc[i], loc[i+1]))
			}
		}
		return Ok(in.Drop(reader.runeIndex(loc[1])), match)
	}), nil
}

// MustRegexp is like Regexp but panics if pattern is invalid.
func MustRegexp(pattern string) Parser[rune, Match] {
	p, err := Regexp(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// runeReader reads an input as an io.RuneReader, remembering the runes read and the byte offset
// each of them started at.
type runeReader struct {
	in      input.Input[rune]
	runes   []rune
	offsets []int
	bytes   int
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if !r.in.HasNext() {
		return 0, 0, io.EOF
	}
	c := r.in.Current()
	r.in = r.in.Advance()
	size := utf8.RuneLen(c)
	if size < 0 {
		c = utf8.RuneError
		size = utf8.RuneLen(c)
	}
	r.runes = append(r.runes, c)
	r.offsets = append(r.offsets, r.bytes)
	r.bytes += size
	return c, size, nil
}

func (r *runeReader) runeIndex(byteOffset int) int {
	return sort.SearchInts(r.offsets, byteOffset)
}

func (r *runeReader) text(start, end int) string {
	return string(r.runes[r.runeIndex(start):r.runeIndex(end)])
}
