package kparsec2_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/belyaev-mikhail/kparsec2"
)

func TestRegexpGreedy(t *testing.T) {
	r := kparsec2.MustRegexp(`.*`).Parse(str("abcdefg()"))
	require.Equal(t, "abcdefg()", r.MustGet().Text)
	require.False(t, r.Rest.HasNext())
}

func TestRegexpDigits(t *testing.T) {
	r := kparsec2.MustRegexp(`\d+`).Parse(str("123abc"))
	require.Equal(t, "123", r.MustGet().Text)
	require.Equal(t, 3, r.Rest.Offset())
	require.Equal(t, 'a', r.Rest.Current())

	r = kparsec2.MustRegexp(`\d+`).Parse(str("abc"))
	require.EqualError(t, r.Err(), `1:0: unexpected "a" (expected regexp(\d+))`)
}

func TestRegexpIsAnchored(t *testing.T) {
	require.True(t, kparsec2.MustRegexp(`b`).Parse(str("ab")).IsFailure())
	require.True(t, kparsec2.MustRegexp(`a|ab`).Parse(str("ab")).IsSuccess())
}

func TestRegexpZipped(t *testing.T) {
	count := kparsec2.Map(kparsec2.MustRegexp(`\d+`), func(m kparsec2.Match) int {
		n, err := strconv.Atoi(m.Text)
		require.NoError(t, err)
		return n
	})
	repeated := kparsec2.ZipWith(count, kparsec2.MustRegexp(`[a-z]+`), func(n int, m kparsec2.Match) string {
		return strings.Repeat(m.Text, n)
	})
	require.Equal(t, "abababab", repeated.Parse(str("4ab")).MustGet())
}

func TestRegexpGroupsAndRunes(t *testing.T) {
	r := kparsec2.MustRegexp(`(\pL+)(-(\d+))?`).Parse(str("héllo-42 rest"))
	m := r.MustGet()
	require.Equal(t, "héllo-42", m.Text)
	require.Equal(t, []string{"héllo", "-42", "42"}, m.Groups)
	require.Equal(t, 8, r.Rest.Offset())

	m = kparsec2.MustRegexp(`(\pL+)(-(\d+))?`).Parse(str("wörld")).MustGet()
	require.Equal(t, []string{"wörld", "", ""}, m.Groups)
}

func TestRegexpInvalid(t *testing.T) {
	_, err := kparsec2.Regexp(`(`)
	require.Error(t, err)
	require.Panics(t, func() { kparsec2.MustRegexp(`[`) })
}
