package kparsec2_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/belyaev-mikhail/kparsec2"
	"github.com/belyaev-mikhail/kparsec2/input"
)

func str(s string) input.Input[rune] { return input.String(s) }

func TestLiteral(t *testing.T) {
	r := kparsec2.Literal("abcd").Parse(str("abcd"))
	require.True(t, r.IsSuccess())
	require.Equal(t, "abcd", r.Value)
	require.False(t, r.Rest.HasNext())

	r = kparsec2.Literal("abcd").Parse(str("abxd"))
	require.True(t, r.IsFailure())
	require.EqualError(t, r.Err(), `1:0: unexpected "abxd" (expected "abcd")`)

	r = kparsec2.Literal("abcd").Parse(str(""))
	require.EqualError(t, r.Err(), `1:0: unexpected <EOF> (expected "abcd")`)
}

func TestToken(t *testing.T) {
	r := kparsec2.Token('a').Parse(str("xyz"))
	require.Equal(t, kparsec2.KindFailure, r.Kind)
	require.Equal(t, "a", r.Diag.Expected)
	require.Equal(t, 'x', r.Diag.Found)
	require.Equal(t, "x", r.Diag.FoundString())

	for _, c := range "abc!é\n" {
		in := str(string(c) + "rest")
		r := kparsec2.Token(c).Parse(in)
		require.True(t, r.IsSuccess())
		require.Equal(t, c, r.Value)
		require.Equal(t, 1, r.Rest.Offset())
	}
}

func TestMany(t *testing.T) {
	r := kparsec2.Many(kparsec2.Token('a')).Parse(str("aaab"))
	require.True(t, r.IsSuccess())
	require.Equal(t, []rune{'a', 'a', 'a'}, r.Value)
	require.Equal(t, 'b', r.Rest.Current())
}

func TestManyStopsOnNonConsumingMatch(t *testing.T) {
	in := str("yyy")
	r := kparsec2.Many(kparsec2.Optional(kparsec2.Token('x'))).Parse(in)
	require.True(t, r.IsSuccess())
	require.Empty(t, r.Value)
	require.Same(t, in, r.Rest)

	r2 := kparsec2.ManyOne(kparsec2.Succeed[rune](1)).Parse(in)
	require.True(t, r2.IsFailure())
	require.Equal(t, "<success>+", kparsec2.ManyOne(kparsec2.Succeed[rune](1)).String())

	r3 := kparsec2.SeparatedBy(kparsec2.Optional(kparsec2.Token('y')), kparsec2.Optional(kparsec2.Token(','))).Parse(in)
	require.True(t, r3.IsSuccess())
	require.Len(t, r3.Value, 3)
}

func TestManyOne(t *testing.T) {
	p := kparsec2.ManyOne(kparsec2.Token('a'))
	require.Equal(t, []rune("aa"), p.Parse(str("aab")).MustGet())

	r := p.Parse(str("b"))
	require.True(t, r.IsFailure())
	require.Equal(t, "a", r.Diag.Expected)
	require.Equal(t, 'b', r.Diag.Found)

	r = p.Parse(str(""))
	require.EqualError(t, r.Err(), "1:0: unexpected <EOF> (expected a)")
}

func TestRepeat(t *testing.T) {
	p := kparsec2.Repeat(2, kparsec2.Token('a'))
	r := p.Parse(str("aaa"))
	require.Equal(t, []rune("aa"), r.MustGet())
	require.Equal(t, 2, r.Rest.Offset())

	r = kparsec2.Repeat(3, kparsec2.Token('a')).Parse(str("aab"))
	require.True(t, r.IsFailure())
	require.Equal(t, 2, r.Diag.Offset)
	require.Equal(t, 'b', r.Diag.Found)

	require.Empty(t, kparsec2.Repeat(0, kparsec2.Token('a')).Parse(str("b")).MustGet())
	require.Equal(t, "a × 3", kparsec2.Repeat(3, kparsec2.Token('a')).String())
	require.Panics(t, func() { kparsec2.Repeat(-1, kparsec2.Token('a')) })
}

func TestRepetitionAtEndOfInput(t *testing.T) {
	committed := kparsec2.Commit(kparsec2.Token('x'))
	tests := []struct {
		name  string
		p     kparsec2.Parser[rune, int]
		input string
		err   string
	}{
		{"Many", kparsec2.Map(kparsec2.Many(committed), func(rs []rune) int { return len(rs) }),
			"", `1:0: unexpected <EOF> (expected x)`},
		{"Optional", kparsec2.Map(kparsec2.Optional(committed), func(*rune) int { return 0 }),
			"", `1:0: unexpected <EOF> (expected x)`},
		{"ManyFold", kparsec2.ManyFold(committed, 0, func(n int, _ rune) int { return n + 1 }),
			"x", `1:1: unexpected <EOF> (expected x)`},
		{"Separator", kparsec2.Map(kparsec2.SeparatedBy(kparsec2.Token('a'), committed), func(rs []rune) int { return len(rs) }),
			"a", `1:1: unexpected <EOF> (expected x)`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := test.p.Parse(str(test.input))
			require.True(t, r.IsError(), r.String())
			require.EqualError(t, r.Err(), test.err)
		})
	}

	r := kparsec2.Many(kparsec2.Token('x')).Parse(str(""))
	require.True(t, r.IsSuccess())
	require.Empty(t, r.Value)
}

func TestSeparatedBy(t *testing.T) {
	digit := kparsec2.TokenFunc("digit", func(r rune) bool { return r >= '0' && r <= '9' })
	p := kparsec2.SeparatedBy(digit, kparsec2.Token(','))

	r := p.Parse(str("1,2,3"))
	require.Equal(t, []rune("123"), r.MustGet())
	require.False(t, r.Rest.HasNext())

	r = p.Parse(str("1,2,x"))
	require.Equal(t, []rune("12"), r.MustGet())
	require.Equal(t, ',', r.Rest.Current())
	require.Equal(t, 3, r.Rest.Offset())

	in := str("x")
	r = p.Parse(in)
	require.Empty(t, r.MustGet())
	require.Same(t, in, r.Rest)

	count := kparsec2.SeparatedByFold(digit, kparsec2.Token(';'), 0, func(n int, _ rune) int { return n + 1 })
	require.Equal(t, 4, count.Parse(str("1;2;3;4")).MustGet())
}

func TestOneOfIsLeftBiased(t *testing.T) {
	short := kparsec2.Map(kparsec2.Literal("ab"), func(string) string { return "short" })
	long := kparsec2.Map(kparsec2.Literal("abc"), func(string) string { return "long" })
	for _, s := range []string{"ab", "abc", "abcd"} {
		require.Equal(t, "short", kparsec2.OneOf(short, long).Parse(str(s)).MustGet())
		require.Equal(t, "long", kparsec2.Or(long, short).Parse(str(s+"c")).MustGet())
	}
}

func TestOneOfFailures(t *testing.T) {
	p := kparsec2.OneOf(kparsec2.Token('a'), kparsec2.OneOf(kparsec2.Token('b'), kparsec2.Token('c')))
	require.Equal(t, "a | b | c", p.String())
	r := p.Parse(str("d"))
	require.EqualError(t, r.Err(), `1:0: unexpected "d" (expected a | b | c)`)

	deep := kparsec2.OneOf(
		kparsec2.Then(kparsec2.Token('a'), kparsec2.Token('b')),
		kparsec2.Then(kparsec2.Token('a'), kparsec2.Then(kparsec2.Token('c'), kparsec2.Token('d'))),
		kparsec2.Token('x'),
	)
	r = deep.Parse(str("acx"))
	require.True(t, r.IsFailure())
	require.Equal(t, 2, r.Diag.Offset)
	require.Equal(t, "d", r.Diag.Expected)
}

func TestErrorShortCircuits(t *testing.T) {
	tried := false
	fallback := kparsec2.New("fallback", func(in input.Input[rune]) kparsec2.Result[rune, rune] {
		tried = true
		return kparsec2.Ok(in, '?')
	})
	committed := kparsec2.Then(kparsec2.Token('"'), kparsec2.Commit(kparsec2.Token('x')))

	r := kparsec2.OneOf(committed, fallback).Parse(str(`"y`))
	require.True(t, r.IsError())
	require.False(t, tried)
	require.Equal(t, 1, r.Diag.Offset)

	for name, p := range map[string]kparsec2.Parser[rune, int]{
		"Many":        kparsec2.Map(kparsec2.Many(committed), func(rs []rune) int { return len(rs) }),
		"Optional":    kparsec2.Map(kparsec2.Optional(committed), func(*rune) int { return 0 }),
		"OrElse":      kparsec2.Map(kparsec2.OrElse(committed, 'z'), func(rune) int { return 0 }),
		"SeparatedBy": kparsec2.Map(kparsec2.SeparatedBy(committed, kparsec2.Token(',')), func(rs []rune) int { return len(rs) }),
		"Not":         kparsec2.As(kparsec2.Not(committed), 0),
	} {
		t.Run(name, func(t *testing.T) {
			require.True(t, p.Parse(str(`"y`)).IsError())
		})
	}
}

func TestOptional(t *testing.T) {
	p := kparsec2.Optional(kparsec2.Token('a'))
	r := p.Parse(str("ab"))
	require.NotNil(t, r.Value)
	require.Equal(t, 'a', *r.Value)
	require.Nil(t, p.Parse(str("b")).MustGet())

	require.Equal(t, 'z', kparsec2.OrElse(kparsec2.Token('a'), 'z').Parse(str("b")).MustGet())
	require.Equal(t, "a?", p.String())
}

func TestLookahead(t *testing.T) {
	in := str("ab")
	r := kparsec2.Peek(kparsec2.Token('a')).Parse(in)
	require.Equal(t, 'a', r.Value)
	require.Same(t, in, r.Rest)

	r2 := kparsec2.Not(kparsec2.Token('b')).Parse(in)
	require.True(t, r2.IsSuccess())
	require.Same(t, in, r2.Rest)
	require.True(t, kparsec2.Not(kparsec2.Token('a')).Parse(in).IsFailure())
}

func TestSequenceVariantsAgree(t *testing.T) {
	variants := map[string]kparsec2.Parser[rune, string]{
		"Literal": kparsec2.Literal("abc"),
		"Tokens":  kparsec2.Map(kparsec2.Tokens('a', 'b', 'c'), func(rs []rune) string { return string(rs) }),
		"Sequence": kparsec2.Map(kparsec2.Sequence(kparsec2.Token('a'), kparsec2.Token('b'), kparsec2.Token('c')),
			func(rs []rune) string { return string(rs) }),
		"SequenceFold": kparsec2.SequenceFold("", func(s string, r rune) string { return s + string(r) },
			kparsec2.Token('a'), kparsec2.Token('b'), kparsec2.Token('c')),
		"ZipWith3": kparsec2.ZipWith3(kparsec2.Token('a'), kparsec2.Token('b'), kparsec2.Token('c'),
			func(a, b, c rune) string { return string([]rune{a, b, c}) }),
	}
	for name, p := range variants {
		t.Run(name, func(t *testing.T) {
			r := p.Parse(str("abcd"))
			require.Equal(t, "abc", r.MustGet())
			require.Equal(t, 3, r.Rest.Offset())
			require.True(t, p.Parse(str("abd")).IsFailure())
			require.True(t, p.Parse(str("")).IsFailure())
		})
	}
}

func TestZip(t *testing.T) {
	p := kparsec2.Zip(kparsec2.Token('a'), kparsec2.Literal("bc"))
	require.Equal(t, kparsec2.Pair[rune, string]{First: 'a', Second: "bc"}, p.Parse(str("abc")).MustGet())
	require.Equal(t, `a + "bc"`, p.String())

	between := kparsec2.Between(kparsec2.Token('('), kparsec2.Token('x'), kparsec2.Token(')'))
	require.Equal(t, 'x', between.Parse(str("(x)")).MustGet())
	require.Equal(t, 'x', kparsec2.Skip(kparsec2.Token('x'), kparsec2.Token(';')).Parse(str("x;")).MustGet())
	require.Equal(t, ';', kparsec2.Then(kparsec2.Token('x'), kparsec2.Token(';')).Parse(str("x;")).MustGet())
}

func TestMapFilter(t *testing.T) {
	digit := kparsec2.Map(kparsec2.TokenFunc("digit", func(r rune) bool { return r >= '0' && r <= '9' }),
		func(r rune) int { return int(r - '0') })
	even := kparsec2.Filter(digit, "even digit", func(n int) bool { return n%2 == 0 })
	require.Equal(t, 4, even.Parse(str("4")).MustGet())
	r := even.Parse(str("3"))
	require.EqualError(t, r.Err(), `1:0: unexpected "3" (expected even digit)`)

	half := kparsec2.MapNotNull(digit, func(n int) (int, bool) { return n / 2, n%2 == 0 })
	require.Equal(t, 3, half.Parse(str("6")).MustGet())
	require.True(t, half.Parse(str("7")).IsFailure())

	next := kparsec2.FlatMap(digit, func(n int) kparsec2.Parser[rune, []rune] {
		return kparsec2.Repeat(n, kparsec2.Any[rune]())
	})
	require.Equal(t, []rune("abc"), next.Parse(str("3abcd")).MustGet())
}

func TestNamed(t *testing.T) {
	digits := kparsec2.Named("number", kparsec2.ManyOneAsString(kparsec2.OneOfRunes("0123456789")))
	require.EqualError(t, digits.Parse(str("x")).Err(), `1:0: unexpected "x" (expected number)`)

	pair := kparsec2.Named("pair", kparsec2.Then(kparsec2.Token('('), kparsec2.Token(')')))
	require.EqualError(t, pair.Parse(str("(x")).Err(), `1:1: unexpected "x" (expected ))`)
}

func TestRecursive(t *testing.T) {
	depth := kparsec2.Recursive("parens", func(self kparsec2.Parser[rune, int]) kparsec2.Parser[rune, int] {
		nested := kparsec2.Map(kparsec2.Between(kparsec2.Token('('), self, kparsec2.Token(')')),
			func(n int) int { return n + 1 })
		return kparsec2.OrElse(nested, 0)
	})
	require.Equal(t, 4, depth.Parse(str("(((())))")).MustGet())
	require.Equal(t, "parens", depth.String())

	var value kparsec2.Parser[rune, int]
	list := kparsec2.Lazy("list", func() kparsec2.Parser[rune, int] {
		return kparsec2.Map(kparsec2.Between(kparsec2.Token('['), kparsec2.Many(value), kparsec2.Token(']')),
			func(items []int) int { return len(items) })
	})
	value = kparsec2.OneOf(list, kparsec2.As(kparsec2.Token('x'), 1))
	require.Equal(t, 3, list.Parse(str("[x[x]x]")).MustGet())

	require.Panics(t, func() { kparsec2.NewRef[rune, int]("unset").Parse(str("")) })
}

func TestTokenParsers(t *testing.T) {
	in := input.Input[int](input.Tokens([]int{1, 2, 3, 4}))
	require.Equal(t, 1, kparsec2.Any[int]().Parse(in).MustGet())
	require.Equal(t, 1, kparsec2.OneOfTokens(5, 1).Parse(in).MustGet())
	require.Equal(t, 1, kparsec2.NotToken(2).Parse(in).MustGet())
	require.True(t, kparsec2.NotOneOf(1, 2).Parse(in).IsFailure())
	require.Equal(t, []int{1, 2}, kparsec2.ManyTokens("small", func(n int) bool { return n < 3 }).Parse(in).MustGet())
	require.Equal(t, []int{1}, kparsec2.ManyOneTokens("odd", func(n int) bool { return n%2 == 1 }).Parse(in).MustGet())
	require.True(t, kparsec2.ManyOneTokens("even", func(n int) bool { return n%2 == 0 }).Parse(in).IsFailure())
	require.True(t, kparsec2.Any[int]().Parse(in.Drop(4)).IsFailure())

	pick := kparsec2.Choice("pick", func(n int) kparsec2.Parser[int, []int] {
		return kparsec2.Repeat(n, kparsec2.Any[int]())
	})
	require.Equal(t, []int{2}, pick.Parse(in).MustGet())
	peek := kparsec2.PeekChoice("peek", func(n int) kparsec2.Parser[int, []int] {
		return kparsec2.Repeat(n+1, kparsec2.Any[int]())
	})
	require.Equal(t, []int{1, 2}, peek.Parse(in).MustGet())

	mixed := input.Input[any](input.Tokens([]any{"a", 1}))
	require.Equal(t, "a", kparsec2.TokenAs[any, string]().Parse(mixed).MustGet())
	r := kparsec2.TokenAs[any, int]().Parse(mixed)
	require.EqualError(t, r.Err(), `0: unexpected "a" (expected int)`)
}

func TestRunes(t *testing.T) {
	vowel := kparsec2.OneOfRunes("aeiou")
	require.Equal(t, 'e', vowel.Parse(str("e")).MustGet())
	require.EqualError(t, vowel.Parse(str("x")).Err(), `1:0: unexpected "x" (expected <one of "aeiou">)`)
	require.Equal(t, 'x', kparsec2.NoneOfRunes("aeiou").Parse(str("x")).MustGet())

	word := kparsec2.RunesWhile("word", func(r rune) bool { return r != ' ' })
	require.Equal(t, "hello", word.Parse(str("hello world")).MustGet())
	require.Equal(t, "", word.Parse(str(" ")).MustGet())
	require.Equal(t, "", kparsec2.ManyAsString(vowel).Parse(str("xyz")).MustGet())
}

func TestMisc(t *testing.T) {
	in := str("a")
	require.True(t, kparsec2.EOF[rune]().Parse(in).IsFailure())
	require.True(t, kparsec2.EOF[rune]().Parse(in.Advance()).IsSuccess())
	require.Equal(t, 7, kparsec2.Succeed[rune](7).Parse(in).MustGet())
	require.EqualError(t, kparsec2.Failing[rune, int]("nothing").Parse(in).Err(), `1:0: unexpected "a" (expected nothing)`)
	require.Same(t, in, kparsec2.Cursor[rune]().Parse(in).MustGet())
}

func TestDo(t *testing.T) {
	ident := kparsec2.ManyOneAsString(kparsec2.TokenFunc("letter", func(r rune) bool { return r >= 'a' && r <= 'z' }))
	number := kparsec2.Map(kparsec2.ManyOneAsString(kparsec2.OneOfRunes("0123456789")), func(s string) int { return len(s) })
	assignment := kparsec2.Do("assignment", func(s *kparsec2.Scope[rune]) (kparsec2.Pair[string, int], bool) {
		name, ok := kparsec2.Bind(s, ident)
		if !ok {
			return kparsec2.Pair[string, int]{}, false
		}
		if _, ok := kparsec2.Bind(s, kparsec2.Token('=')); !ok {
			return kparsec2.Pair[string, int]{}, false
		}
		if _, ok := kparsec2.TryBind(s, kparsec2.Token('-')); ok {
			return kparsec2.Pair[string, int]{}, s.Fail("positive number")
		}
		value, ok := kparsec2.Bind(s, number)
		if !ok {
			return kparsec2.Pair[string, int]{}, false
		}
		return kparsec2.Pair[string, int]{First: name, Second: value}, true
	})

	r := assignment.Parse(str("abc=1234;"))
	require.Equal(t, kparsec2.Pair[string, int]{First: "abc", Second: 4}, r.MustGet())
	require.Equal(t, ';', r.Rest.Current())

	require.EqualError(t, assignment.Parse(str("abc:1")).Err(), `1:3: unexpected ":" (expected =)`)
	require.EqualError(t, assignment.Parse(str("abc=-1")).Err(), `1:5: unexpected "1" (expected positive number)`)

	committed := kparsec2.Do("committed", func(s *kparsec2.Scope[rune]) (rune, bool) {
		v, _ := kparsec2.TryBind(s, kparsec2.Commit(kparsec2.Token('x')))
		return v, true
	})
	require.True(t, committed.Parse(str("y")).IsError())
}

func TestResultHelpers(t *testing.T) {
	ok := kparsec2.Token('a').Parse(str("a"))
	require.NoError(t, ok.Err())
	require.NotPanics(t, func() { ok.MustRest() })
	require.Equal(t, "success(a at 1:1)", ok.String())

	failed := kparsec2.Token('a').Parse(str("b"))
	_, err := failed.Get()
	require.ErrorIs(t, err, kparsec2.ErrNoMatch)
	require.NotErrorIs(t, err, kparsec2.ErrFatal)
	require.Panics(t, func() { failed.MustGet() })
	require.Panics(t, func() { failed.MustRest() })
	require.Equal(t, `failure(1:0: unexpected "b" (expected a))`, failed.String())

	var perr kparsec2.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "1:0", perr.Position().String())
	require.Equal(t, `unexpected "b" (expected a)`, perr.Message())

	fatal := kparsec2.Commit(kparsec2.Token('a')).Parse(str("b"))
	require.ErrorIs(t, fatal.Err(), kparsec2.ErrFatal)
	require.Equal(t, "error", fatal.Kind.String())

	require.Equal(t, "1:2: oops", kparsec2.FormatError(input.CharLocation{Line: 1, Column: 2}, "oops"))
}
