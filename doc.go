// Package kparsec2 is a parser combinator library.
//
// Grammars are built by composing small Parsers into larger ones. A Parser is a pure function
// from an immutable input.Input to a Result, and the library makes no assumption about what
// the tokens of the input are: runes, lexer tokens produced by another grammar, or any other
// discrete sequence.
//
// Results come in three kinds:
//
//   - success carries the parsed value and the rest of the input;
//   - failure means "this alternative did not match", and makes choices try the next
//     alternative, loops stop and optionals fall back to their default;
//   - error means "this input is invalid", and is passed through every enclosing combinator
//     unchanged.
//
// Here's a parser for comma separated lists of integers in brackets:
//
//	digits := kparsec2.ManyOneAsString(kparsec2.TokenFunc("digit", unicode.IsDigit))
//	number := kparsec2.Map(digits, func(s string) int { n, _ := strconv.Atoi(s); return n })
//	list := kparsec2.Between(
//		kparsec2.Token('['),
//		kparsec2.SeparatedBy(number, kparsec2.Token(',')),
//		kparsec2.Commit(kparsec2.Token(']')),
//	)
//	values, err := kparsec2.ParseString(list, "[1,2,3]").Get()
//
// Backtracking is implicit: since inputs are never modified, keeping an old input around is
// all it takes to retry from it. Packrat memoization (package packrat), user-defined parse
// state (package stateful) and layered parsing over tokens produced by another parser (Lift)
// are built on top of the same model.
package kparsec2
