package kparsec2

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/belyaev-mikhail/kparsec2/input"
)

// Lifted is an input of tokens produced by a tokenizer parser from an underlying input.
//
// The current token is only computed when it is first needed, and at most once.
type Lifted[T, R any] struct {
	base      input.Input[T]
	tokenizer Parser[T, R]
	ignore    Parser[T, Unit]
	offset    int

	once  sync.Once
	token liftedToken[T, R]

	nextOnce sync.Once
	next     *Lifted[T, R]
}

type liftedToken[T, R any] struct {
	// start of the token, past anything ignored.
	start input.Input[T]
	value R
	rest  input.Input[T]
	ok    bool
	// diag explains why there is no token.
	diag  *Diagnostic
	fatal bool
}

var _ input.Input[any] = (*Lifted[any, any])(nil)

// LiftInput creates the input of the tokens tokenizer produces from in.
//
// Before each token, ignore is applied for as long as it matches and consumes input. It may be
// nil. The token stream ends where the tokenizer fails or matches nothing, or where ignore or the
// tokenizer return an error.
func LiftInput[T, R any](in input.Input[T], tokenizer Parser[T, R], ignore Parser[T, Unit]) *Lifted[T, R] {
	return &Lifted[T, R]{base: in, tokenizer: tokenizer, ignore: ignore}
}

func (l *Lifted[T, R]) current() *liftedToken[T, R] {
	l.once.Do(l.tokenize)
	return &l.token
}

func (l *Lifted[T, R]) tokenize() {
	start := l.base
	if l.ignore != nil {
		for {
			r := l.ignore.Parse(start)
			if r.IsError() {
				l.token = liftedToken[T, R]{start: start, diag: r.Diag, fatal: true}
				return
			}
			if !r.IsSuccess() || r.Rest == start {
				break
			}
			start = r.Rest
		}
	}
	r := l.tokenizer.Parse(start)
	switch {
	case r.IsSuccess() && r.Rest != start:
		l.token = liftedToken[T, R]{start: start, value: r.Value, rest: r.Rest, ok: true}
	case r.IsSuccess():
		l.token = liftedToken[T, R]{start: start}
	default:
		l.token = liftedToken[T, R]{start: start, diag: r.Diag, fatal: r.IsError()}
	}
}

// Unlifted returns the underlying input following the last consumed token.
func (l *Lifted[T, R]) Unlifted() input.Input[T] { return l.base }

func (l *Lifted[T, R]) Current() R { return l.current().value }

func (l *Lifted[T, R]) HasNext() bool { return l.current().ok }

func (l *Lifted[T, R]) Advance() input.Input[R] {
	l.nextOnce.Do(func() {
		tok := l.current()
		if !tok.ok {
			l.next = l
			return
		}
		l.next = &Lifted[T, R]{base: tok.rest, tokenizer: l.tokenizer, ignore: l.ignore, offset: l.offset + 1}
	})
	return l.next
}

func (l *Lifted[T, R]) Drop(n int) input.Input[R] { return input.DropEach[R](l, n) }

// Location of the current token in the underlying input.
func (l *Lifted[T, R]) Location() input.Position {
	tok := l.current()
	pos := tokenPosition{Position: tok.start.Location(), offset: tok.start.Offset()}
	if tok.fatal {
		pos.fatal = tok.diag
	}
	return pos
}

func (l *Lifted[T, R]) Offset() int { return l.offset }

func (l *Lifted[T, R]) Source() input.Source[R] { return input.AsSource[R](l) }

// Unexpected reports what the tokenizer failed on where the token stream ends early.
func (l *Lifted[T, R]) Unexpected() (any, bool) {
	tok := l.current()
	if tok.diag == nil {
		return nil, false
	}
	return tok.diag.Found, true
}

func (l *Lifted[T, R]) String() string {
	return fmt.Sprintf("token %d at %s", l.offset, l.Location())
}

// tokenPosition is the position of a token: the position in the underlying input it starts at.
type tokenPosition struct {
	input.Position
	offset int
	fatal  *Diagnostic
}

// lower maps a diagnostic from a token layer onto the underlying input.
func lower(kind Kind, diag *Diagnostic) (Kind, *Diagnostic) {
	pos, ok := diag.Location.(tokenPosition)
	if !ok {
		return kind, diag
	}
	if pos.fatal != nil {
		return KindError, pos.fatal
	}
	lowered := *diag
	lowered.Location = pos.Position
	lowered.Offset = pos.offset
	return kind, &lowered
}

// Unlift returns the underlying input of the lifted input in, looking through any Compound
// decorating it.
func Unlift[T, R any](in input.Input[R]) input.Input[T] {
	return unwrapLifted[T](in).Unlifted()
}

func unwrapLifted[T, R any](in input.Input[R]) *Lifted[T, R] {
	for {
		c, ok := in.(*input.Compound[R])
		if !ok {
			break
		}
		in = c.Base()
	}
	l, ok := in.(*Lifted[T, R])
	if !ok {
		panic(errors.AssertionFailedf("kparsec2: %T is not a lifted input", in))
	}
	return l
}

// fatal returns the error that ended the token stream at l, if any.
func (l *Lifted[T, R]) fatal() *Diagnostic {
	if tok := l.current(); tok.fatal {
		return tok.diag
	}
	return nil
}

// Lift runs p over the tokens tokenizer produces from the input, see LiftInput.
//
// On success the rest is the underlying input following the last token p consumed. Diagnostics
// of p are reported at the position of the offending token in the underlying input, and an error
// of the tokenizer there becomes the result. An error of the tokenizer right after the tokens p
// matched is the result too.
func Lift[T, R, A any](p Parser[R, A], tokenizer Parser[T, R], ignore Parser[T, Unit]) Parser[T, A] {
	return newParser(p.String, func(in input.Input[T]) Result[T, A] {
		r := p.Parse(LiftInput(in, tokenizer, ignore))
		if r.IsSuccess() {
			rest := unwrapLifted[T](r.Rest)
			if diag := rest.fatal(); diag != nil {
				return Result[T, A]{Kind: KindError, Diag: diag}
			}
			return Ok(rest.Unlifted(), r.Value)
		}
		kind, diag := lower(r.Kind, r.Diag)
		return Result[T, A]{Kind: kind, Diag: diag}
	})
}

// Tokenize matches the tokens tokenizer produces from the input, see LiftInput.
func Tokenize[T, R any](tokenizer Parser[T, R], ignore Parser[T, Unit]) Parser[T, []R] {
	return Lift(Many(Any[R]()), tokenizer, ignore)
}
