package kparsec2

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/cockroachdb/errors"

	"github.com/belyaev-mikhail/kparsec2/input"
)

var (
	// ErrNoMatch is matched by errors.Is for errors of failed results.
	ErrNoMatch = errors.New("no match")
	// ErrFatal is matched by errors.Is for errors of results of kind KindError.
	ErrFatal = errors.New("fatal parse error")
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() input.Position
}

type endOfInput struct{}

func (endOfInput) String() string { return "<EOF>" }

// EndOfInput is the Found value of diagnostics raised at the end of the input.
var EndOfInput fmt.Stringer = endOfInput{}

// Diagnostic describes why a parser did not match.
type Diagnostic struct {
	// Expected describes what would have matched.
	Expected string
	// Found is what was present instead: a token, a slice of tokens, or EndOfInput.
	Found any
	// Location of the mismatch. Rendering it may be deferred, see input.LocationManager.
	Location input.Position
	// Offset of the mismatch, in tokens from the start of the input layer.
	Offset int
}

// FoundString renders Found.
func (d *Diagnostic) FoundString() string { return describe(d.Found) }

// Message describes the mismatch without its position.
func (d *Diagnostic) Message() string {
	var unexpected string
	if d.Found == EndOfInput {
		unexpected = "unexpected <EOF>"
	} else {
		unexpected = fmt.Sprintf("unexpected %q", d.FoundString())
	}
	if d.Expected == "" {
		return unexpected
	}
	return fmt.Sprintf("%s (expected %s)", unexpected, d.Expected)
}

func (d *Diagnostic) String() string { return FormatError(d.Location, d.Message()) }

// ParseError is the error of a Result that did not succeed.
type ParseError struct {
	Kind       Kind
	Diagnostic *Diagnostic
}

var _ Error = (*ParseError)(nil)

func (p *ParseError) Error() string { return p.Diagnostic.String() }

func (p *ParseError) Message() string { return p.Diagnostic.Message() }

func (p *ParseError) Position() input.Position { return p.Diagnostic.Location }

// Is supports errors.Is(err, ErrNoMatch) and errors.Is(err, ErrFatal).
func (p *ParseError) Is(target error) bool {
	switch target {
	case ErrNoMatch:
		return p.Kind == KindFailure
	case ErrFatal:
		return p.Kind == KindError
	}
	return false
}

// FormatError formats an error message prefixed by the position it occurred at.
func FormatError(pos input.Position, message string) string {
	if pos == nil {
		return message
	}
	return fmt.Sprintf("%s: %s", pos, message)
}

func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case rune:
		return string(v)
	case []rune:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return repr.String(v)
	}
}

// Unexpected is implemented by inputs that can say more about what was found at their end
// than EndOfInput; the token layer of a lifted parser reports what its tokenizer could not
// recognise.
type Unexpected interface {
	Unexpected() (any, bool)
}

func foundAt[T any](in input.Input[T]) any {
	if in.HasNext() {
		return in.Current()
	}
	for {
		c, ok := in.(*input.Compound[T])
		if !ok {
			break
		}
		in = c.Base()
	}
	if u, ok := in.(Unexpected); ok {
		if found, ok := u.Unexpected(); ok {
			return found
		}
	}
	return EndOfInput
}
