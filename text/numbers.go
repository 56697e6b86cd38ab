package text

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/belyaev-mikhail/kparsec2"
	"github.com/belyaev-mikhail/kparsec2/input"
)

var (
	// BinaryDigit matches 0 or 1.
	BinaryDigit = kparsec2.OneOfRunes("01")
	// DecimalDigit matches an ASCII decimal digit.
	DecimalDigit = kparsec2.OneOfRunes("0123456789")
	// HexDigit matches a hexadecimal digit in either case.
	HexDigit = kparsec2.OneOfRunes("0123456789abcdefABCDEF")
)

func digit(base int) kparsec2.Parser[rune, rune] {
	switch base {
	case 2:
		return BinaryDigit
	case 10:
		return DecimalDigit
	case 16:
		return HexDigit
	}
	return kparsec2.TokenFunc(fmt.Sprintf("base %d digit", base), func(r rune) bool {
		d, err := strconv.ParseUint(string(r), base, 8)
		return err == nil && int(d) < base
	})
}

// Integer matches the digits of an unsigned integer in base and converts them to N.
//
// Digits that do not fit N are an error.
func Integer[N constraints.Integer](base int) kparsec2.Parser[rune, N] {
	if base < 2 || base > 36 {
		panic(errors.AssertionFailedf("text: invalid base %d", base))
	}
	t := reflect.TypeFor[N]()
	name := fmt.Sprintf("base %d %s", base, t)
	digits := kparsec2.ManyOneAsString(digit(base))
	signed := t.Kind() >= reflect.Int && t.Kind() <= reflect.Int64
	return kparsec2.New(name, func(in input.Input[rune]) kparsec2.Result[rune, N] {
		r := digits.Parse(in)
		if !r.IsSuccess() {
			return kparsec2.Fail[N](in, name)
		}
		var (
			value N
			err   error
		)
		if signed {
			var v int64
			v, err = strconv.ParseInt(r.Value, base, t.Bits())
			value = N(v)
		} else {
			var v uint64
			v, err = strconv.ParseUint(r.Value, base, t.Bits())
			value = N(v)
		}
		if err != nil {
			return kparsec2.Fatal[N](in, name, errors.Wrapf(err, "%s out of range", r.Value))
		}
		return kparsec2.Ok(r.Rest, value)
	})
}

// Decimal is Integer[N](10).
func Decimal[N constraints.Integer]() kparsec2.Parser[rune, N] { return Integer[N](10) }

// Hex is Integer[N](16).
func Hex[N constraints.Integer]() kparsec2.Parser[rune, N] { return Integer[N](16) }

// Binary is Integer[N](2).
func Binary[N constraints.Integer]() kparsec2.Parser[rune, N] { return Integer[N](2) }

var number = kparsec2.MustRegexp(`-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`)

// Float matches a number in the syntax of JSON (RFC 7159) and converts it to F.
func Float[F constraints.Float]() kparsec2.Parser[rune, F] {
	bits := reflect.TypeFor[F]().Bits()
	return kparsec2.New("number", func(in input.Input[rune]) kparsec2.Result[rune, F] {
		r := number.Parse(in)
		if !r.IsSuccess() {
			return kparsec2.Fail[F](in, "number")
		}
		v, err := strconv.ParseFloat(r.Value.Text, bits)
		if err != nil {
			return kparsec2.Fatal[F](in, "number", errors.Wrapf(err, "%s out of range", r.Value.Text))
		}
		return kparsec2.Ok(r.Rest, F(v))
	})
}
