// Package amount parses KMyMoney numeric fields into decimal values.
//
// KMyMoney stores monetary values, share quantities and price rates as
// fraction-like strings ("-50000/100", "1/1") alongside plain integer and
// decimal forms. Only those three textual forms are accepted; anything else
// fails with ErrMalformedNumber.
package amount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedNumber is returned when a field is not an integer, a decimal,
// or an integer/integer fraction.
var ErrMalformedNumber = errors.New("malformed number")

// divPrecision is the number of fractional digits kept when dividing a
// rational form. Output rendering uses 4 decimals, so 8 is plenty.
const divPrecision = 8

// Parse converts a KMyMoney numeric field into a decimal value.
func Parse(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty value", ErrMalformedNumber)
	}

	num, den, isFraction := strings.Cut(trimmed, "/")
	if !isFraction {
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
		}
		return d, nil
	}

	numerator, err := parseInteger(num)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	denominator, err := parseInteger(den)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	if denominator.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: zero denominator in %q", ErrMalformedNumber, s)
	}
	return numerator.DivRound(denominator, divPrecision), nil
}

// parseInteger accepts an optionally signed sequence of digits. Fraction
// parts must not themselves be decimals, so decimal.NewFromString alone is
// too permissive here.
func parseInteger(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, errors.New("empty integer")
	}
	body := s
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if body == "" {
		return decimal.Decimal{}, errors.New("sign without digits")
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return decimal.Decimal{}, fmt.Errorf("non-digit %q", r)
		}
	}
	return decimal.NewFromString(s)
}
