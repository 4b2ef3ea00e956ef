package jtok

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Typed numeric accessors operate directly on the current token's raw
// ValueSlice -- none of them re-parse JSON structure, they just narrow an
// already-recognized Number token's text into a Go numeric type. Calling
// one when the current token is not a Number is a programming error
// reported as InvalidCast.

func (r *Reader) requireNumber() ([]byte, error) {
	if r.tokenKind != Number {
		return nil, &SyntaxError{Kind: InvalidCast, Context: "current token is not a number"}
	}
	return r.valueSlice, nil
}

// AsI32 parses the current Number token as a signed 32-bit integer. It
// fails if the token has a fractional or exponent component.
func (r *Reader) AsI32() (int32, error) {
	raw, err := r.requireNumber()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(raw), 10, 32)
	if err != nil {
		return 0, &SyntaxError{Kind: InvalidCast, Context: err.Error()}
	}
	return int32(n), nil
}

// AsI64 parses the current Number token as a signed 64-bit integer.
func (r *Reader) AsI64() (int64, error) {
	raw, err := r.requireNumber()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, &SyntaxError{Kind: InvalidCast, Context: err.Error()}
	}
	return n, nil
}

// AsF32 parses the current Number token as a 32-bit float, accepting the
// full JSON number grammar including fraction and exponent.
func (r *Reader) AsF32() (float32, error) {
	raw, err := r.requireNumber()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(string(raw), 32)
	if err != nil {
		return 0, &SyntaxError{Kind: InvalidCast, Context: err.Error()}
	}
	return float32(f), nil
}

// AsF64 parses the current Number token as a 64-bit float. Precision loss
// is not an error (the nearest float64 is returned), but a magnitude
// beyond the float64 range is rejected as InvalidCast.
func (r *Reader) AsF64() (float64, error) {
	raw, err := r.requireNumber()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, &SyntaxError{Kind: InvalidCast, Context: err.Error()}
	}
	return f, nil
}

// AsDecimal parses the current Number token as an arbitrary-precision
// decimal, for callers that cannot tolerate float64's rounding.
func (r *Reader) AsDecimal() (decimal.Decimal, error) {
	raw, err := r.requireNumber()
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, &SyntaxError{Kind: InvalidCast, Context: err.Error()}
	}
	return d, nil
}

// AsNumber narrows the current Number token to the smallest type that
// represents it exactly: integers that fit in 32 bits become int32,
// integers that need more bits become int64. Anything with a fraction or
// exponent is parsed as float64 first, then collapsed back to int32/int64
// if its floor equals itself and the value fits -- "5.0" narrows to
// int32(5) the same as a bare "5" would. Everything else stays float64;
// AsDecimal and AsF32 are available directly for callers who want
// arbitrary precision or a narrower float, since trying either as part of
// this narrowing would make them the default return type for any
// fractional literal instead of the common-case float64.
func (r *Reader) AsNumber() (interface{}, error) {
	raw, err := r.requireNumber()
	if err != nil {
		return nil, err
	}
	if isIntegerLiteral(raw) {
		if n, err := strconv.ParseInt(string(raw), 10, 32); err == nil {
			return int32(n), nil
		}
		if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil, &SyntaxError{Kind: InvalidCast, Context: err.Error()}
	}
	if floor := math.Floor(f); floor == f {
		if floor >= math.MinInt32 && floor <= math.MaxInt32 {
			return int32(floor), nil
		}
		if floor >= math.MinInt64 && floor < math.MaxInt64 {
			return int64(floor), nil
		}
	}
	return f, nil
}

func isIntegerLiteral(raw []byte) bool {
	for _, c := range raw {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}
