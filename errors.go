package jtok

import (
	"fmt"
	"strconv"
)

// ErrorKind is the closed set of reasons a Reader can fail. Errors raised
// while tokenizing carry position context (line, column, offending byte)
// via SyntaxError; InvalidCast errors from the typed accessors carry none.
type ErrorKind int

const (
	_ ErrorKind = iota
	ObjectDepthTooLarge
	ArrayDepthTooLarge
	ObjectEndWithinArray
	ArrayEndWithinObject
	ExpectedStartOfPropertyNotFound
	ExpectedStartOfPropertyOrValueNotFound
	ExpectedValueAfterPropertyNameNotFound
	ExpectedSeparaterAfterPropertyNameNotFound
	ExpectedStartOfValueNotFound
	ExpectedDigitNotFound
	ExpectedDigitNotFoundEndOfData
	ExpectedNextDigitComponentNotFound
	ExpectedNextDigitEValueNotFound
	ExpectedEndOfDigitNotFound
	ExpectedTrue
	ExpectedFalse
	ExpectedNull
	EndOfStringNotFound
	EndOfCommentNotFound
	InvalidCharacterWithinString
	FoundInvalidCharacter
	InvalidEndOfJson
	ExpectedEndAfterSingleJson
	InvalidCast
)

var errorKindText = map[ErrorKind]string{
	ObjectDepthTooLarge:                         "object depth too large",
	ArrayDepthTooLarge:                          "array depth too large",
	ObjectEndWithinArray:                        "'}' found within an array",
	ArrayEndWithinObject:                        "']' found within an object",
	ExpectedStartOfPropertyNotFound:             "expected start of a property name or '}'",
	ExpectedStartOfPropertyOrValueNotFound:      "expected start of a property name, value, or ']'/'}' ",
	ExpectedValueAfterPropertyNameNotFound:      "expected a value after the property name",
	ExpectedSeparaterAfterPropertyNameNotFound:  "expected ':' after property name",
	ExpectedStartOfValueNotFound:                "expected start of a JSON value",
	ExpectedDigitNotFound:                       "expected a digit",
	ExpectedDigitNotFoundEndOfData:              "expected a digit, ran out of data",
	ExpectedNextDigitComponentNotFound:          "expected a digit after decimal point",
	ExpectedNextDigitEValueNotFound:             "expected a digit after exponent sign",
	ExpectedEndOfDigitNotFound:                  "expected end of number (delimiter not found)",
	ExpectedTrue:                                "expected literal 'true'",
	ExpectedFalse:                               "expected literal 'false'",
	ExpectedNull:                                "expected literal 'null'",
	EndOfStringNotFound:                         "closing '\"' not found before end of data",
	EndOfCommentNotFound:                        "'*/' not found before end of data",
	InvalidCharacterWithinString:                "invalid character within string literal",
	FoundInvalidCharacter:                       "invalid character found",
	InvalidEndOfJson:                            "invalid end of JSON",
	ExpectedEndAfterSingleJson:                  "unexpected trailing data after single JSON value",
	InvalidCast:                                 "value cannot be converted to the requested type",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindText[k]; ok {
		return s
	}
	return "unknown error"
}

// SyntaxError carries an ErrorKind along with the position it was raised at.
type SyntaxError struct {
	Kind    ErrorKind
	Context string
	Line    int
	Column  int
	AtByte  byte
	hasByte bool
}

func (e *SyntaxError) Error() string {
	loc := fmt.Sprintf("(line %d, column %d)", e.Line, e.Column)
	msg := e.Kind.String()
	if e.Context != "" {
		msg = msg + ": " + e.Context
	}
	if e.hasByte {
		return fmt.Sprintf("%s, found %s %s", msg, quoteChar(e.AtByte), loc)
	}
	return fmt.Sprintf("%s %s", msg, loc)
}

// Is allows errors.Is(err, SomeKind.Sentinel()) to match on the ErrorKind, since the
// common case is a caller wanting to match on the reason rather than the
// full SyntaxError value.
func (e *SyntaxError) Is(target error) bool {
	if k, ok := target.(errorKindSentinel); ok {
		return e.Kind == k.kind
	}
	return false
}

// errorKindSentinel lets ErrorKind values be compared via errors.Is without
// requiring callers to unwrap a *SyntaxError by hand.
type errorKindSentinel struct{ kind ErrorKind }

// Sentinel returns an error value usable with errors.Is(err, k.Sentinel())
// to test whether err was raised for this reason.
func (k ErrorKind) Sentinel() error { return errorKindSentinel{kind: k} }

func (s errorKindSentinel) Error() string { return s.kind.String() }

// quoteChar formats c as a quoted character literal for error messages.
func quoteChar(c byte) string {
	if c == '\'' {
		return `'\''`
	}
	if c == '"' {
		return `'"'`
	}
	if c == 0 {
		return "<eof>"
	}
	s := strconv.Quote(string(rune(c)))
	return "'" + s[1:len(s)-1] + "'"
}
