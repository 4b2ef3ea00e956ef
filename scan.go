package jtok

import "bytes"

// cursor is a prospective read position threaded through the recognizers. A
// recognizer computes its result entirely in a local cursor and the
// dispatcher only copies it back onto the Reader once the recognizer
// reports success, so a rolled-back or failed scan never leaves partial
// progress on the Reader itself.
type cursor struct {
	pos  int
	line int
	col  int
}

// outcome is the three-way result every recognizer reports: a token was
// fully recognized, more bytes are needed to know (rollback candidate), or
// the input is malformed.
type outcome int

const (
	okOutcome outcome = iota
	moreOutcome
	errOutcome
)

// advanceSpan bulk-advances cur.pos past span (which must be buf[cur.pos:
// cur.pos+len(span)]), updating line/column in one pass with a single
// LastIndexByte/Count pass over the span instead of a per-byte stepper loop.
func advanceSpan(cur *cursor, span []byte) {
	if nl := bytes.LastIndexByte(span, '\n'); nl >= 0 {
		cur.line += bytes.Count(span, newline)
		cur.col = len(span) - nl - 1
	} else {
		cur.col += len(span)
	}
	cur.pos += len(span)
}

var newline = []byte{'\n'}

// skipWhitespace advances cur past a run of JSON whitespace. It returns
// true if the buffer was exhausted before a non-whitespace byte was found.
func skipWhitespace(buf []byte, cur *cursor) (hitEnd bool) {
	start := cur.pos
	n := len(buf)
	j := start
	for j < n {
		switch buf[j] {
		case ' ', '\t', '\r', '\n':
			j++
		default:
			advanceSpan(cur, buf[start:j])
			return false
		}
	}
	advanceSpan(cur, buf[start:j])
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isDelimiter reports whether c is legal immediately after a scalar nested
// within a container.
func isDelimiter(c byte) bool {
	switch c {
	case ',', '}', ']', ' ', '\t', '\r', '\n', '/':
		return true
	default:
		return false
	}
}
