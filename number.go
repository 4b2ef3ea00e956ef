package jtok

// scanNumber recognizes a JSON number per RFC 8259 §6:
//
//	number = [-] (0 | [1-9][0-9]*) ['.' [0-9]+] [(e|E) [+|-] [0-9]+]
//
// topLevel distinguishes a bare top-level scalar, which accepts
// end-of-buffer as a legal terminator when this is the final block (trailing
// content is validated one level up, in the dispatcher), from a number
// nested in a container, which requires a delimiter byte to follow within
// the buffer, or rolls back / errors at end-of-buffer depending on finality.
func (r *Reader) scanNumber(cur *cursor, topLevel bool) (outcome, []byte, *SyntaxError) {
	buf := r.buf
	n := len(buf)
	start := cur.pos
	i := start

	if buf[i] == '-' {
		i++
	}
	if i >= n {
		return r.numberNeedsMore(cur, start, i, topLevel, ExpectedDigitNotFoundEndOfData)
	}
	switch {
	case buf[i] == '0':
		i++
	case isDigit(buf[i]):
		for i < n && isDigit(buf[i]) {
			i++
		}
	default:
		return errOutcome, nil, r.mkErrorAt(ExpectedDigitNotFound, i)
	}

	if i >= n {
		return r.numberEndOfBuffer(cur, start, i, topLevel)
	}

	if buf[i] == '.' {
		i++
		if i >= n {
			return r.numberNeedsMore(cur, start, i, topLevel, ExpectedNextDigitComponentNotFound)
		}
		if !isDigit(buf[i]) {
			return errOutcome, nil, r.mkErrorAt(ExpectedNextDigitComponentNotFound, i)
		}
		for i < n && isDigit(buf[i]) {
			i++
		}
		if i >= n {
			return r.numberEndOfBuffer(cur, start, i, topLevel)
		}
	}

	if buf[i] == 'e' || buf[i] == 'E' {
		i++
		if i >= n {
			return r.numberNeedsMore(cur, start, i, topLevel, ExpectedNextDigitEValueNotFound)
		}
		if buf[i] == '+' || buf[i] == '-' {
			i++
			if i >= n {
				return r.numberNeedsMore(cur, start, i, topLevel, ExpectedNextDigitEValueNotFound)
			}
		}
		if !isDigit(buf[i]) {
			return errOutcome, nil, r.mkErrorAt(ExpectedNextDigitEValueNotFound, i)
		}
		for i < n && isDigit(buf[i]) {
			i++
		}
		if i >= n {
			return r.numberEndOfBuffer(cur, start, i, topLevel)
		}
	}

	if !topLevel && !isDelimiter(buf[i]) {
		return errOutcome, nil, r.mkErrorAt(ExpectedEndOfDigitNotFound, i)
	}

	value := buf[start:i]
	advanceSpan(cur, value)
	return okOutcome, value, nil
}

// numberEndOfBuffer handles reaching i == len(buf) at a point where the
// grammar has already matched a structurally complete number (just finished
// the integer part, the fraction digits, or the exponent digits).
func (r *Reader) numberEndOfBuffer(cur *cursor, start, i int, topLevel bool) (outcome, []byte, *SyntaxError) {
	if !r.isFinalBlock {
		return moreOutcome, nil, nil
	}
	if !topLevel {
		return errOutcome, nil, r.mkErrorAt(ExpectedEndOfDigitNotFound, i)
	}
	value := r.buf[start:i]
	advanceSpan(cur, value)
	return okOutcome, value, nil
}

// numberNeedsMore handles reaching i == len(buf) at a point where the
// grammar mandates more bytes still to come (e.g. right after '.', 'e', or
// a sign) -- it can never be a legal terminator, final block or not.
func (r *Reader) numberNeedsMore(cur *cursor, start, i int, topLevel bool, finalKind ErrorKind) (outcome, []byte, *SyntaxError) {
	if !r.isFinalBlock {
		return moreOutcome, nil, nil
	}
	return errOutcome, nil, r.mkErrorAt(finalKind, i)
}
