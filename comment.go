package jtok

// scanComment recognizes a C-style comment starting at cur.pos (which must
// point at '/'), either "// ... \n" or "/* ... */". cur is advanced past the
// full comment span (delimiters included), but the returned value is just
// the interior text between the delimiters -- the opening "//"/"/*", the
// closing "*/", and for line comments the terminating newline are all
// excluded (the newline itself is left for the whitespace skipper to
// consume as a normal delimiter).
func (r *Reader) scanComment(cur *cursor) (outcome, []byte, *SyntaxError) {
	buf := r.buf
	n := len(buf)
	start := cur.pos

	if start >= n {
		return moreOutcome, nil, nil
	}
	if buf[start] != '/' {
		return errOutcome, nil, r.mkErrorAt(FoundInvalidCharacter, start)
	}
	if start+1 >= n {
		if r.isFinalBlock {
			return errOutcome, nil, r.mkErrorAt(EndOfCommentNotFound, start+1)
		}
		return moreOutcome, nil, nil
	}

	switch buf[start+1] {
	case '/':
		i := start + 2
		for i < n && buf[i] != '\n' {
			i++
		}
		if i >= n && !r.isFinalBlock {
			return moreOutcome, nil, nil
		}
		interior := buf[start+2 : i]
		advanceSpan(cur, buf[start:i])
		return okOutcome, interior, nil

	case '*':
		i := start + 2
		for {
			if i+1 >= n {
				if r.isFinalBlock {
					return errOutcome, nil, r.mkErrorAt(EndOfCommentNotFound, n)
				}
				return moreOutcome, nil, nil
			}
			if buf[i] == '*' && buf[i+1] == '/' {
				end := i + 2
				interior := buf[start+2 : i]
				advanceSpan(cur, buf[start:end])
				return okOutcome, interior, nil
			}
			i++
		}

	default:
		return errOutcome, nil, r.mkErrorAt(FoundInvalidCharacter, start+1)
	}
}
