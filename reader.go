package jtok

// Reader is a forward-only, pull-based, zero-copy UTF-8 JSON tokenizer. It
// does not allocate for token payloads; the only allocation while
// tokenizing is growth of the spill stack, past nesting depth 64 or when a
// comment is emitted under AllowComments. It never looks
// behind the current token: call Advance to move to the next one, then read
// TokenKind/ValueSlice/etc. to inspect it.
//
// A Reader is built fresh over each buffer segment via NewReader. When
// Advance returns false because the buffer ran out mid-token, take a
// Snapshot, obtain more bytes (growing the existing buffer or supplying a
// new one), and construct a new Reader over it passing the snapshot back
// in.
type Reader struct {
	buf           []byte
	tokenStart    int
	tokenKind     TokenKind
	valueSlice    []byte
	depth         int
	containerMask uint64
	spill         []spillEntry
	inObject      bool
	line          int
	column        int
	isFinalBlock  bool
	isSingleValue bool
	options       Options

	cur cursor
}

// NewReader constructs a Reader over buf. isFinalBlock tells the Reader
// whether buf is the last segment of input: when true, running out of
// bytes mid-token is malformed; when false, it is a signal to roll back and
// wait for more data. prior, if non-nil, resumes state captured by an
// earlier Reader's Snapshot.
func NewReader(buf []byte, isFinalBlock bool, opts Options, prior *StateSnapshot) *Reader {
	r := &Reader{
		buf:           buf,
		line:          1,
		isFinalBlock:  isFinalBlock,
		isSingleValue: true,
		options:       opts,
	}
	if prior != nil {
		r.restore(prior)
	}
	r.cur = cursor{pos: 0, line: r.line, col: r.column}
	return r
}

func (r *Reader) TokenKind() TokenKind   { return r.tokenKind }
func (r *Reader) ValueSlice() []byte     { return r.valueSlice }
func (r *Reader) Depth() int             { return r.depth }
func (r *Reader) TokenStart() int        { return r.tokenStart }
func (r *Reader) Line() int              { return r.line }
func (r *Reader) Column() int            { return r.column }
func (r *Reader) IsFinalBlock() bool     { return r.isFinalBlock }
func (r *Reader) BytesConsumed() int     { return r.cur.pos }

func (r *Reader) mkError(kind ErrorKind) *SyntaxError {
	return r.mkErrorAt(kind, r.cur.pos)
}

// mkErrorAt builds a SyntaxError positioned at byte offset pos, deriving
// line/column by walking forward from the cursor's last known position --
// pos is always >= cur.pos in this package's usage, so this is a short scan
// at most, never a rewind.
func (r *Reader) mkErrorAt(kind ErrorKind, pos int) *SyntaxError {
	line, col := r.line, r.column
	if pos > r.cur.pos {
		tmp := cursor{pos: r.cur.pos, line: r.line, col: r.column}
		advanceSpan(&tmp, r.buf[r.cur.pos:pos])
		line, col = tmp.line, tmp.col
	}
	e := &SyntaxError{Kind: kind, Line: line, Column: col}
	if pos < len(r.buf) {
		e.AtByte = r.buf[pos]
		e.hasByte = true
	}
	return e
}

// Advance moves to the next token. It returns true if a token was found and
// false if the buffer was exhausted before one could be (a rollback
// candidate -- take a Snapshot and retry with more data) or if the document
// legitimately ended. Check the returned error to distinguish malformed
// input from a clean rollback or end-of-document.
func (r *Reader) Advance() (ok bool, err error) {
	effectiveKind := r.tokenKind
	if effectiveKind == Comment {
		effectiveKind = r.popInterruptedKind()
		defer func() {
			// On rollback the Comment stays current, so its saved kind
			// goes back on the stack for the next attempt.
			if !ok && err == nil {
				r.pushInterruptedKind(effectiveKind)
			}
		}()
	}

	switch effectiveKind {
	case None:
		return r.advanceFirstValue()
	case StartObject:
		return r.advanceInObject(true)
	case StartArray:
		return r.advanceInArray(true)
	case internalAfterCommaInObject:
		return r.advanceInObject(false)
	case internalAfterCommaInArray:
		return r.advanceInArray(false)
	case PropertyName:
		return r.advanceAfterPropertyName()
	case EndObject, EndArray:
		return r.advanceAfterContainerEnd()
	default:
		return r.advanceAfterScalar()
	}
}

func (r *Reader) commit(cur cursor, kind TokenKind, tokenStart int, value []byte) bool {
	r.cur = cur
	r.line = cur.line
	r.column = cur.col
	r.tokenKind = kind
	r.tokenStart = tokenStart
	r.valueSlice = value
	return true
}

// skipOutcome is the result of skipWSAndComments.
type skipOutcome int

const (
	skipReady skipOutcome = iota
	skipNeedMore
	skipCommentEmitted
	skipFatal
)

// skipWSAndComments advances cur past whitespace and, depending on
// r.options.Comments, past comments too. Under SkipComments it loops
// silently consuming any number of comments; under AllowComments it stops
// and reports the first comment as its own token; under Default a comment
// byte ('/') is left for the caller to reject as invalid value/structure
// input.
func (r *Reader) skipWSAndComments(cur *cursor) (skipOutcome, []byte, *SyntaxError) {
	for {
		hitEnd := skipWhitespace(r.buf, cur)
		if hitEnd {
			if r.isFinalBlock {
				return skipReady, nil, nil
			}
			return skipNeedMore, nil, nil
		}
		if cur.pos >= len(r.buf) || r.buf[cur.pos] != '/' {
			return skipReady, nil, nil
		}
		if r.options.Comments == Default {
			return skipReady, nil, nil
		}
		oc, value, err := r.scanComment(cur)
		switch oc {
		case okOutcome:
			if r.options.Comments == AllowComments {
				return skipCommentEmitted, value, nil
			}
			// SkipComments: loop back to skip trailing whitespace and any
			// further comments.
		case moreOutcome:
			return skipNeedMore, nil, nil
		case errOutcome:
			return skipFatal, nil, err
		}
	}
}

func (r *Reader) advanceFirstValue() (bool, error) {
	cur := r.cur
	sk, comment, err := r.skipWSAndComments(&cur)
	switch sk {
	case skipNeedMore:
		return false, nil
	case skipFatal:
		return false, err
	case skipCommentEmitted:
		r.pushInterruptedKind(None)
		return r.commit(cur, Comment, r.cur.pos, comment), nil
	}
	if cur.pos >= len(r.buf) {
		return false, nil
	}

	start := cur.pos
	oc, kind, value, serr := r.scanValue(&cur, true)
	switch oc {
	case moreOutcome:
		return false, nil
	case errOutcome:
		return false, serr
	}
	if kind == StartObject {
		if e := r.startContainer(true); e != nil {
			return false, e
		}
	} else if kind == StartArray {
		if e := r.startContainer(false); e != nil {
			return false, e
		}
	}
	return r.commit(cur, kind, start, value), nil
}

// scanValue dispatches on the byte at cur.pos to the appropriate
// recognizer for a JSON value. topLevel is threaded through to scanNumber,
// which needs to know whether end-of-buffer-at-final-block is itself a
// legal terminator (true only for a bare top-level scalar).
func (r *Reader) scanValue(cur *cursor, topLevel bool) (outcome, TokenKind, []byte, *SyntaxError) {
	buf := r.buf
	if cur.pos >= len(buf) {
		if r.isFinalBlock {
			return errOutcome, None, nil, r.mkErrorAt(ExpectedStartOfValueNotFound, cur.pos)
		}
		return moreOutcome, None, nil, nil
	}

	switch c := buf[cur.pos]; {
	case c == '{':
		advanceSpan(cur, buf[cur.pos:cur.pos+1])
		return okOutcome, StartObject, nil, nil
	case c == '[':
		advanceSpan(cur, buf[cur.pos:cur.pos+1])
		return okOutcome, StartArray, nil, nil
	case c == '"':
		oc, value, err := r.scanString(cur, false)
		return oc, String, value, err
	case c == '-' || isDigit(c):
		oc, value, err := r.scanNumber(cur, topLevel)
		return oc, Number, value, err
	case c == 't':
		oc, err := r.scanLiteral(cur, "true", ExpectedTrue)
		return oc, True, nil, err
	case c == 'f':
		oc, err := r.scanLiteral(cur, "false", ExpectedFalse)
		return oc, False, nil, err
	case c == 'n':
		oc, err := r.scanLiteral(cur, "null", ExpectedNull)
		return oc, Null, nil, err
	default:
		return errOutcome, None, nil, r.mkErrorAt(ExpectedStartOfValueNotFound, cur.pos)
	}
}

func (r *Reader) advanceInObject(justStarted bool) (bool, error) {
	cur := r.cur
	sk, comment, err := r.skipWSAndComments(&cur)
	switch sk {
	case skipNeedMore:
		return false, nil
	case skipFatal:
		return false, err
	case skipCommentEmitted:
		if justStarted {
			r.pushInterruptedKind(StartObject)
		} else {
			r.pushInterruptedKind(internalAfterCommaInObject)
		}
		return r.commit(cur, Comment, r.cur.pos, comment), nil
	}
	if cur.pos >= len(r.buf) {
		if r.isFinalBlock {
			return false, r.mkErrorAt(ExpectedStartOfPropertyNotFound, cur.pos)
		}
		return false, nil
	}

	start := cur.pos
	if r.buf[cur.pos] == '}' {
		if !justStarted {
			return false, r.mkErrorAt(ExpectedStartOfPropertyNotFound, cur.pos)
		}
		advanceSpan(&cur, r.buf[cur.pos:cur.pos+1])
		if e := r.endContainer(true); e != nil {
			return false, e
		}
		return r.commit(cur, EndObject, start, nil), nil
	}
	oc, value, serr := r.scanString(&cur, true)
	switch oc {
	case moreOutcome:
		return false, nil
	case errOutcome:
		return false, serr
	}
	return r.commit(cur, PropertyName, start, value), nil
}

func (r *Reader) advanceAfterPropertyName() (bool, error) {
	cur := r.cur
	sk, comment, err := r.skipWSAndComments(&cur)
	switch sk {
	case skipNeedMore:
		return false, nil
	case skipFatal:
		return false, err
	case skipCommentEmitted:
		r.pushInterruptedKind(PropertyName)
		return r.commit(cur, Comment, r.cur.pos, comment), nil
	}
	if cur.pos >= len(r.buf) {
		if r.isFinalBlock {
			return false, r.mkErrorAt(ExpectedValueAfterPropertyNameNotFound, cur.pos)
		}
		return false, nil
	}

	start := cur.pos
	oc, kind, value, serr := r.scanValue(&cur, false)
	switch oc {
	case moreOutcome:
		return false, nil
	case errOutcome:
		return false, serr
	}
	if kind == StartObject {
		if e := r.startContainer(true); e != nil {
			return false, e
		}
	} else if kind == StartArray {
		if e := r.startContainer(false); e != nil {
			return false, e
		}
	}
	return r.commit(cur, kind, start, value), nil
}

func (r *Reader) advanceInArray(justStarted bool) (bool, error) {
	cur := r.cur
	sk, comment, err := r.skipWSAndComments(&cur)
	switch sk {
	case skipNeedMore:
		return false, nil
	case skipFatal:
		return false, err
	case skipCommentEmitted:
		if justStarted {
			r.pushInterruptedKind(StartArray)
		} else {
			r.pushInterruptedKind(internalAfterCommaInArray)
		}
		return r.commit(cur, Comment, r.cur.pos, comment), nil
	}
	if cur.pos >= len(r.buf) {
		if r.isFinalBlock {
			return false, r.mkErrorAt(ExpectedStartOfValueNotFound, cur.pos)
		}
		return false, nil
	}

	start := cur.pos
	if r.buf[cur.pos] == ']' {
		if !justStarted {
			return false, r.mkErrorAt(ExpectedStartOfValueNotFound, cur.pos)
		}
		advanceSpan(&cur, r.buf[cur.pos:cur.pos+1])
		if e := r.endContainer(false); e != nil {
			return false, e
		}
		return r.commit(cur, EndArray, start, nil), nil
	}
	oc, kind, value, serr := r.scanValue(&cur, false)
	switch oc {
	case moreOutcome:
		return false, nil
	case errOutcome:
		return false, serr
	}
	if kind == StartObject {
		if e := r.startContainer(true); e != nil {
			return false, e
		}
	} else if kind == StartArray {
		if e := r.startContainer(false); e != nil {
			return false, e
		}
	}
	return r.commit(cur, kind, start, value), nil
}

// advanceAfterContainerEnd and advanceAfterScalar both land on "the
// previous token was a complete value; find the comma/closer/EOF that
// follows" -- the shared continuation logic once any value (container-end
// or scalar) has just been produced.
func (r *Reader) advanceAfterContainerEnd() (bool, error) {
	return r.advanceAfterValue()
}

func (r *Reader) advanceAfterScalar() (bool, error) {
	return r.advanceAfterValue()
}

func (r *Reader) advanceAfterValue() (bool, error) {
	if r.depth == 0 {
		// A value just completed at the top level: look for trailing
		// garbage. Clean EOF here always legitimately ends the document,
		// regardless of finality -- there is nothing left to wait for.
		cur := r.cur
		sk, comment, err := r.skipWSAndComments(&cur)
		switch sk {
		case skipNeedMore:
			return false, nil
		case skipFatal:
			return false, err
		case skipCommentEmitted:
			r.pushInterruptedKind(r.tokenKind)
			return r.commit(cur, Comment, r.cur.pos, comment), nil
		}
		if cur.pos >= len(r.buf) {
			return false, nil
		}
		return false, r.mkErrorAt(ExpectedEndAfterSingleJson, cur.pos)
	}

	cur := r.cur
	sk, comment, err := r.skipWSAndComments(&cur)
	switch sk {
	case skipNeedMore:
		return false, nil
	case skipFatal:
		return false, err
	case skipCommentEmitted:
		r.pushInterruptedKind(r.tokenKind)
		return r.commit(cur, Comment, r.cur.pos, comment), nil
	}
	if cur.pos >= len(r.buf) {
		if r.isFinalBlock {
			return false, r.mkErrorAt(InvalidEndOfJson, cur.pos)
		}
		return false, nil
	}

	switch r.buf[cur.pos] {
	case '}':
		start := cur.pos
		advanceSpan(&cur, r.buf[cur.pos:cur.pos+1])
		if e := r.endContainer(true); e != nil {
			return false, e
		}
		return r.commit(cur, EndObject, start, nil), nil
	case ']':
		start := cur.pos
		advanceSpan(&cur, r.buf[cur.pos:cur.pos+1])
		if e := r.endContainer(false); e != nil {
			return false, e
		}
		return r.commit(cur, EndArray, start, nil), nil
	case ',':
		saved := r.cur
		advanceSpan(&cur, r.buf[cur.pos:cur.pos+1])
		r.cur = cur
		r.line = cur.line
		r.column = cur.col
		var ok bool
		var err error
		if r.inObject {
			ok, err = r.advanceInObject(false)
		} else {
			ok, err = r.advanceInArray(false)
		}
		if !ok && err == nil {
			// Rollback: leave the comma unconsumed so a resumed Reader
			// sees it again after the previous value.
			r.cur = saved
			r.line = saved.line
			r.column = saved.col
		}
		return ok, err
	default:
		if r.inObject {
			return false, r.mkErrorAt(ExpectedStartOfPropertyOrValueNotFound, cur.pos)
		}
		// In an array, only ',' or ']' is legal here; anything else is a
		// stray character rather than a missing property/value.
		return false, r.mkErrorAt(FoundInvalidCharacter, cur.pos)
	}
}
