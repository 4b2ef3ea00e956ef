package jtok

// spillEntry is one frame on the spillover stack: either a container frame
// (pushed past bitmask depth 64) or, under AllowComments, the token kind
// that was interrupted by a comment. The two uses share one stack; a
// dedicated isComment flag keeps the two kinds of entry distinguishable.
type spillEntry struct {
	isObject  bool
	isComment bool
	savedKind TokenKind
}

// StateSnapshot captures everything a Reader needs to resume parsing across
// a buffer refill. It deliberately excludes the buffer and the cursor: the
// caller supplies the next buffer segment and a fresh Reader is constructed
// over it with this snapshot as prior state.
type StateSnapshot struct {
	ContainerMask uint64
	Depth         int
	InObject      bool
	Spill         []spillEntry
	TokenKind     TokenKind
	Line          int
	Column        int
	IsSingleValue bool
}

// Snapshot exports the Reader's resumable state. Call it after Advance
// returns false with a final value of false passed to isFinalBlock (i.e.
// the Reader rolled back for lack of input) to continue parsing once more
// bytes are available.
func (r *Reader) Snapshot() StateSnapshot {
	spill := make([]spillEntry, len(r.spill))
	copy(spill, r.spill)
	return StateSnapshot{
		ContainerMask: r.containerMask,
		Depth:         r.depth,
		InObject:      r.inObject,
		Spill:         spill,
		TokenKind:     r.tokenKind,
		Line:          r.line,
		Column:        r.column,
		IsSingleValue: r.isSingleValue,
	}
}

func (r *Reader) restore(s *StateSnapshot) {
	r.containerMask = s.ContainerMask
	r.depth = s.Depth
	r.inObject = s.InObject
	if len(s.Spill) > 0 {
		r.spill = make([]spillEntry, len(s.Spill))
		copy(r.spill, s.Spill)
	}
	r.tokenKind = s.TokenKind
	r.line = s.Line
	r.column = s.Column
	r.isSingleValue = s.IsSingleValue
}
