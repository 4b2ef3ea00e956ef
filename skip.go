package jtok

// Skip advances past the current token's entire subtree: for a scalar it is
// equivalent to one Advance; for a PropertyName it advances past the name
// and then, if the value that follows is itself a container, past that
// container's subtree too, leaving the reader positioned after the whole
// property; for StartObject/StartArray it consumes everything up to and
// including the matching EndObject/EndArray. It returns the same
// (bool, error) contract as Advance, so a rollback mid-subtree is reported
// the same way: take a Snapshot and resume with more data.
func (r *Reader) Skip() (bool, error) {
	if r.tokenKind == PropertyName {
		ok, err := r.Advance()
		if !ok || (r.tokenKind != StartObject && r.tokenKind != StartArray) {
			return ok, err
		}
	} else if r.tokenKind != StartObject && r.tokenKind != StartArray {
		return r.Advance()
	}

	// startContainer already incremented r.depth to account for the
	// container we're sitting on the start of; the matching end pops it
	// back down to startDepth-1.
	startDepth := r.depth
	for {
		ok, err := r.Advance()
		if !ok {
			return false, err
		}
		if r.tokenKind == Comment {
			continue
		}
		if r.depth <= startDepth-1 {
			return true, nil
		}
	}
}
