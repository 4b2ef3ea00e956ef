package jtok

// startContainer pushes a new object/array frame. Depths up to 64 live in
// the containerMask word; beyond that they spill onto r.spill.
func (r *Reader) startContainer(isObject bool) *SyntaxError {
	r.depth++
	if r.depth > r.options.maxDepth() {
		r.depth--
		if isObject {
			return r.mkError(ObjectDepthTooLarge)
		}
		return r.mkError(ArrayDepthTooLarge)
	}

	if r.depth <= 64 {
		r.containerMask <<= 1
		if isObject {
			r.containerMask |= 1
		}
	} else {
		r.pushSpillContainer(isObject)
	}
	r.inObject = isObject
	r.isSingleValue = false
	return nil
}

// endContainer pops a frame, validating that the closer matches the
// innermost container kind.
func (r *Reader) endContainer(isObject bool) *SyntaxError {
	if isObject {
		if !r.inObject || r.depth == 0 {
			return r.mkError(ObjectEndWithinArray)
		}
	} else {
		if r.inObject || r.depth == 0 {
			return r.mkError(ArrayEndWithinObject)
		}
	}

	if r.depth <= 64 {
		r.containerMask >>= 1
	} else {
		r.popSpillContainer()
	}
	r.depth--

	if r.depth > 0 {
		if r.depth <= 64 {
			r.inObject = r.containerMask&1 == 1
		} else {
			r.inObject = r.topSpillContainer()
		}
	}
	return nil
}

// pushSpillContainer grows r.spill by append's doubling growth, same as any
// other slice-backed stack.
func (r *Reader) pushSpillContainer(isObject bool) {
	r.spill = append(r.spill, spillEntry{isObject: isObject})
}

func (r *Reader) popSpillContainer() {
	r.spill = r.spill[:len(r.spill)-1]
}

func (r *Reader) topSpillContainer() bool {
	return r.spill[len(r.spill)-1].isObject
}

// pushInterruptedKind saves the pre-comment token kind under AllowComments,
// sharing the spill stack with container frames so a comment can interrupt
// dispatch at any depth without a second stack to manage.
func (r *Reader) pushInterruptedKind(kind TokenKind) {
	r.spill = append(r.spill, spillEntry{isComment: true, savedKind: kind})
}

// popInterruptedKind restores the token kind a comment interrupted.
func (r *Reader) popInterruptedKind() TokenKind {
	n := len(r.spill) - 1
	e := r.spill[n]
	r.spill = r.spill[:n]
	return e.savedKind
}
