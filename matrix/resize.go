// SPDX-License-Identifier: MIT

// Package matrix - alignment-aware resize.
//
// Purpose:
//   - Grow or shrink each axis independently while keeping the overlap of the
//     old and new shapes, positioned by a per-axis alignment rule.
//
// Model:
//   - Both axes share one policy, expressed over an axis-neutral alignment
//     (start, end, centerStart, centerEnd). Each axis yields an axisPlan:
//     how many elements survive (count), where they are read from (src) and
//     where they land (dst).
//   - The copied region is the rectangle count_x × count_y.
//
// Worked example (width 4, offset +3, CenterLeft):
//
//	old:  [a b c d]
//	new:  [_ _ a b c d _]   dst = ceil(3/2) = 2, src = 0, count = 4
package matrix

import "math"

// alignment is the axis-neutral form of WidthResizeRule / HeightResizeRule.
type alignment uint8

const (
	alignStart       alignment = iota // delta applied at the start side
	alignEnd                          // delta applied at the end side
	alignCenterStart                  // delta split, odd unit to the start
	alignCenterEnd                    // delta split, odd unit to the end
)

// axisPlan describes what survives along one axis.
type axisPlan struct {
	count int // elements copied along the axis
	src   int // first copied index in the old storage
	dst   int // first written index in the new storage
}

// widthAlignment maps a WidthResizeRule to its alignment.
func widthAlignment(r WidthResizeRule) (alignment, bool) {
	switch r {
	case Left:
		return alignStart, true
	case Right:
		return alignEnd, true
	case CenterLeft:
		return alignCenterStart, true
	case CenterRight:
		return alignCenterEnd, true
	default:
		return 0, false
	}
}

// heightAlignment maps a HeightResizeRule to its alignment.
func heightAlignment(r HeightResizeRule) (alignment, bool) {
	switch r {
	case Up:
		return alignStart, true
	case Down:
		return alignEnd, true
	case CenterUp:
		return alignCenterStart, true
	case CenterDown:
		return alignCenterEnd, true
	default:
		return 0, false
	}
}

// clampSize returns max(0, size+offset), saturating at math.MaxInt instead
// of wrapping. size is never negative, so only the upper bound can overflow.
func clampSize(size, offset int) int {
	if offset > math.MaxInt-size {
		return math.MaxInt
	}
	if n := size + offset; n > 0 {
		return n
	}

	return 0
}

// planAxis computes the copy plan for one axis.
// MAIN DESCRIPTION:
//   - Decide how many elements survive along an axis and their source and
//     destination offsets.
//
// Implementation:
//   - Stage 1: updated == 0 → nothing survives.
//   - Stage 2: updated == old → the axis is untouched: copy all, offsets 0.
//   - Stage 3: growing copies old elements, shrinking copies updated elements.
//   - Stage 4: place them according to the alignment.
//
// Behavior highlights:
//   - Growth only moves dst, shrink only moves src; the other stays 0.
//   - Center rules round the half-delta up (centerStart) or down (centerEnd).
//
// Inputs:
//   - oldSize: current axis length (>= 0).
//   - updatedSize: clamped target length (>= 0).
//   - offset: requested signed delta (may exceed -oldSize; already clamped in updatedSize).
//   - a: alignment, already validated.
//
// Complexity:
//   - Time O(1), Space O(1).
func planAxis(oldSize, updatedSize, offset int, a alignment) axisPlan {
	if updatedSize == 0 {
		return axisPlan{}
	}
	if updatedSize == oldSize {
		return axisPlan{count: oldSize}
	}

	var p axisPlan
	if offset >= 0 {
		p.count = oldSize
	} else {
		p.count = updatedSize
	}

	switch a {
	case alignStart:
		if offset > 0 {
			p.dst = offset
		} else {
			p.src = -offset
		}
	case alignEnd:
		// kept prefix; offsets stay 0
	case alignCenterStart:
		if offset > 0 {
			p.dst = (offset + 1) / 2
		} else {
			p.src = (-offset + 1) / 2
		}
	case alignCenterEnd:
		if offset > 0 {
			p.dst = offset / 2
		} else {
			p.src = -offset / 2
		}
	}

	return p
}

// Resize changes the shape by (widthOffset, heightOffset) in place, keeping
// the overlap of old and new content as placed by the two rules.
// MAIN DESCRIPTION:
//   - Positive offsets grow an axis, negative offsets shrink it, zero leaves
//     it (and its content) unchanged.
//
// Implementation:
//   - Stage 1: validate both rules (ErrInvalidRule) before any allocation.
//   - Stage 2: clamp new sizes to max(0, size+offset) and reject shapes
//     whose cell count overflows int (ErrBadShape).
//   - Stage 3: plan each axis independently (planAxis).
//   - Stage 4: allocate a zeroed buffer, copy the planned rectangle, swap it in.
//
// Behavior highlights:
//   - Shrinking below zero clamps to an empty axis; it is never an error.
//   - Cells not covered by the copied rectangle hold T's zero value.
//   - The old buffer is dropped only after the new one is fully built.
//
// Errors:
//   - ErrInvalidRule when either rule is outside its enumeration; m is untouched.
//   - ErrBadShape when the new width*height overflows int; m is untouched.
//
// Complexity:
//   - Time O(w'*h'), Space O(w'*h') for the new buffer.
func (m *Matrix[T]) Resize(widthOffset, heightOffset int, widthRule WidthResizeRule, heightRule HeightResizeRule) error {
	wa, ok := widthAlignment(widthRule)
	if !ok {
		return ruleErrorf(ctxResize, widthRule, ErrInvalidRule)
	}
	ha, ok := heightAlignment(heightRule)
	if !ok {
		return ruleErrorf(ctxResize, heightRule, ErrInvalidRule)
	}

	newW := clampSize(m.w, widthOffset)
	newH := clampSize(m.h, heightOffset)
	if !validShape(newW, newH) {
		return shapeErrorf(ctxResize, newW, newH, ErrBadShape)
	}
	px := planAxis(m.w, newW, widthOffset, wa)
	py := planAxis(m.h, newH, heightOffset, ha)

	data := make([]T, newW*newH)
	if px.count > 0 {
		for y := 0; y < py.count; y++ {
			srcRow := (y+py.src)*m.w + px.src
			dstRow := (y+py.dst)*newW + px.dst
			copy(data[dstRow:dstRow+px.count], m.data[srcRow:srcRow+px.count])
		}
	}

	m.w, m.h, m.data = newW, newH, data

	return nil
}

// ResizeBy is Resize with the rules supplied as options.
// Unset rules default to DefaultWidthRule and DefaultHeightRule.
//
//	m.ResizeBy(2, 0)                          // Left, Up
//	m.ResizeBy(-1, 3, WithHeightRule(CenterDown))
func (m *Matrix[T]) ResizeBy(widthOffset, heightOffset int, opts ...ResizeOption) error {
	o := gatherResizeOptions(opts...)

	return m.Resize(widthOffset, heightOffset, o.widthRule, o.heightRule)
}
