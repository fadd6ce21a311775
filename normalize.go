// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import "math"

// Normalize returns the head-normal form of p: zero-length words are
// dropped and adjacent words of the same kind are merged by summing their
// lengths. Merging cascades and sees through elided words, so
//
//	A2 A3 A1 → A6
//	A3 S0 A1 → A4
//
// Words of one kind separated by a non-empty word of the other kind are
// never merged. Normalize is idempotent and does not modify p.
//
// Normalize panics if a merged run exceeds math.MaxUint32 elements;
// [Start] reports the same condition as [ErrPatternOverflow].
func Normalize(p Pattern) Pattern {
	q, err := normalize(p)
	if err != nil {
		panic(err)
	}
	return q
}

// normalize folds p left to right onto an output stack. The top of the
// stack is the kept head; each incoming word is either elided, merged into
// the head, or pushed as the new head. Because elision happens before the
// kind comparison, a zero word never separates two runs of the same kind.
func normalize(p Pattern) (Pattern, error) {
	out := make(Pattern, 0, len(p))
	for _, w := range p {
		if w.Len == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Kind == w.Kind {
			sum := uint64(out[n-1].Len) + uint64(w.Len)
			if sum > math.MaxUint32 {
				return nil, &OverflowError{Word: out[n-1], Next: w}
			}
			out[n-1].Len = uint32(sum)
			continue
		}
		out = append(out, w)
	}
	return out, nil
}
