// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

// Consume checks w against the head of p and returns the pattern that
// remains once w has been performed.
//
// p must be canonical. Only the head interacts with w, and in a canonical
// pattern the word after the head is of the other kind, so the result is
// canonical without renormalizing. Consume on a non-canonical pattern looks
// at the head only and may reject calls its normal form would accept.
//
// The result is a *[ViolationError] when p is empty, when the head is of a
// different kind, or when w asks for more elements than the head holds.
// A zero-length w on a matching head leaves p unchanged. Consume does not
// modify p.
func Consume(p Pattern, w Word) (Pattern, error) {
	if len(p) == 0 || p[0].Kind != w.Kind || p[0].Len < w.Len {
		return p, &ViolationError{Remaining: p, Requested: w}
	}
	switch {
	case w.Len == 0:
		return p, nil
	case w.Len == p[0].Len:
		return p[1:], nil
	}
	q := make(Pattern, len(p))
	copy(q, p)
	q[0].Len -= w.Len
	return q, nil
}
