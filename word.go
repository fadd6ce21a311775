// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import "strconv"

// Kind tells absorb words from squeeze words.
type Kind uint8

const (
	// KindAbsorb feeds elements into the sponge.
	KindAbsorb Kind = iota + 1
	// KindSqueeze extracts elements from the sponge.
	KindSqueeze
)

// String returns "absorb" or "squeeze".
func (k Kind) String() string {
	switch k {
	case KindAbsorb:
		return "absorb"
	case KindSqueeze:
		return "squeeze"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Word is a single obligation of a pattern: absorb or squeeze Len elements.
// Words are plain values; a zero Len is legal in a declared pattern and is
// elided by [Normalize].
type Word struct {
	Kind Kind
	Len  uint32
}

// Absorb returns the word that absorbs n elements.
func Absorb(n uint32) Word { return Word{Kind: KindAbsorb, Len: n} }

// Squeeze returns the word that squeezes n elements.
func Squeeze(n uint32) Word { return Word{Kind: KindSqueeze, Len: n} }

// String renders the word as A<n> or S<n>.
func (w Word) String() string {
	var b [11]byte
	switch w.Kind {
	case KindAbsorb:
		b[0] = 'A'
	case KindSqueeze:
		b[0] = 'S'
	default:
		b[0] = '?'
	}
	return string(strconv.AppendUint(b[:1], uint64(w.Len), 10))
}
