// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is an ordered list of words a session promises to perform.
//
// A declared pattern may contain zero-length words and adjacent words of
// the same kind. The remaining pattern held by a [Session] is always
// canonical: no zero-length words and no two adjacent words of one kind.
// The empty pattern means every obligation is met.
type Pattern []Word

// Of builds a pattern from words, e.g. Of(Absorb(2), Absorb(3), Squeeze(3)).
func Of(words ...Word) Pattern {
	return Pattern(words)
}

// IsCanonical reports whether p is in head-normal form.
func (p Pattern) IsCanonical() bool {
	for i, w := range p {
		if w.Len == 0 {
			return false
		}
		if i > 0 && p[i-1].Kind == w.Kind {
			return false
		}
	}
	return true
}

// Equal reports whether p and q hold the same words in the same order.
// Nil and empty patterns are equal.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String renders p as [A5 S3].
func (p Pattern) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, w := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParsePattern parses the terse literal form used in tests and tools:
// words separated by spaces or commas, each a kind letter (A or S, either
// case) followed by a decimal length. Surrounding brackets are ignored, so
// the output of [Pattern.String] parses back.
//
//	p, err := sponge.ParsePattern("A2 A3 S3")
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	p := make(Pattern, 0, len(fields))
	for _, f := range fields {
		var k Kind
		switch f[0] {
		case 'A', 'a':
			k = KindAbsorb
		case 'S', 's':
			k = KindSqueeze
		default:
			return nil, fmt.Errorf("%w: unknown word %q", ErrInvalidPattern, f)
		}
		n, err := strconv.ParseUint(f[1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad length in %q", ErrInvalidPattern, f)
		}
		p = append(p, Word{Kind: k, Len: uint32(n)})
	}
	return p, nil
}

// MustParse is like [ParsePattern] but panics on malformed input.
func MustParse(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}
