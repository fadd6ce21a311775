// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transcript is a byte-oriented sponge.API built on cSHAKE128 from
// golang.org/x/crypto/sha3.
//
// The hash is keyed by the tag of the pattern the session declares, so two
// sessions with different patterns or domain separators never share
// output. Absorbs append to the transcript; the first squeeze of a phase
// forks an output stream that later squeezes of the same phase continue.
// Splitting a word across several calls therefore yields the same bytes as
// one call. Going back to absorbing ratchets the transcript with the number
// of bytes squeezed.
//
// The sponge keeps its own queue of expected words and reports any
// disagreement from Finish, independently of the guarding session.
package transcript

import (
	"encoding/binary"
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"code.hybscloud.com/sponge"
	"golang.org/x/crypto/sha3"
)

var transcriptFunction = []byte("sponge/transcript")

// Phase markers written into the transcript.
const (
	markSqueeze byte = 0x53
	markRatchet byte = 0x52
)

// Cost is the accumulator a transcript sponge threads through: how much
// work the session has done.
type Cost struct {
	Calls    int
	Absorbed int
	Squeezed int
}

// Option configures a Sponge.
type Option func(*Sponge)

// WithCustomization sets the cSHAKE customization string. Sponges with
// different customizations produce unrelated output.
func WithCustomization(s string) Option {
	return func(sp *Sponge) { sp.custom = []byte(s) }
}

// Sponge is a single-use transcript sponge. It is not safe for concurrent
// use; the guarding session serializes calls to it.
type Sponge struct {
	custom []byte
	h      sha3.ShakeHash
	out    sha3.ShakeHash
	phase  int // bytes squeezed since the last absorb

	expect lfq.SPSC[sponge.Word]
	head   sponge.Word
	err    error
	done   bool
}

var _ sponge.API[byte, Cost] = (*Sponge)(nil)

// New returns a Sponge ready for Start.
func New(opts ...Option) *Sponge {
	sp := &Sponge{}
	for _, opt := range opts {
		opt(sp)
	}
	return sp
}

// Start keys the transcript with the tag of p and ds and queues p's words
// for cross-checking.
func (sp *Sponge) Start(p sponge.Pattern, ds uint32, acc Cost) Cost {
	if sp.h != nil || sp.done {
		panic("transcript: Start called twice")
	}
	sp.expect.Init(queueCapacity(len(p)))
	for i := range p {
		w := p[i]
		if err := sp.expect.Enqueue(&w); err != nil {
			panic("transcript: expectation queue full")
		}
	}
	tag := Tag(p, ds)
	sp.h = sha3.NewCShake128(transcriptFunction, sp.custom)
	sp.h.Write(tag[:])
	acc.Calls++
	return acc
}

// Absorb appends elements to the transcript.
func (sp *Sponge) Absorb(length uint32, elements []byte, acc Cost) Cost {
	sp.mustBeActive()
	sp.expectWord(sponge.Absorb(length))
	if sp.out != nil {
		var r [5]byte
		r[0] = markRatchet
		binary.BigEndian.PutUint32(r[1:], uint32(sp.phase))
		sp.h.Write(r[:])
		sp.out = nil
		sp.phase = 0
	}
	sp.h.Write(elements[:length])
	acc.Calls++
	acc.Absorbed += int(length)
	return acc
}

// Squeeze fills out with the next length bytes of the current output
// stream.
func (sp *Sponge) Squeeze(length uint32, out []byte, acc Cost) Cost {
	sp.mustBeActive()
	sp.expectWord(sponge.Squeeze(length))
	if sp.out == nil {
		sp.h.Write([]byte{markSqueeze})
		sp.out = sp.h.Clone()
	}
	sp.out.Read(out[:length])
	sp.phase += int(length)
	acc.Calls++
	acc.Squeezed += int(length)
	return acc
}

// Finish erases the transcript. It fails with
// sponge.ErrParameterUsageMismatch when the calls received disagree with
// the pattern given to Start.
func (sp *Sponge) Finish() error {
	sp.mustBeActive()
	err := sp.err
	if err == nil && sp.head.Len != 0 {
		err = fmt.Errorf("%w: transcript still expects %v", sponge.ErrParameterUsageMismatch, sp.head)
	}
	if err == nil {
		if w, qerr := sp.expect.Dequeue(); qerr == nil {
			err = fmt.Errorf("%w: transcript still expects %v", sponge.ErrParameterUsageMismatch, w)
		} else if !iox.IsWouldBlock(qerr) {
			panic("transcript: expectation queue: " + qerr.Error())
		}
	}
	sp.h.Reset()
	sp.h = nil
	sp.out = nil
	sp.done = true
	return err
}

// expectWord checks w against the sponge's own bookkeeping. The first
// disagreement is kept for Finish; data is processed regardless.
func (sp *Sponge) expectWord(w sponge.Word) {
	if sp.err != nil || w.Len == 0 {
		return
	}
	if sp.head.Len == 0 {
		next, err := sp.expect.Dequeue()
		if err != nil {
			if !iox.IsWouldBlock(err) {
				panic("transcript: expectation queue: " + err.Error())
			}
			sp.err = fmt.Errorf("%w: transcript got %v after its pattern ended", sponge.ErrParameterUsageMismatch, w)
			return
		}
		sp.head = next
	}
	if sp.head.Kind != w.Kind || sp.head.Len < w.Len {
		sp.err = fmt.Errorf("%w: transcript got %v, expected %v", sponge.ErrParameterUsageMismatch, w, sp.head)
		return
	}
	sp.head.Len -= w.Len
}

func (sp *Sponge) mustBeActive() {
	if sp.h == nil {
		if sp.done {
			panic("transcript: use after Finish")
		}
		panic("transcript: use before Start")
	}
}

// queueCapacity rounds n up to a power of two, at least 2.
func queueCapacity(n int) int {
	c := 2
	for c < n {
		c <<= 1
	}
	return c
}
