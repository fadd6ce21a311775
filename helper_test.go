// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/sponge"
)

// basicSponge is a toy sponge.API over bytes. It records every call,
// checks each one against its own copy of the pattern, and mixes absorbed
// bytes into a small state so squeezes depend on what came before.
// The accumulator counts calls.
type basicSponge struct {
	state    [8]byte
	pos      int
	pattern  sponge.Pattern
	ds       uint32
	calls    []sponge.Word
	started  bool
	finished bool
	err      error
}

var _ sponge.API[byte, int] = (*basicSponge)(nil)

func (b *basicSponge) Start(p sponge.Pattern, ds uint32, acc int) int {
	b.pattern = p
	b.ds = ds
	b.started = true
	b.state[0] = byte(ds)
	return acc + 1
}

func (b *basicSponge) Absorb(length uint32, elements []byte, acc int) int {
	if int(length) != len(elements) {
		panic("basicSponge: length does not match elements")
	}
	b.expect(sponge.Absorb(length))
	for _, e := range elements {
		b.state[b.pos%len(b.state)] ^= e
		b.pos++
	}
	return acc + 1
}

func (b *basicSponge) Squeeze(length uint32, out []byte, acc int) int {
	if int(length) != len(out) {
		panic("basicSponge: length does not match output")
	}
	b.expect(sponge.Squeeze(length))
	for i := range out {
		out[i] = b.state[(b.pos+i)%len(b.state)] + byte(i)
	}
	return acc + 1
}

func (b *basicSponge) Finish() error {
	b.finished = true
	if b.err != nil {
		return b.err
	}
	if len(b.pattern) != 0 {
		return fmt.Errorf("%w: basicSponge still expects %v", sponge.ErrParameterUsageMismatch, b.pattern)
	}
	return nil
}

func (b *basicSponge) expect(w sponge.Word) {
	b.calls = append(b.calls, w)
	if b.err != nil {
		return
	}
	next, err := sponge.Consume(b.pattern, w)
	if err != nil {
		b.err = fmt.Errorf("%w: %v", sponge.ErrParameterUsageMismatch, err)
		return
	}
	b.pattern = next
}

// mustStart starts a session on a fresh basicSponge.
func mustStart(tb testing.TB, declared string, opts ...sponge.Option) (*sponge.Session[byte, int], *basicSponge, int) {
	tb.Helper()
	b := &basicSponge{}
	s, acc, err := sponge.Start[byte, int](b, sponge.MustParse(declared), 0, opts...)
	if err != nil {
		tb.Fatalf("Start(%q): %v", declared, err)
	}
	return s, b, acc
}

// expectPanic runs f and returns the recovered panic value, failing the
// test if f returns normally.
func expectPanic(tb testing.TB, f func()) (r any) {
	tb.Helper()
	defer func() {
		r = recover()
		if r == nil {
			tb.Fatal("expected panic")
		}
	}()
	f()
	return nil
}
