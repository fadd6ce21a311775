// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"fmt"
	"math"
	"slices"

	"code.hybscloud.com/atomix"
	"go.uber.org/zap"
)

// Handle states. A handle is live until one call claims it (busy); a
// successful call spends it, a rejected call returns it to live.
const (
	handleLive uint32 = iota
	handleBusy
	handleSpent
)

// lineage is the state shared by every handle derived from one Start.
// Only the single live handle may progress it.
type lineage[V, A any] struct {
	api             API[V, A]
	remaining       Pattern
	finished        bool
	serial          Serial
	domainSeparator uint32
	log             *zap.Logger
}

// Session guards an underlying sponge with the pattern declared at [Start].
//
// A Session is an affine handle: every successful Absorb or Squeeze
// consumes the receiver and returns the handle to use next. A consumed
// handle rejects further calls with [ErrConsumed], which also catches two
// calls racing on one handle. A rejected call (a protocol violation) leaves
// the receiver usable.
//
// Every session must end in Finish with an empty remaining pattern.
// Guard the scope that owns a session with a deferred [Session.Dispose]
// (or use [With] / [Run]): disposing a session that still owes words
// panics with an [*UnterminatedError].
type Session[V, A any] struct {
	l     *lineage[V, A]
	state atomix.Uint32
}

// Start normalizes declared, forwards the normalized pattern and the domain
// separator to api.Start, and returns the first session handle together
// with the accumulator api.Start returned.
//
// Start fails with [ErrPatternOverflow] without calling api when a merged
// run does not fit in uint32.
func Start[V, A any](api API[V, A], declared Pattern, acc A, opts ...Option) (*Session[V, A], A, error) {
	if api == nil {
		panic("sponge: Start with nil API")
	}
	remaining, err := normalize(declared)
	if err != nil {
		return nil, acc, err
	}
	o := buildOptions(opts)
	l := &lineage[V, A]{
		api:             api,
		remaining:       remaining,
		serial:          nextSerial(),
		domainSeparator: o.domainSeparator,
		log:             o.logger,
	}
	acc = api.Start(slices.Clone(remaining), o.domainSeparator, acc)
	l.log.Debug("sponge session started",
		zap.Uint32("serial", l.serial),
		zap.Stringer("pattern", remaining),
		zap.Uint32("domain_separator", o.domainSeparator),
	)
	return &Session[V, A]{l: l}, acc, nil
}

// Absorb absorbs values, which must fit the head of the remaining pattern.
// On success the receiver is consumed and the returned handle carries the
// reduced pattern. On error nothing reaches the underlying sponge and the
// receiver is returned unchanged.
func (s *Session[V, A]) Absorb(values []V, acc A) (*Session[V, A], A, error) {
	return s.step(KindAbsorb, len(values), acc, func(n uint32, acc A) A {
		return s.l.api.Absorb(n, values, acc)
	})
}

// Squeeze fills out from the sponge; len(out) must fit the head of the
// remaining pattern. Ownership rules are those of [Session.Absorb].
func (s *Session[V, A]) Squeeze(out []V, acc A) (*Session[V, A], A, error) {
	return s.step(KindSqueeze, len(out), acc, func(n uint32, acc A) A {
		return s.l.api.Squeeze(n, out, acc)
	})
}

func (s *Session[V, A]) step(k Kind, count int, acc A, call func(uint32, A) A) (*Session[V, A], A, error) {
	if err := s.claim(); err != nil {
		return s, acc, err
	}
	if uint64(count) > math.MaxUint32 {
		s.state.Store(handleLive)
		return s, acc, &ViolationError{Remaining: s.Remaining(), Requested: Word{Kind: k, Len: math.MaxUint32}}
	}
	w := Word{Kind: k, Len: uint32(count)}
	next, err := Consume(s.l.remaining, w)
	if err != nil {
		s.state.Store(handleLive)
		return s, acc, &ViolationError{Remaining: s.Remaining(), Requested: w}
	}
	acc = call(w.Len, acc)
	s.l.remaining = next
	s.state.Store(handleSpent)
	return &Session[V, A]{l: s.l}, acc, nil
}

// Finish ends the session. The remaining pattern must be empty; otherwise
// Finish returns a [*UsageError] and the session stays usable. On success
// the underlying sponge's Finish runs and the session drops its references
// to the sponge, whatever that Finish returns.
func (s *Session[V, A]) Finish() error {
	if err := s.claim(); err != nil {
		return err
	}
	if len(s.l.remaining) != 0 {
		s.state.Store(handleLive)
		return &UsageError{Remaining: s.Remaining()}
	}
	err := s.l.finish()
	s.state.Store(handleSpent)
	return err
}

// Dispose is the disposal check. It may be called on any handle of the
// lineage, so deferring it on the handle returned by Start covers every
// exit path of the owning scope.
//
// After Finish it does nothing. With an empty remaining pattern it
// finishes the session silently. With obligations left it logs and
// panics with an [*UnterminatedError]: nobody is in a position to receive
// an error at this point.
func (s *Session[V, A]) Dispose() {
	l := s.l
	if l == nil || l.finished {
		return
	}
	if len(l.remaining) == 0 {
		if err := l.finish(); err != nil {
			panic(err)
		}
		return
	}
	l.log.Error("sponge session disposed with obligations left",
		zap.Uint32("serial", l.serial),
		zap.Stringer("remaining", l.remaining),
	)
	panic(&UnterminatedError{Serial: l.serial, Remaining: slices.Clone(l.remaining)})
}

// Remaining returns a copy of the words still owed, in canonical form.
func (s *Session[V, A]) Remaining() Pattern {
	return slices.Clone(s.l.remaining)
}

// Serial returns the serial of the session lineage.
func (s *Session[V, A]) Serial() Serial { return s.l.serial }

// DomainSeparator returns the tag passed to the underlying Start.
func (s *Session[V, A]) DomainSeparator() uint32 { return s.l.domainSeparator }

// Finished reports whether the lineage has been finished.
func (s *Session[V, A]) Finished() bool { return s.l.finished }

// Consumed reports whether this handle has been spent by a successful call.
func (s *Session[V, A]) Consumed() bool { return s.state.Load() == handleSpent }

// claim takes the handle for one call.
func (s *Session[V, A]) claim() error {
	if s.l.finished {
		return ErrFinished
	}
	if !s.state.CompareAndSwap(handleLive, handleBusy) {
		return ErrConsumed
	}
	return nil
}

func (l *lineage[V, A]) finish() error {
	err := l.api.Finish()
	l.finished = true
	l.api = nil
	l.remaining = nil
	if err != nil {
		l.log.Error("sponge finish rejected by underlying sponge",
			zap.Uint32("serial", l.serial),
			zap.Error(err),
		)
		return fmt.Errorf("sponge: underlying finish: %w", err)
	}
	l.log.Debug("sponge session finished", zap.Uint32("serial", l.serial))
	return nil
}
