// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// Driver executes effect-world protocols against a session. It holds the
// live handle and the accumulator, replacing both after every operation,
// so a protocol never touches a consumed handle.
type Driver[V, A any] struct {
	s   *Session[V, A]
	acc A
}

// NewDriver takes over s and acc. The caller must not use s afterwards;
// [Driver.Session] returns the handle that is live at any point.
func NewDriver[V, A any](s *Session[V, A], acc A) *Driver[V, A] {
	return &Driver[V, A]{s: s, acc: acc}
}

// Session returns the live handle.
func (d *Driver[V, A]) Session() *Session[V, A] { return d.s }

// Acc returns the accumulator as of the last completed operation.
func (d *Driver[V, A]) Acc() A { return d.acc }

func (d *Driver[V, A]) absorb(values any) error {
	vs, ok := values.([]V)
	if !ok {
		panic("sponge: element type mismatch in AbsorbOp")
	}
	next, acc, err := d.s.Absorb(vs, d.acc)
	if err != nil {
		return err
	}
	d.s, d.acc = next, acc
	return nil
}

func (d *Driver[V, A]) squeeze(n uint32) (any, error) {
	// Reject before allocating: n comes from the protocol, not from a buffer.
	if !d.s.l.finished {
		if _, err := Consume(d.s.l.remaining, Squeeze(n)); err != nil {
			return nil, &ViolationError{Remaining: d.s.Remaining(), Requested: Squeeze(n)}
		}
	}
	out := make([]V, n)
	next, acc, err := d.s.Squeeze(out, d.acc)
	if err != nil {
		return nil, err
	}
	d.s, d.acc = next, acc
	return out, nil
}

func (d *Driver[V, A]) finish() error {
	return d.s.Finish()
}

// errorDispatcher is the structural interface of kont error operations.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// spongeHandler implements kont.Handler for sponge and error effects.
// A failed sponge operation or a Throw short-circuits to Left.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type spongeHandler[V, A, R any] struct {
	d      *Driver[V, A]
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler. Dispatch order: Sponge → Error.
func (h spongeHandler[V, A, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(spongeDispatcher); ok {
		v, err := sop.DispatchSponge(h.d)
		if err != nil {
			return kont.Left[error, R](err), false
		}
		return v, true
	}
	if eop, ok := op.(errorDispatcher); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, R](h.errCtx.Err), false
		}
		return v, true
	}
	panic("sponge: unhandled effect in spongeHandler")
}

// Exec runs a Cont-world sponge protocol on d.
// Returns Right with the protocol's result, or Left with the first
// violation, usage mismatch or thrown error. Exec does not dispose of the
// session: on Left the live handle is still owed its remaining words.
func Exec[V, A, R any](d *Driver[V, A], protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := spongeHandler[V, A, R]{d: d, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecExpr runs an Expr-world sponge protocol on d.
// Results are those of [Exec].
func ExecExpr[V, A, R any](d *Driver[V, A], protocol kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := spongeHandler[V, A, R]{d: d, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
