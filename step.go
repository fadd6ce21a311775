// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a sponge protocol until its first operation.
// Returns (result, nil) on completion, or (zero, suspension) if an
// operation is pending. Inspect it with susp.Op() before [Advance].
func Step[R any](protocol kont.Expr[R]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.StepExpr(wrapped)
}

// Advance performs the pending operation on d and runs the protocol to its
// next operation or completion.
//
// A sponge operation that does not match the remaining pattern, or a
// Throw, discards the suspension and completes with Left. The session is
// left as it was before the rejected operation.
func Advance[V, A, R any](d *Driver[V, A], susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	if sop, ok := susp.Op().(spongeDispatcher); ok {
		v, err := sop.DispatchSponge(d)
		if err != nil {
			susp.Discard()
			return kont.Left[error, R](err), nil
		}
		return susp.Resume(v)
	}
	if eop, ok := susp.Op().(errorDispatcher); ok {
		var ctx kont.ErrorContext[error]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[error, R](ctx.Err), nil
		}
		return susp.Resume(v)
	}
	panic("sponge: unhandled effect in Advance")
}
