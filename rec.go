// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// Loop runs an iterative sponge protocol.
// step returns Left(nextState) to continue or Right(result) to stop.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if next, ok := e.GetLeft(); ok {
			return Loop(next, step)
		}
		result, _ := e.GetRight()
		return kont.Pure(result)
	})
}

// AbsorbEach absorbs chunks one absorb call per chunk, in order, and then
// continues with next. Consecutive chunks may split a single absorb word
// of the pattern, since each call only has to fit the remaining head.
func AbsorbEach[V, B any](chunks [][]V, next kont.Eff[B]) kont.Eff[B] {
	each := Loop(chunks, func(rest [][]V) kont.Eff[kont.Either[[][]V, struct{}]] {
		if len(rest) == 0 {
			return kont.Pure(kont.Right[[][]V](struct{}{}))
		}
		return AbsorbThen(rest[0], kont.Pure(kont.Left[[][]V, struct{}](rest[1:])))
	})
	return kont.Then(each, next)
}

// ExprLoop is the Expr-world [Loop].
// A step that returns without performing an operation is unrolled in
// place; otherwise the continuation is bound inline.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	m := step(initial)
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		if next, ok := m.Value.GetLeft(); ok {
			return ExprLoop(next, step)
		}
		result, _ := m.Value.GetRight()
		return kont.ExprReturn(result)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(v kont.Erased) kont.Expr[kont.Erased] {
		e := v.(kont.Either[S, A])
		if next, ok := e.GetLeft(); ok {
			rest := ExprLoop(next, step)
			return kont.Expr[kont.Erased]{Value: kont.Erased(rest.Value), Frame: rest.Frame}
		}
		result, _ := e.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(result), Frame: exprReturnFrame}
	}
	bf.Next = exprReturnFrame
	var zero A
	return kont.Expr[A]{Value: zero, Frame: kont.ChainFrames(m.Frame, bf)}
}

// ExprAbsorbEach is the Expr-world [AbsorbEach].
func ExprAbsorbEach[V, B any](chunks [][]V, next kont.Expr[B]) kont.Expr[B] {
	for i := len(chunks) - 1; i >= 0; i-- {
		next = ExprAbsorbThen(chunks[i], next)
	}
	return next
}
