// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// Pre-boxed frame and operation for the empty-struct cases.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprFinish      kont.Erased = FinishOp{}
)

func identityResume(v kont.Erased) kont.Erased { return v }

// ExprAbsorbThen absorbs values and then continues with next.
// Fuses ExprPerform(AbsorbOp[V]{Values: values}) + ExprThen.
func ExprAbsorbThen[V, B any](values []V, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = AbsorbOp[V]{Values: values}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func squeezeBindUnwind[V, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func([]V) kont.Expr[B])
	result := f(current.([]V))
	return kont.Erased(result.Value), result.Frame
}

// ExprSqueezeBind squeezes n elements and passes them to f.
// Fuses ExprPerform(SqueezeOp[V]{N: n}) + ExprBind.
func ExprSqueezeBind[V, B any](n uint32, f func([]V) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = squeezeBindUnwind[V, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = SqueezeOp[V]{N: n}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprFinishDone finishes the session and returns a.
// Fuses ExprPerform(FinishOp{}) + ExprThen + ExprReturn.
func ExprFinishDone[A any](a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprFinish
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}
