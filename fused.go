// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// AbsorbThen absorbs values and then continues with next.
// Fuses Perform(AbsorbOp[V]{Values: values}) + Then.
func AbsorbThen[V, B any](values []V, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(AbsorbOp[V]{Values: values}), next)
}

// SqueezeBind squeezes n elements and passes them to f.
// Fuses Perform(SqueezeOp[V]{N: n}) + Bind.
func SqueezeBind[V, B any](n uint32, f func([]V) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(SqueezeOp[V]{N: n}), f)
}

// FinishDone finishes the session and returns a.
// Fuses Perform(FinishOp{}) + Then + Pure.
func FinishDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(FinishOp{}), kont.Pure(a))
}
