// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// Reify turns a Cont-world sponge protocol into an Expr that [ExecExpr],
// [Run] and [Step] accept.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect turns an Expr-world sponge protocol into an Eff for [Exec].
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
