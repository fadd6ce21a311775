// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// With starts a session for declared, hands it to body and applies the
// disposal check when body exits, however it exits. body may progress and
// finish the session through any handle of the lineage.
//
// If body leaves the pattern exhausted but unfinished, With finishes it
// silently. If words are still owed, With panics with an
// [*UnterminatedError], even when body returned an error: a session must
// not be walked away from mid-protocol.
//
//	acc, err := sponge.With(api, sponge.MustParse("A5 S3"), acc,
//		func(s *sponge.Session[byte, Cost], acc Cost) (Cost, error) {
//			s, acc, err := s.Absorb(msg, acc)
//			...
//		})
func With[V, A any](api API[V, A], declared Pattern, acc A, body func(s *Session[V, A], acc A) (A, error), opts ...Option) (A, error) {
	s, acc, err := Start(api, declared, acc, opts...)
	if err != nil {
		return acc, err
	}
	defer s.Dispose()
	return body(s, acc)
}

// Run starts a session for declared and executes an Expr-world protocol
// on it, returning the protocol's result and the final accumulator. The
// disposal check of [With] applies when the protocol completes, so a
// protocol that stops short of its pattern, for example because an
// operation was rejected, panics with an [*UnterminatedError].
func Run[V, A, R any](api API[V, A], declared Pattern, acc A, protocol kont.Expr[R], opts ...Option) (kont.Either[error, R], A) {
	s, acc, err := Start(api, declared, acc, opts...)
	if err != nil {
		return kont.Left[error, R](err), acc
	}
	defer s.Dispose()
	d := NewDriver(s, acc)
	result := ExecExpr(d, protocol)
	return result, d.Acc()
}
