// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sponge guards SAFE-style sponges against call-sequence misuse.
//
// A sponge session is started with a declared I/O pattern, an ordered list
// of absorb and squeeze words such as A2 A3 S3. Every absorb and squeeze
// is checked against what is still owed, and a session may only end once
// the pattern is exhausted.
//
// # Patterns
//
//   - Words: [Absorb], [Squeeze]. Patterns: [Of], [ParsePattern], [MustParse].
//   - [Normalize] drops zero-length words and merges adjacent words of one
//     kind: A2 A3 S0 S3 becomes A5 S3.
//   - [Consume] checks one call against the head of a canonical pattern and
//     returns what remains, or a [*ViolationError].
//
// # Sessions
//
//   - [Start] normalizes the declared pattern and starts the underlying
//     [API] with it and the domain separator ([WithDomainSeparator]).
//   - [Session.Absorb] and [Session.Squeeze] consume their receiver and
//     return the next handle. Spent handles fail with [ErrConsumed].
//   - [Session.Finish] fails with [ErrParameterUsageMismatch] while words
//     remain.
//   - [Session.Dispose], [With] and [Run] apply the disposal check: a
//     session dropped with words owed panics with an [*UnterminatedError].
//
// # Effect protocols
//
// Protocols can also be written as [code.hybscloud.com/kont] computations:
//
//   - Operations: [AbsorbOp], [SqueezeOp], [FinishOp].
//   - Cont-world: [AbsorbThen], [SqueezeBind], [FinishDone], [AbsorbEach], [Loop].
//   - Expr-world: [ExprAbsorbThen], [ExprSqueezeBind], [ExprFinishDone],
//     [ExprAbsorbEach], [ExprLoop].
//     Bridge via [Reify] and [Reflect].
//   - Execution: [Exec], [ExecExpr] on a [Driver]; [Step] and [Advance] for
//     one operation at a time. Failures surface as Left of a kont.Either.
//
// # Example
//
//	s, acc, err := sponge.Start[byte](api, sponge.MustParse("A2 A3 S3"), acc)
//	if err != nil {
//		return err
//	}
//	defer s.Dispose()
//	if s, acc, err = s.Absorb(msg[:5], acc); err != nil {
//		return err
//	}
//	out := make([]byte, 3)
//	if s, acc, err = s.Squeeze(out, acc); err != nil {
//		return err
//	}
//	return s.Finish()
package sponge
