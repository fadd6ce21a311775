// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"code.hybscloud.com/kont"
)

// spongeContext is the element-type-erased view of a [Driver] that effect
// operations dispatch on.
type spongeContext interface {
	absorb(values any) error
	squeeze(n uint32) (any, error)
	finish() error
}

// spongeDispatcher is the structural interface for sponge operations.
// DispatchSponge returns the session's error when the operation does not
// match the remaining pattern; the operation then has no effect.
type spongeDispatcher interface {
	DispatchSponge(ctx spongeContext) (kont.Resumed, error)
}

// AbsorbOp is the effect operation for absorbing Values.
// Perform(AbsorbOp[V]{Values: vs}) absorbs len(vs) elements.
type AbsorbOp[V any] struct {
	kont.Phantom[struct{}]
	Values []V
}

// DispatchSponge handles AbsorbOp on the driven session.
func (o AbsorbOp[V]) DispatchSponge(ctx spongeContext) (kont.Resumed, error) {
	if err := ctx.absorb(o.Values); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// SqueezeOp is the effect operation for squeezing N elements.
// Perform(SqueezeOp[V]{N: n}) resumes with a fresh []V of length n.
type SqueezeOp[V any] struct {
	kont.Phantom[[]V]
	N uint32
}

// DispatchSponge handles SqueezeOp on the driven session.
func (o SqueezeOp[V]) DispatchSponge(ctx spongeContext) (kont.Resumed, error) {
	v, err := ctx.squeeze(o.N)
	if err != nil {
		return nil, err
	}
	out, ok := v.([]V)
	if !ok {
		panic("sponge: element type mismatch in SqueezeOp")
	}
	return out, nil
}

// FinishOp is the effect operation for finishing the session.
// It fails with ErrParameterUsageMismatch while words remain.
type FinishOp struct {
	kont.Phantom[struct{}]
}

// DispatchSponge handles FinishOp on the driven session.
func (FinishOp) DispatchSponge(ctx spongeContext) (kont.Resumed, error) {
	if err := ctx.finish(); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}
