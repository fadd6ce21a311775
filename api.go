// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

// API is the underlying sponge a [Session] sequences calls to.
// V is the element type, A an opaque accumulator threaded through every
// call by value, such as a cost counter.
//
// The session never inspects or copies the sponge state. It guarantees
// that Start receives the canonical form of the declared pattern and that
// every Absorb and Squeeze matches the remaining pattern, with length equal
// to the slice length.
type API[V, A any] interface {
	// Start initializes the sponge for pattern p. It is called once.
	Start(p Pattern, domainSeparator uint32, acc A) A

	// Absorb injects length elements.
	Absorb(length uint32, elements []V, acc A) A

	// Squeeze writes length elements into out.
	Squeeze(length uint32, out []V, acc A) A

	// Finish ends the sponge's life and erases its state. It returns an
	// error wrapping ErrParameterUsageMismatch if the sponge's own
	// bookkeeping disagrees with the calls it received.
	Finish() error
}
