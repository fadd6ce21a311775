// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocolViolation reports an absorb or squeeze that does not match
	// the head of the remaining pattern.
	ErrProtocolViolation = errors.New("sponge: protocol violation")

	// ErrParameterUsageMismatch reports a finish while obligations remain.
	ErrParameterUsageMismatch = errors.New("sponge: parameter usage mismatch")

	// ErrUnterminatedSession is the panic cause when a session with
	// obligations left is disposed of. It is never returned.
	ErrUnterminatedSession = errors.New("sponge: unterminated session")

	// ErrConsumed reports use of a session handle that a previous call
	// already consumed, or a call racing another call on the same handle.
	ErrConsumed = errors.New("sponge: session handle consumed")

	// ErrFinished reports use of a session after Finish.
	ErrFinished = errors.New("sponge: session finished")

	// ErrPatternOverflow reports a merged run longer than math.MaxUint32.
	ErrPatternOverflow = errors.New("sponge: pattern run overflows uint32")

	// ErrInvalidPattern reports a malformed pattern literal.
	ErrInvalidPattern = errors.New("sponge: invalid pattern")
)

// ViolationError describes a rejected absorb or squeeze.
type ViolationError struct {
	Remaining Pattern
	Requested Word
}

func (e *ViolationError) Error() string {
	if len(e.Remaining) == 0 {
		return fmt.Sprintf("%v: %v requested on an exhausted pattern", ErrProtocolViolation, e.Requested)
	}
	head := e.Remaining[0]
	if head.Kind != e.Requested.Kind {
		return fmt.Sprintf("%v: %v requested, pattern expects %v", ErrProtocolViolation, e.Requested, head)
	}
	return fmt.Sprintf("%v: %v requested, only %v left", ErrProtocolViolation, e.Requested, head)
}

func (e *ViolationError) Unwrap() error { return ErrProtocolViolation }

// UsageError describes a finish attempted before the pattern was exhausted.
type UsageError struct {
	Remaining Pattern
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%v: %v still owed", ErrParameterUsageMismatch, e.Remaining)
}

func (e *UsageError) Unwrap() error { return ErrParameterUsageMismatch }

// UnterminatedError is the value a disposal check panics with.
type UnterminatedError struct {
	Serial    Serial
	Remaining Pattern
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("%v: session %d disposed with %v still owed", ErrUnterminatedSession, e.Serial, e.Remaining)
}

func (e *UnterminatedError) Unwrap() error { return ErrUnterminatedSession }

// OverflowError names the two words whose merge overflowed.
type OverflowError struct {
	Word Word
	Next Word
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: cannot merge %v and %v", ErrPatternOverflow, e.Word, e.Next)
}

func (e *OverflowError) Unwrap() error { return ErrPatternOverflow }
