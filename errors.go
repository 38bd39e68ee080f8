// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import "github.com/pkg/errors"

// Error kinds. Functions in this package wrap them with context; use errors.Is
// to test for a kind.
//
var (
	// ErrIndexOutOfRange is returned when a bus is accessed past its width,
	// or when a bus handed over by the kernel does not have the expected
	// width. It means that the software and the simulated design disagree
	// on the bus layout.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnresolvedState is returned when a signal that is not driven to a
	// boolean state is read as a boolean or as an integer.
	ErrUnresolvedState = errors.New("unresolved logic state")

	// ErrArtifactLoad is returned when the simulation artifact cannot be
	// loaded or one of its entry points cannot be resolved.
	ErrArtifactLoad = errors.New("simulation artifact load error")

	// ErrChannelClosed is returned by pipe operations once either end has
	// gone away.
	ErrChannelClosed = errors.New("channel closed")

	// ErrChannelFull is returned by a non-blocking send on a full pipe.
	ErrChannelFull = errors.New("channel full")

	// ErrNotRegistered is returned when a channel registry is used before it
	// has been created and handed over.
	ErrNotRegistered = errors.New("channel registry not registered")

	// ErrBadState is returned when a Binding method is called in the wrong
	// state.
	ErrBadState = errors.New("invalid binding state")
)

// ClosedError is returned by a Pipe that was closed with a cause.
//
type ClosedError struct {
	Cause error
}

func (e *ClosedError) Error() string {
	return ErrChannelClosed.Error() + ": " + e.Cause.Error()
}

// Is reports ErrChannelClosed as a match.
//
func (e *ClosedError) Is(target error) bool { return target == ErrChannelClosed }

// Unwrap returns the cause.
//
func (e *ClosedError) Unwrap() error { return e.Cause }
