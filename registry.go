// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import "sync/atomic"

// DefaultQueueDepth is the pipe capacity used when NewRegistry is given a
// depth less than 1.
//
const DefaultQueueDepth = 16

// A Registry holds the state shared between the host goroutine and the
// simulation goroutine for one cosimulation run: the master to peripheral
// pipe (MOSI), the peripheral to master pipe (MISO) and the stop flag.
//
// A Registry is created once before the run starts and handed to both the
// Binding and the Master. It is never reset; use a new Registry for each run.
//
type Registry struct {
	mosi *Pipe
	miso *Pipe
	stop atomic.Bool
}

// NewRegistry returns a new Registry whose pipes can queue depth bytes.
//
func NewRegistry(depth int) *Registry {
	if depth < 1 {
		depth = DefaultQueueDepth
	}
	return &Registry{
		mosi: newPipe(depth),
		miso: newPipe(depth),
	}
}

// MOSI returns the master to peripheral pipe.
//
func (r *Registry) MOSI() *Pipe { return r.mosi }

// MISO returns the peripheral to master pipe.
//
func (r *Registry) MISO() *Pipe { return r.miso }

// Stop sets the stop flag. The simulation goroutine observes it between two
// kernel steps.
//
func (r *Registry) Stop() { r.stop.Store(true) }

// Stopped returns the state of the stop flag.
//
func (r *Registry) Stopped() bool { return r.stop.Load() }
