// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

// DefaultArgs are the kernel options used when Options.Args is nil.
//
var DefaultArgs = []string{"--trace"}

// DefaultDrain is the drain interval used when Options.Drain is zero.
//
const DefaultDrain = 100 * time.Millisecond

// Options configures a Binding.
//
type Options struct {
	// Artifact is the path to the simulation artifact, passed as is to the
	// Loader.
	Artifact string
	// Args are the kernel options. If nil, DefaultArgs is used.
	Args []string
	// Drain is how long the simulation goroutine waits after the step loop
	// ends and before closing the kernel, so that a callback in flight can
	// complete. Zero selects DefaultDrain, a negative value disables the
	// wait.
	Drain time.Duration
	// Log is the parent logger. If nil, the standard logrus logger is used.
	Log *logrus.Entry
}

// A Binding runs a simulation kernel on its own goroutine, locked to an OS
// thread, from load to unload.
//
// The host calls Start, talks to the simulated peripheral through a Master on
// the same Registry, calls Stop and finally Wait.
//
type Binding struct {
	reg     *Registry
	load    Loader
	opts    Options
	log     *logrus.Entry
	state   atomic.Int32
	steps   atomic.Uint64
	started atomic.Bool

	done   chan struct{}
	status int
	err    error
}

// NewBinding returns a new Binding for the given registry. The kernel is
// loaded by load when Start is called.
//
func NewBinding(reg *Registry, load Loader, opts Options) *Binding {
	if opts.Args == nil {
		opts.Args = DefaultArgs
	}
	switch {
	case opts.Drain == 0:
		opts.Drain = DefaultDrain
	case opts.Drain < 0:
		opts.Drain = 0
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Binding{
		reg:  reg,
		load: load,
		opts: opts,
		log: log.WithFields(logrus.Fields{
			"run":      xid.New().String(),
			"artifact": opts.Artifact,
		}),
	}
}

// State returns the current state of the binding.
//
func (b *Binding) State() State {
	return State(b.state.Load())
}

func (b *Binding) setState(s State) {
	b.state.Store(int32(s))
	b.log.WithField("state", s).Debug("binding state")
}

// Steps returns the number of kernel steps run so far.
//
func (b *Binding) Steps() uint64 {
	return b.steps.Load()
}

// Start starts the simulation goroutine and returns once the artifact is
// loaded. Load failures are returned here and the run is over: Wait returns
// the same error.
//
func (b *Binding) Start() error {
	if b.reg == nil {
		return errors.Wrap(ErrNotRegistered, "start binding")
	}
	if b.load == nil {
		return errors.Wrap(ErrArtifactLoad, "no loader")
	}
	if !b.started.CompareAndSwap(false, true) {
		return errors.Wrapf(ErrBadState, "start in state %v", b.State())
	}

	loaded := make(chan error, 1)
	b.done = make(chan struct{})
	go b.run(loaded)
	return <-loaded
}

// Stop sets the registry stop flag. The step loop ends after the step in
// progress.
//
func (b *Binding) Stop() {
	if b.reg != nil {
		b.reg.Stop()
	}
}

// Wait waits for the simulation goroutine to exit and returns the last step
// status.
//
func (b *Binding) Wait() (int, error) {
	if b.done == nil {
		return StatusNone, errors.Wrap(ErrBadState, "wait before start")
	}
	<-b.done
	return b.status, b.err
}

func (b *Binding) run(loaded chan<- error) {
	// The kernel keeps per-thread state and calls back from its own stack.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(b.done)
	// no more replies to the master once the run is over.
	defer b.reg.miso.Close()

	k, err := b.load(b.opts.Artifact, NewPeripheral(b.reg, b.log))
	if err != nil {
		if !errors.Is(err, ErrArtifactLoad) {
			err = errors.Wrap(ErrArtifactLoad, err.Error())
		}
		b.err = err
		b.setState(Stopped)
		b.log.WithError(err).Error("Failed to load simulation")
		loaded <- err
		return
	}
	b.setState(Loaded)
	loaded <- nil

	b.log.Info("Initializing simulation...")
	k.Init()
	k.SetOptions(b.opts.Args)
	b.setState(OptionsSet)
	k.Elaborate()
	b.setState(Elaborated)
	k.SimInit()
	b.setState(Initialized)

	b.log.Info("Running simulation...")
	b.setState(Running)
	status := StatusNone
	for status < StatusFinished && !b.reg.Stopped() {
		status = k.Step()
		b.steps.Add(1)
	}

	if b.opts.Drain > 0 {
		time.Sleep(b.opts.Drain)
	}
	b.status = status
	if err = k.Close(); err != nil {
		b.err = errors.Wrap(err, "close kernel")
	}
	b.setState(Stopped)
	b.log.WithFields(logrus.Fields{
		"status": status,
		"steps":  b.Steps(),
	}).Info("Simulation finished")
}
