// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

// Kernel is a loaded simulation kernel. A Binding calls Init, SetOptions,
// Elaborate and SimInit exactly once each and in that order, then Step until
// it returns a status >= StatusFinished or the run is stopped, then Close.
// All calls are made from the same locked OS thread.
//
// Step may call back into the Callback the kernel was loaded with.
//
type Kernel interface {
	Init()
	SetOptions(args []string)
	Elaborate()
	SimInit()
	Step() int
	Close() error
}

// A Loader loads the simulation artifact at path and returns a Kernel that
// calls cb whenever the simulated peripheral samples its bus. Load failures
// wrap ErrArtifactLoad.
//
type Loader func(path string, cb Callback) (Kernel, error)

// Step status codes. A Binding keeps stepping while the status is below
// StatusFinished.
//
const (
	StatusNone     = iota // no step run yet
	StatusDelta           // a delta cycle was run
	StatusTime            // simulation time advanced
	StatusFinished        // the design has nothing left to simulate
	StatusStopped         // the design stopped itself
	StatusFailed          // the design failed
)

// State is the state of a Binding.
//
type State int32

// Binding states.
//
const (
	NotLoaded State = iota
	Loaded
	OptionsSet
	Elaborated
	Initialized
	Running
	Stopped
)

var stateNames = [...]string{
	NotLoaded:   "not loaded",
	Loaded:      "loaded",
	OptionsSet:  "options set",
	Elaborated:  "elaborated",
	Initialized: "initialized",
	Running:     "running",
	Stopped:     "stopped",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}
