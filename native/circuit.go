// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package native

import (
	"io"
	"strings"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// A Component updates the circuit state. It is called once per step.
//
type Component func(c *Circuit)

// A Model mounts a simulated design into a circuit. It allocates the buses it
// needs with c.Bus and returns the components that drive them. cb is the
// software side of the peripheral.
//
type Model func(c *Circuit, cb cosim.Callback) []Component

type phase int

const (
	phaseNew phase = iota
	phaseInit
	phaseOptions
	phaseElaborated
	phaseRunning
	phaseClosed
)

// Circuit is a simulation kernel running a Model in Go. It implements
// cosim.Kernel.
//
type Circuit struct {
	model  Model
	cb     cosim.Callback
	log    *logrus.Entry
	phase  phase
	cs     []Component
	buses  []cosim.Vector
	resets []string
	tpc    uint // steps per clock cycle
	tick   uint
	stopAt uint
	trace  bool
	status int

	exchanged uint
	faults    uint
}

// New returns a new circuit for the given model. If log is nil, the standard
// logrus logger is used.
//
func New(m Model, cb cosim.Callback, log *logrus.Entry) *Circuit {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Circuit{
		model: m,
		cb:    cb,
		log:   log.WithField("kernel", "native"),
		tpc:   2,
	}
}

func (c *Circuit) fail(msg string) int {
	c.log.Error(msg)
	c.status = cosim.StatusFailed
	return c.status
}

// Init prepares the circuit for options parsing.
//
func (c *Circuit) Init() {
	if c.phase != phaseNew {
		c.fail("init called twice")
		return
	}
	c.phase = phaseInit
}

// SetOptions parses the kernel options:
//
//	--trace                log bus states at trace level on every step
//	--stop-time=N          finish the simulation after N steps
//	--steps-per-cycle=N    steps per clock cycle, rounded up to a power of 2
//
// Unknown options are ignored.
//
func (c *Circuit) SetOptions(args []string) {
	if c.phase != phaseInit {
		c.fail("options set out of order")
		return
	}
	c.phase = phaseOptions

	fs := pflag.NewFlagSet("native", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	trace := fs.Bool("trace", false, "log bus states on every step")
	stopAt := fs.Uint("stop-time", 0, "finish after this many steps")
	spc := fs.Uint("steps-per-cycle", 2, "steps per clock cycle")
	if err := fs.Parse(args); err != nil {
		c.log.WithError(err).Warnf("invalid kernel options %q", args)
	}
	c.trace = *trace
	c.stopAt = *stopAt
	c.tpc = roundPow2(*spc)
}

func roundPow2(n uint) uint {
	if n < 2 {
		n = 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}

// Elaborate mounts the model.
//
func (c *Circuit) Elaborate() {
	if c.phase != phaseOptions {
		c.fail("elaboration out of order")
		return
	}
	c.cs = c.model(c, c.cb)
	c.phase = phaseElaborated
}

// SimInit drives every bus to its reset state and calls the callback Init.
//
func (c *Circuit) SimInit() {
	if c.phase != phaseElaborated {
		c.fail("simulation init out of order")
		return
	}
	for i, b := range c.buses {
		r := c.resets[i]
		for bit := 0; bit < b.Width(); bit++ {
			l, _ := cosim.FromChar(r[bit%len(r)])
			_ = b.Set(bit, l)
		}
	}
	c.cb.Init()
	c.phase = phaseRunning
}

// Bus allocates a new bus of the given width. reset is the character form of
// the reset state, repeated as needed ("0" resets every signal Low). It may
// only be called from a Model.
//
func (c *Circuit) Bus(width int, reset string) cosim.Vector {
	if reset == "" {
		reset = "U"
	}
	for i := 0; i < len(reset); i++ {
		if _, err := cosim.FromChar(reset[i]); err != nil {
			panic(errors.Wrap(err, "invalid bus reset state"))
		}
	}
	v := cosim.NewVector(make([]byte, width))
	c.buses = append(c.buses, v)
	c.resets = append(c.resets, reset)
	return v
}

// Step advances the simulation by one step and returns the step status.
//
func (c *Circuit) Step() int {
	if c.status >= cosim.StatusFinished {
		return c.status
	}
	if c.phase != phaseRunning {
		return c.fail("step before simulation init")
	}
	for _, f := range c.cs {
		f(c)
	}
	c.tick++
	if c.trace {
		c.log.WithField("tick", c.tick).Trace(c.busString())
	}
	switch {
	case c.status >= cosim.StatusFinished:
		return c.status
	case c.stopAt > 0 && c.tick >= c.stopAt:
		c.status = cosim.StatusFinished
		return c.status
	case c.AtTick() || c.AtTock():
		return cosim.StatusTime
	}
	return cosim.StatusDelta
}

func (c *Circuit) busString() string {
	var b strings.Builder
	for i, v := range c.buses {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// Close releases the circuit. The circuit cannot be stepped afterwards.
//
func (c *Circuit) Close() error {
	if c.phase == phaseClosed {
		return errors.New("circuit already closed")
	}
	c.phase = phaseClosed
	c.cs = nil
	return nil
}

// Finish ends the simulation with the given status. It is meant to be called
// from components.
//
func (c *Circuit) Finish(status int) {
	if status < cosim.StatusFinished {
		status = cosim.StatusFinished
	}
	c.status = status
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.tick
}

// SPC returns the number of steps per clock cycle.
//
func (c *Circuit) SPC() uint {
	return c.tpc
}

// AtTick returns true if the current step is at the beginning of a clock cycle
// (raising edge of the clock).
//
func (c *Circuit) AtTick() bool {
	return c.tick&(c.tpc-1) == 0
}

// AtTock returns true if the current step is at the beginning of the second
// half of a clock cycle (falling edge of the clock).
//
func (c *Circuit) AtTock() bool {
	return (c.tick+c.tpc/2)&(c.tpc-1) == 0
}

// Exchanged returns the number of samples during which the peripheral
// exchanged a byte. Only meaningful once the run is over.
//
func (c *Circuit) Exchanged() uint { return c.exchanged }

// Faults returns the number of samples during which the peripheral raised its
// error flag. Only meaningful once the run is over.
//
func (c *Circuit) Faults() uint { return c.faults }
