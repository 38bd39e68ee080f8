// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package native

import (
	"sort"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
)

// Loopback returns the model of an SPI peripheral whose 8 bit shift register
// keeps the byte received during one exchange and shifts it back out during
// the next one. The shift register is sampled once every 8 clock cycles.
//
// reset is the reset state of the shift register (see Circuit.Bus). The first
// reply of a run is the reset state.
//
// The model finishes the simulation with StatusFailed as soon as the error
// flag is raised.
//
func Loopback(reset string) Model {
	return func(c *Circuit, cb cosim.Callback) []Component {
		data := c.Bus(cosim.DataWidth, reset)
		flags := c.Bus(cosim.FlagsWidth, "0")
		var clk uint
		return []Component{
			func(c *Circuit) {
				// raising edge?
				if !c.AtTick() {
					return
				}
				clk++
				if clk%cosim.DataWidth != 0 {
					return
				}
				if err := cb.RxTx(data, flags); err != nil {
					c.log.WithError(err).Debug("rxtx")
				}
				if l, _ := flags.Get(cosim.FlagValid); l == cosim.High {
					c.exchanged++
				}
				if l, _ := flags.Get(cosim.FlagError); l == cosim.High {
					c.faults++
					c.Finish(cosim.StatusFailed)
				}
			}}
	}
}

var models = map[string]Model{
	"loopback":   Loopback("0"),
	"loopback-u": Loopback("U"),
}

// Models returns the names of the built-in models.
//
func Models() []string {
	ns := make([]string, 0, len(models))
	for n := range models {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Open returns a new circuit running the built-in model with the given name.
// An empty name selects "loopback".
//
func Open(name string, cb cosim.Callback) (*Circuit, error) {
	if name == "" {
		name = "loopback"
	}
	m, ok := models[name]
	if !ok {
		return nil, errors.Wrapf(cosim.ErrArtifactLoad, "unknown native model %q", name)
	}
	if cb == nil {
		return nil, errors.Wrap(cosim.ErrArtifactLoad, "nil callback")
	}
	return New(m, cb, nil), nil
}

// Load is a cosim.Loader for built-in models. path is the model name.
//
func Load(path string, cb cosim.Callback) (cosim.Kernel, error) {
	c, err := Open(path, cb)
	if err != nil {
		return nil, err
	}
	return c, nil
}
