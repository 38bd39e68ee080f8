// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package ghdl loads simulation kernels built by GHDL as shared libraries and
exports the VHPIDIRECT entry points of the simulated SPI peripheral:

	procedure sim_spi_init;
	procedure sim_spi_rxtx(data  : inout std_logic_vector(7 downto 0);
	                       flags : inout std_logic_vector(3 downto 0));

The executable must export these symbols to the loaded kernel; the package
links with -rdynamic for that purpose. Only one kernel can be loaded at a
time in a process.

Without cgo, Open always fails with cosim.ErrArtifactLoad.
*/
package ghdl

import (
	"sync/atomic"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Entry points resolved from the artifact, in call order.
//
var symbols = [...]string{
	"grt_init",
	"grt_main_options",
	"grt_main_elab",
	"__ghdl_simulation_init",
	"__ghdl_simulation_step",
}

const (
	fnInit = iota
	fnOptions
	fnElab
	fnSimInit
	fnStep
)

type slot struct {
	cb  cosim.Callback
	log *logrus.Entry
}

// active is the callback of the loaded kernel. The exported entry points have
// no way to receive a context from the kernel, so this is the only place where
// they can find it.
//
var active atomic.Pointer[slot]

func bind(cb cosim.Callback) (*logrus.Entry, error) {
	if cb == nil {
		return nil, errors.Wrap(cosim.ErrArtifactLoad, "nil callback")
	}
	s := &slot{cb: cb, log: logrus.WithField("kernel", "ghdl")}
	if !active.CompareAndSwap(nil, s) {
		return nil, errors.Wrap(cosim.ErrArtifactLoad, "a GHDL kernel is already loaded")
	}
	return s.log, nil
}

func unbind() {
	active.Store(nil)
}

func spiInit() {
	s := active.Load()
	if s == nil {
		logrus.WithError(cosim.ErrNotRegistered).Error("sim_spi_init called with no kernel loaded")
		return
	}
	s.cb.Init()
}

func spiRxTx(data, flags cosim.Vector) {
	s := active.Load()
	if s == nil {
		_ = flags.Set(cosim.FlagError, cosim.High)
		logrus.WithError(cosim.ErrNotRegistered).Error("sim_spi_rxtx called with no kernel loaded")
		return
	}
	if err := s.cb.RxTx(data, flags); err != nil {
		// a closed pipe is reported on every sample until the run ends.
		if errors.Is(err, cosim.ErrChannelClosed) && !errors.Is(err, cosim.ErrUnresolvedState) {
			s.log.WithError(err).Debug("sim_spi_rxtx")
			return
		}
		s.log.WithError(err).Error("sim_spi_rxtx")
	}
}

// Load is a cosim.Loader for GHDL artifacts.
//
func Load(path string, cb cosim.Callback) (cosim.Kernel, error) {
	l, err := Open(path, cb)
	if err != nil {
		return nil, err
	}
	return l, nil
}
