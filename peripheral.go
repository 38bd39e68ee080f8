// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Bus widths and flag bits of the SPI peripheral interface.
//
const (
	DataWidth  = 8
	FlagsWidth = 4

	// FlagError is set when a pipe is closed or an exchange failed.
	FlagError = 0
	// FlagValid is set when a byte was exchanged during this sample.
	FlagValid = 3
)

// Callback is implemented by the software side of a simulated peripheral. A
// Kernel calls Init once during simulation init and RxTx every time the
// simulated design samples its bus. Both run on the simulation goroutine.
//
type Callback interface {
	Init()
	RxTx(data, flags Vector) error
}

// Peripheral is the Callback for the simulated SPI peripheral. It moves one
// byte per sample between the simulated shift register and the Registry
// pipes.
//
type Peripheral struct {
	reg *Registry
	log *logrus.Entry
}

// NewPeripheral returns a Peripheral exchanging bytes through reg. If log is
// nil, the standard logrus logger is used.
//
func NewPeripheral(reg *Registry, log *logrus.Entry) *Peripheral {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Peripheral{reg: reg, log: log}
}

// Init does nothing besides logging.
//
func (p *Peripheral) Init() {
	p.log.Debug("sim_spi_init")
}

// RxTx handles one sample of the shift register. data is the 8 bit shift
// register, in kernel bit order (most significant bit first). flags is the 4
// bit status bus; bits 1 and 2 are never touched.
//
// If a byte from the master is pending, RxTx samples data, drives the
// received byte on data and sends the sample to the master, then sets
// FlagValid. If no byte is pending, it clears FlagValid and leaves data
// alone. Closed pipes and failed exchanges set FlagError.
//
// RxTx never blocks.
//
func (p *Peripheral) RxTx(data, flags Vector) error {
	if flags.Width() != FlagsWidth {
		return errors.Wrapf(ErrIndexOutOfRange, "flags bus width %d, expected %d", flags.Width(), FlagsWidth)
	}
	if p == nil || p.reg == nil {
		flags.cells[FlagError] = High.Code()
		return ErrNotRegistered
	}
	if data.Width() != DataWidth {
		flags.cells[FlagError] = High.Code()
		return errors.Wrapf(ErrIndexOutOfRange, "data bus width %d, expected %d", data.Width(), DataWidth)
	}

	rx, ok, err := p.reg.mosi.TryRecv()
	if err != nil {
		flags.cells[FlagError] = High.Code()
		return err
	}
	if !ok {
		flags.cells[FlagValid] = Low.Code()
		return nil
	}

	sample, serr := data.Unsigned()
	data.SetUnsigned(uint32(bits.Reverse8(rx)))
	if serr != nil {
		flags.cells[FlagError] = High.Code()
		flags.cells[FlagValid] = Low.Code()
		p.reg.miso.CloseWithError(serr)
		return serr
	}
	tx := bits.Reverse8(uint8(sample))

	if p.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		p.log.Debugf("spi xfer MOSI: %02x, MISO: %02x", rx, tx)
	}

	if err = p.reg.miso.TrySend(tx); err != nil {
		flags.cells[FlagError] = High.Code()
		flags.cells[FlagValid] = Low.Code()
		return errors.Wrap(err, "send to master")
	}
	flags.cells[FlagValid] = High.Code()
	return nil
}
