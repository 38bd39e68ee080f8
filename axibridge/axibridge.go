// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package axibridge accesses 32 bit words of a design sitting behind an
// SPI to AXI4-Lite bridge.
//
// Every access is a single SPI frame starting with a big-endian command word:
// the opcode in the top 4 bits and the word address in the low 28 bits.
//
//	read:  cmd[4] turnaround[1] data[4]   (data shifted in by the device)
//	write: cmd[4] data[4] trailer[1]
//
package axibridge

import (
	"encoding/binary"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
)

// Opcodes.
//
const (
	OpRead  uint32 = 0x10000000
	OpWrite uint32 = 0x20000000

	// AddrMask is the mask applied to word addresses.
	AddrMask uint32 = 0x0fffffff

	FrameSize = 9
)

// Device is a design behind an SPI to AXI bridge.
//
type Device struct {
	spi cosim.Transferer
}

// New returns a Device using the given SPI master. It works the same with a
// simulated master and a hardware one.
//
func New(spi cosim.Transferer) *Device {
	return &Device{spi: spi}
}

// Command returns the command word for the given opcode and address.
//
func Command(op uint32, addr uint32) uint32 {
	return op | addr&AddrMask
}

// ReadWord reads the word at addr.
//
func (d *Device) ReadWord(addr uint32) (uint32, error) {
	var buf [FrameSize]byte
	binary.BigEndian.PutUint32(buf[0:4], Command(OpRead, addr))
	res, err := d.spi.Transfer(buf[:])
	if err != nil {
		return 0, errors.Wrapf(err, "read word %#x", addr)
	}
	if len(res) != FrameSize {
		return 0, errors.Errorf("read word %#x: short reply (%d bytes)", addr, len(res))
	}
	return binary.BigEndian.Uint32(res[5:9]), nil
}

// WriteWord writes word at addr.
//
func (d *Device) WriteWord(addr uint32, word uint32) error {
	var buf [FrameSize]byte
	binary.BigEndian.PutUint32(buf[0:4], Command(OpWrite, addr))
	binary.BigEndian.PutUint32(buf[4:8], word)
	if _, err := d.spi.Transfer(buf[:]); err != nil {
		return errors.Wrapf(err, "write word %#x", addr)
	}
	return nil
}
