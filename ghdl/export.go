// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

//go:build cgo

package ghdl

import "C"

import (
	"unsafe"

	"github.com/db47h/cosim"
)

//export sim_spi_init
func sim_spi_init() {
	spiInit()
}

// data and flags point to kernel-owned std_logic cells, valid for the duration
// of the call only.
//
//export sim_spi_rxtx
func sim_spi_rxtx(data, flags *C.char) {
	spiRxTx(
		cosim.NewVector(unsafe.Slice((*byte)(unsafe.Pointer(data)), cosim.DataWidth)),
		cosim.NewVector(unsafe.Slice((*byte)(unsafe.Pointer(flags)), cosim.FlagsWidth)),
	)
}
