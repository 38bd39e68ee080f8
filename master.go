// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import "github.com/pkg/errors"

// Transferer is a blocking full-duplex SPI master. Transfer shifts out every
// byte of buf and replaces it with the byte shifted in at the same time. It
// returns buf.
//
// Master implements Transferer for simulated peripherals; hardware SPI
// masters with the same contract can be used by the same driver code.
//
type Transferer interface {
	Transfer(buf []byte) ([]byte, error)
}

// Master is the host side of a simulated SPI bus.
//
type Master struct {
	mosi *Pipe
	miso *Pipe
}

// NewMaster returns a Master exchanging bytes through reg.
//
func NewMaster(reg *Registry) (*Master, error) {
	if reg == nil {
		return nil, ErrNotRegistered
	}
	return &Master{mosi: reg.mosi, miso: reg.miso}, nil
}

// Transfer sends each byte of buf to the peripheral and waits for the reply,
// which overwrites it. On error, bytes already exchanged keep their reply and
// the rest of buf is left untouched.
//
// Transfer blocks until the simulated design samples the bus for every byte.
// There is no timeout.
//
func (m *Master) Transfer(buf []byte) ([]byte, error) {
	for i := range buf {
		if err := m.mosi.Send(buf[i]); err != nil {
			return buf, errors.Wrapf(err, "send byte %d", i)
		}
		b, err := m.miso.Recv()
		if err != nil {
			return buf, errors.Wrapf(err, "receive byte %d", i)
		}
		buf[i] = b
	}
	return buf, nil
}

// Write sends buf to the peripheral and discards the replies.
//
func (m *Master) Write(buf []byte) error {
	for i := range buf {
		if err := m.mosi.Send(buf[i]); err != nil {
			return errors.Wrapf(err, "send byte %d", i)
		}
		if _, err := m.miso.Recv(); err != nil {
			return errors.Wrapf(err, "receive byte %d", i)
		}
	}
	return nil
}

// Close closes the master to peripheral pipe. The peripheral sees the master
// as gone on its next sample.
//
func (m *Master) Close() error {
	m.mosi.Close()
	return nil
}
