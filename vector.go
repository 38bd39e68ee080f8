// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import (
	"strings"

	"github.com/pkg/errors"
)

// A Vector is a bus of Logic signals backed by a buffer of kernel codes, one
// byte per signal. Index 0 is the least significant bit.
//
// A Vector does not own its buffer. When the buffer belongs to a simulation
// kernel, the Vector must not be used after the callback that received it
// returns.
//
type Vector struct {
	cells []byte
}

// NewVector returns a Vector over cells. The vector width is len(cells).
//
func NewVector(cells []byte) Vector {
	return Vector{cells}
}

// ParseVector returns a new Vector initialized from its character form, index
// 0 first. For example, ParseVector("10UZ") has bit 0 High and bit 3 HiZ.
//
func ParseVector(s string) (Vector, error) {
	cells := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		l, err := FromChar(s[i])
		if err != nil {
			return Vector{}, errors.Wrapf(err, "parse vector %q", s)
		}
		cells[i] = l.Code()
	}
	return Vector{cells}, nil
}

// Width returns the number of signals in the bus.
//
func (v Vector) Width() int { return len(v.cells) }

func (v Vector) check(i int) error {
	if i < 0 || i >= len(v.cells) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, width %d", i, len(v.cells))
	}
	return nil
}

// Get returns the state of signal i.
//
func (v Vector) Get(i int) (Logic, error) {
	if err := v.check(i); err != nil {
		return Unknown, err
	}
	return FromCode(v.cells[i]), nil
}

// Set sets the state of signal i.
//
func (v Vector) Set(i int, l Logic) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.cells[i] = l.Code()
	return nil
}

// Unsigned returns the bus value as an unsigned integer, bit i having weight
// 2^i. Signals past bit 31 do not contribute to the value. It fails with
// ErrUnresolvedState if any signal of the bus does not convert to a boolean.
//
func (v Vector) Unsigned() (uint32, error) {
	var out uint32
	for bit := range v.cells {
		b, err := FromCode(v.cells[bit]).Bool()
		if err != nil {
			return 0, errors.Wrapf(err, "bit %d of %v", bit, v)
		}
		if b && bit < 32 {
			out |= 1 << uint(bit)
		}
	}
	return out, nil
}

// SetUnsigned drives every signal of the bus to High or Low according to the
// bits of n. Bits of n past the bus width are dropped. Signals past bit 31 are
// driven Low.
//
func (v Vector) SetUnsigned(n uint32) {
	for bit := range v.cells {
		v.cells[bit] = FromBool(bit < 32 && n&(1<<uint(bit)) != 0).Code()
	}
}

// String returns the bus as a bit string literal, index 0 first.
//
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(len(v.cells) + 2)
	b.WriteByte('"')
	for _, c := range v.cells {
		b.WriteByte(FromCode(c).Char())
	}
	b.WriteByte('"')
	return b.String()
}
