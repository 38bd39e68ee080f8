// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cosim

import (
	"github.com/pkg/errors"
)

// Logic is a nine-valued signal state (IEEE 1164 std_logic).
//
// The numeric value of a Logic is the code used by simulation kernels to store
// it in signal buffers.
//
type Logic uint8

// Logic states, in kernel code order.
//
const (
	Uninitialized Logic = iota // 'U'
	Unknown                    // 'X'
	Low                        // '0'
	High                       // '1'
	HiZ                        // 'Z'
	Weak                       // 'W'
	WeakLow                    // 'L'
	WeakHigh                   // 'H'
	DontCare                   // '-'

	logicCount
)

var logicChars = [logicCount]byte{'U', 'X', '0', '1', 'Z', 'W', 'L', 'H', '-'}

// FromCode returns the Logic state for the kernel code c. Codes out of range
// map to Unknown.
//
func FromCode(c byte) Logic {
	if c >= byte(logicCount) {
		return Unknown
	}
	return Logic(c)
}

// FromBool returns High for true and Low for false.
//
func FromBool(b bool) Logic {
	if b {
		return High
	}
	return Low
}

// FromChar returns the Logic state for its character form. Lower case 'u',
// 'x', 'z', 'w', 'l' and 'h' are accepted.
//
func FromChar(c byte) (Logic, error) {
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i, lc := range logicChars {
		if lc == c {
			return Logic(i), nil
		}
	}
	return Unknown, errors.Errorf("invalid logic character %q", c)
}

// Code returns the kernel code for l.
//
func (l Logic) Code() byte {
	if l >= logicCount {
		return byte(Unknown)
	}
	return byte(l)
}

// Bool converts l to a boolean. Only Low and WeakLow (false) and High and
// WeakHigh (true) convert; any other state returns an error wrapping
// ErrUnresolvedState.
//
func (l Logic) Bool() (bool, error) {
	switch l {
	case Low, WeakLow:
		return false, nil
	case High, WeakHigh:
		return true, nil
	}
	return false, errors.Wrapf(ErrUnresolvedState, "cannot convert '%c' to bool", l.Char())
}

// Char returns the single character form of l.
//
func (l Logic) Char() byte {
	return logicChars[FromCode(byte(l))]
}

func (l Logic) String() string {
	return string(l.Char())
}
