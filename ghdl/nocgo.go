// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

//go:build !cgo

package ghdl

import (
	"github.com/db47h/cosim"
	"github.com/pkg/errors"
)

// Library is a GHDL simulation kernel. Loading one requires cgo.
//
type Library struct{}

// Open always fails: loading shared libraries requires cgo.
//
func Open(path string, cb cosim.Callback) (*Library, error) {
	return nil, errors.Wrapf(cosim.ErrArtifactLoad, "load %s: built without cgo", path)
}

func (*Library) Init()               {}
func (*Library) SetOptions([]string) {}
func (*Library) Elaborate()          {}
func (*Library) SimInit()            {}
func (*Library) Step() int           { return cosim.StatusFailed }
func (*Library) Close() error        { return nil }
