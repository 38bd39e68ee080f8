// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"testing"

	"github.com/db47h/cosim"
	"github.com/db47h/cosim/native"
)

// Sim is a running cosimulation of a native model.
//
type Sim struct {
	Master   *cosim.Master
	Binding  *cosim.Binding
	Registry *cosim.Registry
	Circuit  *native.Circuit // set once Start returns
}

// StartNative starts a cosimulation of the named native model with the given
// kernel options. The run is stopped and joined when the test ends, unless
// the test already did it.
//
func StartNative(t *testing.T, model string, args ...string) *Sim {
	t.Helper()

	s := &Sim{Registry: cosim.NewRegistry(0)}
	load := func(path string, cb cosim.Callback) (cosim.Kernel, error) {
		c, err := native.Open(path, cb)
		if err != nil {
			return nil, err
		}
		s.Circuit = c
		return c, nil
	}
	if args == nil {
		args = []string{"--trace"}
	}
	s.Binding = cosim.NewBinding(s.Registry, load, cosim.Options{Artifact: model, Args: args})
	if err := s.Binding.Start(); err != nil {
		t.Fatal(err)
	}
	m, err := cosim.NewMaster(s.Registry)
	if err != nil {
		t.Fatal(err)
	}
	s.Master = m
	t.Cleanup(func() {
		s.Binding.Stop()
		_, _ = s.Binding.Wait()
	})
	return s
}

// Stop stops the simulation and returns the last step status.
//
func (s *Sim) Stop(t *testing.T) int {
	t.Helper()
	s.Binding.Stop()
	st, err := s.Binding.Wait()
	if err != nil {
		t.Fatal(err)
	}
	return st
}
