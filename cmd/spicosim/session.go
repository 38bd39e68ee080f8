// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/db47h/cosim"
	"github.com/db47h/cosim/ghdl"
	"github.com/db47h/cosim/internal/config"
	"github.com/db47h/cosim/native"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"
)

// session is one cosimulation run.
//
type session struct {
	binding *cosim.Binding
	master  *cosim.Master
	exitID  atexit.HandlerID
	sig     chan os.Signal
	quit    chan struct{}
	watched chan struct{} // closed when the signal watcher returns
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath, ".env")
	if err != nil {
		return cfg, err
	}
	if kernel != "" {
		cfg.Kernel = kernel
	}
	if artifact != "" {
		cfg.Artifact = artifact
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

func startSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	logrus.SetLevel(level)

	var load cosim.Loader
	switch cfg.Kernel {
	case config.KernelGHDL:
		load = ghdl.Load
	case config.KernelNative:
		load = native.Load
	}

	reg := cosim.NewRegistry(cfg.QueueDepth)
	b := cosim.NewBinding(reg, load, cosim.Options{
		Artifact: cfg.Artifact,
		Args:     cfg.Args,
		Drain:    cfg.Drain,
	})
	if err = b.Start(); err != nil {
		return nil, err
	}
	m, err := cosim.NewMaster(reg)
	if err != nil {
		b.Stop()
		_, _ = b.Wait()
		return nil, err
	}

	s := &session{
		binding: b,
		master:  m,
		sig:     make(chan os.Signal, 1),
		quit:    make(chan struct{}),
		watched: make(chan struct{}),
	}
	s.exitID = atexit.Register(func() {
		b.Stop()
		_, _ = b.Wait()
	})
	signal.Notify(s.sig, os.Interrupt, syscall.SIGTERM)
	go s.watch()
	return s, nil
}

func (s *session) watch() {
	defer close(s.watched)
	select {
	case sig := <-s.sig:
		logrus.Warnf("%v: stopping simulation", sig)
		atexit.Exit(1)
	case <-s.quit:
	}
}

// close stops the simulation, waits for it to finish and releases the exit
// hooks.
//
func (s *session) close() error {
	signal.Stop(s.sig)
	close(s.quit)
	<-s.watched
	_ = s.exitID.Cancel()

	s.binding.Stop()
	status, err := s.binding.Wait()
	logrus.WithField("status", status).Debug("session closed")
	return err
}
