// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command spicosim drives a simulated SPI peripheral from the command line.
//
// A GHDL kernel is a shared library built with VHPIDIRECT calls to
// sim_spi_init and sim_spi_rxtx. The native kernel runs one of the built-in
// Go models instead.
//
//	spicosim xfer --kernel native 11 02 03 04
//	spicosim read --artifact build/test.so 0x100
//	spicosim write --artifact build/test.so 0x101 50
//
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	configPath string
	kernel     string
	artifact   string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "spicosim",
	Short:         "SPI cosimulation bridge",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML run configuration")
	pf.StringVar(&kernel, "kernel", "", "simulation kernel (ghdl or native)")
	pf.StringVar(&artifact, "artifact", "", "simulation artifact (shared library path or native model name)")
	pf.StringVar(&logLevel, "log", "", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(xferCmd, readCmd, writeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
