// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/db47h/cosim/axibridge"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func parseBytes(args []string) ([]byte, error) {
	buf := make([]byte, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(strings.TrimPrefix(a, "0x"), 16, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid byte %q", a)
		}
		buf = append(buf, byte(v))
	}
	return buf, nil
}

func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid word %q", s)
	}
	return uint32(v), nil
}

var xferCmd = &cobra.Command{
	Use:   "xfer BYTE...",
	Short: "Transfer hex bytes to the simulated peripheral and print the replies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := parseBytes(args)
		if err != nil {
			return err
		}
		s, err := startSession()
		if err != nil {
			return err
		}
		res, err := s.master.Transfer(buf)
		if cerr := s.close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		for i, b := range res {
			if i > 0 {
				fmt.Fprint(cmd.OutOrStdout(), " ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%02x", b)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read ADDR",
	Short: "Read a word through the SPI to AXI bridge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseWord(args[0])
		if err != nil {
			return err
		}
		s, err := startSession()
		if err != nil {
			return err
		}
		w, err := axibridge.New(s.master).ReadWord(addr)
		if cerr := s.close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "0x%08x\n", w)
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write ADDR WORD",
	Short: "Write a word through the SPI to AXI bridge",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseWord(args[0])
		if err != nil {
			return err
		}
		word, err := parseWord(args[1])
		if err != nil {
			return err
		}
		s, err := startSession()
		if err != nil {
			return err
		}
		err = axibridge.New(s.master).WriteWord(addr, word)
		if cerr := s.close(); err == nil {
			err = cerr
		}
		return err
	},
}
