// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing simulated SPI
// peripherals.
//
package hwtest

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/cosim"
)

// Loopback is a software reference model of the native "loopback" design:
// every reply is the byte sent in the previous exchange.
//
type Loopback struct {
	Last byte // byte shifted out on the next exchange
}

// Transfer implements cosim.Transferer.
//
func (l *Loopback) Transfer(buf []byte) ([]byte, error) {
	for i := range buf {
		buf[i], l.Last = l.Last, buf[i]
	}
	return buf, nil
}

// RandFrames returns n frames of size random bytes.
//
func RandFrames(n, size int) [][]byte {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	fs := make([][]byte, n)
	for i := range fs {
		fs[i] = make([]byte, size)
		r.Read(fs[i])
	}
	return fs
}

func hexString(b []byte) string {
	var sb strings.Builder
	for i, x := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", x)
	}
	return sb.String()
}

// CompareTransfer sends the same frames through two transferers and checks
// that they reply the same. Frames are not modified.
//
func CompareTransfer(t *testing.T, frames [][]byte, x1, x2 cosim.Transferer) {
	t.Helper()

	start := time.Now()
	n := 0
	for i, f := range frames {
		b1 := append([]byte(nil), f...)
		b2 := append([]byte(nil), f...)
		r1, err := x1.Transfer(b1)
		if err != nil {
			t.Fatalf("frame %d: transfer 1: %v", i, err)
		}
		r2, err := x2.Transfer(b2)
		if err != nil {
			t.Fatalf("frame %d: transfer 2: %v", i, err)
		}
		if len(r1) != len(f) || len(r2) != len(f) {
			t.Fatalf("frame %d: reply length mismatch: sent %d, got %d and %d", i, len(f), len(r1), len(r2))
		}
		if !bytes.Equal(r1, r2) {
			t.Fatalf("frame %d: sent %s\nExpected %s\nGot      %s", i, hexString(f), hexString(r2), hexString(r1))
		}
		n += len(f)
	}

	elapsed := time.Since(start)
	t.Logf("%d bytes in %v => %.2f bytes/s", n, elapsed, float64(n)/elapsed.Seconds())
}
