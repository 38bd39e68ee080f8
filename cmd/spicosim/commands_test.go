package main

import (
	"bytes"
	"testing"

	"github.com/db47h/cosim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	b, err := parseBytes([]string{"11", "0x02", "ff"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x02, 0xff}, b)

	_, err = parseBytes([]string{"100"})
	assert.Error(t, err)
	_, err = parseBytes([]string{"zz"})
	assert.Error(t, err)
}

func TestParseWord(t *testing.T) {
	w, err := parseWord("0x101")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x101), w)
	w, err = parseWord("50")
	require.NoError(t, err)
	assert.Equal(t, uint32(50), w)
	_, err = parseWord("0x100000000")
	assert.Error(t, err)
}

func TestXfer_native(t *testing.T) {
	t.Setenv("COSIM_DRAIN", "1ms")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"xfer", "--kernel", "native", "--artifact", "loopback", "--log", "warn", "11", "02", "03"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "00 11 02\n", out.String())
}

func TestXfer_badConfig(t *testing.T) {
	rootCmd.SetArgs([]string{"xfer", "--kernel", "verilator", "11"})
	assert.Error(t, rootCmd.Execute())
}

func TestRead_native(t *testing.T) {
	t.Setenv("COSIM_DRAIN", "1ms")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"read", "--kernel", "native", "--artifact", "loopback", "--log", "warn", "0x101"})
	require.NoError(t, rootCmd.Execute())
	// the loopback echoes the zero turnaround and command bytes back.
	assert.Equal(t, "0x00000000\n", out.String())
}

func TestSession_close(t *testing.T) {
	t.Setenv("COSIM_DRAIN", "1ms")
	kernel, artifact, logLevel = config.KernelNative, "loopback", "warn"
	t.Cleanup(func() { kernel, artifact, logLevel = "", "", "" })

	s, err := startSession()
	require.NoError(t, err)
	res, err := s.master.Transfer([]byte{0x42, 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0x42}, res)
	require.NoError(t, s.close())

	select {
	case <-s.watched:
	default:
		t.Fatal("signal watcher still running")
	}
	assert.Error(t, s.exitID.Cancel(), "exit hook still registered")
}
