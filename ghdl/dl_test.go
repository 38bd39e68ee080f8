//go:build cgo

package ghdl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// systemLib returns the path of a shared object that is not a GHDL artifact.
func systemLib(t *testing.T) string {
	t.Helper()
	for _, pattern := range []string{
		"/lib/*-linux-gnu/libc.so.6",
		"/usr/lib/*-linux-gnu/libc.so.6",
		"/lib64/libc.so.6",
		"/usr/lib64/libc.so.6",
		"/usr/lib/libc.so.6",
		"/lib/libc.musl-*.so.1",
	} {
		if ms, _ := filepath.Glob(pattern); len(ms) > 0 {
			return ms[0]
		}
	}
	t.Skip("no system C library found")
	return ""
}

func TestOpen_missingSymbols(t *testing.T) {
	lib := systemLib(t)
	l, err := Open(lib, &fakeCallback{})
	assert.True(t, errors.Is(err, cosim.ErrArtifactLoad), "got %v", err)
	assert.Contains(t, err.Error(), "grt_init")
	assert.Nil(t, l)
	assert.Nil(t, active.Load())

	// the slot is free again.
	_, err = bind(&fakeCallback{})
	require.NoError(t, err)
	unbind()
}

func TestOpen_notSharedObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "junk.so")
	require.NoError(t, os.WriteFile(p, []byte("not an ELF file"), 0o600))
	l, err := Open(p, &fakeCallback{})
	assert.True(t, errors.Is(err, cosim.ErrArtifactLoad), "got %v", err)
	assert.Nil(t, l)
	assert.Nil(t, active.Load())
}
