package cosim_test

import (
	"testing"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLogic = []cosim.Logic{
	cosim.Uninitialized,
	cosim.Unknown,
	cosim.Low,
	cosim.High,
	cosim.HiZ,
	cosim.Weak,
	cosim.WeakLow,
	cosim.WeakHigh,
	cosim.DontCare,
}

func TestLogic_code(t *testing.T) {
	codes := make(map[byte]bool)
	for _, l := range allLogic {
		c := l.Code()
		assert.Less(t, c, byte(9), "%v", l)
		assert.False(t, codes[c], "duplicate code %d", c)
		codes[c] = true
		assert.Equal(t, l, cosim.FromCode(c))
	}
	for c := 9; c < 256; c++ {
		assert.Equal(t, cosim.Unknown, cosim.FromCode(byte(c)), "code %d", c)
	}
}

func TestLogic_char(t *testing.T) {
	td := []struct {
		l cosim.Logic
		c byte
	}{
		{cosim.Uninitialized, 'U'},
		{cosim.Unknown, 'X'},
		{cosim.Low, '0'},
		{cosim.High, '1'},
		{cosim.HiZ, 'Z'},
		{cosim.Weak, 'W'},
		{cosim.WeakLow, 'L'},
		{cosim.WeakHigh, 'H'},
		{cosim.DontCare, '-'},
	}
	for _, d := range td {
		assert.Equal(t, d.c, d.l.Char())
		assert.Equal(t, string(d.c), d.l.String())
		l, err := cosim.FromChar(d.c)
		require.NoError(t, err)
		assert.Equal(t, d.l, l)
	}
	l, err := cosim.FromChar('h')
	require.NoError(t, err)
	assert.Equal(t, cosim.WeakHigh, l)
	_, err = cosim.FromChar('2')
	assert.Error(t, err)
}

func TestLogic_bool(t *testing.T) {
	td := []struct {
		l   cosim.Logic
		v   bool
		err bool
	}{
		{cosim.Uninitialized, false, true},
		{cosim.Unknown, false, true},
		{cosim.Low, false, false},
		{cosim.High, true, false},
		{cosim.HiZ, false, true},
		{cosim.Weak, false, true},
		{cosim.WeakLow, false, false},
		{cosim.WeakHigh, true, false},
		{cosim.DontCare, false, true},
	}
	for _, d := range td {
		t.Run(d.l.String(), func(t *testing.T) {
			v, err := d.l.Bool()
			if d.err {
				assert.True(t, errors.Is(err, cosim.ErrUnresolvedState), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.v, v)
		})
	}
	assert.Equal(t, cosim.High, cosim.FromBool(true))
	assert.Equal(t, cosim.Low, cosim.FromBool(false))
}
