package native_test

import (
	"testing"

	"github.com/db47h/cosim"
	"github.com/db47h/cosim/native"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels(t *testing.T) {
	assert.Equal(t, []string{"loopback", "loopback-u"}, native.Models())
}

func TestOpen(t *testing.T) {
	p := cosim.NewPeripheral(cosim.NewRegistry(0), nil)

	c, err := native.Open("", p)
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = native.Open("uart", p)
	assert.True(t, errors.Is(err, cosim.ErrArtifactLoad), "got %v", err)
	_, err = native.Open("loopback", nil)
	assert.True(t, errors.Is(err, cosim.ErrArtifactLoad), "got %v", err)

	k, err := native.Load("uart", p)
	assert.Error(t, err)
	assert.Nil(t, k)

	k, err = native.Load("loopback-u", p)
	require.NoError(t, err)
	assert.IsType(t, &native.Circuit{}, k)
}

func TestLoopback_exchange(t *testing.T) {
	reg := cosim.NewRegistry(0)
	c, err := native.Open("loopback", cosim.NewPeripheral(reg, nil))
	require.NoError(t, err)
	c.Init()
	c.SetOptions(nil)
	c.Elaborate()
	c.SimInit()

	require.NoError(t, reg.MOSI().Send(0xa5))
	require.NoError(t, reg.MOSI().Send(0x3c))
	var got []byte
	for len(got) < 2 {
		require.Less(t, c.Step(), cosim.StatusFinished)
		if b, ok, err := reg.MISO().TryRecv(); ok {
			require.NoError(t, err)
			got = append(got, b)
		}
	}
	assert.Equal(t, []byte{0x00, 0xa5}, got)
	assert.Equal(t, uint(2), c.Exchanged())

	reg.MOSI().Close()
	for c.Step() < cosim.StatusFinished {
	}
	assert.Equal(t, cosim.StatusFailed, c.Step())
	assert.Equal(t, uint(1), c.Faults())
}
