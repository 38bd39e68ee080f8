package cosim_test

import (
	"testing"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invert is a peripheral stub replying with the complement of the first n
// bytes it receives, then hanging up.
func invert(reg *cosim.Registry, n int) {
	for i := 0; i < n; i++ {
		b, err := reg.MOSI().Recv()
		if err != nil {
			break
		}
		if reg.MISO().Send(^b) != nil {
			break
		}
	}
	reg.MISO().Close()
}

func TestMaster_transfer(t *testing.T) {
	reg := cosim.NewRegistry(1)
	m, err := cosim.NewMaster(reg)
	require.NoError(t, err)
	go invert(reg, 4)

	buf := []byte{0x00, 0x0f, 0xf0, 0xff}
	res, err := m.Transfer(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xf0, 0x0f, 0x00}, res)
	assert.Equal(t, res, buf)
}

func TestMaster_partial(t *testing.T) {
	reg := cosim.NewRegistry(1)
	m, err := cosim.NewMaster(reg)
	require.NoError(t, err)
	go invert(reg, 3)

	buf := []byte{1, 2, 3, 4, 5}
	res, err := m.Transfer(buf)
	assert.True(t, errors.Is(err, cosim.ErrChannelClosed), "got %v", err)
	assert.Equal(t, []byte{0xfe, 0xfd, 0xfc, 4, 5}, res)
}

func TestMaster_closed(t *testing.T) {
	reg := cosim.NewRegistry(1)
	m, err := cosim.NewMaster(reg)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	buf := []byte{1, 2}
	_, err = m.Transfer(buf)
	assert.True(t, errors.Is(err, cosim.ErrChannelClosed), "got %v", err)
	assert.Equal(t, []byte{1, 2}, buf)
	assert.True(t, errors.Is(m.Write(buf), cosim.ErrChannelClosed))
}

func TestMaster_write(t *testing.T) {
	reg := cosim.NewRegistry(1)
	m, err := cosim.NewMaster(reg)
	require.NoError(t, err)
	go invert(reg, 2)

	buf := []byte{1, 2}
	require.NoError(t, m.Write(buf))
	assert.Equal(t, []byte{1, 2}, buf)

	err = m.Write([]byte{3})
	assert.True(t, errors.Is(err, cosim.ErrChannelClosed), "got %v", err)
}

var _ cosim.Transferer = (*cosim.Master)(nil)
