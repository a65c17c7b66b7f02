package rpc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds3ds4/ds34drv/rpc"
)

func TestDispatchUnregisteredOpcodeErrors(t *testing.T) {
	d := rpc.NewDispatcher()
	_, err := d.Dispatch(rpc.OpInit, nil)
	assert.Error(t, err)
}

func TestRegisterAndDispatch(t *testing.T) {
	d := rpc.NewDispatcher()
	d.Register(rpc.OpGetStatus, func(payload []byte) ([]byte, error) {
		return []byte{0x42}, nil
	})
	out, err := d.Dispatch(rpc.OpGetStatus, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, out)
}

func TestRegisterReplacesExistingHandler(t *testing.T) {
	d := rpc.NewDispatcher()
	d.Register(rpc.OpReset, func([]byte) ([]byte, error) { return []byte{1}, nil })
	d.Register(rpc.OpReset, func([]byte) ([]byte, error) { return []byte{2}, nil })

	out, err := d.Dispatch(rpc.OpReset, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, out)
}
