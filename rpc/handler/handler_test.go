package handler_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/internal/simhost"
	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/rpc"
	"github.com/ds3ds4/ds34drv/rpc/handler"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

const devID usbhost.DeviceID = 1

func newDispatcher(t *testing.T) (*rpc.Dispatcher, *padtable.Table, *simhost.Controller) {
	t.Helper()
	ctrl := simhost.New()
	ctrl.AddDevice(devID, simhost.Device{
		Desc:          usbhost.DeviceDescriptor{IDVendor: usbhost.SonyVID, IDProduct: ds3.ProductID},
		BdaddrFeature: []byte{0xF5, 0x00, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
	})

	table := padtable.New()
	table.SetEnableMask(0xFF)
	slot := table.Slot(0)
	slot.DevID = devID
	slot.Type = padtable.ModelDS3
	slot.Status = padtable.StatusRunning
	ctrlEP, err := ctrl.OpenControl(devID)
	require.NoError(t, err)
	inEP, err := ctrl.OpenEndpoint(devID, usbhost.EndpointDescriptor{})
	require.NoError(t, err)
	outEP, err := ctrl.OpenEndpoint(devID, usbhost.EndpointDescriptor{})
	require.NoError(t, err)
	slot.Control, slot.InterruptIn, slot.InterruptOut = ctrlEP, inEP, outEP

	core := padcore.New(table, ctrl, transfer.New(ctrl), slog.New(slog.NewTextHandler(io.Discard, nil)))
	d := rpc.NewDispatcher()
	handler.RegisterAll(d, core)
	return d, table, ctrl
}

func TestInitHandlerEchoesPayloadAndSetsEnableMask(t *testing.T) {
	d, table, _ := newDispatcher(t)
	out, err := d.Dispatch(rpc.OpInit, []byte{0x03})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03}, out)
	assert.True(t, table.Slot(0).Enabled)
	assert.True(t, table.Slot(1).Enabled)
}

func TestGetStatusHandler(t *testing.T) {
	d, _, _ := newDispatcher(t)
	out, err := d.Dispatch(rpc.OpGetStatus, []byte{0})
	require.NoError(t, err)
	assert.Equal(t, byte(padtable.StatusRunning), out[0])
}

func TestGetStatusHandlerShortPayload(t *testing.T) {
	d, _, _ := newDispatcher(t)
	_, err := d.Dispatch(rpc.OpGetStatus, nil)
	assert.Error(t, err)
}

func TestGetDataHandlerWritesInPlace(t *testing.T) {
	d, _, ctrl := newDispatcher(t)

	raw := make([]byte, ds3.RawInputOffset+20)
	raw[0] = 0x01
	raw[ds3.RawInputOffset+0] = 0xFE
	ctrl.QueueInput(devID, raw)

	payload := append([]byte{0}, make([]byte, 18)...)
	out, err := d.Dispatch(rpc.OpGetData, payload)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), out[1])
}

func TestGetBdaddrHandlerFirstCallIsLatchedThenTransfers(t *testing.T) {
	d, table, _ := newDispatcher(t)
	table.Slot(0).UpdateRum = true

	first, err := d.Dispatch(rpc.OpGetBdaddr, []byte{0})
	require.NoError(t, err)
	assert.Equal(t, byte(0), first[0])

	second, err := d.Dispatch(rpc.OpGetBdaddr, []byte{0})
	require.NoError(t, err)
	assert.Equal(t, byte(1), second[0])
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, second[1:7])
}

func TestSetBdaddrHandlerEchoesPayload(t *testing.T) {
	d, _, _ := newDispatcher(t)
	payload := append([]byte{0}, []byte{1, 2, 3, 4, 5, 6}...)
	out, err := d.Dispatch(rpc.OpSetBdaddr, payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestSetRumbleHandlerUpdatesSlot(t *testing.T) {
	d, table, _ := newDispatcher(t)
	table.Slot(0).UpdateRum = true
	_, err := d.Dispatch(rpc.OpSetRumble, []byte{0, 0x10, 0x20})
	require.NoError(t, err)
	assert.Equal(t, byte(0x10), table.Slot(0).LRum)
	assert.Equal(t, byte(0x20), table.Slot(0).RRum)
}

func TestSetLedHandlerGatedByLatch(t *testing.T) {
	d, table, _ := newDispatcher(t)
	table.Slot(0).UpdateRum = true
	_, err := d.Dispatch(rpc.OpSetLed, []byte{0, 0x02, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x02, 0, 0, 0}, table.Slot(0).OldLED)
}

func TestResetHandlerClearsAllSlots(t *testing.T) {
	d, table, _ := newDispatcher(t)
	_, err := d.Dispatch(rpc.OpReset, nil)
	require.NoError(t, err)
	assert.Equal(t, usbhost.NoDevice, table.Slot(0).DevID)
}

func TestDispatchUnknownOpcode(t *testing.T) {
	d, _, _ := newDispatcher(t)
	_, err := d.Dispatch(rpc.Opcode(99), nil)
	assert.Error(t, err)
}
