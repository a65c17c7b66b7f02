package modinit_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/internal/simhost"
	"github.com/ds3ds4/ds34drv/modinit"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

const devID usbhost.DeviceID = 1

func setupSlot(t *testing.T, model padtable.Model) (*padtable.Slot, *simhost.Controller, *transfer.Serializer) {
	t.Helper()
	ctrl := simhost.New()
	ctrl.AddDevice(devID, simhost.Device{})

	ctrlEP, err := ctrl.OpenControl(devID)
	require.NoError(t, err)
	outEP, err := ctrl.OpenEndpoint(devID, usbhost.EndpointDescriptor{})
	require.NoError(t, err)

	slot := &padtable.Slot{
		DevID:        devID,
		Type:         model,
		Status:       padtable.StatusConnected,
		Control:      ctrlEP,
		InterruptOut: outEP,
	}
	return slot, ctrl, transfer.New(ctrl)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunDS3TransitionsToRunningAndSendsEnableThenLED(t *testing.T) {
	slot, ctrl, ser := setupSlot(t, padtable.ModelDS3)

	require.NoError(t, modinit.Run(discardLogger(), ser, slot, 0))

	assert.True(t, slot.Status&padtable.StatusConfigured != 0)
	assert.True(t, slot.Status&padtable.StatusRunning != 0)
	assert.Equal(t, ds3.PlayerLED[0], slot.OldLED[0])
	assert.Equal(t, byte(0), slot.LRum)
	assert.Equal(t, byte(0), slot.RRum)

	// Last thing written to the control endpoint is the LED output
	// report, not the enable-reports feature payload.
	lastCtrl := ctrl.LastOutput[slot.Control]
	require.Len(t, lastCtrl, ds3.OutputReportSize)
	assert.Equal(t, ds3.PlayerLED[0], lastCtrl[ds3.OutOffsetLED])
}

func TestRunDS4TransitionsToRunningAndSendsLED(t *testing.T) {
	slot, ctrl, ser := setupSlot(t, padtable.ModelDS4)

	require.NoError(t, modinit.Run(discardLogger(), ser, slot, 1))

	assert.True(t, slot.Status&padtable.StatusRunning != 0)
	assert.Equal(t, ds4.PlayerLEDBright[1], [3]byte{slot.OldLED[0], slot.OldLED[1], slot.OldLED[2]})

	lastOut := ctrl.LastOutput[slot.InterruptOut]
	require.Len(t, lastOut, ds4.OutputReportSize)
	assert.Equal(t, ds4.PlayerLEDBright[1][0], lastOut[ds4.OutOffsetLedRed])
}

func TestRunUnknownModelReturnsError(t *testing.T) {
	slot, _, ser := setupSlot(t, padtable.ModelUnknown)
	err := modinit.Run(discardLogger(), ser, slot, 0)
	assert.Error(t, err)
}
