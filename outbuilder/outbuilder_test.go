package outbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/outbuilder"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

func TestBuildDS3Layout(t *testing.T) {
	led := [4]byte{0x02, 0, 0, 0x01}
	buf := outbuilder.BuildDS3(led, 0x10, 0x20)

	require.Len(t, buf, ds3.OutputReportSize)
	assert.Equal(t, byte(0xFE), buf[ds3.OutOffsetRumbleRightDuration])
	assert.Equal(t, byte(0x20), buf[ds3.OutOffsetRumbleRightPower])
	assert.Equal(t, byte(0xFE), buf[ds3.OutOffsetRumbleLeftDuration])
	assert.Equal(t, byte(0x10), buf[ds3.OutOffsetRumbleLeftPower])
	assert.Equal(t, byte(0x02), buf[ds3.OutOffsetLED])
	assert.Equal(t, ds3.BlinkEnable, buf[ds3.OutOffsetBlink0])
	assert.Equal(t, ds3.BlinkEnable, buf[ds3.OutOffsetBlink3])
}

func TestBuildDS3LEDMasked(t *testing.T) {
	led := [4]byte{0xFF, 0, 0, 0}
	buf := outbuilder.BuildDS3(led, 0, 0)
	assert.Equal(t, ds3.LEDMask, buf[ds3.OutOffsetLED])
}

func TestBuildDS4Layout(t *testing.T) {
	led := [4]byte{11, 22, 33, 1}
	buf := outbuilder.BuildDS4(led, 0x05, 0x09)

	require.Len(t, buf, ds4.OutputReportSize)
	assert.Equal(t, byte(ds4.OutputReportID), buf[ds4.OutOffsetReportID])
	assert.Equal(t, ds4.FeatureEnableMask, buf[ds4.OutOffsetFlags])
	assert.Equal(t, byte(0x09), buf[ds4.OutOffsetRumbleRight])
	assert.Equal(t, byte(0x05), buf[ds4.OutOffsetRumbleLeft])
	assert.Equal(t, byte(11), buf[ds4.OutOffsetLedRed])
	assert.Equal(t, byte(22), buf[ds4.OutOffsetLedGreen])
	assert.Equal(t, byte(33), buf[ds4.OutOffsetLedBlue])
	assert.Equal(t, ds4.FlashDuration, buf[ds4.OutOffsetFlashOn])
	assert.Equal(t, ds4.FlashDuration, buf[ds4.OutOffsetFlashOff])
}

func TestBuildDS4NoBlinkWhenFlagClear(t *testing.T) {
	buf := outbuilder.BuildDS4([4]byte{1, 2, 3, 0}, 0, 0)
	assert.Equal(t, byte(0), buf[ds4.OutOffsetFlashOn])
	assert.Equal(t, byte(0), buf[ds4.OutOffsetFlashOff])
}

type recordingController struct {
	lastEP  usbhost.Endpoint
	lastBuf []byte
}

func (c *recordingController) OpenControl(usbhost.DeviceID) (usbhost.Endpoint, error) { return 0, nil }
func (c *recordingController) OpenEndpoint(usbhost.DeviceID, usbhost.EndpointDescriptor) (usbhost.Endpoint, error) {
	return 0, nil
}
func (c *recordingController) CloseEndpoint(usbhost.Endpoint) error { return nil }
func (c *recordingController) ReadDeviceDescriptor(usbhost.DeviceID) (usbhost.DeviceDescriptor, error) {
	return usbhost.DeviceDescriptor{}, nil
}
func (c *recordingController) ReadConfigDescriptor(usbhost.DeviceID) (usbhost.ConfigDescriptor, []usbhost.InterfaceDescriptor, []usbhost.EndpointDescriptor, error) {
	return usbhost.ConfigDescriptor{}, nil, nil, nil
}
func (c *recordingController) Submit(ep usbhost.Endpoint, kind usbhost.TransferKind, req usbhost.ControlRequest, buf []byte, cb usbhost.TransferCallback) error {
	c.lastEP = ep
	c.lastBuf = append([]byte(nil), buf...)
	go cb(nil, len(buf))
	return nil
}
func (c *recordingController) SetConfiguration(usbhost.DeviceID, uint8, func(error)) error { return nil }

func TestSubmitDS3UsesControlEndpoint(t *testing.T) {
	ctrl := &recordingController{}
	ser := transfer.New(ctrl)

	completionErr, submitErr := outbuilder.Submit(ser, padtable.ModelDS3, 5, 6, [4]byte{}, 0, 0)
	require.NoError(t, submitErr)
	require.NoError(t, completionErr)
	assert.Equal(t, usbhost.Endpoint(5), ctrl.lastEP)
	assert.Len(t, ctrl.lastBuf, ds3.OutputReportSize)
}

func TestSubmitDS4UsesInterruptOutEndpoint(t *testing.T) {
	ctrl := &recordingController{}
	ser := transfer.New(ctrl)

	completionErr, submitErr := outbuilder.Submit(ser, padtable.ModelDS4, 5, 6, [4]byte{}, 0, 0)
	require.NoError(t, submitErr)
	require.NoError(t, completionErr)
	assert.Equal(t, usbhost.Endpoint(6), ctrl.lastEP)
	assert.Len(t, ctrl.lastBuf, ds4.OutputReportSize)
}

func TestSubmitUnknownModel(t *testing.T) {
	ctrl := &recordingController{}
	ser := transfer.New(ctrl)

	_, submitErr := outbuilder.Submit(ser, padtable.ModelUnknown, 5, 6, [4]byte{}, 0, 0)
	assert.Error(t, submitErr)
}
