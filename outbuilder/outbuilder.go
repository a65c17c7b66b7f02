// Package outbuilder implements the Output Builder (component F): it
// builds the DS3 0x01 control-OUT report or the DS4 0x02 interrupt-OUT
// report carrying LED color, rumble magnitudes, and blink timing.
package outbuilder

import (
	"errors"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

var errUnknownModel = errors.New("outbuilder: unknown pad model")

// BuildDS3 returns the 48-byte DS3 OUTPUT report for the given LED
// state ({primary, g, b, blinkFlag}, only index 0 and 3 meaningful) and
// rumble magnitudes.
func BuildDS3(led [4]byte, lrum, rrum byte) []byte {
	buf := ds3.OutputTemplate
	buf[ds3.OutOffsetRumbleRightDuration] = 0xFE
	buf[ds3.OutOffsetRumbleRightPower] = rrum
	buf[ds3.OutOffsetRumbleLeftDuration] = 0xFE
	buf[ds3.OutOffsetRumbleLeftPower] = lrum
	buf[ds3.OutOffsetLED] = led[0] & ds3.LEDMask

	if led[3] != 0 {
		buf[ds3.OutOffsetBlink0] = ds3.BlinkEnable
		buf[ds3.OutOffsetBlink1] = ds3.BlinkEnable
		buf[ds3.OutOffsetBlink2] = ds3.BlinkEnable
		buf[ds3.OutOffsetBlink3] = ds3.BlinkEnable
	}

	out := make([]byte, ds3.OutputReportSize)
	copy(out, buf[:])
	return out
}

// BuildDS4 returns the 32-byte DS4 OUTPUT report for the given LED
// state ({r, g, b, blinkFlag}) and rumble magnitudes.
func BuildDS4(led [4]byte, lrum, rrum byte) []byte {
	out := make([]byte, ds4.OutputReportSize)
	out[ds4.OutOffsetReportID] = ds4.OutputReportID
	out[ds4.OutOffsetFlags] = ds4.FeatureEnableMask
	out[ds4.OutOffsetRumbleRight] = rrum
	out[ds4.OutOffsetRumbleLeft] = lrum
	out[ds4.OutOffsetLedRed] = led[0]
	out[ds4.OutOffsetLedGreen] = led[1]
	out[ds4.OutOffsetLedBlue] = led[2]

	if led[3] != 0 {
		out[ds4.OutOffsetFlashOn] = ds4.FlashDuration
		out[ds4.OutOffsetFlashOff] = ds4.FlashDuration
	}

	return out
}

// Submit builds the model-appropriate output report and submits it over
// the correct endpoint and transfer kind (DS3: control-OUT on ctrlEP;
// DS4: interrupt-OUT on outEP), waiting for completion.
func Submit(ser *transfer.Serializer, model padtable.Model, ctrlEP, outEP usbhost.Endpoint, led [4]byte, lrum, rrum byte) (completionErr, submitErr error) {
	switch model {
	case padtable.ModelDS3:
		buf := BuildDS3(led, lrum, rrum)
		req := usbhost.ControlRequest{
			BmRequestType: usbhost.RequestDirectionOut | usbhost.RequestTypeClass | usbhost.RequestRecipientInterface,
			BRequest:      usbhost.HIDSetReport,
			WValue:        uint16(usbhost.HIDReportTypeOutput)<<8 | ds3.OutputReportID,
		}
		_, completionErr, submitErr = ser.SubmitAndWait(ctrlEP, usbhost.ControlOut, req, buf)
		return completionErr, submitErr
	case padtable.ModelDS4:
		buf := BuildDS4(led, lrum, rrum)
		_, completionErr, submitErr = ser.SubmitAndWait(outEP, usbhost.InterruptOut, usbhost.ControlRequest{}, buf)
		return completionErr, submitErr
	default:
		return nil, errUnknownModel
	}
}
