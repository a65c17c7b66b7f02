// Package modinit implements the Per-Model Init (component D): the
// post-configuration bring-up each pad model requires before its first
// RUNNING-state poll — DS3's magic "enable reports" feature write, the
// initial LED command, and the two settling sleeps.
package modinit

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/outbuilder"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

// EnableDelay is the settle time after DS3's magic feature write.
const EnableDelay = 10 * time.Millisecond

// InitDelay is the settle time after the first output report.
const InitDelay = 20 * time.Millisecond

// Run executes the configuration-complete callback: it is invoked once
// per connect, after SetConfiguration succeeds, and transitions the
// slot CONFIGURED -> RUNNING.
func Run(logger *slog.Logger, ser *transfer.Serializer, slot *padtable.Slot, slotIndex int) error {
	slot.PadLock.Lock()
	slot.Status |= padtable.StatusConfigured
	model := slot.Type
	ctrlEP := slot.Control
	outEP := slot.InterruptOut
	slot.PadLock.Unlock()

	var led [4]byte

	switch model {
	case padtable.ModelDS3:
		req := usbhost.ControlRequest{
			BmRequestType: usbhost.RequestDirectionOut | usbhost.RequestTypeClass | usbhost.RequestRecipientInterface,
			BRequest:      usbhost.HIDSetReport,
			WValue:        uint16(usbhost.HIDReportTypeFeature)<<8 | ds3.FeatureReportIDEnable,
		}
		payload := ds3.EnableReportsPayload
		if _, completionErr, submitErr := ser.SubmitAndWait(ctrlEP, usbhost.ControlOut, req, payload[:]); submitErr != nil {
			return fmt.Errorf("modinit: ds3 enable-reports submit: %w", submitErr)
		} else if completionErr != nil {
			logger.Warn("ds3 enable-reports transfer failed", "slot", slotIndex, "error", completionErr)
		}
		time.Sleep(EnableDelay)

		led[0] = ds3.PlayerLED[slotIndex%len(ds3.PlayerLED)]
		led[3] = 0

	case padtable.ModelDS4:
		pal := ds4.PlayerLEDBright[slotIndex%len(ds4.PlayerLEDBright)]
		led[0], led[1], led[2] = pal[0], pal[1], pal[2]
		led[3] = 0

	default:
		return fmt.Errorf("modinit: unknown model for slot %d", slotIndex)
	}

	slot.CmdLock.Lock()
	slot.OldLED = led
	slot.LRum, slot.RRum = 0, 0
	slot.CmdLock.Unlock()

	if completionErr, submitErr := outbuilder.Submit(ser, model, ctrlEP, outEP, led, 0, 0); submitErr != nil {
		logger.Warn("initial LED command submit failed", "slot", slotIndex, "error", submitErr)
	} else if completionErr != nil {
		logger.Warn("initial LED command failed", "slot", slotIndex, "error", completionErr)
	}

	time.Sleep(InitDelay)

	slot.PadLock.Lock()
	slot.Status |= padtable.StatusRunning
	slot.PadLock.Unlock()

	return nil
}
