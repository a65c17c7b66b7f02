package padcore

import (
	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/usbhost"
)

// GetBdaddr implements the update_rum-latched bdaddr read. The first
// call after a device is bound finds the latch armed, disarms it, and
// returns 0 without touching the bus. Every call after that issues a
// control-IN GET_REPORT (FEATURE, report 0xF5 DS3 / 0x09 DS4) and, on
// success, writes the reversed bytes [2..8) of the response into out,
// re-arms the latch, and returns 1. Any failure returns 0 and leaves
// the latch disarmed so the next call retries the transfer.
func (c *Core) GetBdaddr(out []byte, port int) byte {
	slot := c.Table.Slot(port)
	if slot == nil {
		return 0
	}
	slot.CmdLock.Lock()
	defer slot.CmdLock.Unlock()

	if slot.UpdateRum {
		slot.UpdateRum = false
		return 0
	}

	var reportID uint8
	var length int
	switch slot.Type {
	case padtable.ModelDS3:
		reportID, length = ds3.FeatureReportIDBdaddr, ds3.BdaddrFeatureLen
	case padtable.ModelDS4:
		reportID, length = ds4.FeatureReportIDBdaddr, ds4.BdaddrFeatureLen
	default:
		return 0
	}

	req := usbhost.ControlRequest{
		BmRequestType: usbhost.RequestDirectionIn | usbhost.RequestTypeClass | usbhost.RequestRecipientInterface,
		BRequest:      usbhost.HIDGetReport,
		WValue:        uint16(usbhost.HIDReportTypeFeature)<<8 | uint16(reportID),
	}
	buf := make([]byte, length)
	n, completionErr, submitErr := c.Ser.SubmitAndWait(slot.Control, usbhost.ControlIn, req, buf)
	if submitErr != nil || completionErr != nil || n < 8 || len(out) < 6 {
		return 0
	}

	for i := 0; i < 6; i++ {
		out[i] = buf[7-i]
	}
	slot.UpdateRum = true
	return 1
}
