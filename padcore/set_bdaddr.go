package padcore

import (
	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/usbhost"
)

// SetBdaddr writes the Bluetooth pairing address in. DS3 takes an
// 8-byte feature report with the address reversed; DS4 takes a 24-byte
// feature report carrying the address followed by the fixed link key.
func (c *Core) SetBdaddr(in [6]byte, port int) {
	slot := c.Table.Slot(port)
	if slot == nil {
		return
	}
	slot.CmdLock.Lock()
	defer slot.CmdLock.Unlock()

	var reportID uint8
	var buf []byte
	switch slot.Type {
	case padtable.ModelDS3:
		reportID = ds3.FeatureReportIDBdaddr
		buf = []byte{0x01, 0x00, in[5], in[4], in[3], in[2], in[1], in[0]}
	case padtable.ModelDS4:
		reportID = ds4.FeatureReportIDLinkKey
		buf = make([]byte, ds4.LinkKeyReportLen)
		buf[0] = reportID
		copy(buf[1:7], in[:])
		copy(buf[7:], ds4.LinkKey[:])
	default:
		return
	}

	req := usbhost.ControlRequest{
		BmRequestType: usbhost.RequestDirectionOut | usbhost.RequestTypeClass | usbhost.RequestRecipientInterface,
		BRequest:      usbhost.HIDSetReport,
		WValue:        uint16(usbhost.HIDReportTypeFeature)<<8 | uint16(reportID),
	}
	_, _, _ = c.Ser.SubmitAndWait(slot.Control, usbhost.ControlOut, req, buf)
}
