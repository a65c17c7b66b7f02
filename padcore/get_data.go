package padcore

import (
	"github.com/ds3ds4/ds34drv/report"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

// GetData issues one interrupt-IN transfer of up to
// transfer.MaxBufferSize bytes; on success it parses the result into
// the slot's unified vector, then copies size bytes of it into dst. On
// failure or timeout no parse occurs and the last-known vector is
// copied instead. Out-of-range ports are a no-op.
//
// This is the steady-state per-frame poll and the upper bound on its
// latency is the 200ms transfer timeout.
func (c *Core) GetData(dst []byte, size int, port int) {
	slot := c.Table.Slot(port)
	if slot == nil {
		return
	}
	slot.PadLock.Lock()
	defer slot.PadLock.Unlock()

	var scratch [transfer.MaxBufferSize]byte
	n, completionErr, submitErr := c.Ser.SubmitAndWait(slot.InterruptIn, usbhost.InterruptIn, usbhost.ControlRequest{}, scratch[:])
	slot.LastResult = completionErr

	if submitErr == nil && completionErr == nil {
		if u, psHeld, power, usbPlugged, derr := report.DecodeFull(slot.Type, scratch[:n]); derr == nil {
			slot.Data = u
			slot.OldLED = report.DeriveLED(slot.Type, port, psHeld, power, usbPlugged)
		}
	}

	n = size
	if n > len(slot.Data) {
		n = len(slot.Data)
	}
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst[:n], slot.Data[:n])
}
