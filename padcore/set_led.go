package padcore

import "github.com/ds3ds4/ds34drv/outbuilder"

// SetLed invokes the output builder with the new LED and the slot's
// current rumble values, waiting for completion. Gated by update_rum:
// while the latch is disarmed (a get_bdaddr exchange is expected
// first), the call is a no-op.
func (c *Core) SetLed(led [4]byte, port int) {
	slot := c.Table.Slot(port)
	if slot == nil {
		return
	}
	slot.CmdLock.Lock()
	defer slot.CmdLock.Unlock()

	if !slot.UpdateRum {
		return
	}

	lrum, rrum := slot.LRum, slot.RRum
	_, submitErr := outbuilder.Submit(c.Ser, slot.Type, slot.Control, slot.InterruptOut, led, lrum, rrum)
	if submitErr != nil {
		return
	}
	slot.OldLED = led
}
