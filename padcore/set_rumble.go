package padcore

import "github.com/ds3ds4/ds34drv/outbuilder"

// SetRumble invokes the output builder with the slot's current LED and
// the new rumble magnitudes, waiting for completion. Gated by
// update_rum: while the latch is disarmed (a get_bdaddr exchange is
// expected first), the call is a no-op.
func (c *Core) SetRumble(left, right byte, port int) {
	slot := c.Table.Slot(port)
	if slot == nil {
		return
	}
	slot.CmdLock.Lock()
	defer slot.CmdLock.Unlock()

	if !slot.UpdateRum {
		return
	}

	led := slot.OldLED
	_, submitErr := outbuilder.Submit(c.Ser, slot.Type, slot.Control, slot.InterruptOut, led, left, right)
	if submitErr != nil {
		return
	}
	slot.LRum, slot.RRum = left, right
}
