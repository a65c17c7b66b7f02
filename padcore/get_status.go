package padcore

// GetStatus returns the slot's status bitfield. Out-of-range ports
// return 0.
func (c *Core) GetStatus(port int) byte {
	slot := c.Table.Slot(port)
	if slot == nil {
		return 0
	}
	slot.PadLock.Lock()
	defer slot.PadLock.Unlock()
	return byte(slot.Status)
}
