package padcore

import "github.com/ds3ds4/ds34drv/padtable"

// Reset releases every slot as if each were disconnected. Enabled bits
// are preserved.
func (c *Core) Reset() {
	for i := 0; i < padtable.NumSlots; i++ {
		padtable.Release(c.Ctrl, c.Table.Slot(i))
	}
}
