package padcore

// Init sets each slot's enabled bit from (mask >> slot) & 1.
func (c *Core) Init(enableMask byte) {
	c.Table.SetEnableMask(enableMask)
}
