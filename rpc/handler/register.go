package handler

import (
	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// RegisterAll binds the standard eight opcode handlers to core on d.
func RegisterAll(d *rpc.Dispatcher, core *padcore.Core) {
	d.Register(rpc.OpInit, Init(core))
	d.Register(rpc.OpGetStatus, GetStatus(core))
	d.Register(rpc.OpGetBdaddr, GetBdaddr(core))
	d.Register(rpc.OpSetBdaddr, SetBdaddr(core))
	d.Register(rpc.OpSetRumble, SetRumble(core))
	d.Register(rpc.OpSetLed, SetLed(core))
	d.Register(rpc.OpGetData, GetData(core))
	d.Register(rpc.OpReset, Reset(core))
}
