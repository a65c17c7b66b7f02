// Package handler provides the standard rpc.HandlerFunc set bound to a
// padcore.Core, one file per opcode, mirroring the factory-per-handler
// convention used throughout the rest of this module.
package handler

import (
	"fmt"

	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// Init returns the INIT handler: payload [enable_mask:1], echoed back.
func Init(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		if len(payload) < 1 {
			return nil, fmt.Errorf("rpc: init: short payload")
		}
		core.Init(payload[0])
		return payload, nil
	}
}
