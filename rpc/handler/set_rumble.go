package handler

import (
	"fmt"

	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// SetRumble returns the SET_RUMBLE handler: payload [port:1, left:1,
// right:1], echoed back.
func SetRumble(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		if len(payload) < 3 {
			return nil, fmt.Errorf("rpc: set_rumble: short payload")
		}
		core.SetRumble(payload[1], payload[2], int(payload[0]))
		return payload, nil
	}
}
