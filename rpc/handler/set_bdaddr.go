package handler

import (
	"fmt"

	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// SetBdaddr returns the SET_BDADDR handler: payload [port:1, bdaddr:6],
// echoed back.
func SetBdaddr(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		if len(payload) < 7 {
			return nil, fmt.Errorf("rpc: set_bdaddr: short payload")
		}
		var addr [6]byte
		copy(addr[:], payload[1:7])
		core.SetBdaddr(addr, int(payload[0]))
		return payload, nil
	}
}
