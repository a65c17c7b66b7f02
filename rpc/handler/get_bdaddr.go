package handler

import (
	"fmt"

	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// GetBdaddr returns the GET_BDADDR handler: payload [port:1], response
// [result:1] followed by the 6-byte bdaddr in bytes [1..7].
func GetBdaddr(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		if len(payload) < 1 {
			return nil, fmt.Errorf("rpc: get_bdaddr: short payload")
		}
		out := make([]byte, 7)
		var addr [6]byte
		out[0] = core.GetBdaddr(addr[:], int(payload[0]))
		copy(out[1:], addr[:])
		return out, nil
	}
}
