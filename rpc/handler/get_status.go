package handler

import (
	"fmt"

	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// GetStatus returns the GET_STATUS handler: payload [port:1], response
// [status:1].
func GetStatus(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		if len(payload) < 1 {
			return nil, fmt.Errorf("rpc: get_status: short payload")
		}
		return []byte{core.GetStatus(int(payload[0]))}, nil
	}
}
