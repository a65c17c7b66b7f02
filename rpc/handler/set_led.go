package handler

import (
	"fmt"

	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// SetLed returns the SET_LED handler: payload [port:1, led:4], echoed
// back.
func SetLed(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		if len(payload) < 5 {
			return nil, fmt.Errorf("rpc: set_led: short payload")
		}
		var led [4]byte
		copy(led[:], payload[1:5])
		core.SetLed(led, int(payload[0]))
		return payload, nil
	}
}
