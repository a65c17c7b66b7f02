package handler

import (
	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/rpc"
)

// Reset returns the RESET handler: empty payload, empty response.
func Reset(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		core.Reset()
		return nil, nil
	}
}
