package handler

import (
	"fmt"

	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/report"
	"github.com/ds3ds4/ds34drv/rpc"
)

// GetData returns the GET_DATA handler: payload [port:1, buffer...],
// the unified vector is written into the trailing buffer bytes
// (clamped to the 18-byte unified vector length) and the whole payload
// is returned.
func GetData(core *padcore.Core) rpc.HandlerFunc {
	return func(payload []byte) ([]byte, error) {
		if len(payload) < 1 {
			return nil, fmt.Errorf("rpc: get_data: short payload")
		}
		port := int(payload[0])
		dst := payload[1:]
		size := len(dst)
		if size > report.Size {
			size = report.Size
			dst = dst[:size]
		}
		core.GetData(dst, size, port)
		return payload, nil
	}
}
