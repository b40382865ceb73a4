package uiobject

import (
	"time"

	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
)

// timeoutMillis normalizes a caller-supplied bound to whole milliseconds and
// rejects anything that is not strictly below the RPC channel ceiling. A
// server-side wait at or above the ceiling would come back as a transport
// failure instead of a not-found, so the check must run before the call.
func timeoutMillis(op string, timeout time.Duration) (int64, error) {
	ms := timeout.Milliseconds()
	if ms >= rpc.ChannelTimeout.Milliseconds() {
		return 0, core.ErrTimeoutTooLong.
			WithMessagef("%s: timeout %v must be below the RPC channel ceiling %v", op, timeout, rpc.ChannelTimeout).
			WithDetails(map[string]interface{}{
				"op":        op,
				"timeoutMs": ms,
				"ceilingMs": rpc.ChannelTimeout.Milliseconds(),
			})
	}
	return ms, nil
}
