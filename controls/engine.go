package controls

import (
	"github.com/yhkl-dev/mpvctl/log"
)

// call reports a failed engine mutation. Engine calls are fire-and-forget:
// the engine either applies them or ignores them.
func call(op string, err error) {
	if err != nil {
		log.WithField("op", op).Warnf("engine call failed: %v", err)
	}
}
