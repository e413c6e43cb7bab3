// Package lifecycle holds shared lifecycle constants for startup and
// shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown.
const DefaultTimeout = 30 * time.Second
