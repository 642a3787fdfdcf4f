// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
