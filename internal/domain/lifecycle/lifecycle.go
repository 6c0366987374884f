// Package lifecycle holds shared constants for graceful startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a delivery may take to shut down.
const DefaultTimeout = 10 * time.Second
