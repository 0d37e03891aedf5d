// Package lifecycle holds process-wide lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of long-lived resources.
const DefaultTimeout = 10 * time.Second
