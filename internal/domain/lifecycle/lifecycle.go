// Package lifecycle holds shared timing constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks (DB ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
