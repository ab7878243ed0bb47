// Package lifecycle holds process-wide startup/shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks such as the database ping and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
