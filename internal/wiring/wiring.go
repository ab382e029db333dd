// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/cmkit/cmkit/internal/adapters/cachefile"
	_ "github.com/cmkit/cmkit/internal/adapters/compdb"
	_ "github.com/cmkit/cmkit/internal/adapters/config"
	_ "github.com/cmkit/cmkit/internal/adapters/logger"
	_ "github.com/cmkit/cmkit/internal/adapters/proc"
	_ "github.com/cmkit/cmkit/internal/adapters/report"
	_ "github.com/cmkit/cmkit/internal/adapters/telemetry"
	_ "github.com/cmkit/cmkit/internal/adapters/watcher"
	// Register the app node.
	_ "github.com/cmkit/cmkit/internal/app"
)
