package app

import (
	"context"

	"github.com/cmkit/cmkit/internal/adapters/cachefile"
	"github.com/cmkit/cmkit/internal/adapters/compdb"
	"github.com/cmkit/cmkit/internal/adapters/config"
	"github.com/cmkit/cmkit/internal/adapters/logger"
	"github.com/cmkit/cmkit/internal/adapters/proc"
	"github.com/cmkit/cmkit/internal/adapters/report"
	"github.com/cmkit/cmkit/internal/adapters/telemetry"
	"github.com/cmkit/cmkit/internal/adapters/watcher"
	"github.com/cmkit/cmkit/internal/core/ports"
	"github.com/grindlemire/graft"
)

// Components bundles the fully wired application for the entry point.
type Components struct {
	App    *App
	Logger ports.Logger

	// Shutdown flushes the adapters that buffer in the background: the
	// reporter queue and the trace provider. Called once after command
	// execution.
	Shutdown func(context.Context) error
}

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			proc.NodeID,
			cachefile.NodeID,
			compdb.NodeID,
			watcher.NodeID,
			logger.NodeID,
			report.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			cacheStore, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			compdbLoader, err := graft.Dep[ports.CompDBLoader](ctx)
			if err != nil {
				return nil, err
			}
			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, runner, cacheStore, compdbLoader, fileWatcher, log, reporter, tracer),
				Logger: log,
				Shutdown: func(ctx context.Context) error {
					reporter.Close()
					if s, ok := tracer.(interface{ Shutdown(context.Context) error }); ok {
						return s.Shutdown(ctx)
					}
					return nil
				},
			}, nil
		},
	})
}
