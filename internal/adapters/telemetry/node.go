package telemetry

import (
	"context"

	"github.com/cmkit/cmkit/internal/adapters/logger"
	"github.com/cmkit/cmkit/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			// The SDK provider must be global before otel.Tracer is
			// resolved; spans started earlier would be no-ops.
			shutdown := Setup(log)
			return NewOTelTracer("cmkit").WithShutdown(shutdown), nil
		},
	})
}
