package compdb

import (
	"context"

	"github.com/cmkit/cmkit/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the compilation database loader Graft node.
const NodeID graft.ID = "adapter.compdb_loader"

func init() {
	graft.Register(graft.Node[ports.CompDBLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompDBLoader, error) {
			return NewLoader(), nil
		},
	})
}
