package ports

import (
	"context"

	"github.com/cmkit/cmkit/internal/core/domain"
)

// CacheStore loads CMake cache snapshots from disk.
//
// A missing file is a load failure, not an empty snapshot. The driver's
// reload tolerates absence only for the compilation database; the asymmetry
// is deliberate, because a configure that ran at all always writes a cache.
//
//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks
type CacheStore interface {
	// Load parses the cache file at path into an immutable snapshot.
	Load(ctx context.Context, path string) (*domain.CacheSnapshot, error)
}

// CompDBLoader loads compilation databases from disk.
type CompDBLoader interface {
	// Load parses the compile-commands file at path. A missing file yields
	// (nil, nil): not every generator produces one.
	Load(ctx context.Context, path string) (*domain.CompilationDatabase, error)
}
