package ports

import (
	"context"
	"io"

	"github.com/cmkit/cmkit/internal/core/domain"
)

// Driver is the capability set shared by configure-driver variants. The
// application layer holds whichever variant was selected at construction
// time; variants share no state.
//
// Construction is two-phase: implementations are inert until Initialize has
// returned, and Initialize is called exactly once.
//
//go:generate mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks
type Driver interface {
	// Initialize performs the driver's async setup: one reload if a cache
	// file already exists, then arming the cache-path watcher.
	Initialize(ctx context.Context) error

	// SetKit marks the driver stale and applies a kit change through the
	// supplied callback. When cleanRequired is set the whole binary
	// directory is deleted first; deletion failure aborts the operation.
	SetKit(ctx context.Context, cleanRequired bool, apply func(ctx context.Context) error) error

	// Configure runs the configure tool with extraArgs plus the generated
	// -S/-B selectors, streaming output to consumer when non-nil. It
	// returns the process exit code (AbnormalExitCode when there was
	// none); a reload always follows the run, success or not. The error
	// return is reserved for failures outside the process itself.
	Configure(ctx context.Context, extraArgs []string, consumer io.Writer) (int, error)

	// CleanConfigure deletes the cache file and the intermediate-files
	// directory, then performs a full Configure with no extra args.
	CleanConfigure(ctx context.Context, consumer io.Writer) (int, error)

	// PostBuild reloads derived state after a build step that may have
	// rewritten the cache.
	PostBuild(ctx context.Context) error

	// Reload refreshes the cache and compilation-database snapshots from
	// disk, replacing both wholesale.
	Reload(ctx context.Context) error

	// Dispose releases the watcher subscription. Safe to call twice.
	Dispose() error

	// CompilationInfoForFile returns the compile command for path, or
	// ok=false when no database is loaded or the file has no entry.
	CompilationInfoForFile(ctx context.Context, path string) (domain.CompileCommand, bool, error)

	// CacheEntries returns the current cache snapshot, nil before the
	// first successful reload.
	CacheEntries() *domain.CacheSnapshot

	// ProjectName returns the project name derived from the last reload.
	ProjectName() string

	// GeneratorName returns the generator recorded in the current cache.
	GeneratorName() string

	// Targets returns the build targets the driver variant can name.
	Targets() []string

	// NeedsReconfigure reports whether a configure is pending.
	NeedsReconfigure() bool
}
