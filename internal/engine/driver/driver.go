// Package driver implements the legacy poll-and-reload configure driver:
// a state machine that invokes CMake, tracks configure staleness, and keeps
// in-memory snapshots of the cache and compilation database in sync with the
// binary directory.
package driver

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options carries the immutable identity of one driver: where it configures
// from and into, and how the tool is invoked.
type Options struct {
	// SourceDir and BinaryDir are absolute paths, fixed for the driver's lifetime.
	SourceDir string
	BinaryDir string
	// Tool is the configure tool to run, e.g. "cmake".
	Tool string
	// BaseArgs are prepended to every configure invocation (generator
	// selection, project-level -D settings, the active kit's arguments).
	BaseArgs []string
	// Env holds extra environment variables for the tool in "KEY=VALUE" form.
	Env []string
}

// Legacy is the poll-and-reload driver variant. It owns the cache and
// compilation-database snapshots exclusively and replaces them wholesale on
// every reload; nothing mutates a snapshot in place.
type Legacy struct {
	opts Options

	runner   ports.Runner
	cache    ports.CacheStore
	compdb   ports.CompDBLoader
	watcher  ports.Watcher
	logger   ports.Logger
	reporter ports.Reporter
	tracer   ports.Tracer

	mu               sync.Mutex
	initialized      bool
	disposed         bool
	needsReconfigure bool
	currentCache     *domain.CacheSnapshot
	currentCompDB    *domain.CompilationDatabase
	projectName      string

	sub         ports.Subscription
	reactorDone chan struct{}
	disposeOnce sync.Once
	disposeErr  error
}

var _ ports.Driver = (*Legacy)(nil)

// New creates an inert driver. It performs no I/O; call Initialize exactly
// once before any other operation.
func New(
	opts Options,
	runner ports.Runner,
	cache ports.CacheStore,
	compdb ports.CompDBLoader,
	watcher ports.Watcher,
	logger ports.Logger,
	reporter ports.Reporter,
	tracer ports.Tracer,
) *Legacy {
	return &Legacy{
		opts:             opts,
		runner:           runner,
		cache:            cache,
		compdb:           compdb,
		watcher:          watcher,
		logger:           logger,
		reporter:         reporter,
		tracer:           tracer,
		needsReconfigure: true,
	}
}

// Initialize performs the driver's asynchronous setup: one reload if a cache
// file already exists in the binary directory, then arming the cache-path
// watcher and starting the change reactor. A freshly initialized driver
// reflects on-disk truth immediately, without waiting for a configure or a
// watch event.
func (d *Legacy) Initialize(ctx context.Context) error {
	d.mu.Lock()
	if d.initialized {
		d.mu.Unlock()
		return domain.ErrAlreadyInitialized
	}
	d.mu.Unlock()

	cachePath := domain.CachePath(d.opts.BinaryDir)
	if _, err := os.Stat(cachePath); err == nil {
		if err := d.Reload(ctx); err != nil {
			return err
		}
	}

	sub, err := d.watcher.Watch(cachePath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", cachePath)
	}

	d.mu.Lock()
	d.sub = sub
	d.reactorDone = make(chan struct{})
	d.initialized = true
	d.mu.Unlock()

	go d.react(sub)

	return nil
}

// SetKit marks the driver stale and applies a kit change via the supplied
// callback. The callback never runs the configure tool itself; the new kit
// takes effect on the next Configure.
func (d *Legacy) SetKit(ctx context.Context, cleanRequired bool, apply func(ctx context.Context) error) error {
	d.mu.Lock()
	d.needsReconfigure = true
	d.mu.Unlock()

	if cleanRequired {
		if err := os.RemoveAll(d.opts.BinaryDir); err != nil {
			return zerr.With(
				zerr.Wrap(err, domain.ErrBinaryDirRemoveFailed.Error()),
				"binary_dir", d.opts.BinaryDir,
			)
		}
	}

	if apply == nil {
		return nil
	}
	return apply(ctx)
}

// Configure runs the tool with the base arguments, the caller's extra
// arguments, and finally the generated source/binary directory selectors.
// The triggered reload is never skipped, even when the process fails:
// partial configure runs can still have rewritten the cache on disk.
func (d *Legacy) Configure(ctx context.Context, extraArgs []string, consumer io.Writer) (int, error) {
	if err := d.ready(); err != nil {
		return domain.AbnormalExitCode, err
	}

	ctx, span := d.tracer.Start(ctx, "driver.configure")
	defer span.End()

	args := make([]string, 0, len(d.opts.BaseArgs)+len(extraArgs)+2)
	args = append(args, d.opts.BaseArgs...)
	args = append(args, extraArgs...)
	args = append(args,
		"-S"+domain.NormalizeSourcePath(d.opts.SourceDir),
		"-B"+domain.NormalizeSourcePath(d.opts.BinaryDir),
	)
	span.SetAttribute("args", args)

	res, err := d.runner.Execute(ctx, d.opts.Tool, args, ports.ExecOptions{
		Dir:    d.opts.SourceDir,
		Env:    d.opts.Env,
		Output: consumer,
	})
	if err != nil {
		// The tool never ran, so nothing on disk changed and there is
		// nothing to reload.
		span.RecordError(err)
		return domain.AbnormalExitCode, zerr.Wrap(err, domain.ErrToolStartFailed.Error())
	}

	if err := d.Reload(ctx); err != nil {
		span.RecordError(err)
		return res.CallerCode(), err
	}

	code := res.CallerCode()
	span.SetAttribute("exit_code", code)
	if code == 0 {
		d.mu.Lock()
		d.needsReconfigure = false
		d.mu.Unlock()
	}
	return code, nil
}

// CleanConfigure deletes the cache file and the intermediate-files directory
// beneath the binary directory, then performs a full Configure. Deletion
// errors abort the operation: configuring on top of half-cleaned
// intermediate state is worse than failing loudly.
func (d *Legacy) CleanConfigure(ctx context.Context, consumer io.Writer) (int, error) {
	if err := d.ready(); err != nil {
		return domain.AbnormalExitCode, err
	}

	ctx, span := d.tracer.Start(ctx, "driver.clean_configure")
	defer span.End()

	cachePath := domain.CachePath(d.opts.BinaryDir)
	if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
		span.RecordError(err)
		return domain.AbnormalExitCode, zerr.With(
			zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", cachePath)
	}

	intermediate := domain.IntermediatePath(d.opts.BinaryDir)
	if err := os.RemoveAll(intermediate); err != nil {
		span.RecordError(err)
		return domain.AbnormalExitCode, zerr.With(
			zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", intermediate)
	}

	return d.Configure(ctx, nil, consumer)
}

// PostBuild reloads derived state after a build step: build-time cache
// writes (rerun of a stale configure, file(WRITE) tricks) land on disk
// without any configure call through this driver.
func (d *Legacy) PostBuild(ctx context.Context) error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.Reload(ctx)
}

// Reload refreshes both snapshots from the binary directory. The on-disk
// cache is the sole source of truth: the snapshots are replaced wholesale in
// a single critical section, so a reader never observes one refreshed
// without the other. Overlapping reloads are not deduplicated; the last one
// to complete wins.
func (d *Legacy) Reload(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "driver.reload")
	defer span.End()

	cachePath := domain.CachePath(d.opts.BinaryDir)

	var newCache *domain.CacheSnapshot
	if _, err := os.Stat(cachePath); err == nil {
		snapshot, err := d.cache.Load(ctx, cachePath)
		if err != nil {
			span.RecordError(err)
			return err
		}
		newCache = snapshot
	}

	newDB, err := d.compdb.Load(ctx, domain.CompileCommandsPath(d.opts.BinaryDir))
	if err != nil {
		span.RecordError(err)
		return err
	}

	d.mu.Lock()
	d.currentCache = newCache
	d.currentCompDB = newDB
	if newCache != nil {
		if entry, ok := newCache.Get(domain.ProjectNameEntry); ok {
			d.setProjectNameLocked(entry.Value)
		}
	}
	d.mu.Unlock()

	span.SetAttribute("cache_entries", newCache.Len())
	span.SetAttribute("compdb_entries", newDB.Len())
	return nil
}

// setProjectNameLocked is the single designated setter for the derived
// project name. Callers hold d.mu.
func (d *Legacy) setProjectNameLocked(name string) {
	if name == d.projectName {
		return
	}
	d.projectName = name
	d.logger.Info("project name: " + name)
}

// Dispose releases the watcher subscription and stops the change reactor.
// Calling Dispose more than once is safe; only the first call does work.
func (d *Legacy) Dispose() error {
	d.disposeOnce.Do(func() {
		d.mu.Lock()
		d.disposed = true
		sub := d.sub
		done := d.reactorDone
		d.mu.Unlock()

		if sub != nil {
			d.disposeErr = sub.Release()
			<-done
		}
	})
	return d.disposeErr
}

// CompilationInfoForFile looks up the compile command for path in the
// current compilation database. Absence of the database, or of the file in
// it, is expected and never an error.
func (d *Legacy) CompilationInfoForFile(_ context.Context, path string) (domain.CompileCommand, bool, error) {
	d.mu.Lock()
	db := d.currentCompDB
	d.mu.Unlock()

	if db == nil {
		return domain.CompileCommand{}, false, nil
	}
	cmd, ok := db.Lookup(path)
	return cmd, ok, nil
}

// CacheEntries returns the current cache snapshot, nil before the first
// successful reload. Snapshots are immutable; sharing the pointer is safe.
func (d *Legacy) CacheEntries() *domain.CacheSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentCache
}

// ProjectName returns the project name derived from the last reload.
func (d *Legacy) ProjectName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.projectName
}

// GeneratorName returns the generator recorded in the current cache, or ""
// when no cache is loaded.
func (d *Legacy) GeneratorName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.currentCache == nil {
		return ""
	}
	return d.currentCache.String(domain.GeneratorEntry)
}

// Targets returns the targets the legacy variant can name without a build
// protocol: the generator-provided ones, plus the project's own top-level
// target when a cache has been loaded.
func (d *Legacy) Targets() []string {
	targets := []string{"all", "clean"}

	d.mu.Lock()
	name := d.projectName
	d.mu.Unlock()
	if name != "" {
		targets = append(targets, name)
	}
	return targets
}

// NeedsReconfigure reports whether a configure is pending: true from
// construction until a configure completes with exit code zero, and re-armed
// by every kit change.
func (d *Legacy) NeedsReconfigure() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.needsReconfigure
}

// SourceDir returns the driver's source directory.
func (d *Legacy) SourceDir() string { return d.opts.SourceDir }

// BinaryDir returns the driver's binary directory.
func (d *Legacy) BinaryDir() string { return d.opts.BinaryDir }

func (d *Legacy) ready() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return domain.ErrDisposed
	}
	if !d.initialized {
		return domain.ErrNotInitialized
	}
	return nil
}
