package domain

import "go.trai.ch/zerr"

var (
	// ErrNotInitialized is returned when a driver operation is invoked before Initialize.
	ErrNotInitialized = zerr.New("driver not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called more than once.
	ErrAlreadyInitialized = zerr.New("driver already initialized")

	// ErrDisposed is returned when a driver operation is invoked after Dispose.
	ErrDisposed = zerr.New("driver disposed")

	// ErrCacheReadFailed is returned when the CMake cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheParseFailed is returned when the CMake cache file cannot be parsed.
	ErrCacheParseFailed = zerr.New("failed to parse cache file")

	// ErrCompDBReadFailed is returned when the compilation database cannot be read.
	ErrCompDBReadFailed = zerr.New("failed to read compilation database")

	// ErrCompDBParseFailed is returned when the compilation database cannot be parsed.
	ErrCompDBParseFailed = zerr.New("failed to parse compilation database")

	// ErrCleanFailed is returned when removing configure artifacts fails.
	ErrCleanFailed = zerr.New("failed to clean configure artifacts")

	// ErrBinaryDirRemoveFailed is returned when deleting the binary directory fails.
	ErrBinaryDirRemoveFailed = zerr.New("failed to remove binary directory")

	// ErrToolStartFailed is returned when the configure tool cannot be started at all.
	ErrToolStartFailed = zerr.New("failed to start configure tool")

	// ErrWatchFailed is returned when the cache-path watcher cannot be armed.
	ErrWatchFailed = zerr.New("failed to watch cache path")

	// ErrConfigReadFailed is returned when the project config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no project config file can be found.
	ErrConfigNotFound = zerr.New("could not find cmkit.yaml")

	// ErrKitNotFound is returned when a requested kit is not defined.
	ErrKitNotFound = zerr.New("kit not found")

	// ErrKitsReadFailed is returned when the kits file cannot be read.
	ErrKitsReadFailed = zerr.New("failed to read kits file")

	// ErrKitsParseFailed is returned when the kits file cannot be parsed.
	ErrKitsParseFailed = zerr.New("failed to parse kits file")

	// ErrStateWriteFailed is returned when the driver state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write driver state")

	// ErrConfigureFailed is returned by the application layer when a configure
	// run exits non-zero. The driver itself reports the numeric exit code.
	ErrConfigureFailed = zerr.New("configure failed")

	// ErrMissingSourceDir is returned when the project config has no source directory.
	ErrMissingSourceDir = zerr.New("missing source directory")

	// ErrMissingBinaryDir is returned when the project config has no binary directory.
	ErrMissingBinaryDir = zerr.New("missing binary directory")
)
