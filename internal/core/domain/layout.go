package domain

import "path/filepath"

const (
	// CacheFileName is the name of CMake's persisted configuration cache.
	CacheFileName = "CMakeCache.txt"

	// CompileCommandsFileName is the name of the compilation database CMake
	// emits when CMAKE_EXPORT_COMPILE_COMMANDS is enabled.
	CompileCommandsFileName = "compile_commands.json"

	// IntermediateDirName is the name of CMake's intermediate-files directory.
	IntermediateDirName = "CMakeFiles"

	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "cmkit.yaml"

	// KitsFileName is the name of the kit definitions file.
	KitsFileName = "kits.yaml"

	// StateFileName is the name of the per-project driver state file
	// (active kit selection). It lives next to the project file so that
	// deleting the binary directory does not lose the selection.
	StateFileName = ".cmkit-state.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CachePath returns the path of the CMake cache inside binaryDir.
func CachePath(binaryDir string) string {
	return filepath.Join(binaryDir, CacheFileName)
}

// CompileCommandsPath returns the path of the compilation database inside binaryDir.
func CompileCommandsPath(binaryDir string) string {
	return filepath.Join(binaryDir, CompileCommandsFileName)
}

// IntermediatePath returns the path of CMake's intermediate-files directory
// inside binaryDir.
func IntermediatePath(binaryDir string) string {
	return filepath.Join(binaryDir, IntermediateDirName)
}

// StatePath returns the path of the driver state file inside the project root.
func StatePath(rootDir string) string {
	return filepath.Join(rootDir, StateFileName)
}
