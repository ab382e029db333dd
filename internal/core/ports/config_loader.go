package ports

import "github.com/cmkit/cmkit/internal/core/domain"

// Project is the loaded project configuration the driver is built from.
type Project struct {
	// RootDir is the directory containing the project file.
	RootDir string
	// SourceDir and BinaryDir are absolute paths.
	SourceDir string
	BinaryDir string
	// CMakePath is the configure tool to invoke.
	CMakePath string
	// Generator, when set, is passed as -G on every configure.
	Generator string
	// ExtraArgs are appended to every configure invocation.
	ExtraArgs []string
	// Environment is passed to the configure tool.
	Environment map[string]string
}

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from cwd, walking up to find
	// the project file.
	Load(cwd string) (*Project, error)

	// Kits reads the kit definitions next to the project file. A missing
	// kits file yields an empty list.
	Kits(cwd string) ([]domain.Kit, error)
}
