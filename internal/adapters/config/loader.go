// Package config provides the configuration loader for cmkit.
package config

import (
	"os"
	"path/filepath"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const defaultCMakePath = "cmake"

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the project configuration, walking up from cwd to find
// cmkit.yaml. Relative source/binary paths are resolved against the
// directory containing the config file.
func (l *Loader) Load(cwd string) (*ports.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // discovered config path
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file projectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	root := filepath.Dir(configPath)

	source := file.Source
	if source == "" {
		source = "."
	}
	binary := file.Binary
	if binary == "" {
		return nil, zerr.With(domain.ErrMissingBinaryDir, "path", configPath)
	}

	sourceDir, err := absJoin(root, source)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMissingSourceDir.Error())
	}
	binaryDir, err := absJoin(root, binary)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMissingBinaryDir.Error())
	}

	cmakePath := file.CMake
	if cmakePath == "" {
		cmakePath = defaultCMakePath
	}

	return &ports.Project{
		RootDir:     root,
		SourceDir:   sourceDir,
		BinaryDir:   binaryDir,
		CMakePath:   cmakePath,
		Generator:   file.Generator,
		ExtraArgs:   file.Args,
		Environment: file.Environment,
	}, nil
}

// Kits reads the kit definitions from kits.yaml next to the project file.
// No kits file means no kits, not an error.
func (l *Loader) Kits(cwd string) ([]domain.Kit, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	kitsPath := filepath.Join(filepath.Dir(configPath), domain.KitsFileName)
	data, err := os.ReadFile(kitsPath) //nolint:gosec // path is next to the config file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrKitsReadFailed.Error()), "path", kitsPath)
	}

	var file kitsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrKitsParseFailed.Error()), "path", kitsPath)
	}

	kits := make([]domain.Kit, 0, len(file.Kits))
	for _, dto := range file.Kits {
		kits = append(kits, domain.Kit{
			Name:          dto.Name,
			Compilers:     dto.Compilers,
			ToolchainFile: dto.ToolchainFile,
			Generator:     dto.Generator,
			Settings:      dto.Settings,
			Environment:   dto.Environment,
		})
	}
	return kits, nil
}

// findConfiguration walks up from cwd until it finds cmkit.yaml.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		currentDir = parentDir
	}
}

func absJoin(root, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Abs(filepath.Join(root, path))
}
