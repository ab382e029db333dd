package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmkit/cmkit/internal/adapters/config"
	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeProject(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(content), 0o644))
}

func TestLoader_Load_Full(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, `version: "1"
source: .
binary: build
cmake: /opt/cmake/bin/cmake
generator: Ninja
args:
  - -DCMAKE_EXPORT_COMPILE_COMMANDS=ON
environment:
  CC: clang
`)

	project, err := newTestLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, project.RootDir)
	assert.Equal(t, dir, project.SourceDir)
	assert.Equal(t, filepath.Join(dir, "build"), project.BinaryDir)
	assert.Equal(t, "/opt/cmake/bin/cmake", project.CMakePath)
	assert.Equal(t, "Ninja", project.Generator)
	assert.Equal(t, []string{"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON"}, project.ExtraArgs)
	assert.Equal(t, map[string]string{"CC": "clang"}, project.Environment)
}

func TestLoader_Load_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "binary: out\n")

	project, err := newTestLoader(t).Load(dir)
	require.NoError(t, err)

	// Source defaults to the config directory, cmake to the PATH lookup.
	assert.Equal(t, dir, project.SourceDir)
	assert.Equal(t, "cmake", project.CMakePath)
	assert.Empty(t, project.Generator)
}

func TestLoader_Load_BinaryDirRequired(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "source: .\n")

	_, err := newTestLoader(t).Load(dir)
	require.ErrorIs(t, err, domain.ErrMissingBinaryDir)
}

func TestLoader_Load_WalksUpToFindConfig(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "binary: build\n")

	nested := filepath.Join(root, "src", "lib", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	project, err := newTestLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, project.RootDir)
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := newTestLoader(t).Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "binary: [unclosed\n")

	_, err := newTestLoader(t).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Kits(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "binary: build\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.KitsFileName), []byte(`kits:
  - name: clang
    compilers:
      C: /usr/bin/clang
      CXX: /usr/bin/clang++
    generator: Ninja
    settings:
      CMAKE_BUILD_TYPE: Release
  - name: cross
    toolchainFile: /opt/arm.cmake
    environment:
      SYSROOT: /opt/sysroot
`), 0o644))

	kits, err := newTestLoader(t).Kits(dir)
	require.NoError(t, err)
	require.Len(t, kits, 2)

	assert.Equal(t, "clang", kits[0].Name)
	assert.Equal(t, "/usr/bin/clang++", kits[0].Compilers["CXX"])
	assert.Equal(t, "Ninja", kits[0].Generator)
	assert.Equal(t, "Release", kits[0].Settings["CMAKE_BUILD_TYPE"])

	assert.Equal(t, "/opt/arm.cmake", kits[1].ToolchainFile)
	assert.Equal(t, "/opt/sysroot", kits[1].Environment["SYSROOT"])
}

func TestLoader_Kits_MissingFileYieldsNoKits(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "binary: build\n")

	kits, err := newTestLoader(t).Kits(dir)
	require.NoError(t, err)
	assert.Empty(t, kits)
}

func TestLoader_Kits_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "binary: build\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.KitsFileName), []byte("kits: {bad\n"), 0o644))

	_, err := newTestLoader(t).Kits(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrKitsParseFailed.Error())
}
