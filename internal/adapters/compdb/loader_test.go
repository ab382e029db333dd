package compdb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmkit/cmkit/internal/adapters/compdb"
	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.CompileCommandsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_CommandShape(t *testing.T) {
	path := writeDB(t, `[
  {
    "directory": "/work/build",
    "command": "/usr/bin/c++ -o main.o -c /work/src/main.cpp",
    "file": "/work/src/main.cpp"
  }
]`)

	loader := compdb.NewLoader()
	db, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, db.Len())

	cmd, ok := db.Lookup("/work/src/main.cpp")
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/c++ -o main.o -c /work/src/main.cpp", cmd.Command)
	assert.Empty(t, cmd.Arguments)
}

func TestLoader_Load_ArgumentsShape(t *testing.T) {
	path := writeDB(t, `[
  {
    "directory": "/work/build",
    "arguments": ["/usr/bin/c++", "-o", "util.o", "-c", "../src/util.cpp"],
    "file": "../src/util.cpp"
  }
]`)

	loader := compdb.NewLoader()
	db, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	// Relative file paths resolve against the record's directory.
	cmd, ok := db.Lookup("/work/src/util.cpp")
	require.True(t, ok)
	assert.Equal(t, []string{"/usr/bin/c++", "-o", "util.o", "-c", "../src/util.cpp"}, cmd.Arguments)
}

func TestLoader_Load_EmptyArray(t *testing.T) {
	path := writeDB(t, `[]`)

	loader := compdb.NewLoader()
	db, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.Equal(t, 0, db.Len())
}

func TestLoader_Load_MissingFileIsNotAnError(t *testing.T) {
	loader := compdb.NewLoader()
	db, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), domain.CompileCommandsFileName))
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestLoader_Load_MalformedJSON(t *testing.T) {
	path := writeDB(t, `{"not": "an array"}`)

	loader := compdb.NewLoader()
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCompDBParseFailed.Error())
}
