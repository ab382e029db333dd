package domain_test

import (
	"testing"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilationDatabase_Lookup(t *testing.T) {
	db := domain.NewCompilationDatabase([]domain.CompileCommand{
		{
			Directory: "/work/build",
			File:      "/work/src/main.cpp",
			Command:   "clang++ -c /work/src/main.cpp",
		},
		{
			Directory: "/work/build",
			File:      "../src/util.cpp",
			Arguments: []string{"clang++", "-c", "../src/util.cpp"},
		},
	})

	cmd, ok := db.Lookup("/work/src/main.cpp")
	require.True(t, ok)
	assert.Equal(t, "clang++ -c /work/src/main.cpp", cmd.Command)

	// Relative file paths resolve against the record's directory.
	cmd, ok = db.Lookup("/work/src/util.cpp")
	require.True(t, ok)
	assert.Equal(t, []string{"clang++", "-c", "../src/util.cpp"}, cmd.Arguments)

	// Unclean query paths normalize to the same key.
	_, ok = db.Lookup("/work/src/../src/main.cpp")
	assert.True(t, ok)

	_, ok = db.Lookup("/work/src/missing.cpp")
	assert.False(t, ok)
}

func TestCompilationDatabase_NilIsEmpty(t *testing.T) {
	var db *domain.CompilationDatabase

	_, ok := db.Lookup("/any/file.cpp")
	assert.False(t, ok)
	assert.Equal(t, 0, db.Len())
}

func TestNormalizeSourcePath(t *testing.T) {
	assert.Equal(t, "/work/src/main.cpp", domain.NormalizeSourcePath("/work/./src//main.cpp"))
	assert.Equal(t, "/work/main.cpp", domain.NormalizeSourcePath("/work/src/../main.cpp"))
}
