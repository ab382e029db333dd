package domain

import (
	"path/filepath"
	"strings"
)

// CompileCommand is one record of a compilation database: the exact compile
// invocation used for a single source file.
type CompileCommand struct {
	Directory string
	File      string
	Command   string
	Arguments []string
}

// CompilationDatabase is an immutable mapping from normalized source-file
// path to its compile command. Like CacheSnapshot it is produced whole and
// replaced whole; a nil *CompilationDatabase is the valid "not generated"
// state.
type CompilationDatabase struct {
	byFile map[string]CompileCommand
}

// NewCompilationDatabase builds a database from parsed records. Relative
// file paths are resolved against each record's directory before being
// normalized into lookup keys.
func NewCompilationDatabase(commands []CompileCommand) *CompilationDatabase {
	byFile := make(map[string]CompileCommand, len(commands))
	for _, c := range commands {
		file := c.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(c.Directory, file)
		}
		byFile[NormalizeSourcePath(file)] = c
	}
	return &CompilationDatabase{byFile: byFile}
}

// Lookup returns the compile command for path, normalizing it to the
// database's key form first. Absence is a valid result, not an error.
func (db *CompilationDatabase) Lookup(path string) (CompileCommand, bool) {
	if db == nil {
		return CompileCommand{}, false
	}
	c, ok := db.byFile[NormalizeSourcePath(path)]
	return c, ok
}

// Len returns the number of records, 0 for a nil database.
func (db *CompilationDatabase) Len() int {
	if db == nil {
		return 0
	}
	return len(db.byFile)
}

// NormalizeSourcePath converts a path to the platform-neutral form used for
// database keys and for the generated -S/-B configure arguments: cleaned,
// with forward slashes.
func NormalizeSourcePath(path string) string {
	return strings.ReplaceAll(filepath.Clean(path), string(filepath.Separator), "/")
}
