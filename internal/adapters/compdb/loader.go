// Package compdb loads compile_commands.json compilation databases.
package compdb

import (
	"context"
	"encoding/json"
	"os"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// record is the JSON shape of one compilation database entry. The format
// allows either a single shell-quoted "command" string or an "arguments"
// array; both appear in the wild.
type record struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Command   string   `json:"command"`
	Arguments []string `json:"arguments"`
}

// Loader implements ports.CompDBLoader for compile_commands.json files.
type Loader struct{}

var _ ports.CompDBLoader = (*Loader)(nil)

// NewLoader creates a new compilation database loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the database at path. Not every generator emits one, so a
// missing file yields (nil, nil) rather than an error.
func (l *Loader) Load(_ context.Context, path string) (*domain.CompilationDatabase, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the binary directory
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompDBReadFailed.Error()), "path", path)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompDBParseFailed.Error()), "path", path)
	}

	commands := make([]domain.CompileCommand, 0, len(records))
	for _, r := range records {
		commands = append(commands, domain.CompileCommand{
			Directory: r.Directory,
			File:      r.File,
			Command:   r.Command,
			Arguments: r.Arguments,
		})
	}
	return domain.NewCompilationDatabase(commands), nil
}
