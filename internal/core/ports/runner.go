// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/cmkit/cmkit/internal/core/domain"
)

// ExecOptions carries the optional parts of a configure-tool invocation.
type ExecOptions struct {
	// Dir is the working directory for the process. Empty means inherit.
	Dir string
	// Env holds extra environment variables in "KEY=VALUE" form, layered
	// over the allow-listed system environment.
	Env []string
	// Output, when non-nil, receives the interleaved stdout/stderr stream
	// as the process produces it. Output is still captured in the result
	// regardless.
	Output io.Writer
}

// Runner executes the external configure tool.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Execute runs tool with args and waits for it to finish.
	//
	// A non-zero or absent exit code is NOT an error: it is reported in
	// the result (Exited=false for abnormal termination). The returned
	// error is reserved for failures to run the tool at all.
	Execute(ctx context.Context, tool string, args []string, opts ExecOptions) (domain.ExecResult, error)
}
