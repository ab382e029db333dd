// Package proc provides an os/exec-based runner for the configure tool.
package proc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// allowListedEnvVars are the system environment variables the configure tool
// inherits. Everything else must come from the project configuration, which
// keeps configure runs reproducible across shells.
var allowListedEnvVars = map[string]struct{}{
	"HOME":          {},
	"TERM":          {},
	"USER":          {},
	"PATH":          {},
	"TMPDIR":        {},
	"LANG":          {},
	"SHELL":         {},
	"SSH_AUTH_SOCK": {},
}

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

var _ ports.Runner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Execute runs tool with args and waits for it to exit. Process failure is
// data, not an error: the result carries the exit code (Exited=false for
// abnormal termination) plus the captured stdout/stderr. The error return is
// reserved for the tool not starting at all.
func (r *Runner) Execute(ctx context.Context, tool string, args []string, opts ports.ExecOptions) (domain.ExecResult, error) {
	cmd := exec.CommandContext(ctx, tool, args...) //nolint:gosec // tool comes from project config

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	cmd.Env = resolveEnvironment(os.Environ(), opts.Env)

	var stdout, stderr bytes.Buffer
	if opts.Output != nil {
		cmd.Stdout = io.MultiWriter(&stdout, opts.Output)
		cmd.Stderr = io.MultiWriter(&stderr, opts.Output)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	r.logger.Info("running " + tool + " " + strings.Join(args, " "))

	if err := cmd.Start(); err != nil {
		return domain.ExecResult{}, zerr.With(zerr.Wrap(err, "failed to start process"), "tool", tool)
	}

	err := cmd.Wait()
	result := domain.ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch {
	case err == nil:
		result.Code = 0
		result.Exited = true
	default:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Wait itself failed; treat like the process never ran.
			return result, zerr.Wrap(err, "failed to wait for process")
		}
		result.Exited = exitErr.Exited()
		if result.Exited {
			result.Code = exitErr.ExitCode()
		}
	}

	return result, nil
}

// resolveEnvironment merges the allow-listed system environment with the
// caller-supplied variables, caller winning on conflict.
func resolveEnvironment(sysEnv, extra []string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}
	for _, entry := range extra {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
