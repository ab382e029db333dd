package domain

// AbnormalExitCode is the caller-visible exit code the driver reports when
// the configure tool terminated without an exit code (killed by a signal).
const AbnormalExitCode = -1

// ExecResult is the outcome of one configure-tool invocation.
type ExecResult struct {
	// Code is the process exit code. Only meaningful when Exited is true.
	Code int
	// Exited is false when the process terminated abnormally, the "null
	// exit code" case.
	Exited bool
	// Stdout and Stderr hold the captured output for display on failure.
	Stdout string
	Stderr string
}

// CallerCode translates the result into the code the driver reports:
// the process exit code, or AbnormalExitCode when there was none.
func (r ExecResult) CallerCode() int {
	if !r.Exited {
		return AbnormalExitCode
	}
	return r.Code
}
