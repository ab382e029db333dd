package ports

import "time"

// ReloadFailure is a structured record of a reload that failed on the
// detached change-reaction path, where no caller exists to propagate to.
type ReloadFailure struct {
	BinaryDir string
	Err       error
	At        time.Time
}

// Reporter is the process-wide sink for errors that would otherwise be
// silently lost. Implementations must not block the caller.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(failure ReloadFailure)

	// Close flushes queued failures and stops background draining. Reports
	// arriving after Close are handled inline, never dropped.
	Close()
}
