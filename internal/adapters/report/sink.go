// Package report implements the process-wide sink for errors raised on
// detached paths, where no caller exists to propagate to.
package report

import (
	"fmt"
	"sync"

	"github.com/cmkit/cmkit/internal/core/ports"
)

const queueSize = 16

// Sink implements ports.Reporter. Failures arrive on a channel and are
// drained to the logger by a dedicated goroutine, so reporting never blocks
// the path that failed.
type Sink struct {
	logger ports.Logger
	ch     chan ports.ReloadFailure

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

var _ ports.Reporter = (*Sink)(nil)

// NewSink creates a sink and starts its drain goroutine.
func NewSink(logger ports.Logger) *Sink {
	s := &Sink{
		logger: logger,
		ch:     make(chan ports.ReloadFailure, queueSize),
		done:   make(chan struct{}),
	}
	go s.drain()
	return s
}

// Report enqueues a failure. When the queue is full, or the sink is already
// closed, the failure is logged inline instead; it is never dropped.
func (s *Sink) Report(failure ports.ReloadFailure) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.log(failure)
		return
	}
	select {
	case s.ch <- failure:
	default:
		s.log(failure)
	}
}

// Close stops the drain goroutine after flushing queued failures. The write
// lock waits out in-flight Report calls, so the channel is never closed
// under a sender.
func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		close(s.ch)
		<-s.done
	})
}

func (s *Sink) drain() {
	defer close(s.done)
	for failure := range s.ch {
		s.log(failure)
	}
}

func (s *Sink) log(failure ports.ReloadFailure) {
	s.logger.Error(fmt.Errorf("background reload of %s failed: %w", failure.BinaryDir, failure.Err))
}
