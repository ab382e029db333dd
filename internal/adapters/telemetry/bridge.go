package telemetry

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cmkit/cmkit/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TraceEnvVar enables span completion logging when set to any non-empty value.
const TraceEnvVar = "CMKIT_TRACE"

// Bridge implements sdktrace.SpanProcessor, draining completed spans to the
// logger. Output is gated behind TraceEnvVar so normal runs stay quiet;
// failed spans surface as warnings, successful ones as timing lines.
type Bridge struct {
	logger  ports.Logger
	enabled bool
}

// NewBridge returns a new Bridge. The environment is read once at
// construction time.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger:  logger,
		enabled: os.Getenv(TraceEnvVar) != "",
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !b.enabled {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		b.logger.Warn(fmt.Sprintf("%s (%s): %s", s.Name(), elapsed, desc))
		return
	}
	b.logger.Info(fmt.Sprintf("%s (%s)", s.Name(), elapsed))
}

// ForceFlush does nothing; spans are forwarded synchronously on OnEnd.
func (b *Bridge) ForceFlush(_ context.Context) error { return nil }

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error { return nil }
