package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cmkit/cmkit/internal/adapters/logger"
	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. It also sets NO_COLOR=1 to ensure deterministic output without
// ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{
			name:       "simple message",
			msg:        "some message",
			goldenName: "info_basic",
		},
		{
			name:       "empty message",
			msg:        "",
			goldenName: "info_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("cache file vanished")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error_PlainError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(errors.New("something broke"))

	g := goldie.New(t)
	g.Assert(t, "error_plain", buf.Bytes())
}

func TestLogger_Error_NilIsSilent(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Zero(t, buf.Len())
}

func TestLogger_Error_ChainRendering(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(
		zerr.Wrap(errors.New("no such file or directory"), domain.ErrCacheReadFailed.Error()),
		"reload failed",
	)
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "reload failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "    - "+domain.ErrCacheReadFailed.Error())
	assert.Contains(t, out, "    - no such file or directory")
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("configured")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "configured", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestLogger_JSONMode_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}
