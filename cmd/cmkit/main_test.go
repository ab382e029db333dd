package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/cmkit/cmkit/internal/app"
	"github.com/cmkit/cmkit/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T) *app.Components {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockRunner(ctrl),
		mocks.NewMockCacheStore(ctrl),
		mocks.NewMockCompDBLoader(ctrl),
		mocks.NewMockWatcher(ctrl),
		log,
		mocks.NewMockReporter(ctrl),
		mocks.NewMockTracer(ctrl),
	)
	return &app.Components{App: application, Logger: log}
}

func TestRun_Success(t *testing.T) {
	components := newComponents(t)
	shutdownCalls := 0
	components.Shutdown = func(context.Context) error {
		shutdownCalls++
		return nil
	}
	provider := func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, 1, shutdownCalls)
}

func TestRun_ProviderFailure(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_CommandFailure(t *testing.T) {
	components := newComponents(t)
	provider := func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"no-such-command"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
