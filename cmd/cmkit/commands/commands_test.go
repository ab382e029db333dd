package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/cmkit/cmkit/cmd/cmkit/commands"
	"github.com/cmkit/cmkit/internal/app"
	"github.com/cmkit/cmkit/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockApp records the CLI's calls into the application layer.
type mockApp struct {
	configureFunc   func(ctx context.Context, opts app.ConfigureOptions) error
	refreshFunc     func(ctx context.Context) error
	watchFunc       func(ctx context.Context) error
	kitListFunc     func(ctx context.Context, out io.Writer) error
	kitSetFunc      func(ctx context.Context, name string, clean bool) error
	cacheFunc       func(ctx context.Context, out io.Writer, opts app.CacheOptions) error
	compileInfoFunc func(ctx context.Context, out io.Writer, path string) error
}

func (m *mockApp) Configure(ctx context.Context, opts app.ConfigureOptions) error {
	if m.configureFunc != nil {
		return m.configureFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Refresh(ctx context.Context) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func (m *mockApp) KitList(ctx context.Context, out io.Writer) error {
	if m.kitListFunc != nil {
		return m.kitListFunc(ctx, out)
	}
	return nil
}

func (m *mockApp) KitSet(ctx context.Context, name string, clean bool) error {
	if m.kitSetFunc != nil {
		return m.kitSetFunc(ctx, name, clean)
	}
	return nil
}

func (m *mockApp) Cache(ctx context.Context, out io.Writer, opts app.CacheOptions) error {
	if m.cacheFunc != nil {
		return m.cacheFunc(ctx, out, opts)
	}
	return nil
}

func (m *mockApp) CompileInfo(ctx context.Context, out io.Writer, path string) error {
	if m.compileInfoFunc != nil {
		return m.compileInfoFunc(ctx, out, path)
	}
	return nil
}

func TestCommands_Configure(t *testing.T) {
	t.Run("wires flags and passthrough args", func(t *testing.T) {
		var captured app.ConfigureOptions
		mock := &mockApp{
			configureFunc: func(_ context.Context, opts app.ConfigureOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"configure", "--clean", "--", "-DCMAKE_BUILD_TYPE=Release"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Clean)
		assert.Equal(t, []string{"-DCMAKE_BUILD_TYPE=Release"}, captured.Args)
		assert.NotNil(t, captured.Output)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			configureFunc: func(context.Context, app.ConfigureOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"configure"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_KitSet(t *testing.T) {
	var gotName string
	var gotClean bool
	mock := &mockApp{
		kitSetFunc: func(_ context.Context, name string, clean bool) error {
			gotName = name
			gotClean = clean
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"kit", "set", "clang", "--clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "clang", gotName)
	assert.True(t, gotClean)
}

func TestCommands_KitSet_RequiresName(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetArgs([]string{"kit", "set"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_KitList(t *testing.T) {
	called := false
	mock := &mockApp{
		kitListFunc: func(_ context.Context, out io.Writer) error {
			called = true
			_, _ = out.Write([]byte("clang\n"))
			return nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"kit", "list"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Contains(t, buf.String(), "clang")
}

func TestCommands_Cache(t *testing.T) {
	var captured app.CacheOptions
	mock := &mockApp{
		cacheFunc: func(_ context.Context, _ io.Writer, opts app.CacheOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"cache", "--all"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.All)
}

func TestCommands_Info(t *testing.T) {
	var gotPath string
	mock := &mockApp{
		compileInfoFunc: func(_ context.Context, _ io.Writer, path string) error {
			gotPath = path
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"info", "src/main.cpp"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "src/main.cpp", gotPath)
}

func TestCommands_Refresh(t *testing.T) {
	called := false
	mock := &mockApp{
		refreshFunc: func(context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"refresh"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"definitely-not-a-command"})

	require.Error(t, cli.Execute(context.Background()))
}
