// Package app implements the application layer for cmkit.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"github.com/cmkit/cmkit/internal/engine/driver"
	"github.com/cmkit/cmkit/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic. It builds one driver per
// invocation from the project configuration and the persisted kit selection,
// and tears it down when the operation finishes.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.Runner
	cacheStore   ports.CacheStore
	compdbLoader ports.CompDBLoader
	watcher      ports.Watcher
	logger       ports.Logger
	reporter     ports.Reporter
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.Runner,
	cacheStore ports.CacheStore,
	compdbLoader ports.CompDBLoader,
	watcher ports.Watcher,
	log ports.Logger,
	reporter ports.Reporter,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		cacheStore:   cacheStore,
		compdbLoader: compdbLoader,
		watcher:      watcher,
		logger:       log,
		reporter:     reporter,
		tracer:       tracer,
	}
}

// state is the persisted driver state next to the project file.
type state struct {
	Kit string `yaml:"kit"`
}

// openDriver loads the project, resolves the active kit, and returns an
// initialized driver. Callers own the returned driver and must Dispose it.
func (a *App) openDriver(ctx context.Context) (ports.Driver, *ports.Project, error) {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	kit, err := a.activeKit(project)
	if err != nil {
		return nil, nil, err
	}

	d := driver.New(
		driverOptions(project, kit),
		a.runner,
		a.cacheStore,
		a.compdbLoader,
		a.watcher,
		a.logger,
		a.reporter,
		a.tracer,
	)
	if err := d.Initialize(ctx); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to initialize driver")
	}
	return d, project, nil
}

// driverOptions folds the project configuration and the active kit into the
// driver's immutable options: generator selection, kit -D arguments, project
// arguments, and the merged environment.
func driverOptions(project *ports.Project, kit *domain.Kit) driver.Options {
	var baseArgs []string

	generator := project.Generator
	if kit != nil && kit.Generator != "" {
		generator = kit.Generator
	}
	if generator != "" {
		baseArgs = append(baseArgs, "-G", generator)
	}
	if kit != nil {
		baseArgs = append(baseArgs, kit.ConfigureArgs()...)
	}
	baseArgs = append(baseArgs, project.ExtraArgs...)

	env := make(map[string]string, len(project.Environment))
	for k, v := range project.Environment {
		env[k] = v
	}
	if kit != nil {
		for k, v := range kit.Environment {
			env[k] = v
		}
	}

	return driver.Options{
		SourceDir: project.SourceDir,
		BinaryDir: project.BinaryDir,
		Tool:      project.CMakePath,
		BaseArgs:  baseArgs,
		Env:       envSlice(env),
	}
}

// activeKit resolves the persisted kit selection, nil when none is set.
func (a *App) activeKit(project *ports.Project) (*domain.Kit, error) {
	data, err := os.ReadFile(domain.StatePath(project.RootDir)) //nolint:gosec // path inside project root
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read driver state")
	}

	var st state
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, zerr.Wrap(err, "failed to parse driver state")
	}
	if st.Kit == "" {
		return nil, nil
	}

	kits, err := a.configLoader.Kits(".")
	if err != nil {
		return nil, err
	}
	for i := range kits {
		if kits[i].Name == st.Kit {
			return &kits[i], nil
		}
	}
	return nil, zerr.With(domain.ErrKitNotFound, "kit", st.Kit)
}

// ConfigureOptions configuration for the Configure method.
type ConfigureOptions struct {
	// Args are extra arguments inserted before the generated -S/-B pair.
	Args []string
	// Clean requests a clean configure: cache file and intermediate
	// directory are deleted first.
	Clean bool
	// Output receives the tool's interleaved output stream.
	Output io.Writer
}

// Configure runs one configure pass and reports the outcome. A non-zero
// exit code surfaces as ErrConfigureFailed after the captured output has
// been shown.
func (a *App) Configure(ctx context.Context, opts ConfigureOptions) error {
	d, _, err := a.openDriver(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = d.Dispose() }()

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	var code int
	if opts.Clean {
		code, err = d.CleanConfigure(ctx, output)
	} else {
		code, err = d.Configure(ctx, opts.Args, output)
	}
	if err != nil {
		return err
	}

	if code != 0 {
		a.logger.Error(zerr.With(domain.ErrConfigureFailed, "exit_code", code))
		return domain.ErrConfigureFailed
	}

	name := d.ProjectName()
	if name == "" {
		name = "project"
	}
	a.logger.Info(fmt.Sprintf("%s configured %s", name, style.Good.Render(style.Check)))
	return nil
}

// Refresh reloads the driver's derived state after an out-of-band build
// step, without running the configure tool.
func (a *App) Refresh(ctx context.Context) error {
	d, _, err := a.openDriver(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = d.Dispose() }()

	if err := d.PostBuild(ctx); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("reloaded %d cache entries", d.CacheEntries().Len()))
	return nil
}

// Watch keeps a driver alive until ctx is cancelled, reloading on every
// external modification of the cache file.
func (a *App) Watch(ctx context.Context) error {
	d, project, err := a.openDriver(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("watching " + domain.CachePath(project.BinaryDir))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return d.Dispose()
	})
	return g.Wait()
}

// KitList writes the defined kits, marking the active selection.
func (a *App) KitList(_ context.Context, out io.Writer) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	kits, err := a.configLoader.Kits(".")
	if err != nil {
		return err
	}

	active, err := a.activeKit(project)
	if err != nil {
		// A stale selection must not hide the list itself.
		a.logger.Warn("active kit could not be resolved: " + err.Error())
	}

	if len(kits) == 0 {
		_, _ = fmt.Fprintln(out, "no kits defined")
		return nil
	}
	for _, kit := range kits {
		marker := style.Muted.Render(style.Circle)
		if active != nil && active.Name == kit.Name {
			marker = style.Good.Render(style.Dot)
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", marker, kit.Name)
	}
	return nil
}

// KitSet persists a new kit selection and arms the driver for reconfigure.
// When clean is set the binary directory is deleted before the kit applies.
func (a *App) KitSet(ctx context.Context, name string, clean bool) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	kits, err := a.configLoader.Kits(".")
	if err != nil {
		return err
	}

	found := false
	for _, kit := range kits {
		if kit.Name == name {
			found = true
			break
		}
	}
	if !found {
		return zerr.With(domain.ErrKitNotFound, "kit", name)
	}

	d, _, err := a.openDriver(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = d.Dispose() }()

	return d.SetKit(ctx, clean, func(context.Context) error {
		data, err := yaml.Marshal(state{Kit: name})
		if err != nil {
			return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
		}
		path := domain.StatePath(project.RootDir)
		if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
		}
		a.logger.Info("kit set to " + name + ", reconfigure required")
		return nil
	})
}

// CacheOptions configuration for the Cache method.
type CacheOptions struct {
	// All includes advanced and internal entries.
	All bool
	// JSON emits the entries as a JSON array instead of styled text.
	JSON bool
}

// cacheEntryDTO is the JSON shape of one printed cache entry.
type cacheEntryDTO struct {
	Key      string `json:"key"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Doc      string `json:"doc,omitempty"`
	Advanced bool   `json:"advanced,omitempty"`
}

// Cache writes the loaded cache entries to out.
func (a *App) Cache(ctx context.Context, out io.Writer, opts CacheOptions) error {
	d, _, err := a.openDriver(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = d.Dispose() }()

	snapshot := d.CacheEntries()

	visible := make([]domain.CacheEntry, 0, snapshot.Len())
	for _, entry := range snapshot.Entries() {
		if !opts.All && (entry.Advanced || entry.Type == domain.CacheInternal) {
			continue
		}
		visible = append(visible, entry)
	}

	if opts.JSON {
		dtos := make([]cacheEntryDTO, 0, len(visible))
		for _, entry := range visible {
			dtos = append(dtos, cacheEntryDTO{
				Key:      entry.Key,
				Type:     entry.Type.String(),
				Value:    entry.Value,
				Doc:      entry.Doc,
				Advanced: entry.Advanced,
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dtos)
	}

	if snapshot.Len() == 0 {
		_, _ = fmt.Fprintln(out, "no cache loaded; run configure first")
		return nil
	}

	_, _ = fmt.Fprintln(out, style.Header.Render(d.ProjectName()))
	for _, entry := range visible {
		_, _ = fmt.Fprintf(out, "%s%s = %s\n",
			style.Key.Render(entry.Key),
			style.Muted.Render(":"+entry.Type.String()),
			entry.Value,
		)
	}
	return nil
}

// CompileInfo writes the compile command recorded for path, if any.
func (a *App) CompileInfo(ctx context.Context, out io.Writer, path string) error {
	d, _, err := a.openDriver(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = d.Dispose() }()

	cmd, ok, err := d.CompilationInfoForFile(ctx, path)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(out, "no compile command recorded for "+path)
		return nil
	}

	_, _ = fmt.Fprintln(out, style.Muted.Render("directory: ")+cmd.Directory)
	if len(cmd.Arguments) > 0 {
		for _, arg := range cmd.Arguments {
			_, _ = fmt.Fprintln(out, arg)
		}
		return nil
	}
	_, _ = fmt.Fprintln(out, cmd.Command)
	return nil
}

func envSlice(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(env))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
