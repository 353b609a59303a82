// Package main is the entry point for the espanso daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/espanso/espanso-core/internal/builtin"
	"github.com/espanso/espanso-core/internal/config/yamlstore"
	"github.com/espanso/espanso-core/internal/corelog"
	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/dispatch/executor"
	"github.com/espanso/espanso-core/internal/drivers/termsim"
	"github.com/espanso/espanso-core/internal/engine"
	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/funnel"
	"github.com/espanso/espanso-core/internal/matcher"
	"github.com/espanso/espanso-core/internal/middleware"
	"github.com/espanso/espanso-core/internal/render"
	"github.com/espanso/espanso-core/internal/render/ext/date"
	"github.com/espanso/espanso-core/internal/render/ext/echo"
	"github.com/espanso/espanso-core/internal/render/ext/json"
	"github.com/espanso/espanso-core/internal/render/ext/random"
	"github.com/espanso/espanso-core/internal/render/ext/shell"
	"github.com/espanso/espanso-core/internal/state"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date_   = "unknown"
)

// options holds parsed command-line flags.
type options struct {
	ConfigPath  string
	MatchPath   string
	OverrideDir string
	Debug       bool
	LogLevel    string
	ReadOnly    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := corelog.New(os.Stderr, parseLevel(opts.LogLevel, opts.Debug))

	store, err := loadStore(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load matches: %v\n", err)
		return 1
	}

	reloaded := make(chan *yamlstore.Store, 1)
	if opts.MatchPath != "" {
		w, err := yamlstore.NewLoader().Watch(opts.MatchPath, opts.OverrideDir, func(s *yamlstore.Store, err error) {
			if err != nil {
				logger.Errorf("reload failed: %v", err)
				return
			}
			reloaded <- s
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch matches: %v\n", err)
			return 1
		}
		w.Start()
		defer w.Stop()
	}

	driver, err := termsim.New(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start terminal driver: %v\n", err)
		return 1
	}
	defer driver.Stop()
	if err := driver.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start terminal driver: %v\n", err)
		return 1
	}

	modifiers := state.NewModifierTracker()
	detector := termsim.NewDetector(driver, modifiers)
	go detector.Run()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	exitSource, stopExitSource := signalSource(signals)
	defer stopExitSource()

	matchCache, err := state.NewMatchCache(store.Resolve(yamlstore.AppInfo{}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: duplicate match id: %v\n", err)
		return 1
	}

	engineEnabled := state.NewEnabledFlag(!opts.ReadOnly)

	chain, err := buildChain(opts, matchCache, engineEnabled, modifiers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to assemble middleware chain: %v\n", err)
		return 1
	}

	dispatcher := dispatch.NewWithDefaults()
	dispatcher.RegisterAll(dispatch.Executors{
		Text:        executor.NewText(driver),
		Html:        executor.NewHtml(driver),
		Image:       executor.NewImage(driver),
		KeySequence: executor.NewKeySequence(driver),
		ContextMenu: executor.NewContextMenu(driver),
		Icon:        executor.NewIcon(driver),
		TextUI:      executor.NewTextUI(driver),
		SecureInput: executor.NewSecureInput(driver),
		OpenConfig:  executor.NewOpenConfig(driver),
	})

	queue := funnel.NewQueue()
	f, err := funnel.New([]funnel.Source{detector.Source(), exitSource}, queue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to assemble funnel: %v\n", err)
		return 1
	}

	eng, err := engine.New(f, queue, chain, dispatcher, engine.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build engine: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// TODO: swap the running chain's matcher/renderer/cache in place on
	// reload instead of only logging it; that needs the chain's match
	// lookups routed through an indirection this build doesn't have yet.
	go func() {
		for {
			select {
			case s, ok := <-reloaded:
				if !ok {
					return
				}
				logger.Infof("matches reloaded: %d resolved", len(s.Resolve(yamlstore.AppInfo{})))
			case <-ctx.Done():
				return
			}
		}
	}()

	mode := eng.Run(ctx)
	detector.Stop()
	if mode == event.RestartWorker {
		logger.Infof("exiting for restart")
	}
	return 0
}

// loadStore reads the configured match files into a yamlstore.Store. With
// no explicit match path it falls back to an empty store, so the daemon
// is still runnable (and testable end-to-end via the search bar and
// built-ins) with no configuration on disk at all.
func loadStore(opts options) (*yamlstore.Store, error) {
	if opts.MatchPath == "" {
		return &yamlstore.Store{}, nil
	}
	loader := yamlstore.NewLoader()
	return loader.Load(opts.MatchPath, opts.OverrideDir)
}

// buildChain assembles the 20 canonical middleware stages plus the
// built-in-match stage, in the order spec §4.2 describes.
func buildChain(opts options, cache *state.MatchCache, enabled *state.EnabledFlag, modifiers *state.ModifierTracker) (*middleware.Chain, error) {
	m, err := matcher.New(cache.All())
	if err != nil {
		return nil, fmt.Errorf("build matcher: %w", err)
	}

	renderer := render.New(cache.All(), nil,
		echo.New(),
		shell.New(),
		json.New(),
		date.New(time.Now),
		random.New(nil),
	)

	registry, err := builtin.NewRegistry(builtin.Catalog(builtin.SearchOptions{}))
	if err != nil {
		return nil, fmt.Errorf("build builtin registry: %w", err)
	}
	builtinCtx := daemonContext{configPath: opts.ConfigPath, cache: cache}
	builtinStage := builtin.NewStage(registry, builtinCtx)

	var nextID atomic.Uint64
	allocator := middleware.NextSourceID(func() event.SourceID {
		return event.SourceID(nextID.Add(1))
	})

	searchable := make([]event.DetectedMatch, 0, cache.Count())
	for _, mt := range cache.All() {
		searchable = append(searchable, event.DetectedMatch{ID: mt.ID})
	}

	suppressed := middleware.SuppressFunc(func() (middleware.AppContext, bool) {
		return middleware.AppContext{}, !enabled.Enabled()
	})

	return middleware.New(
		middleware.NewPastEventsDiscard(),
		middleware.NewDisable(),
		middleware.NewIconStatus(),
		middleware.NewMatchExecRequest(),
		middleware.NewAltCodeSynthesizer(),
		middleware.NewMatcherStageFrom(m),
		middleware.NewSuppress(suppressed),
		middleware.NewMatchSelect(nil, nil),
		middleware.NewCauseCompensate(),
		builtinStage,
		middleware.NewMultiplex(cache.Lookup),
		middleware.NewRenderStage(cache.Lookup, renderer),
		middleware.NewMarkdown(),
		middleware.NewImageResolver(opts.ConfigPath),
		middleware.NewAction(allocator),
		middleware.NewDelayForModifierRelease(modifiers),
		middleware.NewUndo(),
		middleware.NewContextMenu(),
		middleware.NewSearch(searchable),
		middleware.NewNotification(nil),
		middleware.NewExit(),
	), nil
}

// daemonContext answers builtin.Context from the daemon's own match cache
// and configuration path; there is no richer per-app config resolution
// wired up yet (see DESIGN.md).
type daemonContext struct {
	configPath string
	cache      *state.MatchCache
}

func (d daemonContext) ActiveConfigInfo() (string, error) {
	return fmt.Sprintf("config: %s (%d matches loaded)", d.configPath, d.cache.Count()), nil
}

func (daemonContext) ActiveAppInfo() (string, error) {
	return "app: unknown (termsim has no window-focus concept)", nil
}

// signalSource bridges OS signals into the funnel as a regular Source,
// the same pattern as every other raw-event origin (spec §4.1 treats the
// exit signal as just another source).
func signalSource(signals <-chan os.Signal) (funnel.Source, func()) {
	out := make(chan event.Type, 1)
	done := make(chan struct{})
	go func() {
		select {
		case <-signals:
			out <- event.ExitRequested{Mode: event.ExitAllProcesses}
			close(out)
		case <-done:
			close(out)
		}
	}()
	return funnel.Source{Name: "signals", C: out}, func() { close(done) }
}

// parseLevel maps the validated -log-level string to a corelog.Level,
// with -debug forcing LevelDebug regardless of -log-level.
func parseLevel(name string, debug bool) corelog.Level {
	if debug {
		return corelog.LevelDebug
	}
	switch name {
	case "debug":
		return corelog.LevelDebug
	case "warn":
		return corelog.LevelWarn
	case "error":
		return corelog.LevelError
	default:
		return corelog.LevelInfo
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to the config directory")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to the config directory (shorthand)")
	flag.StringVar(&opts.MatchPath, "matches", "", "Path to the base match file")
	flag.StringVar(&opts.MatchPath, "m", "", "Path to the base match file (shorthand)")
	flag.StringVar(&opts.OverrideDir, "overrides", "", "Directory of per-app override match files")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.ReadOnly, "readonly", false, "Start with expansion disabled")
	flag.BoolVar(&opts.ReadOnly, "R", false, "Start with expansion disabled (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "espansod - text expansion daemon\n\n")
		fmt.Fprintf(os.Stderr, "Usage: espansod [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  espansod -m ./base.yml                 Run with a base match file\n")
		fmt.Fprintf(os.Stderr, "  espansod -m ./base.yml -overrides ./apps  Run with per-app overrides\n")
		fmt.Fprintf(os.Stderr, "  espansod -R                            Start with expansion disabled\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("espansod %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date_)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if opts.ConfigPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ConfigPath = filepath.Join(home, ".config", "espanso")
		}
	}

	return opts
}
