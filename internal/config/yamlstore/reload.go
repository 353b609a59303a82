package yamlstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// defaultReloadInterval is how often Watcher polls match files for changes.
const defaultReloadInterval = 500 * time.Millisecond

// defaultReloadDebounce coalesces the burst of mtime changes a single save
// produces (editors commonly write-then-rename, or flush in several small
// writes) into one reload instead of one per touched file.
const defaultReloadDebounce = 100 * time.Millisecond

// ReloadHandler is called with the freshly reloaded store whenever any
// watched match file changes, or with a non-nil err if the reload failed
// (the previous store stays in effect in that case — the caller decides
// whether to log it, surface a ProcessingError, or ignore it).
type ReloadHandler func(store *Store, err error)

// Watcher polls basePath and every *.yml file under overrideDir for mtime
// changes and re-runs Loader.Load as a unit whenever one of them changes.
// A match store is always reloaded whole, so Watcher tracks nothing more
// than "did this file's mtime move" — there is no per-file create/write/
// remove taxonomy to report, unlike a general-purpose file watcher.
type Watcher struct {
	loader      *Loader
	basePath    string
	overrideDir string
	onChange    ReloadHandler

	interval time.Duration
	debounce time.Duration

	mu    sync.Mutex
	mtime map[string]time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// Watch builds a Watcher over basePath and overrideDir, reloading the whole
// store via l and invoking onChange whenever any watched file's mtime
// changes. The returned Watcher is not started; call Start/Stop on it.
//
// Espanso's own daemon reloads matches on save rather than requiring a
// restart. mtime polling is the portable way to detect that without a
// platform-specific filesystem-event API, and the matcher needs nothing
// more precise than "one or more of these files changed".
func (l *Loader) Watch(basePath, overrideDir string, onChange ReloadHandler) (*Watcher, error) {
	w := &Watcher{
		loader:      l,
		basePath:    basePath,
		overrideDir: overrideDir,
		onChange:    onChange,
		interval:    defaultReloadInterval,
		debounce:    defaultReloadDebounce,
		mtime:       make(map[string]time.Time),
	}
	if err := w.snapshot(); err != nil {
		return nil, err
	}
	return w, nil
}

// Start begins polling in the background. Calling Start on an already
// running Watcher is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.pollLoop()
}

// Stop halts polling and waits for the background goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Watcher) pollLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var pending bool
	var debounceC <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			changed, err := w.poll()
			if err != nil {
				w.onChange(nil, err)
				continue
			}
			if changed {
				pending = true
				debounceC = time.After(w.debounce)
			}
		case <-debounceC:
			if pending {
				pending = false
				debounceC = nil
				w.reload()
			}
		}
	}
}

// watchedFiles returns basePath plus every *.yml file currently present
// under overrideDir. It is re-globbed on every poll so a newly created
// override file is picked up without a restart.
func (w *Watcher) watchedFiles() ([]string, error) {
	files := []string{w.basePath}
	if w.overrideDir == "" {
		return files, nil
	}
	matches, err := filepath.Glob(filepath.Join(w.overrideDir, "*.yml"))
	if err != nil {
		return nil, err
	}
	return append(files, matches...), nil
}

// snapshot records the current mtime of every watched file without
// triggering a reload, so that the first poll after Watch does not fire
// onChange for files that have not actually changed since Load.
func (w *Watcher) snapshot() error {
	files, err := w.watchedFiles()
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, f := range files {
		w.mtime[f] = statModTime(f)
	}
	return nil
}

// poll checks every watched file's mtime and reports whether anything
// changed since the last poll, updating its own bookkeeping either way.
func (w *Watcher) poll() (bool, error) {
	files, err := w.watchedFiles()
	if err != nil {
		return false, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	changed := false
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f] = true
		mod := statModTime(f)
		if prev, ok := w.mtime[f]; !ok || !mod.Equal(prev) {
			changed = true
		}
		w.mtime[f] = mod
	}
	// A file that disappeared (e.g. an override file removed) also counts
	// as a change worth reloading for.
	for f := range w.mtime {
		if !seen[f] {
			delete(w.mtime, f)
			changed = true
		}
	}
	return changed, nil
}

func (w *Watcher) reload() {
	store, err := w.loader.Load(w.basePath, w.overrideDir)
	w.onChange(store, err)
}

// statModTime returns path's mtime, or the zero Time if it doesn't exist
// (yet, or anymore) — both states are watched for rather than treated as
// errors, since a match file may not exist until the user creates it.
func statModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
