package runner

import (
	"context"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// watch runs the selected mode over files once, then again each time one of
// them changes, until ctx is canceled. The parent directories are watched
// rather than the files so that editors which save by rename are followed.
func (r *run) watch(ctx context.Context, files []string) int {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		writeErr(r.opts.Stderr, "hyprconf: starting watcher: %v\n", err)
		return ExitError
	}
	defer w.Close()

	targets := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			writeErr(r.opts.Stderr, "hyprconf: %v\n", err)
			return ExitError
		}
		targets[abs] = true
	}
	for _, dir := range watchDirs(targets) {
		if err := w.Add(dir); err != nil {
			writeErr(r.opts.Stderr, "hyprconf: watching %s: %v\n", dir, err)
			return ExitError
		}
	}

	for _, f := range files {
		r.file(f)
	}

	r.log.Info("watching for changes", "files", len(files))
	err = watchLoop(ctx, w.Events, w.Errors, targets, watchDebounce, r.log, func(path string) {
		r.log.Debug("file changed", "file", path)
		r.file(path)
	})
	if err != nil {
		writeErr(r.opts.Stderr, "hyprconf: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func watchDirs(targets map[string]bool) []string {
	dirs := make(map[string]bool, len(targets))
	for path := range targets {
		dirs[filepath.Dir(path)] = true
	}
	return slices.Sorted(maps.Keys(dirs))
}

// watchLoop consumes watcher events until ctx is done or a channel closes.
// Write and create events on a target path are collected and, once
// no new event has arrived for debounce, onChange is called for each
// pending path in sorted order. Watcher errors are logged and otherwise
// ignored.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	targets map[string]bool,
	debounce time.Duration,
	log *slog.Logger,
	onChange func(path string),
) error {
	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if !targets[path] {
				continue
			}
			pending[path] = true
			timer.Reset(debounce)

		case <-timer.C:
			for _, path := range slices.Sorted(maps.Keys(pending)) {
				onChange(path)
			}
			clear(pending)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		}
	}
}
