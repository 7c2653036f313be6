package main

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	cookbook "github.com/senz/cookbook"
	"github.com/senz/cookbook/internal/config"
)

// watchDebounce is how long the watcher waits after the last filesystem
// event before rebuilding. Editors emit bursts of events per save.
const watchDebounce = 500 * time.Millisecond

// runWatchCmd regenerates the book whenever a recipe changes, until the
// context is cancelled. Returns an exit code.
func runWatchCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	cfg, err := loadConfig(flags.generate.common.config, env)
	if err != nil {
		return reportError(env, err)
	}
	mergeBookFlags(&flags.generate.book, cfg)

	sourceDir, output := resolveGeneratePaths(&flags.generate, positional, cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return reportError(env, fmt.Errorf("creating watcher: %w", err))
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, sourceDir); err != nil {
		return reportError(env, err)
	}

	if !flags.generate.common.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s (Ctrl+C to stop)\n", sourceDir)
	}

	rebuild := func() {
		if err := rebuildEditions(ctx, sourceDir, output, cfg, flags, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return
		}
		if !flags.generate.common.quiet {
			fmt.Fprintf(env.Stdout, "Rebuilt %s\n", output)
		}
	}
	rebuild()

	return watchLoop(ctx, watcher, env, flags.generate.common, watchDebounce, rebuild)
}

// watchLoop dispatches filesystem events, debouncing rebuilds. A timer
// is armed per burst and reset on every event; Reset discards an
// undelivered fire, so one burst means one rebuild. New directories are
// added to the watch set as they appear.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, env *Environment, common commonFlags, debounce time.Duration, rebuild func()) int {
	var pending *time.Timer
	var pendingC <-chan time.Time
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if !common.quiet {
				fmt.Fprintln(env.Stdout, "Stopped watching")
			}
			return ExitSuccess

		case event, ok := <-watcher.Events:
			if !ok {
				return ExitSuccess
			}
			if !relevantEvent(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// Best effort; the path may already be gone.
				_ = watchRecursive(watcher, event.Name)
			}
			if common.verbose {
				fmt.Fprintf(env.Stderr, "change: %s\n", event.Name)
			}
			if pending == nil {
				pending = time.NewTimer(debounce)
				pendingC = pending.C
			} else {
				pending.Reset(debounce)
			}

		case <-pendingC:
			pending = nil
			pendingC = nil
			rebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return ExitSuccess
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", err)
		}
	}
}

// relevantEvent reports whether an event should trigger a rebuild.
// Recipe sources and sibling images count; everything else is noise.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	switch ext {
	case ".cook", ".jpg", ".jpeg", ".png":
		return true
	case "":
		// Directory create/remove.
		return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove)
	}
	return false
}

// watchRecursive adds path and every directory below it to the watcher.
// Non-directory paths are ignored.
func watchRecursive(watcher *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}

// rebuildEditions regenerates the .tex book and, when requested, the HTML
// edition.
func rebuildEditions(ctx context.Context, sourceDir, output string, cfg *config.Config, flags *watchFlags, env *Environment) error {
	if err := generate(ctx, sourceDir, output, cfg, &flags.generate, env); err != nil {
		return err
	}
	if !flags.html {
		return nil
	}

	gen := cookbook.NewHTMLGenerator(bookFromConfig(cfg))
	gen.Cook = &cookbook.Cook{Bin: cfg.Tools.Cook, Runner: env.Runner}
	return gen.Generate(ctx, sourceDir, cfg.Output.HTMLFile)
}
