package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/LegacyCodeHQ/incmap/cmd/scan"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":    true,
	".svn":    true,
	"build":   true,
	"out":     true,
	".cache":  true,
	".idea":   true,
	".vscode": true,
}

var watchedExtensions = map[string]bool{
	".h":   true,
	".hpp": true,
	".hh":  true,
	".c":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
}

type watchOptions struct {
	rootFile    string
	includeDirs []string
	format      string
	outputFile  string
	verbose     bool
	stdout      io.Writer
}

func watchAndRebuild(ctx context.Context, opts *watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	roots := []string{filepath.Dir(opts.rootFile)}
	for _, spec := range scan.ParseDirSpecs(opts.includeDirs) {
		roots = append(roots, spec.Path)
	}
	for _, root := range roots {
		if err := addWatchDirs(watcher, root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	// Created stopped so the first tick only happens after a relevant event.
	// Rebuilds run on this goroutine, so publishes never overlap.
	debounce := time.NewTimer(debounceInterval)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-debounce.C:
			publishGraph(opts)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(debounceInterval)

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}

func publishGraph(opts *watchOptions) {
	output, err := scan.Run(opts.rootFile, opts.includeDirs, opts.format, opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
		return
	}

	if err := scan.Emit(output, opts.outputFile, opts.stdout); err != nil {
		fmt.Fprintf(os.Stderr, "failed to emit graph: %v\n", err)
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if skippedDirs[filepath.Base(path)] {
		return
	}
	if err := addWatchDirs(watcher, path); err != nil {
		fmt.Fprintf(os.Stderr, "failed to watch %s: %v\n", path, err)
	}
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	if watchedExtensions[ext] {
		return true
	}

	// Directory creations carry no extension but may bring new headers.
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		return err == nil && info.IsDir()
	}
	return false
}
