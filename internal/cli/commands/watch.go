package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Re-check files whenever they change",
		Long: `Check the given files once, then again each time one of them is saved.
Stops on Ctrl-C.`,
		Example: `  pinelint watch indicator.pine`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, args, opts)
		},
	}

	AddCheckFlags(cmd, opts)
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	logger := cmdCtx.Logger

	analyzer, err := newAnalyzer(cmdCtx, opts)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Directories are watched rather than files so that editors which
	// save by rename keep being tracked.
	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	check := func(targets []string) error {
		results, err := checkFiles(ctx, analyzer, targets, jobsFor(cmdCtx.Cfg, opts), logger)
		if err != nil {
			return err
		}
		return cmdCtx.Renderer.CheckResults(results)
	}

	if err := check(paths); err != nil {
		return err
	}
	logger.Info("watching for changes", "files", len(paths))

	pending := make(map[string]bool)
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			orig, tracked := watched[filepath.Clean(ev.Name)]
			if !tracked || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("file changed", "path", orig, "op", ev.Op.String())
			pending[orig] = true
			fire = time.After(watchDebounce)

		case <-fire:
			fire = nil
			targets := make([]string, 0, len(pending))
			for p := range pending {
				targets = append(targets, p)
			}
			clear(pending)
			sort.Strings(targets)

			cmdCtx.Renderer.Println("")
			if err := check(targets); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}
