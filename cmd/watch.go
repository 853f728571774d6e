package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeguard.dev/pkg/codeguard/internal/adapter"
	"codeguard.dev/pkg/codeguard/internal/controller"
	"codeguard.dev/pkg/codeguard/internal/domain"
	m "codeguard.dev/pkg/codeguard/internal/model"
)

var debounceFlag time.Duration

// newFileWatcher creates the watcher used by the watch command. Swapped out
// in tests.
var newFileWatcher = func(roots []m.Path, exclude []string, debounce time.Duration) (adapter.FileWatcher, error) {
	return adapter.NewFSNotifyWatcher(roots, exclude, debounce)
}

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Scan workspace folders and rescan files as they change",
		Long: `Run a full workspace scan, then keep watching the folders and rescan
created or modified files. Deleted files drop their findings. Stop with Ctrl+C.

` + globHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := resolveRoots(args)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := scanOptionsFromConfig(roots)

			ui := newUI(cmd)
			if err := ui.Start(ctx, controller.WithWatchMode()); err != nil {
				return err
			}
			defer ui.Close(ctx)

			ui.DisplayScanStarted(ctx, roots)

			if _, err := orchestrator.ScanWorkspace(ctx, opts); err != nil {
				return fmt.Errorf("workspace scan failed: %w", err)
			}

			if err := ui.DisplayWorkspaceSummary(ctx, orchestrator.Summary()); err != nil {
				return err
			}

			watcher, err := newFileWatcher(roots, domain.MergeExcludePatterns(opts.ExcludePatterns), viper.GetDuration(debounceConfigKey))
			if err != nil {
				return err
			}
			defer watcher.Close()

			unsubscribe := diagnostics.Subscribe(func(path m.Path, diags []m.Diagnostic) {
				ui.DisplayFileUpdate(ctx, path, diags)
			})
			defer unsubscribe()

			slog.Info("Watching workspace", "roots", roots)

			return watchLoop(ctx, watcher, orchestrator)
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&debounceFlag, debounceFlagName, adapter.DefaultDebounce, "quiet period before a changed file is rescanned")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), debounceConfigKey)
}

// watchLoop forwards watcher events to the orchestrator until ctx is done or
// the watcher stops.
func watchLoop(ctx context.Context, watcher adapter.FileWatcher, o domain.WorkspaceOrchestrator) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}

			if err := o.HandleEvent(ctx, event); err != nil {
				slog.Warn("Failed to handle file event", "path", event.Path, "op", event.Op, "error", err)
			}

		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}

			slog.Warn("Watcher error", "error", err)
		}
	}
}
