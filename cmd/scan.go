package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeguard.dev/pkg/codeguard/internal/controller"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan workspace folders for vulnerabilities, secrets and quality issues",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			roots, err := resolveRoots(args)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := scanOptionsFromConfig(roots)

			var ui controller.UI
			if format == formatTable {
				ui = newUI(cmd)
				if err := ui.Start(ctx, controller.WithScanMode()); err != nil {
					return err
				}
				defer ui.Close(ctx)

				ui.DisplayScanStarted(ctx, roots)
			}

			if _, err := orchestrator.ScanWorkspace(ctx, opts); err != nil {
				return fmt.Errorf("workspace scan failed: %w", err)
			}

			summary := orchestrator.Summary()

			if format == formatYAML {
				err = writeYAML(cmd.OutOrStdout(), newSummaryDocument(summary))
			} else {
				err = ui.DisplayWorkspaceSummary(ctx, summary)
				ui.Wait(ctx)
			}

			if err != nil {
				return err
			}

			return checkThreshold(summary.Severity, summary.FilesWithFindings > 0, viper.GetString(failOnConfigKey))
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
