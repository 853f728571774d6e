// Package cmd provides the root command and CLI setup for codeguard.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeguard.dev/pkg/codeguard/internal/adapter"
	"codeguard.dev/pkg/codeguard/internal/controller"
	"codeguard.dev/pkg/codeguard/internal/domain"
	m "codeguard.dev/pkg/codeguard/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var resultStore adapter.ResultStore
var diagnostics *adapter.MemoryDiagnostics
var scanners domain.Scanners
var analyzer *domain.Analyzer
var orchestrator domain.WorkspaceOrchestrator

// newUI picks the presentation for a command. Swapped out in tests.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
}

// errThresholdExceeded is returned when findings reach the --fail-on tier.
var errThresholdExceeded = errors.New("severity threshold exceeded")

var (
	excludePatterns []string
	includePatterns []string
	maxFileSizeFlag int64
	depthFlag       int
	concurrencyFlag int
	formatFlag      string
	failOnFlag      string
	verboseFlag     bool
	logFileFlag     string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	resultStore = adapter.NewResultStore()
	diagnostics = adapter.NewMemoryDiagnostics()
	scanners = domain.NewScanners()
	analyzer = domain.NewAnalyzer(scanners)
	orchestrator = domain.NewWorkspaceOrchestrator(fsAdapter, resultStore, diagnostics, scanners)
}

const globHelp = `Include and exclude patterns are doublestar globs relative to each folder:
  - **/*.js               every JavaScript file
  - **/*.{py,rb}          Python and Ruby files
  - **/fixtures/**        everything below any fixtures directory`

const rootLongDescription = `Codeguard scans source text for security vulnerabilities, leaked secrets
and code-quality issues using curated pattern catalogs, and aggregates the
results per file across whole workspaces.

` + globHelp

const scanLongDescription = `Scan workspace folders (default: current directory) and report every file
with findings.

` + globHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codeguard",
		Short: "Pattern-based security, secret and quality scanner",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringArrayVarP(&includePatterns, includeFlagName, "i", nil, "only scan files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(includeFlagName), includeConfigKey)

	flags.Int64Var(&maxFileSizeFlag, maxFileSizeFlagName, domain.DefaultMaxFileSize, "skip files larger than this many bytes")
	bindFlagToConfig(flags.Lookup(maxFileSizeFlagName), maxFileSizeConfigKey)

	flags.IntVar(&depthFlag, depthFlagName, 0, "maximum directory depth below each folder (0 = unlimited)")
	bindFlagToConfig(flags.Lookup(depthFlagName), depthConfigKey)

	flags.IntVar(&concurrencyFlag, concurrencyFlagName, domain.DefaultFolderConcurrency, "number of folders scanned concurrently")
	bindFlagToConfig(flags.Lookup(concurrencyFlagName), concurrencyConfigKey)

	flags.StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "output format: table or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.StringVar(&failOnFlag, failOnFlagName, defaultFailOn, "exit with an error when findings reach this severity (low, medium, high, critical, none)")
	bindFlagToConfig(flags.Lookup(failOnFlagName), failOnConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "enable debug logging")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// resolveRoots turns folder arguments into absolute paths, defaulting to the
// working directory.
func resolveRoots(args []string) ([]m.Path, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	roots := make([]m.Path, 0, len(args))

	for _, p := range parsePaths(args) {
		abs, err := filepath.Abs(string(p))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}

		roots = append(roots, m.Path(abs))
	}

	return roots, nil
}

// scanOptionsFromConfig builds workspace options from flags, env and config.
func scanOptionsFromConfig(roots []m.Path) m.WorkspaceScanOptions {
	return m.WorkspaceScanOptions{
		Roots:             roots,
		IncludePatterns:   viper.GetStringSlice(includeConfigKey),
		ExcludePatterns:   viper.GetStringSlice(excludeConfigKey),
		MaxFileSizeBytes:  viper.GetInt64(maxFileSizeConfigKey),
		ScanDepth:         viper.GetInt(depthConfigKey),
		FolderConcurrency: viper.GetInt(concurrencyConfigKey),
		BatchSize:         viper.GetInt(batchSizeConfigKey),
		Yield:             viper.GetDuration(yieldConfigKey),
		AutoScan:          viper.GetBool(autoScanConfigKey),
		ScanOnSave:        viper.GetBool(scanOnSaveConfigKey),
	}
}

// parseFailOn returns the gate severity; ok is false when the gate is off.
func parseFailOn(value string) (m.Severity, bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "off":
		return m.SeverityLow, false, nil
	}

	severity, err := m.ParseSeverity(value)
	if err != nil {
		return m.SeverityLow, false, fmt.Errorf("invalid --%s value: %w", failOnFlagName, err)
	}

	return severity, true, nil
}

// checkThreshold fails when there are findings at or above the gate.
func checkThreshold(severity m.Severity, hasFindings bool, failOn string) error {
	gate, enabled, err := parseFailOn(failOn)
	if err != nil {
		return err
	}

	if !enabled || !hasFindings || !severity.AtLeast(gate) {
		return nil
	}

	return fmt.Errorf("%w: %s >= %s", errThresholdExceeded, severity, gate)
}

func outputFormat() (string, error) {
	format := strings.ToLower(strings.TrimSpace(viper.GetString(formatConfigKey)))
	switch format {
	case "", formatTable:
		return formatTable, nil
	case formatYAML:
		return formatYAML, nil
	}

	return "", fmt.Errorf("unsupported output format %q", format)
}
