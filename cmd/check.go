package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeguard.dev/pkg/codeguard/internal/controller"
	"codeguard.dev/pkg/codeguard/internal/domain"
	m "codeguard.dev/pkg/codeguard/internal/model"
)

const stdinArg = "-"

var checkDomainsFlag []string
var checkContextFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Scan a single file or standard input with every domain scanner",
		Long: `Run the security, secrets, quality, devops, database and fullstack scanners
over one text buffer. Reads standard input when no file (or "-") is given.

--context selects context-specific rules, for example mysql, terraform or react.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			source, text, err := readCheckInput(cmd, args)
			if err != nil {
				return err
			}

			domains, err := parseDomains(viper.GetStringSlice(domainConfigKey))
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			ctx := cmd.Context()

			result, err := analyzer.Analyze(ctx, string(text), viper.GetString(contextConfigKey), domains...)
			if err != nil {
				return err
			}

			if format == formatYAML {
				err = writeYAML(cmd.OutOrStdout(), result)
			} else {
				ui := newUI(cmd)
				if err := ui.Start(ctx, controller.WithScanMode()); err != nil {
					return err
				}
				defer ui.Close(ctx)

				err = ui.DisplayScanResult(ctx, source, result)
				ui.Wait(ctx)
			}

			if err != nil {
				return err
			}

			return checkThreshold(result.Severity, len(result.AllFindings()) > 0, viper.GetString(failOnConfigKey))
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&checkDomainsFlag, domainFlagName, "d", nil, "domains to run (default: all)")
	bindFlagToConfig(cmd.Flags().Lookup(domainFlagName), domainConfigKey)

	cmd.Flags().StringVarP(&checkContextFlag, contextFlagName, "c", "", "scan context, e.g. mysql, kubernetes, react")
	bindFlagToConfig(cmd.Flags().Lookup(contextFlagName), contextConfigKey)
}

func readCheckInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == stdinArg {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return "stdin", text, nil
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	return args[0], text, nil
}

// parseDomains validates domain names. An empty list selects every domain.
func parseDomains(values []string) ([]m.Domain, error) {
	domains := make([]m.Domain, 0, len(values))

	for _, v := range values {
		d := m.Domain(strings.ToLower(strings.TrimSpace(v)))
		if !slices.Contains(m.AllDomains, d) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, v)
		}

		domains = append(domains, d)
	}

	return domains, nil
}
