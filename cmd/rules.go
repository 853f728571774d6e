package cmd

import (
	"github.com/spf13/cobra"

	"codeguard.dev/pkg/codeguard/internal/controller"
	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [domain]",
		Short: "List the built-in rule catalogs",
		Long: `List every rule of the built-in catalogs, or only those of one domain
(security, secrets, quality, devops, database, fullstack).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			catalogs, err := selectCatalogs(args)
			if err != nil {
				return err
			}

			if format == formatYAML {
				return writeYAML(cmd.OutOrStdout(), ruleDocuments(catalogs))
			}

			ctx := cmd.Context()

			ui := newUI(cmd)
			if err := ui.Start(ctx, controller.WithScanMode()); err != nil {
				return err
			}
			defer ui.Close(ctx)

			if err := ui.DisplayRules(ctx, catalogs); err != nil {
				return err
			}

			ui.Wait(ctx)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func selectCatalogs(args []string) ([]rules.Catalog, error) {
	domains := m.AllDomains
	if len(args) == 1 {
		selected, err := parseDomains(args)
		if err != nil {
			return nil, err
		}

		domains = selected
	}

	catalogs := make([]rules.Catalog, 0, len(domains))

	for _, d := range domains {
		catalog, err := rules.For(d)
		if err != nil {
			return nil, err
		}

		catalogs = append(catalogs, catalog)
	}

	return catalogs, nil
}
