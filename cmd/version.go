package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the size of the built-in rule catalogs.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
			} else {
				cmd.Println("tool version\t", info.Main.Version)
				cmd.Println("go version\t", info.GoVersion)
			}

			total := 0
			for _, d := range m.AllDomains {
				total += rules.MustFor(d).Len()
			}

			cmd.Println("rules\t\t", total)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
