package cli

import (
	"github.com/hostkit-labs/hostkit/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "hostkit",
	Short: "Extension metadata manager for host applications",
	Long: `Hostkit validates the declared metadata of a host application's installed
extensions (plugins, drivers): each extension's configuration schema must be
well-formed, uniquely attributable, and non-conflicting across the installed
set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
