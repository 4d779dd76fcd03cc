package cli

import (
	"os"
	"path/filepath"

	"github.com/jrebirth-labs/jrforge/internal/branding"
	"github.com/jrebirth-labs/jrforge/internal/config"
	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	projectPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up JRebirth on a Java project and generates the
boilerplate of models, views, controllers, commands, services and resources.

Run without a sub-command to see whether JRebirth is installed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLoggingTo(cmd.ErrOrStderr(), verbose)
		config.Load()
	},
	RunE: runStatus,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", ".", "Project directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openProject(cmd)
	if err != nil {
		return err
	}
	s.coordinator(cmd).Status(s.descriptor)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if filepath.Base(os.Args[0]) == branding.Alias() {
		rootCmd.Use = branding.Alias()
	}

	if err := rootCmd.Execute(); err != nil {
		newReporter(os.Stderr).Error("Error: %v", err)
		return err
	}
	return nil
}
