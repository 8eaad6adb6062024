package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reposync/reposync/cmd/pull"
	"github.com/reposync/reposync/cmd/push"
	"github.com/reposync/reposync/cmd/util"
	"github.com/reposync/reposync/cmd/version"
)

// Execute runs the main CLI process.
func Execute() {
	rootCmd := &cobra.Command{
		Use:          "reposync",
		Short:        "Sync a git work tree with a remote host",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors:    true,
		PersistentPreRun: setupLogging,
	}
	rootCmd.PersistentFlags().StringP("local-dir", "l", "",
		"path to the local work tree (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"enable verbose logging")
	rootCmd.PersistentFlags().BoolP("dry-run", "n", false,
		"print the sync plan instead of executing it")
	rootCmd.AddCommand(
		pull.New(),
		push.New(),
		version.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}

func setupLogging(cmd *cobra.Command, _ []string) {
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		log.SetLevel(log.DebugLevel)
	}
}
