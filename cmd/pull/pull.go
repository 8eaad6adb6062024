package pull

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reposync/reposync/cmd/util"
	"github.com/reposync/reposync/pkg/remote"
	"github.com/reposync/reposync/pkg/sync"
)

// New creates a new `pull` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "pull [HOST:PATH]",
		Short: "Download the remote work tree to the local directory",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts, err := util.ParseSyncOptions(cmd, args)
			if err != nil {
				util.HandleFatalError(err)
			}
			if err := run(opts); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run(opts util.SyncOptions) error {
	local, remoteTree, err := util.ScanTrees(opts)
	if err != nil {
		return err
	}

	plan := sync.Reconcile(remoteTree, local)
	if opts.DryRun {
		for _, line := range plan.Describe(opts.Remote.String(), opts.LocalDir) {
			fmt.Println(line)
		}
		return nil
	}

	session := remote.NewSession(opts.Remote.Host)
	if err := plan.Pull(opts.LocalDir, opts.Remote.Dir, session); err != nil {
		return err
	}
	util.LogSummary(plan, "local host")
	return nil
}
