package push

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reposync/reposync/cmd/util"
	"github.com/reposync/reposync/pkg/remote"
	"github.com/reposync/reposync/pkg/sync"
)

// New creates a new `push` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "push [HOST:PATH]",
		Short: "Upload the local work tree to the remote host",
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

	plan := sync.Reconcile(local, remoteTree)
	if opts.DryRun {
		for _, line := range plan.Describe(opts.LocalDir, opts.Remote.String()) {
			fmt.Println(line)
		}
		return nil
	}

	session := remote.NewSession(opts.Remote.Host)
	if err := plan.Push(opts.LocalDir, opts.Remote.Dir, session); err != nil {
		return err
	}
	util.LogSummary(plan, opts.Remote.Host.String())
	return nil
}
