package util

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reposync/reposync/pkg/config"
	"github.com/reposync/reposync/pkg/errors"
	"github.com/reposync/reposync/pkg/remote"
	"github.com/reposync/reposync/pkg/scan"
	"github.com/reposync/reposync/pkg/sync"
)

// SyncOptions are the resolved inputs shared by the push and pull commands.
type SyncOptions struct {
	LocalDir string
	Remote   remote.Remote
	DryRun   bool
}

// ParseSyncOptions resolves the global flags and the remote descriptor for a
// sync command. When no HOST:PATH argument is given, the remote from the
// user config is used instead.
func ParseSyncOptions(cmd *cobra.Command, args []string) (SyncOptions, error) {
	localDir, err := cmd.Flags().GetString("local-dir")
	if err != nil {
		return SyncOptions{}, errors.WithContext(err, "parse local-dir flag")
	}
	if localDir == "" {
		localDir, err = os.Getwd()
		if err != nil {
			return SyncOptions{}, errors.WithContext(err, "determine current directory")
		}
	}
	localDir, err = homedir.Expand(localDir)
	if err != nil {
		return SyncOptions{}, errors.WithContext(err, "expand local directory")
	}
	if len(localDir) > 1 {
		localDir = strings.TrimSuffix(localDir, string(os.PathSeparator))
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return SyncOptions{}, errors.WithContext(err, "parse dry-run flag")
	}

	descriptor, err := resolveRemoteDescriptor(args)
	if err != nil {
		return SyncOptions{}, err
	}
	rmt, err := remote.Parse(descriptor)
	if err != nil {
		return SyncOptions{}, err
	}

	return SyncOptions{
		LocalDir: localDir,
		Remote:   rmt,
		DryRun:   dryRun,
	}, nil
}

func resolveRemoteDescriptor(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	userConfig, err := config.ParseUser()
	if err != nil {
		if _, ok := errors.RootCause(err).(errors.FileNotFound); ok {
			return "", errors.NewFriendlyError(
				"no remote specified.\n"+
					"Pass a HOST:PATH argument, or set `remote` in %s.",
				config.UserConfigPath)
		}
		return "", errors.WithContext(err, "parse user config")
	}
	if userConfig.Remote == "" {
		return "", errors.NewFriendlyError(
			"no remote specified.\n"+
				"Pass a HOST:PATH argument, or set `remote` in %s.",
			config.UserConfigPath)
	}
	return userConfig.Remote, nil
}

// ScanTrees snapshots both sync endpoints and filters each through the local
// work tree's gitignore rules.
func ScanTrees(opts SyncOptions) (local, remoteTree sync.Snapshot, err error) {
	local, err = scan.Local(opts.LocalDir)
	if err != nil {
		return sync.Snapshot{}, sync.Snapshot{}, errors.WithContext(err, "scan local directory")
	}
	local, err = scan.FilterIgnored(local, opts.LocalDir)
	if err != nil {
		return sync.Snapshot{}, sync.Snapshot{}, errors.WithContext(err, "filter local directory")
	}
	log.WithFields(log.Fields{
		"directories": len(local.Directories),
		"files":       len(local.Files),
	}).Debug("Scanned local directory")

	remoteTree, err = scan.Remote(opts.Remote)
	if err != nil {
		return sync.Snapshot{}, sync.Snapshot{}, errors.WithContext(err, "scan remote directory")
	}
	remoteTree, err = scan.FilterIgnored(remoteTree, opts.LocalDir)
	if err != nil {
		return sync.Snapshot{}, sync.Snapshot{}, errors.WithContext(err, "filter remote directory")
	}
	log.WithFields(log.Fields{
		"directories": len(remoteTree.Directories),
		"files":       len(remoteTree.Files),
	}).Debug("Scanned remote directory")

	return local, remoteTree, nil
}

// LogSummary reports what a finished sync did to the target endpoint.
func LogSummary(plan sync.Plan, target string) {
	log.Debugf("removed %d files on %s", len(plan.RemoveFiles), target)
	log.Debugf("removed %d directories on %s", len(plan.RemoveDirectories), target)
	log.Debugf("created %d directories on %s", len(plan.CreateDirectories), target)
	log.Debugf("copied %d files to %s", len(plan.CopyFiles), target)
}
