package sync

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/reposync/reposync/pkg/errors"
)

// A Transfer is a batched file-transfer session against the remote host.
// The mutating calls queue one instruction each, in call order. Run executes
// the whole batch and reports its aggregate result. Instructions that were
// executed before a failure are not rolled back.
type Transfer interface {
	Remove(path string)
	Mkdir(path string)
	Put(localPath, remotePath string)
	Get(remotePath, localPath string)
	Run() error
}

// Push applies the plan against the remote target by queueing every
// operation on the transfer session and running it as one batch.
//
// The order of operations is important:
//  1. Remove files.
//  2. Remove directories.
//  3. Create directories.
//  4. Copy files.
//
// This ordering makes sure that no conflicts arise:
//   - Files are removed before directories to prevent removing non-empty
//     directories.
//   - Files are removed before directories are created to prevent
//     file/directory naming conflicts.
//   - Files are copied after directories are created to prevent copying
//     files into directories that do not exist yet.
func (plan Plan) Push(localRoot, remoteRoot string, session Transfer) error {
	for _, file := range plan.RemoveFiles {
		session.Remove(path.Join(remoteRoot, file))
	}

	// Directory removal is skipped for remote targets. We can't tell whether
	// a remote directory is empty without a second round trip, and the other
	// side may hold ignored files inside it that must not be destroyed. The
	// cost is that the remote tree can accumulate orphaned empty directories.

	for _, directory := range plan.CreateDirectories {
		session.Mkdir(path.Join(remoteRoot, directory))
	}
	for _, file := range plan.CopyFiles {
		session.Put(
			path.Join(filepath.ToSlash(localRoot), file),
			path.Join(remoteRoot, file))
	}

	if err := session.Run(); err != nil {
		return errors.WithContext(err, "transfer session")
	}
	return nil
}

// Pull applies the plan against the local target. Removes and directory
// creation are direct filesystem calls. Copies are queued on the transfer
// session and run as one batch at the end.
//
// The operation ordering and its rationale are the same as for Push.
func (plan Plan) Pull(localRoot, remoteRoot string, session Transfer) error {
	for _, file := range plan.RemoveFiles {
		if err := fs.Remove(filepath.Join(localRoot, file)); err != nil {
			return errors.WithContext(err, fmt.Sprintf("remove file %q", file))
		}
	}

	for _, directory := range plan.RemoveDirectories {
		// Only remove the directory if it's empty. The target may contain
		// ignored files that aren't present on the source, and those must
		// not be removed.
		localPath := filepath.Join(localRoot, directory)
		entries, err := afero.ReadDir(fs, localPath)
		if err != nil {
			return errors.WithContext(err, fmt.Sprintf("read directory %q", directory))
		}
		if len(entries) != 0 {
			continue
		}

		if err := fs.Remove(localPath); err != nil {
			return errors.WithContext(err, fmt.Sprintf("remove directory %q", directory))
		}
	}

	for _, directory := range plan.CreateDirectories {
		if err := fs.MkdirAll(filepath.Join(localRoot, directory), 0755); err != nil {
			return errors.WithContext(err, fmt.Sprintf("create directory %q", directory))
		}
	}

	for _, file := range plan.CopyFiles {
		session.Get(
			path.Join(remoteRoot, file),
			path.Join(filepath.ToSlash(localRoot), file))
	}

	if err := session.Run(); err != nil {
		return errors.WithContext(err, "transfer session")
	}
	return nil
}
