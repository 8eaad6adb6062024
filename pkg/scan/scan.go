// Package scan builds snapshots of the two sync endpoints and filters them
// by the project's gitignore rules. The local side is a recursive walk, the
// remote side is a `find` invocation over ssh, and ignore filtering streams
// paths through `git check-ignore`.
package scan

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/reposync/reposync/pkg/errors"
	"github.com/reposync/reposync/pkg/sync"
)

// Local snapshots the directory tree rooted at root.
//
// Every entry is recorded with its path relative to root. If any entry can't
// be walked, the whole call fails. Symlinks and other special files are
// skipped.
func Local(root string) (sync.Snapshot, error) {
	var snapshot sync.Snapshot
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.WithContext(err, "walk entry")
		}

		relativePath, err := filepath.Rel(root, path)
		if err != nil {
			return errors.WithContext(err, "relative path")
		}
		relativePath = filepath.ToSlash(relativePath)
		if relativePath == "." {
			// The root itself is never an entry.
			return nil
		}

		switch {
		case info.Mode().IsRegular():
			snapshot.Files = append(snapshot.Files, sync.File{
				Path: relativePath,
				Size: info.Size(),
			})
		case info.IsDir():
			snapshot.Directories = append(snapshot.Directories, sync.Directory{
				Path: relativePath,
			})
		}
		return nil
	})
	if err != nil {
		return sync.Snapshot{}, err
	}
	return snapshot, nil
}
