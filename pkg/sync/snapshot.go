package sync

import (
	"fmt"
	"strings"
)

// A File is a regular file within a snapshotted tree. Its path is relative
// to the tree root and slash-separated regardless of platform.
type File struct {
	Path string
	Size int64
}

func (f File) String() string {
	return fmt.Sprintf("%s (%d bytes)", f.Path, f.Size)
}

// A Directory is a directory within a snapshotted tree. The tree root itself
// is never represented as a Directory.
type Directory struct {
	Path string
}

func (d Directory) String() string {
	return d.Path
}

// A Snapshot is the set of directories and files found under one tree root
// at one point in time. Snapshots are never mutated after construction.
type Snapshot struct {
	Directories []Directory
	Files       []File
}

// comparePaths orders relative slash-separated paths by their component
// sequences. A parent directory always sorts before its descendants because
// a component sequence is lexically smaller than any sequence it prefixes.
// Note this differs from plain string comparison: "a/b" sorts before "a-b"
// even though '-' < '/'.
func comparePaths(a, b string) int {
	aParts := strings.Split(a, "/")
	bParts := strings.Split(b, "/")
	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if aParts[i] != bParts[i] {
			if aParts[i] < bParts[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(aParts) < len(bParts):
		return -1
	case len(aParts) > len(bParts):
		return 1
	default:
		return 0
	}
}
