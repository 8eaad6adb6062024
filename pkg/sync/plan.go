package sync

import (
	"fmt"
	"sort"
)

// A Plan is the ordered set of operations that makes the target tree equal
// to the source tree. The directory lists are ordered so that every ancestor
// appears before its descendants.
type Plan struct {
	RemoveFiles       []string
	RemoveDirectories []string
	CreateDirectories []string
	CopyFiles         []string
}

// Empty reports whether the plan contains no operations.
func (plan Plan) Empty() bool {
	return len(plan.RemoveFiles) == 0 && len(plan.RemoveDirectories) == 0 &&
		len(plan.CreateDirectories) == 0 && len(plan.CopyFiles) == 0
}

// Describe renders the plan as one human-readable line per operation, in
// execution order. It's used for dry runs.
func (plan Plan) Describe(sourcePrefix, targetPrefix string) []string {
	var lines []string
	for _, file := range plan.RemoveFiles {
		lines = append(lines, fmt.Sprintf("remove file: %s/%s", targetPrefix, file))
	}
	for _, directory := range plan.RemoveDirectories {
		lines = append(lines, fmt.Sprintf("remove directory: %s/%s", targetPrefix, directory))
	}
	for _, directory := range plan.CreateDirectories {
		lines = append(lines, fmt.Sprintf("create directory: %s/%s", targetPrefix, directory))
	}
	for _, file := range plan.CopyFiles {
		lines = append(lines, fmt.Sprintf("copy file: %s/%s -> %s/%s",
			sourcePrefix, file, targetPrefix, file))
	}
	return lines
}

// Reconcile computes the plan that makes the target snapshot equal to the
// source snapshot. It's deterministic and side-effect free.
//
// Directories and files are reconciled independently. Each side is sorted by
// path and merged with a two-pointer walk: entries present only in the
// source are created (or copied), entries present only in the target are
// removed, and files present on both sides are re-copied when their sizes
// differ. Matching directories need no action since a directory has no
// attributes besides its path.
//
// Because the merge consumes sorted sequences, the directory lists come out
// ancestor-first, which the executor relies on when creating directories.
func Reconcile(source, target Snapshot) Plan {
	var plan Plan

	sourceDirs := sortedDirectories(source.Directories)
	targetDirs := sortedDirectories(target.Directories)
	i, j := 0, 0
	for i < len(sourceDirs) || j < len(targetDirs) {
		switch {
		case i == len(sourceDirs):
			// Target has a directory the source lacks.
			plan.RemoveDirectories = append(plan.RemoveDirectories, targetDirs[j].Path)
			j++
		case j == len(targetDirs):
			// Target is missing a directory.
			plan.CreateDirectories = append(plan.CreateDirectories, sourceDirs[i].Path)
			i++
		default:
			switch cmp := comparePaths(sourceDirs[i].Path, targetDirs[j].Path); {
			case cmp == 0:
				i++
				j++
			case cmp < 0:
				plan.CreateDirectories = append(plan.CreateDirectories, sourceDirs[i].Path)
				i++
			default:
				plan.RemoveDirectories = append(plan.RemoveDirectories, targetDirs[j].Path)
				j++
			}
		}
	}

	sourceFiles := sortedFiles(source.Files)
	targetFiles := sortedFiles(target.Files)
	i, j = 0, 0
	for i < len(sourceFiles) || j < len(targetFiles) {
		switch {
		case i == len(sourceFiles):
			// Target has a file the source lacks.
			plan.RemoveFiles = append(plan.RemoveFiles, targetFiles[j].Path)
			j++
		case j == len(targetFiles):
			// Target is missing a file.
			plan.CopyFiles = append(plan.CopyFiles, sourceFiles[i].Path)
			i++
		default:
			switch cmp := comparePaths(sourceFiles[i].Path, targetFiles[j].Path); {
			case cmp == 0:
				if sourceFiles[i].Size != targetFiles[j].Size {
					plan.CopyFiles = append(plan.CopyFiles, sourceFiles[i].Path)
				}
				i++
				j++
			case cmp < 0:
				plan.CopyFiles = append(plan.CopyFiles, sourceFiles[i].Path)
				i++
			default:
				plan.RemoveFiles = append(plan.RemoveFiles, targetFiles[j].Path)
				j++
			}
		}
	}

	return plan
}

func sortedDirectories(directories []Directory) []Directory {
	sorted := append([]Directory(nil), directories...)
	sort.Slice(sorted, func(i, j int) bool {
		return comparePaths(sorted[i].Path, sorted[j].Path) < 0
	})
	return sorted
}

func sortedFiles(files []File) []File {
	sorted := append([]File(nil), files...)
	sort.Slice(sorted, func(i, j int) bool {
		return comparePaths(sorted[i].Path, sorted[j].Path) < 0
	})
	return sorted
}
