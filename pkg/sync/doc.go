/*
The sync package implements the reconciliation engine. It compares two
snapshots of a directory tree (one per endpoint) and computes the plan of
operations that makes the target tree equal to the source tree.

Snapshots only record existence and size. Two files with the same relative
path and the same size are considered equal, so unchanged files are never
re-copied. Content hashing is intentionally out of scope.

Plans are applied in a fixed order: remove files, remove directories, create
directories, copy files. This ordering guarantees that directories are empty
before they're removed, that a path that changed kind is removed before its
replacement is created, and that every copied file's parent directory exists.

When the target is the local filesystem, a directory is only removed if it's
observed to be empty at removal time. The target may hold ignored files that
aren't visible in the source snapshot, and those must never be deleted.
When the target is the remote host, directory removal is skipped entirely:
checking emptiness would cost a round trip per directory, and removing a
possibly non-empty remote directory is too destructive. The remote tree may
accumulate orphaned empty directories as a result.
*/
package sync
