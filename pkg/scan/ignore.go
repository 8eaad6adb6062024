package scan

import (
	"bufio"
	"fmt"
	"os/exec"
	"strings"

	"github.com/reposync/reposync/pkg/errors"
	"github.com/reposync/reposync/pkg/sync"
)

// gitDir is the version-control metadata directory. It's never synced, no
// matter what the ignore rules say.
const gitDir = ".git"

// FilterIgnored returns a copy of the snapshot containing only the entries
// that git considers tracked-or-trackable under localRoot's ignore rules.
//
// Each entry's path is written as one line to a single
// `git check-ignore --non-matching --stdin --verbose` process, and one
// response line is read back per path. An entry is kept when the response
// carries no matching pattern, or when the matching pattern is a negation.
// Entries inside the .git directory are always dropped.
func FilterIgnored(snapshot sync.Snapshot, localRoot string) (sync.Snapshot, error) {
	cmd := execCommand("git",
		// Execute from the local directory context.
		"-C", localRoot,
		"check-ignore",
		// By default check-ignore only prints ignored paths. We also want
		// to see the paths that didn't match any pattern.
		"--non-matching",
		// Take input via stdin.
		"--stdin",
		// Include the pattern that matched, which tells us whether the
		// match was a negation.
		"--verbose")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return sync.Snapshot{}, errors.WithContext(err, "open git stdin")
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return sync.Snapshot{}, errors.WithContext(err, "open git stdout")
	}
	if err := cmd.Start(); err != nil {
		return sync.Snapshot{}, errors.WithContext(err, "spawn git")
	}

	stdout := bufio.NewReader(stdoutPipe)
	check := func(path string) (bool, error) {
		if _, err := fmt.Fprintln(stdin, path); err != nil {
			return false, errors.WithContext(err, "write to git check-ignore")
		}
		response, err := stdout.ReadString('\n')
		if err != nil {
			return false, errors.WithContext(err, "read from git check-ignore")
		}
		return isKept(response)
	}

	var filtered sync.Snapshot
	for _, directory := range snapshot.Directories {
		keep, err := check(directory.Path)
		if err != nil {
			return sync.Snapshot{}, err
		}
		if keep {
			filtered.Directories = append(filtered.Directories, directory)
		}
	}
	for _, file := range snapshot.Files {
		keep, err := check(file.Path)
		if err != nil {
			return sync.Snapshot{}, err
		}
		if keep {
			filtered.Files = append(filtered.Files, file)
		}
	}

	if err := stdin.Close(); err != nil {
		return sync.Snapshot{}, errors.WithContext(err, "close git stdin")
	}
	if err := cmd.Wait(); err != nil {
		// check-ignore exits 1 as part of normal operation when some paths
		// didn't match any pattern.
		if exitErr, ok := err.(*exec.ExitError); !ok || exitErr.ExitCode() != 1 {
			return sync.Snapshot{}, errors.WithContext(err, "run git check-ignore")
		}
	}
	return filtered, nil
}

// isKept interprets one line of verbose check-ignore output, shaped as
// `<source>:<linenum>:<pattern>\t<path>`. All three header fields are empty
// for paths that didn't match any pattern.
func isKept(response string) (bool, error) {
	header, pathField, ok := strings.Cut(response, "\t")
	if !ok {
		return false, errors.New("malformed check-ignore output: " + strings.TrimSpace(response))
	}

	headerFields := strings.SplitN(header, ":", 3)
	if len(headerFields) < 3 {
		return false, errors.New("malformed check-ignore output: " + strings.TrimSpace(response))
	}
	pattern := headerFields[2]

	path := strings.TrimSpace(pathField)
	if path == gitDir || strings.HasPrefix(path, gitDir+"/") {
		return false, nil
	}
	return pattern == "" || strings.HasPrefix(pattern, "!"), nil
}
