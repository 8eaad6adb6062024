package scan

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/reposync/reposync/pkg/errors"
	"github.com/reposync/reposync/pkg/remote"
	"github.com/reposync/reposync/pkg/sync"
)

// Remote snapshots a directory tree on a remote host.
//
// It issues one ssh invocation that first makes sure the remote root exists
// (`mkdir -p`), then lists every entry below it with `find`:
//   - `%P` is the path relative to the starting point.
//   - `%y` is the entry type, `f` for file and `d` for directory.
//   - `%s` is the size in bytes.
//
// `-mindepth 1` keeps the starting point itself out of the listing. The two
// `-type` invocations joined with `-o` are the most portable way of
// restricting the output to files and directories, which also keeps
// symlinks out.
func Remote(target remote.Remote) (sync.Snapshot, error) {
	script := fmt.Sprintf(
		"mkdir -p %[1]s; "+
			"find %[1]s -type f -printf \"%%P %%y %%s\\n\" -mindepth 1 "+
			"-o -type d -printf \"%%P %%y %%s\\n\" -mindepth 1",
		target.Dir)

	log.WithField("host", target.Host.String()).Debugf("Running remote listing: %s", script)

	cmd := execCommand("ssh", target.Host.String(), script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return sync.Snapshot{}, errors.New(fmt.Sprintf(
				"remote listing failed with %s: %s",
				exitErr, commandOutput(stdout.String(), stderr.String())))
		}
		return sync.Snapshot{}, errors.WithContext(err, "run ssh")
	}

	return parseListing(stdout.String())
}

// parseListing parses `find -printf "%P %y %s\n"` output into a snapshot.
// Every line must have the three-field shape; anything else is a hard
// failure.
func parseListing(listing string) (sync.Snapshot, error) {
	var snapshot sync.Snapshot
	for _, line := range strings.Split(strings.TrimSpace(listing), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rest, sizeField, ok := rsplitOnce(line)
		if !ok {
			return sync.Snapshot{}, errors.New("malformed listing line: " + line)
		}
		entryPath, typeField, ok := rsplitOnce(strings.TrimSpace(rest))
		if !ok {
			return sync.Snapshot{}, errors.New("malformed listing line: " + line)
		}
		entryPath = strings.TrimSpace(entryPath)

		switch strings.TrimSpace(typeField) {
		case "f":
			size, err := strconv.ParseInt(sizeField, 10, 64)
			if err != nil {
				return sync.Snapshot{}, errors.WithContext(err, "parse file size")
			}
			snapshot.Files = append(snapshot.Files, sync.File{
				Path: entryPath,
				Size: size,
			})
		case "d":
			snapshot.Directories = append(snapshot.Directories, sync.Directory{
				Path: entryPath,
			})
		default:
			return sync.Snapshot{}, errors.New(
				"malformed listing line (incorrect file type): " + line)
		}
	}
	return snapshot, nil
}

// rsplitOnce splits s on its last space.
func rsplitOnce(s string) (before, after string, ok bool) {
	idx := strings.LastIndexByte(s, ' ')
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}

// commandOutput merges the stdout and stderr of a failed command into one
// diagnostic string.
func commandOutput(stdout, stderr string) string {
	stdout = strings.TrimSpace(stdout)
	stderr = strings.TrimSpace(stderr)
	switch {
	case stdout != "" && stderr != "":
		return stdout + " " + stderr
	case stdout != "":
		return stdout
	case stderr != "":
		return stderr
	default:
		return "<command has no output>"
	}
}
