package remote

import (
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/reposync/reposync/pkg/errors"
)

// execCommand is swapped out in tests.
var execCommand = exec.Command

// A Session is a batched sftp session. Instructions are queued in call order
// and executed by Run as a single `sftp -b -` invocation, whose aggregate
// exit status decides success. Instructions executed before a failing one
// are not rolled back.
type Session struct {
	host  Host
	lines []string
}

// NewSession creates an empty batch session against the given host.
func NewSession(host Host) *Session {
	return &Session{host: host}
}

// Remove queues removal of a remote file.
func (s *Session) Remove(path string) {
	s.lines = append(s.lines, "rm "+path)
}

// Mkdir queues creation of a remote directory.
func (s *Session) Mkdir(path string) {
	s.lines = append(s.lines, "mkdir "+path)
}

// Put queues an upload of a local file to a remote path.
func (s *Session) Put(localPath, remotePath string) {
	s.lines = append(s.lines, fmt.Sprintf("put %s %s", localPath, remotePath))
}

// Get queues a download of a remote file to a local path.
func (s *Session) Get(remotePath, localPath string) {
	s.lines = append(s.lines, fmt.Sprintf("get %s %s", remotePath, localPath))
}

// Script returns the queued batch as sftp would read it.
func (s *Session) Script() string {
	return strings.Join(s.lines, "\n") + "\n"
}

// Run executes the queued batch. It's a no-op when nothing was queued.
func (s *Session) Run() error {
	if len(s.lines) == 0 {
		return nil
	}

	log.WithField("host", s.host.String()).Debugf(
		"Running sftp batch with %d instructions", len(s.lines))

	// Batched mode triggers the correct exit status code when one of the
	// operations fails.
	cmd := execCommand("sftp", "-b", "-", s.host.String())
	cmd.Stdin = strings.NewReader(s.Script())
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.New(fmt.Sprintf("sftp failed: %s", exitErr))
		}
		return errors.WithContext(err, "run sftp")
	}
	return nil
}
