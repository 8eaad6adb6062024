package remote

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionScript(t *testing.T) {
	session := NewSession(NewHost("devbox"))
	session.Remove("proj/old.txt")
	session.Mkdir("proj/sub")
	session.Put("/code/a.txt", "proj/a.txt")
	session.Get("proj/b.txt", "/code/b.txt")

	exp := "rm proj/old.txt\n" +
		"mkdir proj/sub\n" +
		"put /code/a.txt proj/a.txt\n" +
		"get proj/b.txt /code/b.txt\n"
	assert.Equal(t, exp, session.Script())
}

func TestEmptySessionRunIsNoop(t *testing.T) {
	// An empty batch shouldn't spawn sftp at all.
	execCommand = func(name string, args ...string) *exec.Cmd {
		t.Fatal("unexpected command execution")
		return nil
	}
	defer func() { execCommand = exec.Command }()

	require.NoError(t, NewSession(NewHost("devbox")).Run())
}
