// Package remote models the remote endpoint of a sync: the ssh host it runs
// on, the directory being mirrored, and the batched sftp session used to
// move file contents.
package remote

import (
	"strings"

	"github.com/reposync/reposync/pkg/errors"
)

// A Host identifies an ssh destination. It's passed verbatim to the ssh and
// sftp binaries, so aliases from the user's ssh config work as-is.
type Host struct {
	name string
}

// NewHost creates a Host from its ssh destination string.
func NewHost(name string) Host {
	return Host{name: name}
}

func (h Host) String() string {
	return h.name
}

// A Remote is a directory on a remote host, parsed from a HOST:PATH
// descriptor.
type Remote struct {
	Host Host
	Dir  string
}

// Parse parses a HOST:PATH descriptor.
//
// A single trailing separator is stripped from the directory so joins behave
// predictably. A leading "~/" is stripped too: prefixing with ~ to designate
// the home directory doesn't work with sftp, but a relative path already
// starts from home, so stripping it has the same effect.
func Parse(descriptor string) (Remote, error) {
	host, dir, ok := strings.Cut(descriptor, ":")
	if !ok {
		return Remote{}, errors.NewFriendlyError(
			"invalid remote %q: expected HOST:PATH", descriptor)
	}

	dir = strings.TrimSuffix(dir, "/")
	dir = strings.TrimPrefix(dir, "~/")
	return Remote{Host: NewHost(host), Dir: dir}, nil
}

func (r Remote) String() string {
	return r.Host.String() + ":" + r.Dir
}
