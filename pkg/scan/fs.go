package scan

import (
	"os/exec"

	"github.com/spf13/afero"
)

// fs is used for mock tests. It will be overridden by afero.NewMemMapFs()
// in the tests.
var fs = afero.NewOsFs()

// execCommand is swapped out in tests.
var execCommand = exec.Command
