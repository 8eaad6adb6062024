package util

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/reposync/reposync/pkg/errors"
)

// HandleFatalError prints a single diagnostic line for err and exits
// non-zero.
func HandleFatalError(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", errors.GetPrintableMessage(err))
	os.Exit(1)
}

// HandlePanic recovers from a panic and exits non-zero after printing the
// stack. It should be deferred at the top of main.
func HandlePanic() {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "error: unexpected panic: %v\n%s", r, debug.Stack())
		os.Exit(1)
	}
}
