//go:build !unix

package rcsync

import (
	"os"
	"runtime"
)

// abortProcess writes every goroutine's stack to stderr and exits with the
// status the runtime uses for fatal errors.
func abortProcess() {
	buf := make([]byte, 1<<20)
	buf = buf[:runtime.Stack(buf, true)]
	_, _ = os.Stderr.Write(buf)
	os.Exit(2)
}
