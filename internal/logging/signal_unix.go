//go:build unix

package logging

import (
	"os"
	"syscall"
)

// ReloadSignals returns the signals that trigger a log-level reload.
// SIGUSR1 mirrors the conventional "bump verbosity" control signal,
// SIGHUP the conventional "re-read configuration" one.
func ReloadSignals() []os.Signal {
	return []os.Signal{syscall.SIGUSR1, syscall.SIGHUP}
}
