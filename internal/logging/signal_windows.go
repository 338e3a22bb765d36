//go:build windows

package logging

import "os"

// ReloadSignals returns no signals on Windows, which has no SIGUSR1;
// the level stays at its startup value.
func ReloadSignals() []os.Signal {
	return nil
}
