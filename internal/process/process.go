// Package process inspects running processes so the stop and status
// commands can tell whether a recorded server PID is still alive and
// actually belongs to a routeguided binary.
package process

import (
	"strings"

	"github.com/google/gops/goprocess"
)

// Inspector holds a snapshot of the process table.
type Inspector struct {
	procs []goprocess.P
}

// NewInspector returns an empty inspector; call Refresh before querying.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Refresh re-reads the process table.
func (i *Inspector) Refresh() {
	i.procs = goprocess.FindAll()
}

// IsRunning reports whether a process with the given PID is in the
// snapshot.
func (i *Inspector) IsRunning(pid int) bool {
	for _, proc := range i.procs {
		if proc.PID == pid {
			return true
		}
	}

	return false
}

// Matches reports whether the given PID exists and its executable or
// path contains name (case-insensitive).
func (i *Inspector) Matches(pid int, name string) bool {
	name = strings.ToLower(name)

	for _, proc := range i.procs {
		if proc.PID == pid {
			return strings.Contains(strings.ToLower(proc.Exec), name) ||
				strings.Contains(strings.ToLower(proc.Path), name)
		}
	}

	return false
}
