package grpcserver

import (
	"sync"

	"github.com/inovacc/routeguided/internal/model"
)

// NoteLog is the process-wide, append-only sequence of chat notes shared
// by all RouteChat sessions. Notes are never deleted; unbounded growth
// over the process lifetime is accepted.
type NoteLog struct {
	mu    sync.Mutex
	notes []model.RouteNote
}

// NewNoteLog creates an empty note log.
func NewNoteLog() *NoteLog {
	return &NoteLog{}
}

// MatchAndAppend appends note to the log and returns a copy of every
// earlier note recorded at exactly the same location, in arrival order.
//
// The scan and the append happen under one lock, so each note observes
// precisely the notes appended strictly before it and no note is lost
// between two concurrent appenders. The result is a copy: callers write
// it to their stream after the lock is released, keeping network I/O
// out of the critical section.
func (l *NoteLog) MatchAndAppend(note model.RouteNote) []model.RouteNote {
	l.mu.Lock()
	defer l.mu.Unlock()

	var matches []model.RouteNote
	for _, n := range l.notes {
		if n.Location == note.Location {
			matches = append(matches, n)
		}
	}

	l.notes = append(l.notes, note)

	return matches
}

// Len returns the number of recorded notes.
func (l *NoteLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.notes)
}
