// Package activity keeps a bounded, in-memory record of header interactions
// handled by the board: sort requests, preset changes and view toggles.
package activity

import (
	"fmt"
	"time"
)

// Kind classifies an interaction.
type Kind string

const (
	KindSort   Kind = "sort"
	KindPreset Kind = "preset"
	KindView   Kind = "view"
)

// Event is one handled interaction.
type Event struct {
	Kind      Kind
	Column    string // lane title
	Detail    string // e.g. "volume desc", "P2", "list"
	Timestamp time.Time
}

func (e Event) String() string {
	return fmt.Sprintf("%s %-6s %s: %s", e.Timestamp.Format("15:04:05"), e.Kind, e.Column, e.Detail)
}

// DefaultCapacity is the number of events a Log keeps when created with capacity <= 0.
const DefaultCapacity = 100

// Log is a fixed-capacity ring of events; the oldest event is dropped when full.
type Log struct {
	events []Event
	next   int
	full   bool
	now    func() time.Time
}

// NewLog creates a log holding up to capacity events.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{events: make([]Event, capacity), now: time.Now}
}

// Record appends ev, stamping it if Timestamp is zero. A nil Log discards.
func (l *Log) Record(ev Event) {
	if l == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = l.now()
	}
	l.events[l.next] = ev
	l.next = (l.next + 1) % len(l.events)
	if l.next == 0 {
		l.full = true
	}
}

// Len returns the number of events held.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	if l.full {
		return len(l.events)
	}
	return l.next
}

// Recent returns up to n events, newest first. n <= 0 returns all.
func (l *Log) Recent(n int) []Event {
	size := l.Len()
	if n <= 0 || n > size {
		n = size
	}
	out := make([]Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.next - i + len(l.events)) % len(l.events)
		out = append(out, l.events[idx])
	}
	return out
}
