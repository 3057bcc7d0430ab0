// Package history keeps a bounded, linear undo/redo timeline of snapshots.
//
// Each entry holds the value as it was before a labelled change. Undo hands
// that value back and remembers the value it replaced so a following Redo
// can restore it exactly. Recording after an undo discards the redo branch.
package history

import (
	"time"

	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/clock"
)

// DefaultCapacity is the number of entries kept before the oldest is dropped
const DefaultCapacity = 50

// Config configures a History
type Config[T any] struct {
	// Clone deep-copies a value; snapshots never alias caller data
	Clone    func(T) T
	Capacity int
	Clock    clock.Clock
}

// Validate checks the config
func (c *Config[T]) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clone == nil {
		vb.RequiredField("Clone")
	}
	if c.Capacity < 0 {
		vb.Field("Capacity", "must not be negative")
	}
	return vb.Build()
}

// Mark describes one entry for display
type Mark struct {
	Label     string
	Timestamp time.Time
	// Undone is true for entries past the cursor that Redo would re-apply
	Undone bool
}

type entry[T any] struct {
	before    T
	after     T
	hasAfter  bool
	label     string
	timestamp time.Time
}

// History is a cursor over recorded entries. It is not safe for concurrent use.
type History[T any] struct {
	entries  []*entry[T]
	cursor   int
	capacity int
	clone    func(T) T
	clock    clock.Clock
}

// New creates an empty History
func New[T any](cfg *Config[T]) (*History[T], error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid history config")
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &History[T]{
		cursor:   -1,
		capacity: capacity,
		clone:    cfg.Clone,
		clock:    c,
	}, nil
}

// Record appends prev, the value before the change named label. Entries past
// the cursor are discarded. When the timeline exceeds its capacity the
// oldest entry is dropped and the cursor stays on the same logical entry.
func (h *History[T]) Record(prev T, label string) {
	clear(h.entries[h.cursor+1:])
	h.entries = h.entries[:h.cursor+1]

	h.entries = append(h.entries, &entry[T]{
		before:    h.clone(prev),
		label:     label,
		timestamp: h.clock.Now(),
	})

	if len(h.entries) > h.capacity {
		drop := len(h.entries) - h.capacity
		copy(h.entries, h.entries[drop:])
		clear(h.entries[h.capacity:])
		h.entries = h.entries[:h.capacity]
	}

	h.cursor = len(h.entries) - 1
}

// Undo returns the value from before the entry at the cursor and moves the
// cursor back. current is kept as the redo target of that entry. ok is false
// when there is nothing to undo.
func (h *History[T]) Undo(current T) (value T, ok bool) {
	if h.cursor < 0 {
		return value, false
	}

	e := h.entries[h.cursor]
	e.after = h.clone(current)
	e.hasAfter = true
	h.cursor--

	return h.clone(e.before), true
}

// Redo returns the value from after the entry following the cursor and moves
// the cursor forward. ok is false when there is nothing to redo.
func (h *History[T]) Redo() (value T, ok bool) {
	if !h.CanRedo() {
		return value, false
	}

	e := h.entries[h.cursor+1]
	if !e.hasAfter {
		return value, false
	}
	h.cursor++

	return h.clone(e.after), true
}

// CanUndo reports whether Undo would return a value
func (h *History[T]) CanUndo() bool {
	return h.cursor >= 0
}

// CanRedo reports whether Redo would return a value
func (h *History[T]) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// UndoLabel is the label of the change Undo would revert, or ""
func (h *History[T]) UndoLabel() string {
	if !h.CanUndo() {
		return ""
	}
	return h.entries[h.cursor].label
}

// RedoLabel is the label of the change Redo would re-apply, or ""
func (h *History[T]) RedoLabel() string {
	if !h.CanRedo() {
		return ""
	}
	return h.entries[h.cursor+1].label
}

// Reset empties the timeline
func (h *History[T]) Reset() {
	clear(h.entries)
	h.entries = h.entries[:0]
	h.cursor = -1
}

// Len is the number of entries
func (h *History[T]) Len() int {
	return len(h.entries)
}

// Cursor is the index of the last applied entry, -1 when none
func (h *History[T]) Cursor() int {
	return h.cursor
}

// Marks lists the entries oldest first
func (h *History[T]) Marks() []Mark {
	marks := make([]Mark, len(h.entries))
	for i, e := range h.entries {
		marks[i] = Mark{
			Label:     e.label,
			Timestamp: e.timestamp,
			Undone:    i > h.cursor,
		}
	}
	return marks
}
