// Package task defines the task model: todos, deadlines and events.
package task

import "time"

// Task is the capability set shared by all task variants.
type Task interface {
	// Description returns the task description (immutable after creation).
	Description() string

	// Done reports whether the task has been marked done.
	Done() bool

	// MarkDone sets the done flag.
	MarkDone()

	// MarkUndone clears the done flag.
	MarkUndone()

	// StatusIcon returns "[X] " for done tasks and "[ ] " otherwise.
	StatusIcon() string

	// Render returns the full display form, type tag included.
	Render() string
}

// base holds the state common to every variant. Variants embed it and add
// their own Render.
type base struct {
	description string
	done        bool
}

func (b *base) Description() string { return b.description }
func (b *base) Done() bool          { return b.done }
func (b *base) MarkDone()           { b.done = true }
func (b *base) MarkUndone()         { b.done = false }

func (b *base) StatusIcon() string {
	if b.done {
		return "[X] "
	}
	return "[ ] "
}

// Todo is a plain task with no timing information.
type Todo struct {
	base
}

// NewTodo creates a todo with the given description.
func NewTodo(description string) *Todo {
	return &Todo{base: base{description: description}}
}

func (t *Todo) Render() string {
	return "[T]" + t.StatusIcon() + t.description
}

// Deadline is a task with a single due date. The date degrades to raw text
// when the user's input matched no known format.
type Deadline struct {
	base
	due Date
}

// NewDeadline creates a deadline due at the given date.
func NewDeadline(description string, due Date) *Deadline {
	return &Deadline{base: base{description: description}, due: due}
}

// Due returns the due date.
func (d *Deadline) Due() Date { return d.due }

func (d *Deadline) Render() string {
	return "[D]" + d.StatusIcon() + d.description + " (by: " + d.due.String() + ")"
}

// Event is a task bounded by a from/to date range. Both dates are always
// parsed calendar dates; events with unparseable dates are never constructed.
type Event struct {
	base
	from time.Time
	to   time.Time
}

// NewEvent creates an event spanning from..to.
func NewEvent(description string, from, to time.Time) *Event {
	return &Event{base: base{description: description}, from: from, to: to}
}

// From returns the start date.
func (e *Event) From() time.Time { return e.from }

// To returns the end date.
func (e *Event) To() time.Time { return e.to }

func (e *Event) Render() string {
	return "[E]" + e.StatusIcon() + e.description +
		" (from: " + FormatDay(e.from) + " to: " + FormatDay(e.to) + ")"
}
