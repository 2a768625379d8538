// Package ui renders the conversation: task lists, confirmations and errors.
package ui

import (
	"fmt"
	"io"

	"taskbot/internal/task"
)

// Separator is the visual line printed between exchanges.
const Separator = "____________________________________________________________"

// Console writes conversation output to a single writer. All methods are
// fire-and-forget. When quiet is set, confirmations are suppressed; errors
// and the task list are always shown.
type Console struct {
	w     io.Writer
	quiet bool
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer, quiet bool) *Console {
	return &Console{w: w, quiet: quiet}
}

// Line prints the separator.
func (c *Console) Line() {
	fmt.Fprintln(c.w, Separator)
}

// ShowGreeting prints the startup banner.
func (c *Console) ShowGreeting() {
	c.Line()
	fmt.Fprintln(c.w, "Hello! I'm taskbot")
	fmt.Fprintln(c.w, "What can I do for you?")
	c.Line()
}

// ShowFarewell prints the goodbye message.
func (c *Console) ShowFarewell() {
	fmt.Fprintln(c.w, "Bye. Hope to see you again soon!")
	c.Line()
}

// ShowTaskList prints every task, numbered from 1.
func (c *Console) ShowTaskList(tasks []task.Task) {
	fmt.Fprintln(c.w, "Here are the tasks in your list:")
	for i, t := range tasks {
		fmt.Fprintf(c.w, "%d.%s\n", i+1, t.Render())
	}
	c.Line()
}

// ShowAdded confirms a newly added task. kind names the variant the user
// asked for ("todo", "deadline", "event").
func (c *Console) ShowAdded(kind string, t task.Task, total int) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.w, "Ok! I've added this %s: %s\n", kind, t.Render())
	fmt.Fprintf(c.w, "Now you have %d tasks in your list.\n", total)
	c.Line()
}

// ShowRemoved confirms a removed task.
func (c *Console) ShowRemoved(t task.Task, total int) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.w, "Noted. I've removed this task:")
	fmt.Fprintf(c.w, "  %s\n", t.Render())
	fmt.Fprintf(c.w, "Now you have %d tasks in your list.\n", total)
	c.Line()
}

// ShowMarked confirms a task marked done.
func (c *Console) ShowMarked(t task.Task) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.w, "Nice! I've marked this task as done:")
	fmt.Fprintf(c.w, "  %s\n", t.Render())
	c.Line()
}

// ShowUnmarked confirms a task marked not done.
func (c *Console) ShowUnmarked(t task.Task) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.w, "OK, I've marked this task as not done yet:")
	fmt.Fprintf(c.w, "  %s\n", t.Render())
	c.Line()
}

// ShowError prints a user-facing error message.
func (c *Console) ShowError(msg string) {
	fmt.Fprintln(c.w, msg)
	c.Line()
}

// Show prints arbitrary informational text (help, login instructions).
func (c *Console) Show(text string) {
	if c.quiet {
		return
	}
	fmt.Fprint(c.w, text)
	c.Line()
}
