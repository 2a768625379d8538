package commands

import (
	"context"
	"strings"

	"taskbot/internal/task"
)

func init() {
	Register(&DeadlineCmd{})
}

// DeadlineCmd adds a task with a due date.
type DeadlineCmd struct{}

func (c *DeadlineCmd) Name() string      { return "deadline" }
func (c *DeadlineCmd) Aliases() []string { return nil }
func (c *DeadlineCmd) Synopsis() string  { return "Add a task with a due date" }
func (c *DeadlineCmd) Usage() string     { return "deadline <description> /by <date>" }

func (c *DeadlineCmd) Run(ctx context.Context, env *Env, arg string) Result {
	before, after, ok := splitOnce(arg, "/by")
	if !ok {
		env.Out.ShowError(msgDeadlineFormat)
		return Continue
	}

	description := strings.TrimSpace(before)
	dateText := strings.TrimSpace(after)
	if description == "" {
		env.Out.ShowError(msgMissingDetails)
		return Continue
	}

	// An unparseable date keeps the raw text instead of rejecting the
	// command. Events are stricter; see EventCmd.
	t := task.NewDeadline(description, task.NewDate(dateText))
	env.Tasks.Add(t)
	saveTasks(ctx, env)
	env.Out.ShowAdded("deadline", t, env.Tasks.Len())
	return Continue
}
