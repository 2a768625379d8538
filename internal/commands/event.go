package commands

import (
	"context"
	"strings"

	"taskbot/internal/task"
)

func init() {
	Register(&EventCmd{})
}

// EventCmd adds a task spanning a date range. Both dates must parse or the
// whole command is rejected; there is no partial construction.
type EventCmd struct{}

func (c *EventCmd) Name() string      { return "event" }
func (c *EventCmd) Aliases() []string { return nil }
func (c *EventCmd) Synopsis() string  { return "Add a task with a date range" }
func (c *EventCmd) Usage() string     { return "event <description> /from <date> /to <date>" }

func (c *EventCmd) Run(ctx context.Context, env *Env, arg string) Result {
	before, tail, ok := splitOnce(arg, "/from")
	if !ok {
		env.Out.ShowError(msgEventFormat)
		return Continue
	}
	fromText, toText, ok := splitOnce(tail, "/to")
	if !ok {
		env.Out.ShowError(msgEventFormat)
		return Continue
	}

	description := strings.TrimSpace(before)
	if description == "" {
		env.Out.ShowError(msgMissingDetails)
		return Continue
	}

	from, fromOK := task.ParseDate(strings.TrimSpace(fromText))
	to, toOK := task.ParseDate(strings.TrimSpace(toText))
	if !fromOK || !toOK {
		env.Out.ShowError(msgEventBadDates)
		return Continue
	}

	t := task.NewEvent(description, from, to)
	env.Tasks.Add(t)
	saveTasks(ctx, env)
	env.Out.ShowAdded("event", t, env.Tasks.Len())
	return Continue
}
