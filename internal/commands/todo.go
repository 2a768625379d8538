package commands

import (
	"context"
	"strings"

	"taskbot/internal/task"
)

func init() {
	Register(&TodoCmd{})
}

// TodoCmd adds a plain task.
type TodoCmd struct{}

func (c *TodoCmd) Name() string      { return "todo" }
func (c *TodoCmd) Aliases() []string { return nil }
func (c *TodoCmd) Synopsis() string  { return "Add a todo" }
func (c *TodoCmd) Usage() string     { return "todo <description>" }

func (c *TodoCmd) Run(ctx context.Context, env *Env, arg string) Result {
	description := strings.TrimSpace(arg)
	if description == "" {
		env.Out.ShowError(msgMissingDetails)
		return Continue
	}

	t := task.NewTodo(description)
	env.Tasks.Add(t)
	saveTasks(ctx, env)
	env.Out.ShowAdded("todo", t, env.Tasks.Len())
	return Continue
}
