package commands

import "context"

func init() {
	Register(&ListCmd{})
}

// ListCmd renders the current task list. No mutation, no save.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "list" }

func (c *ListCmd) Run(ctx context.Context, env *Env, arg string) Result {
	env.Out.ShowTaskList(env.Tasks.Tasks())
	return Continue
}
