package commands

import (
	"context"
	"errors"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd removes a task by its 1-based number.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return nil }
func (c *DeleteCmd) Synopsis() string  { return "Remove a task" }
func (c *DeleteCmd) Usage() string     { return "delete <n>" }

func (c *DeleteCmd) Run(ctx context.Context, env *Env, arg string) Result {
	i, err := parseIndex(arg, env.Tasks.Len())
	if err != nil {
		if errors.Is(err, errNoIndex) {
			env.Out.ShowError(msgMissingRemoval)
		} else {
			env.Out.ShowError(msgInvalidNumber)
		}
		return Continue
	}

	removed, err := env.Tasks.Remove(i)
	if err != nil {
		env.Out.ShowError(msgInvalidNumber)
		return Continue
	}

	saveTasks(ctx, env)
	env.Out.ShowRemoved(removed, env.Tasks.Len())
	return Continue
}
