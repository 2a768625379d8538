package commands

import (
	"context"
	"errors"
)

func init() {
	Register(&MarkCmd{})
	Register(&UnmarkCmd{})
}

// MarkCmd marks a task done by its 1-based number.
type MarkCmd struct{}

func (c *MarkCmd) Name() string      { return "mark" }
func (c *MarkCmd) Aliases() []string { return nil }
func (c *MarkCmd) Synopsis() string  { return "Mark a task as done" }
func (c *MarkCmd) Usage() string     { return "mark <n>" }

func (c *MarkCmd) Run(ctx context.Context, env *Env, arg string) Result {
	return runMark(ctx, env, arg, true)
}

// UnmarkCmd marks a task not done by its 1-based number.
type UnmarkCmd struct{}

func (c *UnmarkCmd) Name() string      { return "unmark" }
func (c *UnmarkCmd) Aliases() []string { return nil }
func (c *UnmarkCmd) Synopsis() string  { return "Mark a task as not done" }
func (c *UnmarkCmd) Usage() string     { return "unmark <n>" }

func (c *UnmarkCmd) Run(ctx context.Context, env *Env, arg string) Result {
	return runMark(ctx, env, arg, false)
}

// runMark is the shared implementation for mark and unmark. Marking is
// idempotent: marking a done task leaves it done.
func runMark(ctx context.Context, env *Env, arg string, done bool) Result {
	i, err := parseIndex(arg, env.Tasks.Len())
	if err != nil {
		if errors.Is(err, errNoIndex) {
			env.Out.ShowError(msgMissingNumber)
		} else {
			env.Out.ShowError(msgInvalidNumber)
		}
		return Continue
	}

	t, err := env.Tasks.At(i)
	if err != nil {
		env.Out.ShowError(msgInvalidNumber)
		return Continue
	}

	if done {
		t.MarkDone()
		saveTasks(ctx, env)
		env.Out.ShowMarked(t)
	} else {
		t.MarkUndone()
		saveTasks(ctx, env)
		env.Out.ShowUnmarked(t)
	}
	return Continue
}
