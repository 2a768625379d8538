package commands

import "context"

func init() {
	Register(&ByeCmd{})
}

// ByeCmd ends the session: final save, farewell, Terminate. The command
// loop performs the actual process exit.
type ByeCmd struct{}

func (c *ByeCmd) Name() string      { return "bye" }
func (c *ByeCmd) Aliases() []string { return nil }
func (c *ByeCmd) Synopsis() string  { return "Save and exit" }
func (c *ByeCmd) Usage() string     { return "bye" }

func (c *ByeCmd) Run(ctx context.Context, env *Env, arg string) Result {
	saveTasks(ctx, env)
	env.Out.ShowFarewell()
	return Terminate
}
