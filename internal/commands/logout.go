package commands

import (
	"context"
	"fmt"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd removes the stored Google credentials.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove stored credentials" }
func (c *LogoutCmd) Usage() string     { return "logout" }

func (c *LogoutCmd) Run(ctx context.Context, env *Env, arg string) Result {
	if !env.Config.HasToken() {
		env.Out.Show("You're not logged in.\n")
		return Continue
	}

	if err := env.Config.RemoveToken(); err != nil {
		env.Out.ShowError(fmt.Sprintf("Failed to remove token: %v", err))
		return Continue
	}

	env.Out.Show("Logged out.\n")
	return Continue
}
