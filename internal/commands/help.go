package commands

import "context"

func init() {
	Register(&HelpCmd{})
}

// HelpCmd prints usage.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }

func (c *HelpCmd) Run(ctx context.Context, env *Env, arg string) Result {
	env.Out.Show(helpText)
	return Continue
}

const helpText = `Here's what I understand:
  list                                       List all tasks
  todo <description>                         Add a todo
  deadline <description> /by <date>          Add a task with a due date
  event <description> /from <date> /to <date>
                                             Add a task with a date range
  mark <n>                                   Mark task n as done
  unmark <n>                                 Mark task n as not done
  delete <n>                                 Remove task n
  login                                      Authenticate with Google
  logout                                     Remove stored credentials
  help                                       Print this text
  bye                                        Save and exit

Dates can be written as 12/2/2019 1800 or 2019-12-02.
`
