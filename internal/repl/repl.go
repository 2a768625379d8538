// Package repl implements the interactive command loop.
package repl

import (
	"bufio"
	"context"
	"io"
	"strings"

	"taskbot/internal/commands"
	"taskbot/internal/exitcode"
)

// Interpreter classifies input lines and dispatches them to commands.
// It keeps no state of its own beyond the shared environment.
type Interpreter struct {
	registry *commands.Registry
	env      *commands.Env
}

// New creates an interpreter over the given registry and environment.
func New(registry *commands.Registry, env *commands.Env) *Interpreter {
	return &Interpreter{registry: registry, env: env}
}

// splitKeyword splits an input line into its command keyword and the
// remainder. The keyword is the first whitespace-delimited token.
func splitKeyword(line string) (keyword, rest string) {
	trimmed := strings.TrimLeft(line, " \t")
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		return trimmed[:i], trimmed[i+1:]
	}
	return trimmed, ""
}

// HandleLine fully processes one input line: classify, dispatch, render.
// Unrecognized keywords produce an error message, never a hard failure.
func (in *Interpreter) HandleLine(ctx context.Context, line string) commands.Result {
	keyword, rest := splitKeyword(line)
	if keyword == "" {
		return commands.Continue
	}

	// Keyword matching is case-insensitive; arguments keep their case.
	cmd, ok := in.registry.Find(strings.ToLower(keyword))
	if !ok {
		in.env.Log.Debug("unknown command", "keyword", keyword)
		in.env.Out.ShowError("I'm sorry, I don't understand! Please type your request again.")
		return commands.Continue
	}

	in.env.Log.Debug("dispatch", "command", cmd.Name())
	return cmd.Run(ctx, in.env, rest)
}

// Run reads lines from r until bye, EOF or cancellation, processing each
// one synchronously: a command's save completes before the next line is
// read. Returns the process exit code.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) int {
	in.env.Out.ShowGreeting()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		if in.HandleLine(ctx, scanner.Text()) == commands.Terminate {
			return exitcode.Success
		}
	}

	// EOF or cancellation: save like bye would, then leave.
	if err := in.env.Store.Save(ctx, in.env.Tasks.Tasks()); err != nil {
		in.env.Log.Error("final save failed", "error", err)
	}
	in.env.Out.ShowFarewell()
	return exitcode.Success
}
