// Package commands provides the command interface and implementations.
//
// Each command handles one keyword of the conversation. A command receives
// the raw remainder of the input line (everything after the keyword) and is
// responsible for its own argument validation. Every failure is rendered as
// a user-facing message; nothing propagates to the command loop.
package commands

import (
	"context"
	"log/slog"

	"taskbot/internal/config"
	"taskbot/internal/storage"
	"taskbot/internal/task"
	"taskbot/internal/ui"
)

// Result tells the command loop whether to keep reading input.
type Result int

const (
	// Continue returns control to the command loop.
	Continue Result = iota

	// Terminate ends the session. Only bye produces it; the loop owns the
	// actual process exit.
	Terminate
)

// Env holds the collaborators shared by every command.
type Env struct {
	Tasks  *task.List
	Store  storage.Store
	Out    *ui.Console
	Config *config.Config
	Log    *slog.Logger
}

// Command defines the interface for conversation commands.
type Command interface {
	// Name returns the primary command keyword.
	Name() string

	// Aliases returns alternative keywords for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Run executes the command. arg is the input line with the keyword
	// stripped. The task list must be left unchanged on any failure.
	Run(ctx context.Context, env *Env, arg string) Result
}

// saveTasks persists the whole list after a successful mutation. A failed
// save is reported but keeps the in-memory state and the session alive.
func saveTasks(ctx context.Context, env *Env) {
	if err := env.Store.Save(ctx, env.Tasks.Tasks()); err != nil {
		env.Log.Error("save failed", "error", err)
		env.Out.ShowError("Could not save your tasks: " + err.Error())
	}
}
