package repl_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"taskbot/internal/commands"
	"taskbot/internal/config"
	"taskbot/internal/exitcode"
	"taskbot/internal/repl"
	"taskbot/internal/task"
	"taskbot/internal/testutil"
	"taskbot/internal/ui"
)

func newTestEnv(t *testing.T, buf *bytes.Buffer) (*commands.Env, *testutil.FakeStore) {
	t.Helper()
	store := testutil.NewFakeStore()
	env := &commands.Env{
		Tasks:  task.NewList(),
		Store:  store,
		Out:    ui.NewConsole(buf, false),
		Config: &config.Config{Dir: t.TempDir()},
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return env, store
}

func TestRun_ScriptedSession(t *testing.T) {
	script := strings.Join([]string{
		"todo buy milk",
		"deadline submit report /by 2019-12-02",
		"deadline pay rent /by whenever",
		"event trip /from 12/2/2019 1800 /to 2019-12-05",
		"event broken /from bogus /to 2019-12-05",
		"list",
		"mark 1",
		"MARK 1",
		"mark 99",
		"unmark abc",
		"delete 2",
		"blah",
		"bye",
	}, "\n") + "\n"

	var buf bytes.Buffer
	env, store := newTestEnv(t, &buf)

	code := repl.New(commands.DefaultRegistry, env).Run(context.Background(), strings.NewReader(script))
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}

	testutil.Golden(t, "session", buf.Bytes())

	// The rejected event and the bogus indices must not have left a trace.
	if env.Tasks.Len() != 3 {
		t.Errorf("expected 3 tasks after session, got %d", env.Tasks.Len())
	}
	if len(store.Saved()) != 3 {
		t.Errorf("expected 3 tasks in final save, got %d", len(store.Saved()))
	}
}

func TestRun_EOFSavesAndSaysFarewell(t *testing.T) {
	var buf bytes.Buffer
	env, store := newTestEnv(t, &buf)

	code := repl.New(commands.DefaultRegistry, env).Run(context.Background(), strings.NewReader("todo read a book\n"))
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(buf.String(), "Bye. Hope to see you again soon!") {
		t.Error("expected farewell on EOF")
	}
	// One save for the todo, one final save on EOF.
	if store.Saves() != 2 {
		t.Errorf("expected 2 saves, got %d", store.Saves())
	}
}

func TestHandleLine_BlankLine(t *testing.T) {
	var buf bytes.Buffer
	env, _ := newTestEnv(t, &buf)

	in := repl.New(commands.DefaultRegistry, env)
	if got := in.HandleLine(context.Background(), "   "); got != commands.Continue {
		t.Fatalf("expected Continue, got %v", got)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for a blank line, got %q", buf.String())
	}
}

func TestHandleLine_UnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	env, _ := newTestEnv(t, &buf)

	in := repl.New(commands.DefaultRegistry, env)
	if got := in.HandleLine(context.Background(), "frobnicate now"); got != commands.Continue {
		t.Fatalf("expected Continue, got %v", got)
	}
	if !strings.Contains(buf.String(), "I'm sorry, I don't understand!") {
		t.Errorf("expected not-understood message, got %q", buf.String())
	}
}

func TestHandleLine_KeywordCaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	env, _ := newTestEnv(t, &buf)

	in := repl.New(commands.DefaultRegistry, env)
	in.HandleLine(context.Background(), "TODO Buy Milk")

	if env.Tasks.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", env.Tasks.Len())
	}
	got, _ := env.Tasks.At(0)
	// Arguments keep their case.
	if got.Description() != "Buy Milk" {
		t.Errorf("expected description %q, got %q", "Buy Milk", got.Description())
	}
}

func TestHandleLine_ByeTerminates(t *testing.T) {
	var buf bytes.Buffer
	env, store := newTestEnv(t, &buf)
	env.Tasks.Add(task.NewTodo("pending"))

	in := repl.New(commands.DefaultRegistry, env)
	if got := in.HandleLine(context.Background(), "bye"); got != commands.Terminate {
		t.Fatalf("expected Terminate, got %v", got)
	}
	if store.Saves() != 1 {
		t.Errorf("expected final save on bye, got %d saves", store.Saves())
	}
}
