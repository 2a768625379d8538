package task_test

import (
	"testing"
	"time"

	"taskbot/internal/task"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTodoRender(t *testing.T) {
	todo := task.NewTodo("buy milk")
	if got := todo.Render(); got != "[T][ ] buy milk" {
		t.Errorf("expected %q, got %q", "[T][ ] buy milk", got)
	}

	todo.MarkDone()
	if got := todo.Render(); got != "[T][X] buy milk" {
		t.Errorf("expected %q, got %q", "[T][X] buy milk", got)
	}
}

func TestMarkIsIdempotent(t *testing.T) {
	todo := task.NewTodo("a")
	todo.MarkDone()
	todo.MarkDone()
	if !todo.Done() {
		t.Error("marking twice must leave the task done")
	}
	todo.MarkUndone()
	todo.MarkUndone()
	if todo.Done() {
		t.Error("unmarking twice must leave the task not done")
	}
}

func TestDeadlineRender(t *testing.T) {
	d := task.NewDeadline("submit report", task.CalendarDate(day(2019, time.December, 2)))
	want := "[D][ ] submit report (by: Dec 2 2019)"
	if got := d.Render(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDeadlineRawTextRender(t *testing.T) {
	d := task.NewDeadline("pay rent", task.RawDate("whenever"))
	want := "[D][ ] pay rent (by: whenever)"
	if got := d.Render(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEventRender(t *testing.T) {
	e := task.NewEvent("trip", day(2019, time.December, 2), day(2019, time.December, 5))
	want := "[E][ ] trip (from: Dec 2 2019 to: Dec 5 2019)"
	if got := e.Render(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"12/2/2019 1800", day(2019, time.December, 2), true},
		{"1/2/2019 0900", day(2019, time.January, 2), true},
		{"2019-12-02", day(2019, time.December, 2), true},
		{"not-a-date", time.Time{}, false},
		{"12/2/2019", time.Time{}, false},   // time component required by the first format
		{"2019-12-2", time.Time{}, false},   // ISO format needs zero padding
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := task.ParseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewDateFallsBackToRawText(t *testing.T) {
	d := task.NewDate("soonish")
	if _, ok := d.Calendar(); ok {
		t.Fatal("expected unparsed date")
	}
	if d.Raw() != "soonish" {
		t.Errorf("expected raw text kept verbatim, got %q", d.Raw())
	}
	if d.String() != "soonish" {
		t.Errorf("expected raw rendering, got %q", d.String())
	}
}

func TestListAddRemove(t *testing.T) {
	l := task.NewList()
	a, b, c := task.NewTodo("a"), task.NewTodo("b"), task.NewTodo("c")
	l.Add(a)
	l.Add(b)
	l.Add(c)

	removed, err := l.Remove(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != b {
		t.Error("expected b removed")
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", l.Len())
	}
	got, _ := l.At(1)
	if got != c {
		t.Error("expected c shifted into position 1")
	}
}

func TestListBounds(t *testing.T) {
	l := task.NewList(task.NewTodo("only"))
	for _, i := range []int{-1, 1, 99} {
		if _, err := l.At(i); err == nil {
			t.Errorf("At(%d): expected error", i)
		}
		if _, err := l.Remove(i); err == nil {
			t.Errorf("Remove(%d): expected error", i)
		}
	}
	if l.Len() != 1 {
		t.Errorf("failed removals must not change the list, got %d tasks", l.Len())
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	l := task.NewList(task.NewTodo("a"))
	view := l.Tasks()
	view[0] = task.NewTodo("b")

	got, _ := l.At(0)
	if got.Description() != "a" {
		t.Error("Tasks() must return a copy of the sequence")
	}
}
