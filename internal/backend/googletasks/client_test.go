package googletasks

import (
	"testing"
	"time"

	"taskbot/internal/storage"
	"taskbot/internal/task"
)

func TestNotesRoundTrip(t *testing.T) {
	done := task.NewTodo("buy milk")
	done.MarkDone()
	tasks := []task.Task{
		done,
		task.NewDeadline("submit report", task.CalendarDate(time.Date(2019, time.December, 2, 0, 0, 0, 0, time.UTC))),
		task.NewDeadline("pay rent", task.RawDate("whenever")),
		task.NewEvent("trip",
			time.Date(2019, time.December, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2019, time.December, 5, 0, 0, 0, 0, time.UTC)),
	}

	for _, want := range tasks {
		remote, err := encodeRemote(want)
		if err != nil {
			t.Fatalf("%q: encode failed: %v", want.Description(), err)
		}
		if remote.Title != want.Description() {
			t.Errorf("%q: expected title to carry the description, got %q", want.Description(), remote.Title)
		}
		wantStatus := "needsAction"
		if want.Done() {
			wantStatus = "completed"
		}
		if remote.Status != wantStatus {
			t.Errorf("%q: expected status %q, got %q", want.Description(), wantStatus, remote.Status)
		}

		record, err := decodeNotes(remote.Notes)
		if err != nil {
			t.Fatalf("%q: decode failed: %v", want.Description(), err)
		}
		got, err := storage.DecodeTask(record)
		if err != nil {
			t.Fatalf("%q: rebuild failed: %v", want.Description(), err)
		}
		if got.Render() != want.Render() {
			t.Errorf("expected %q, got %q", want.Render(), got.Render())
		}
		if got.Done() != want.Done() {
			t.Errorf("%q: done flag lost", want.Description())
		}
	}
}

func TestDecodeNotesRejectsForeignContent(t *testing.T) {
	for _, notes := range []string{"just a human note", "key: value\n"} {
		if _, err := decodeNotes(notes); err == nil {
			t.Errorf("expected error for notes %q", notes)
		}
	}
}
