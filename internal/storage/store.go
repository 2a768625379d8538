// Package storage persists the task list. Backends implement whole-list
// overwrite semantics: every Save fully supersedes the previous one.
package storage

import (
	"context"
	"fmt"
	"time"

	"taskbot/internal/task"
)

// Store is the interface for task persistence backends. Commands never
// touch a backend's encoding directly.
type Store interface {
	// Save durably persists the full ordered task collection, replacing
	// any previously saved content.
	Save(ctx context.Context, tasks []task.Task) error

	// Load reconstructs the task collection from the last Save. A missing
	// store yields an empty list, not an error.
	Load(ctx context.Context) ([]task.Task, error)

	// Close releases backend resources.
	Close() error
}

// Task type tags used in serialized records.
const (
	TypeTodo     = "todo"
	TypeDeadline = "deadline"
	TypeEvent    = "event"
)

const dayLayout = "2006-01-02"

// Record is the serialized form of one task, shared by every backend.
type Record struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
	Due         string `yaml:"due,omitempty"`
	DueRaw      bool   `yaml:"due_raw,omitempty"`
	From        string `yaml:"from,omitempty"`
	To          string `yaml:"to,omitempty"`
}

// EncodeTask converts a task into its serialized record.
func EncodeTask(t task.Task) Record {
	r := Record{Description: t.Description(), Done: t.Done()}
	switch v := t.(type) {
	case *task.Todo:
		r.Type = TypeTodo
	case *task.Deadline:
		r.Type = TypeDeadline
		if day, ok := v.Due().Calendar(); ok {
			r.Due = day.Format(dayLayout)
		} else {
			r.Due = v.Due().Raw()
			r.DueRaw = true
		}
	case *task.Event:
		r.Type = TypeEvent
		r.From = v.From().Format(dayLayout)
		r.To = v.To().Format(dayLayout)
	}
	return r
}

// DecodeTask reconstructs a task from its serialized record.
func DecodeTask(r Record) (task.Task, error) {
	var t task.Task
	switch r.Type {
	case TypeTodo:
		t = task.NewTodo(r.Description)
	case TypeDeadline:
		if r.DueRaw {
			t = task.NewDeadline(r.Description, task.RawDate(r.Due))
		} else {
			day, err := time.Parse(dayLayout, r.Due)
			if err != nil {
				return nil, fmt.Errorf("invalid due date %q: %w", r.Due, err)
			}
			t = task.NewDeadline(r.Description, task.CalendarDate(day))
		}
	case TypeEvent:
		from, err := time.Parse(dayLayout, r.From)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q: %w", r.From, err)
		}
		to, err := time.Parse(dayLayout, r.To)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %q: %w", r.To, err)
		}
		t = task.NewEvent(r.Description, from, to)
	default:
		return nil, fmt.Errorf("unknown task type: %q", r.Type)
	}
	if r.Done {
		t.MarkDone()
	}
	return t, nil
}

// Encode converts an ordered task collection into records.
func Encode(tasks []task.Task) []Record {
	records := make([]Record, len(tasks))
	for i, t := range tasks {
		records[i] = EncodeTask(t)
	}
	return records
}

// Decode reconstructs an ordered task collection from records.
func Decode(records []Record) ([]task.Task, error) {
	tasks := make([]task.Task, 0, len(records))
	for i, r := range records {
		t, err := DecodeTask(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
