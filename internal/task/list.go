package task

import "fmt"

// List is an ordered, mutable sequence of tasks. Insertion order is list
// order, display order and persisted order. Indices are 0-based; callers
// translate user-facing 1-based numbers before touching the list.
type List struct {
	tasks []Task
}

// NewList creates a list holding the given tasks in order.
func NewList(tasks ...Task) *List {
	return &List{tasks: tasks}
}

// Add appends a task.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// At returns the task at index i.
func (l *List) At(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return nil, fmt.Errorf("task index out of range: %d", i)
	}
	return l.tasks[i], nil
}

// Remove removes and returns the task at index i. Subsequent tasks shift
// down by one.
func (l *List) Remove(i int) (Task, error) {
	t, err := l.At(i)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// Tasks returns a copy of the ordered task sequence.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}
