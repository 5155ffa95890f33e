// Package workers runs independent tasks with bounded parallelism and
// collects every failure instead of stopping at the first one.
package workers

import (
	"sync"

	"github.com/arthur-debert/batch-rename/pkg/errors"
)

// Task is a handle to a submitted job
type Task struct {
	// Name identifies the task in logs and errors
	Name string
	done chan struct{}
	err  error
}

// Wait blocks until the task finishes and returns its error
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Pool starts tasks immediately but lets at most limit of them run at once
type Pool struct {
	sem   chan struct{}
	wg    sync.WaitGroup
	mu    sync.Mutex
	tasks []*Task
}

// NewPool creates a pool; limit values below 1 are treated as 1
func NewPool(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{sem: make(chan struct{}, limit)}
}

// Go submits fn and returns without waiting for a free slot. A panic in fn
// is recovered and reported as the task's error.
func (p *Pool) Go(name string, fn func() error) *Task {
	task := &Task{Name: name, done: make(chan struct{})}

	p.mu.Lock()
	p.tasks = append(p.tasks, task)
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer close(task.done)

		p.sem <- struct{}{}
		defer func() { <-p.sem }()

		defer func() {
			if r := recover(); r != nil {
				task.err = errors.Newf(errors.ErrInternal, "task %s panicked: %v", name, r)
			}
		}()

		task.err = fn()
	}()

	return task
}

// Tasks returns the handles submitted so far, in submission order
func (p *Pool) Tasks() []*Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Task(nil), p.tasks...)
}

// Wait drains every submitted task and returns an AGGREGATE error holding
// all failures in submission order, or nil.
func (p *Pool) Wait() error {
	p.wg.Wait()

	var errs []error
	for _, task := range p.Tasks() {
		if task.err != nil {
			errs = append(errs, task.err)
		}
	}
	return errors.Aggregate(errs)
}
