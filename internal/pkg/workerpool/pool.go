package workerpool

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Index int
	Err   error
}

type job struct {
	index int
	task  Task
}

// Pool runs submitted tasks on a fixed number of goroutines.
type Pool struct {
	workers int
	tasks   chan job
	wg      sync.WaitGroup
}

func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan job, buffer),
	}
}

func (p *Pool) Submit(index int, t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- job{index: index, task: t}
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers. The returned channel is closed once Close has been
// called and every queued task has finished, or ctx is done.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, cap(p.tasks)+p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.tasks:
					if !ok {
						return
					}
					err := j.task(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Index: j.index, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

// RunAll executes tasks with at most workers in flight and returns their
// errors in task order. Tasks that never ran report ctx.Err().
func RunAll(ctx context.Context, workers int, tasks []Task) []error {
	errs := make([]error, len(tasks))
	done := make([]bool, len(tasks))

	p := New(workers, len(tasks))
	results := p.Run(ctx)
	for i, t := range tasks {
		p.Submit(i, t)
	}
	p.Close()

	for r := range results {
		errs[r.Index] = r.Err
		done[r.Index] = true
	}
	for i := range tasks {
		if !done[i] {
			errs[i] = ctx.Err()
			if errs[i] == nil {
				errs[i] = context.Canceled
			}
		}
	}
	return errs
}
