package workerpool

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Task func() error

// WorkerPool runs submitted tasks on a fixed number of goroutines.
type WorkerPool struct {
	pool      chan Task
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func New(size int) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	wp := &WorkerPool{pool: make(chan Task, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

// AddTask blocks until a slot is free or ctx is done. It must not be called
// after Close.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.pool)
	})
	wp.wg.Wait()
}
