// Package workflow provides the lifecycle mechanics of a one-shot background
// run: start, cooperative cancellation, and completion signaling.
package workflow

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Runner executes one task at a time in a background goroutine. A run is
// one-shot: it ends when the task returns or when Stop cancels its context.
type Runner struct {
	logger    *zap.Logger
	taskFunc  func(context.Context) error
	cancel    context.CancelFunc
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewRunner creates a runner for the given task.
func NewRunner(logger *zap.Logger, taskFunc func(context.Context) error) *Runner {
	return &Runner{
		logger:   logger,
		taskFunc: taskFunc,
	}
}

// Start launches the task in the background. Only one run may be active.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.isRunning = true
	r.cancel = cancel
	r.doneCh = make(chan struct{})

	go r.run(runCtx)

	r.logger.Info("Workflow run started")
	return nil
}

// Stop cancels the active run and waits for the task to return. The task is
// expected to honor its context and exit promptly.
func (r *Runner) Stop() error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return ErrNotRunning
	}
	cancel := r.cancel
	doneCh := r.doneCh
	r.mu.Unlock()

	cancel()
	<-doneCh

	r.logger.Info("Workflow run stopped")
	return nil
}

// IsRunning reports whether a run is currently active.
func (r *Runner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRunning
}

func (r *Runner) run(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.isRunning = false
		r.cancel = nil
		// Grab the channel under the lock: a new Start may swap doneCh the
		// moment the lock is released.
		doneCh := r.doneCh
		r.mu.Unlock()
		close(doneCh)
	}()

	if err := r.taskFunc(ctx); err != nil {
		if ctx.Err() != nil {
			r.logger.Info("Workflow run canceled")
			return
		}
		r.logger.Error("Workflow run failed", zap.Error(err))
	}
}
