// Package workers provides the execution primitives the daemon and the
// synchronization engine run on: a per-synchronizer Sequencer that
// serializes inbound processing, and PeriodicJob for background
// maintenance such as journal pruning.
package workers

import "context"

// Worker is a background component with an explicit lifecycle.
//
// Start launches the worker and returns without blocking; Stop cancels it
// and waits until its goroutines have exited. Both are safe to call more
// than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Workers aggregates several workers so the daemon can start and stop them
// as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers returns an aggregate of ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
