package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/worldsync/internal/logger"
)

// DefaultInterval is used when a PeriodicJob is built with a non-positive
// interval.
const DefaultInterval = 5 * time.Minute

// PeriodicJob calls a task on a ticker until stopped.
type PeriodicJob struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicJob creates a job that calls task every interval. The job is
// idle until Start is called.
func NewPeriodicJob(name string, interval time.Duration, task func(ctx context.Context) error, log *logger.Logger) *PeriodicJob {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &PeriodicJob{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log,
	}
}

// Start stops any previously running instance, then launches a goroutine
// that calls the task every interval. The goroutine exits when ctx is
// cancelled or Stop is called. Task errors are logged and do not stop the
// job.
func (j *PeriodicJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.task(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "PeriodicJob.Start").Str("job", j.name).Msg("periodic job failed")
				}
			}
		}
	}()
}

// Stop cancels the job goroutine and blocks until it has exited. Safe to
// call when the job is not running.
func (j *PeriodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
