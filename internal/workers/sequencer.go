package workers

import (
	"sync"

	"github.com/MKhiriev/worldsync/internal/logger"
)

// Sequencer runs submitted tasks one at a time, in submission order, on a
// single goroutine.
//
// The queue is unbounded so Submit never blocks; a task may therefore
// submit further tasks without deadlocking. A panicking task is logged and
// does not stop the sequencer.
type Sequencer struct {
	logger *logger.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	started bool
	stopped bool
	done    chan struct{}
}

// NewSequencer returns an idle sequencer. Tasks submitted before Start are
// queued.
func NewSequencer(log *logger.Logger) *Sequencer {
	s := &Sequencer{
		logger: log,
		done:   make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Start launches the processing goroutine. Calling it again is a no-op.
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true
	go s.loop()
}

// Submit enqueues task. It reports false when the sequencer is stopped and
// the task was discarded.
func (s *Sequencer) Submit(task func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	s.queue = append(s.queue, task)
	s.cond.Signal()
	return true
}

// Stop discards pending tasks and makes the goroutine exit after the task
// it is running, if any. It does not wait, so it may be called from a task;
// use Done to wait.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	s.queue = nil
	s.cond.Broadcast()
	if !s.started {
		close(s.done)
	}
}

// Done is closed once the processing goroutine has exited.
func (s *Sequencer) Done() <-chan struct{} {
	return s.done
}

// Flush blocks until every task submitted before the call has run. It
// reports false when the sequencer stopped first. It must not be called
// from a task.
func (s *Sequencer) Flush() bool {
	barrier := make(chan struct{})
	if !s.Submit(func() { close(barrier) }) {
		return false
	}

	select {
	case <-barrier:
		return true
	case <-s.done:
		return false
	}
}

func (s *Sequencer) loop() {
	defer close(s.done)

	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.stopped {
			s.cond.Wait()
		}
		if s.stopped {
			s.mu.Unlock()
			return
		}
		task := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.run(task)
	}
}

func (s *Sequencer) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("func", "Sequencer.run").Interface("panic", r).Msg("sequenced task panicked")
		}
	}()
	task()
}
