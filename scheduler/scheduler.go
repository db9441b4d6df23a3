// Package scheduler owns the process's periodic jobs. One Scheduler is
// constructed in main and holds its job for the process lifetime; there is
// no package-level registration, so a job cannot be scheduled twice.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"

	"go.uber.org/zap"
)

type Job func(ctx context.Context) error

type Scheduler struct {
	name     string
	interval time.Duration
	job      Job

	mu      sync.Mutex
	started bool
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func New(name string, interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		job:      job,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the ticker goroutine. Calling it again is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	go s.loop()
	logconfig.SLog.Infow("Scheduler started", "job", s.name, "interval", s.interval.String())
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stop:
			return
		}
	}
}

// runOnce skips the tick when the previous run is still in flight, so slow
// runs never overlap.
func (s *Scheduler) runOnce() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logconfig.Log.Warn("Scheduled job still running, tick skipped", zap.String("job", s.name))
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	if err := s.job(ctx); err != nil {
		logconfig.Log.Error("Scheduled job failed", zap.String("job", s.name), zap.Error(err))
	}
}
