// Package cron runs interval-based background jobs for the lifetime of
// the process.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs each registered job on its own ticker. Jobs fire once
// immediately on Start and then at every interval until Stop.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	s.mu.Unlock()

	slog.Info("Cron job registered", "name", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()

			ticker := time.NewTicker(j.interval)
			defer ticker.Stop()

			s.run(j)
			for {
				select {
				case <-s.ctx.Done():
					return
				case <-ticker.C:
					s.run(j)
				}
			}
		}(j)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) run(j job) {
	start := time.Now()
	if err := j.fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time with the given
// context. Used by tests and one-shot maintenance commands.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if err := j.fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}
