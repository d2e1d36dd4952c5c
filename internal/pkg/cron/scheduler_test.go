package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&ran))
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	var once int32
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		if atomic.CompareAndSwapInt32(&once, 0, 1) {
			close(done)
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}
