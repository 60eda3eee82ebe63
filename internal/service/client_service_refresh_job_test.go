// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type spyLoader struct {
	attached atomic.Bool
	loads    atomic.Int32
}

func (s *spyLoader) Attached() bool { return s.attached.Load() }

func (s *spyLoader) LoadHistory(context.Context) error {
	s.loads.Add(1)
	return nil
}

func TestRefreshJob_LoadsWhileAttached(t *testing.T) {
	spy := &spyLoader{}
	spy.attached.Store(true)

	job := NewRefreshJob(spy)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.loads.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestRefreshJob_IdleWhileDetached(t *testing.T) {
	spy := &spyLoader{}

	job := NewRefreshJob(spy)
	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.loads.Load())
}

func TestRefreshJob_StopHaltsTicker(t *testing.T) {
	spy := &spyLoader{}
	spy.attached.Store(true)

	job := NewRefreshJob(spy)
	job.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.loads.Load() > 0 }, time.Second, 5*time.Millisecond)
	job.Stop()

	after := spy.loads.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.loads.Load())

	// stopping twice is fine
	job.Stop()
}

func TestRefreshJob_ContextCancel(t *testing.T) {
	spy := &spyLoader{}
	spy.attached.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	job := NewRefreshJob(spy)
	job.Start(ctx, 5*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not exit after context cancellation")
	}
}

func TestRefreshJob_RestartReplacesRunningJob(t *testing.T) {
	spy := &spyLoader{}
	spy.attached.Store(true)

	job := NewRefreshJob(spy).(*refreshJob)
	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.loads.Load() > 0 }, time.Second, 5*time.Millisecond)
}

func TestRefreshJob_ConcurrentStartLeavesOneJob(t *testing.T) {
	spy := &spyLoader{}
	spy.attached.Store(true)

	job := NewRefreshJob(spy)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job.Start(context.Background(), 2*time.Millisecond)
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return spy.loads.Load() > 0 }, time.Second, 2*time.Millisecond)
	job.Stop()

	// a goroutine whose cancel func was overwritten would keep ticking
	after := spy.loads.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.loads.Load())
}
