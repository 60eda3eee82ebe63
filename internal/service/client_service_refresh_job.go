// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

const defaultRefreshInterval = 5 * time.Minute

// historyLoader is the part of [IntakeService] the refresh job needs.
type historyLoader interface {
	Attached() bool
	LoadHistory(ctx context.Context) error
}

type refreshJob struct {
	intake historyLoader

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls intake.LoadHistory on a
// ticker while an identity is attached. The job is idle until Start is
// called.
func NewRefreshJob(intake historyLoader) RefreshJob {
	return &refreshJob{intake: intake}
}

// Start implements RefreshJob. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.intake.Attached() {
					_ = j.intake.LoadHistory(jobCtx)
				}
			}
		}
	}()
}

// Stop implements RefreshJob. Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

// stopLocked must be called with j.mu held. The goroutine never takes j.mu,
// so waiting for it here cannot deadlock.
func (j *refreshJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
