package client

import (
	"context"
	"sync"
	"time"
)

// Rotator cycles an index over a fixed set of slides, the way the hero
// carousel advances on a timer. Stop (or context cancellation) halts it;
// the index freezes wherever it was.
type Rotator struct {
	mu     sync.Mutex
	count  int
	index  int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRotator(count int) *Rotator {
	if count < 1 {
		count = 1
	}
	return &Rotator{count: count}
}

func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

func (r *Rotator) advance() {
	r.mu.Lock()
	r.index = (r.index + 1) % r.count
	r.mu.Unlock()
}

// Start begins rotating every interval until Stop or ctx ends. Starting an
// already running rotator restarts it.
func (r *Rotator) Start(ctx context.Context, interval time.Duration) {
	r.Stop()
	if interval <= 0 {
		interval = 4 * time.Second
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	r.mu.Lock()
	r.cancel = cancel
	r.done = done
	r.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.advance()
			}
		}
	}()
}

// Stop halts rotation and waits for the loop to exit. Safe to call when not
// running.
func (r *Rotator) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
