package worker

import (
	"context"

	"folio/internal/config"
)

// Pool bounds how many image checks hold a network request at once
type Pool interface {
	Acquire(ctx context.Context) error
	Release()
}

type pool struct {
	slots chan struct{}
}

// NewWorkerPool creates a pool with images.workers slots, never fewer than one
func NewWorkerPool(cfg *config.Config) Pool {
	return &pool{
		slots: make(chan struct{}, max(cfg.Images.Workers, 1)),
	}
}

// Acquire takes a slot for one image check. It blocks while every slot is taken
// and gives up with the context error once ctx is done, so a quitting program
// never waits behind queued checks.
func (p *pool) Acquire(ctx context.Context) error {
	select {
	case p.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns the slot taken by Acquire
func (p *pool) Release() {
	<-p.slots
}
