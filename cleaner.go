package relay

import (
	"context"
	"time"
)

// Clean runs once the eviction of messages older than the max age.
// It returns the number of evicted messages, zero when no max age is set.
func (r *Relay) Clean(_ context.Context) int {
	if r.maxAge <= 0 {
		return 0
	}

	return r.store.EvictBefore(r.now().Add(-r.maxAge))
}

// Start runs the cleaning process every clean interval until the context is done.
// Without a max age it only waits for the context.
func (r *Relay) Start(ctx context.Context) error {
	if r.maxAge <= 0 {
		<-ctx.Done()
		return nil
	}

	t := time.NewTicker(r.cleanInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			r.Clean(ctx)
		}
	}
}
