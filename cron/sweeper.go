package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops expired entries from a store that does not expire them itself.
type Sweeper interface {
	Sweep() int
}

// StartSessionSweeper sweeps store every interval until ctx is done.
func StartSessionSweeper(ctx context.Context, store Sweeper, every time.Duration, logger *zap.Logger) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := store.Sweep(); n > 0 {
					logger.Debug("expired booking sessions swept", zap.Int("count", n))
				}
			}
		}
	}()
}
