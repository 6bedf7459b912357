package workload

import (
	"context"
	"time"
)

// batchCheck looks at the context and the clock only every N calls.
//
// This keeps cancellation and progress checks out of the per-operation cost
// of the driver loop. With every=1024 and interval=1s, the clock is read once
// per 1024 operations and progress fires if a second has passed.
type batchCheck struct {
	ctx      context.Context
	interval time.Duration
	every    int
	count    int
	lastTick time.Time
}

func newBatchCheck(ctx context.Context, interval time.Duration, every int) *batchCheck {
	if every < 1 {
		every = 1
	}
	return &batchCheck{
		ctx:      ctx,
		interval: interval,
		every:    every,
		lastTick: time.Now(),
	}
}

// poll reports whether the context is done and whether the progress interval
// has elapsed. Both are false on calls that are not a multiple of every.
func (b *batchCheck) poll() (cancelled, tick bool) {
	b.count++
	if b.count%b.every != 0 {
		return false, false
	}

	select {
	case <-b.ctx.Done():
		return true, false
	default:
	}

	if b.interval <= 0 {
		return false, false
	}
	now := time.Now()
	if now.Sub(b.lastTick) >= b.interval {
		b.lastTick = now
		return false, true
	}
	return false, false
}
