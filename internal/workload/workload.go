// Package workload drives a FIFO through a seeded random sequence of pushes and
// pops and checks it against an oracle.
//
// The run alternates between push-heavy and pop-heavy phases so that an
// implementation with growth and compaction goes through both repeatedly.
// Every popped value is checked for FIFO order, the queue length is checked
// against the count of pushes minus pops, and pops on an empty queue must
// report queue.ErrEmpty.
package workload

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/randomizedcoder/phiqueue/internal/logger"
	"github.com/randomizedcoder/phiqueue/internal/queue"
)

// ErrViolation is returned when the queue under test breaks a FIFO invariant.
var ErrViolation = errors.New("workload: invariant violation")

// Config controls a workload run.
type Config struct {
	// Seed makes the operation sequence reproducible.
	Seed uint64
	// Ops is the number of operations to perform; 0 runs until the context
	// is cancelled.
	Ops int
	// Phase is the number of operations before switching between the
	// push-heavy and pop-heavy mix.
	Phase int
	// PushBias is the probability of a push during a push-heavy phase. The
	// pop-heavy phase uses 1-PushBias.
	PushBias float64
	// CheckEvery is how many operations pass between cancellation checks.
	CheckEvery int
	// Progress is how often a progress record is logged; 0 disables it.
	Progress time.Duration
}

// DefaultConfig returns the configuration used by the phiqueue soak command.
func DefaultConfig() Config {
	return Config{
		Seed:       1,
		Ops:        1_000_000,
		Phase:      4096,
		PushBias:   0.75,
		CheckEvery: 1024,
		Progress:   time.Second,
	}
}

// Report summarizes a run.
type Report struct {
	Ops       int
	Pushes    int
	Pops      int
	EmptyPops int
	// Rejected counts pushes refused with queue.ErrFull or
	// queue.ErrOutOfMemory; the queue is expected to be unchanged.
	Rejected int
	MaxLen    int
	Elapsed   time.Duration
	Cancelled bool
}

// Run drives q until cfg.Ops operations have been performed or ctx is done.
// A cancelled run is not an error; Report.Cancelled is set instead.
//
// Pushes refused with queue.ErrFull (bounded baselines) or
// queue.ErrOutOfMemory (memory-limited queues) are counted in
// Report.Rejected and the run continues, so later pops show the queue is
// still intact. Any other push error aborts the run and is returned wrapped.
func Run(ctx context.Context, q queue.FIFO[uint64], cfg Config, log logger.Logger) (Report, error) {
	if cfg.Phase < 1 {
		cfg.Phase = 1
	}
	if log == nil {
		log = logger.Nop()
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)) //nolint:gosec // Reproducibility matters more than quality
	check := newBatchCheck(ctx, cfg.Progress, cfg.CheckEvery)
	start := time.Now()

	var (
		rep      Report
		next     uint64 // next value to push
		expected uint64 // next value Pop must return
	)
	finish := func() Report {
		rep.Elapsed = time.Since(start)
		return rep
	}

	for cfg.Ops == 0 || rep.Ops < cfg.Ops {
		if cancelled, tick := check.poll(); cancelled {
			rep.Cancelled = true
			log.Info("workload cancelled", "ops", rep.Ops)
			return finish(), nil
		} else if tick {
			log.Info("workload progress", "ops", rep.Ops, "len", q.Len(), "maxLen", rep.MaxLen)
		}

		bias := cfg.PushBias
		if (rep.Ops/cfg.Phase)%2 == 1 {
			bias = 1 - bias
		}
		rep.Ops++

		if rng.Float64() < bias {
			err := q.Push(next)
			switch {
			case err == nil:
				next++
				rep.Pushes++
			case errors.Is(err, queue.ErrFull), errors.Is(err, queue.ErrOutOfMemory):
				rep.Rejected++
			default:
				log.Warn("workload push failed", "ops", rep.Ops, "len", q.Len(), "err", err)
				return finish(), fmt.Errorf("push %d: %w", next, err)
			}
		} else {
			v, err := q.Pop()
			switch {
			case errors.Is(err, queue.ErrEmpty):
				if next != expected {
					return finish(), violation(log, rep, "pop reported empty with %d elements queued", next-expected)
				}
				rep.EmptyPops++
			case err != nil:
				return finish(), fmt.Errorf("pop: %w", err)
			case v != expected:
				return finish(), violation(log, rep, "popped %d, want %d", v, expected)
			default:
				expected++
				rep.Pops++
			}
		}

		if n := q.Len(); n != rep.Pushes-rep.Pops {
			return finish(), violation(log, rep, "Len() = %d, want %d", n, rep.Pushes-rep.Pops)
		} else if n > rep.MaxLen {
			rep.MaxLen = n
		}
	}

	return finish(), nil
}

func violation(log logger.Logger, rep Report, format string, args ...any) error {
	err := fmt.Errorf("%w after %d ops: %s", ErrViolation, rep.Ops, fmt.Sprintf(format, args...))
	log.Error("workload invariant violated", "err", err)
	return err
}
