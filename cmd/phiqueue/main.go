// Command phiqueue benchmarks and soak-tests the FIFO queue implementations.
//
// Usage:
//
//	go run ./cmd/phiqueue bench -n 10000000 -depth 64
//	go run ./cmd/phiqueue soak -impl phi -ops 0 -memory-limit 1048576
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/randomizedcoder/phiqueue/internal/logger"
	"github.com/randomizedcoder/phiqueue/internal/queue"
	"github.com/randomizedcoder/phiqueue/internal/workload"
)

func main() {
	app := &cli.App{
		Name:  "phiqueue",
		Usage: "benchmark and soak-test growable FIFO queues",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "minimum log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			benchCommand(),
			soakCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) (logger.Logger, error) {
	level, ok := logger.ParseLevel(c.String("log-level"))
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", c.String("log-level"))
	}
	return logger.NewSlog(os.Stderr, level, false), nil
}

// destroy releases q, keeping err if one is already being returned.
func destroy[T any](q *queue.Queue[T], err error) error {
	if derr := q.Destroy(); derr != nil && err == nil {
		return derr
	}
	return err
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "time push+pop loops for each implementation",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Value: 10_000_000, Usage: "number of iterations"},
			&cli.IntFlag{Name: "depth", Value: 64, Usage: "elements held in the queue during the loop"},
		},
		Action: func(c *cli.Context) (err error) {
			iterations := c.Int("n")
			depth := c.Int("depth")
			if iterations < 1 || depth < 0 {
				return errors.New("n must be positive and depth non-negative")
			}

			phi, err := queue.New[int]()
			if err != nil {
				return err
			}
			defer func() { err = destroy(phi, err) }()

			impls := []struct {
				name string
				q    queue.FIFO[int]
			}{
				{"Phi", phi},
				{"Ring", queue.NewRing[int](queue.DefaultCapacity)},
				{"Channel", queue.NewChannel[int](depth + 1)},
			}

			fmt.Printf("Benchmarking FIFO queues (%d iterations, depth=%d)\n", iterations, depth)
			fmt.Println("─────────────────────────────────────────────────")
			fmt.Printf("\nResults (push + pop per iteration):\n")

			for _, impl := range impls {
				dur, err := timeLoop(impl.q, iterations, depth)
				if err != nil {
					return fmt.Errorf("%s: %w", impl.name, err)
				}
				perOp := float64(dur.Nanoseconds()) / float64(iterations)
				fmt.Printf("  %-8s %v (%.2f ns/op, %.2f M ops/sec)\n", impl.name+":", dur, perOp, 1000/perOp)
			}

			fmt.Printf("\nPhi queue: cap=%d %+v\n", phi.Cap(), phi.Stats())
			return nil
		},
	}
}

// timeLoop pre-fills q to depth and then times iterations of push+pop.
func timeLoop(q queue.FIFO[int], iterations, depth int) (time.Duration, error) {
	for i := 0; i < depth; i++ {
		if err := q.Push(i); err != nil {
			return 0, err
		}
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := q.Push(i); err != nil {
			return 0, err
		}
		if _, err := q.Pop(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

func soakCommand() *cli.Command {
	def := workload.DefaultConfig()

	return &cli.Command{
		Name:  "soak",
		Usage: "run a seeded push/pop workload and check FIFO invariants",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "impl", Value: "phi", Usage: "implementation (phi, ring, channel)"},
			&cli.IntFlag{Name: "ops", Value: def.Ops, Usage: "operations to run; 0 runs until interrupted"},
			&cli.Uint64Flag{Name: "seed", Value: def.Seed, Usage: "random seed"},
			&cli.IntFlag{Name: "phase", Value: def.Phase, Usage: "operations per push-heavy/pop-heavy phase"},
			&cli.Float64Flag{Name: "push-bias", Value: def.PushBias, Usage: "push probability in push-heavy phases"},
			&cli.DurationFlag{Name: "progress", Value: def.Progress, Usage: "progress log interval; 0 disables"},
			&cli.Uint64Flag{Name: "memory-limit", Usage: "phi buffer limit in bytes; 0 is unlimited"},
			&cli.IntFlag{Name: "channel-size", Value: 4096, Usage: "buffer size for the channel implementation"},
		},
		Action: func(c *cli.Context) (err error) {
			log, err := newLogger(c)
			if err != nil {
				return err
			}

			cfg := def
			cfg.Ops = c.Int("ops")
			cfg.Seed = c.Uint64("seed")
			cfg.Phase = c.Int("phase")
			cfg.PushBias = c.Float64("push-bias")
			cfg.Progress = c.Duration("progress")

			impl := c.String("impl")
			log = log.With("impl", impl)

			var (
				q   queue.FIFO[uint64]
				phi *queue.Queue[uint64]
			)
			switch impl {
			case "phi":
				phi, err = queue.New[uint64](
					queue.WithMemoryLimit(c.Uint64("memory-limit")),
					queue.WithLogger(log),
				)
				if err != nil {
					return err
				}
				defer func() { err = destroy(phi, err) }()
				q = phi
			case "ring":
				q = queue.NewRing[uint64](queue.DefaultCapacity)
			case "channel":
				q = queue.NewChannel[uint64](c.Int("channel-size"))
			default:
				return fmt.Errorf("unknown implementation %q", impl)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			log.Info("soak started", "ops", cfg.Ops, "seed", cfg.Seed, "phase", cfg.Phase, "pushBias", cfg.PushBias)
			rep, err := workload.Run(ctx, q, cfg, log)
			if err != nil {
				return err
			}

			args := []any{
				"ops", rep.Ops, "pushes", rep.Pushes, "pops", rep.Pops,
				"emptyPops", rep.EmptyPops, "rejected", rep.Rejected, "maxLen", rep.MaxLen,
				"elapsed", rep.Elapsed, "cancelled", rep.Cancelled,
			}
			if phi != nil {
				stats := phi.Stats()
				args = append(args, "cap", phi.Cap(), "grows", stats.Grows, "compactions", stats.Compactions)
			}
			log.Info("soak finished", args...)
			return nil
		},
	}
}
