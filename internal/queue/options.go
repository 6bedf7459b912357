package queue

import (
	"fmt"

	"github.com/randomizedcoder/phiqueue/internal/logger"
)

type config struct {
	capacity    int
	memoryLimit uint64
	log         logger.Logger
}

func defaultConfig() config {
	return config{
		capacity: DefaultCapacity,
		log:      logger.Nop(),
	}
}

// Option configures a Queue created by New.
type Option interface {
	apply(*config) error
}

type optFunc struct {
	name      string
	applyFunc func(*config) error
}

func (o *optFunc) apply(cfg *config) error {
	if err := o.applyFunc(cfg); err != nil {
		return fmt.Errorf("%s: %w", o.name, err)
	}
	return nil
}

func newOptFunc(name string, f func(*config) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithInitialCapacity sets the number of slots allocated by New.
// The capacity must be at least 1.
//
// The default value is DefaultCapacity.
func WithInitialCapacity(n int) Option {
	return newOptFunc("WithInitialCapacity", func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("%w: capacity %d < 1", ErrInvalidOption, n)
		}
		cfg.capacity = n
		return nil
	})
}

// WithMemoryLimit caps the size in bytes of the element buffer. Any
// allocation, including the initial one, that would exceed the limit fails
// with ErrOutOfMemory.
//
// The default value is 0, meaning no limit.
func WithMemoryLimit(bytes uint64) Option {
	return newOptFunc("WithMemoryLimit", func(cfg *config) error {
		cfg.memoryLimit = bytes
		return nil
	})
}

// WithLogger sets the logger receiving growth, compaction and allocation
// failure events.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *config) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		cfg.log = l
		return nil
	})
}
