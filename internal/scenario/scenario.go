// Package scenario runs the bulk Stack and Queue workloads against a configured backing container.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/clock"

	"go.llib.dev/seqkit/pkg/linkedseq"
	"go.llib.dev/seqkit/pkg/seqadapter"
	"go.llib.dev/seqkit/port/adt"
)

const ErrFailed errorkit.Error = "scenario failed"

const (
	BackingArray = "array"
	BackingList  = "list"
)

type Config struct {
	// Backing selects the container behind the Stack and the Queue.
	Backing string `env:"SEQKIT_BACKING" enum:"array;list;" default:"array"`
	// Count is the number of values pushed through each scenario.
	Count int `env:"SEQKIT_COUNT" default:"998"`
	// PoolLimit and PoolIdle configure a node pool for the list backing.
	// When both are zero, the list allocates its nodes on the heap.
	PoolLimit int `env:"SEQKIT_POOL_LIMIT" default:"0"`
	PoolIdle  int `env:"SEQKIT_POOL_IDLE" default:"0"`
}

func (c Config) Validate() error {
	switch c.Backing {
	case BackingArray, BackingList:
	default:
		return fmt.Errorf("unknown backing: %q", c.Backing)
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be positive: %d", c.Count)
	}
	if c.PoolLimit < 0 || c.PoolIdle < 0 {
		return errors.New("pool settings must not be negative")
	}
	if c.Backing == BackingArray && (0 < c.PoolLimit || 0 < c.PoolIdle) {
		return errors.New("the node pool is only available with the list backing")
	}
	if 0 < c.PoolLimit && c.PoolLimit < c.Count {
		return fmt.Errorf("pool limit (%d) is smaller than the count (%d)", c.PoolLimit, c.Count)
	}
	return nil
}

func (c Config) pooled() bool {
	return c.Backing == BackingList && (0 < c.PoolLimit || 0 < c.PoolIdle)
}

type Logger interface {
	Debug(ctx context.Context, msg string, ds ...logging.Detail)
	Info(ctx context.Context, msg string, ds ...logging.Detail)
}

type Report struct {
	Backing string
	Stack   Result
	Queue   Result
}

type Result struct {
	Count int
	// Underflow tells whether the extra removal on the emptied instance reported underflow.
	Underflow bool
	Elapsed   time.Duration
	// LiveNodes is the number of pool nodes still in use after the scenario, only set when a pool is used.
	LiveNodes int
}

// Run executes the Stack scenario and then the Queue scenario.
func Run(ctx context.Context, c Config, l Logger) (Report, error) {
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	ctx = logging.ContextWith(ctx,
		logging.Field("backing", c.Backing),
		logging.Field("count", c.Count))

	r := Report{Backing: c.Backing}

	var err error
	r.Stack, err = run(ctx, c, l, "stack", runStack)
	if err != nil {
		return r, err
	}
	r.Queue, err = run(ctx, c, l, "queue", runQueue)
	if err != nil {
		return r, err
	}
	return r, nil
}

type adapter interface {
	adt.Stack[int]
	adt.Queue[int]
}

func run(ctx context.Context, c Config, l Logger, name string, fn func(context.Context, adapter, int, Logger) (bool, error)) (Result, error) {
	ctx = logging.ContextWith(ctx, logging.Field("scenario", name))
	l.Info(ctx, "scenario started")

	var (
		a    adapter
		pool *linkedseq.Pool[int]
	)
	switch {
	case c.pooled():
		pool = &linkedseq.Pool[int]{Limit: c.PoolLimit, MaxIdle: c.PoolIdle}
		a = seqadapter.NewListBacked[int](linkedseq.WithAllocator[int](pool))
	case c.Backing == BackingList:
		a = seqadapter.NewListBacked[int]()
	default:
		a = seqadapter.NewArrayBacked[int]()
	}

	start := clock.Now()
	underflow, err := fn(ctx, a, c.Count, l)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	res := Result{
		Count:     c.Count,
		Underflow: underflow,
		Elapsed:   clock.Now().Sub(start),
	}
	if pool != nil {
		res.LiveNodes = pool.Live()
		if res.LiveNodes != 0 {
			return res, fmt.Errorf("%s: %w: %d pool nodes were not released", name, ErrFailed, res.LiveNodes)
		}
	}

	l.Info(ctx, "scenario finished",
		logging.Field("elapsed", res.Elapsed.String()),
		logging.Field("underflow", res.Underflow))
	return res, nil
}

// runStack pushes 1..n, then pops while checking that the top is the expected descending remnant.
func runStack(ctx context.Context, s adapter, n int, l Logger) (bool, error) {
	for v := 1; v <= n; v++ {
		if err := s.Push(v); err != nil {
			return false, fmt.Errorf("push %d: %w", v, err)
		}
	}
	if got := s.Len(); got != n {
		return false, fmt.Errorf("%w: length after push is %d, expected %d", ErrFailed, got, n)
	}

	for exp := n; 1 < exp; exp-- {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		top, err := s.Top()
		if err != nil {
			return false, fmt.Errorf("top: %w", err)
		}
		if top != exp {
			return false, fmt.Errorf("%w: top is %d, expected %d", ErrFailed, top, exp)
		}
		if _, err := s.Pop(); err != nil {
			return false, fmt.Errorf("pop: %w", err)
		}
		l.Debug(ctx, "popped", logging.Field("value", exp))
	}

	last, err := s.Pop()
	if err != nil {
		return false, fmt.Errorf("final pop: %w", err)
	}
	if last != 1 || !s.IsEmpty() {
		return false, fmt.Errorf("%w: final pop returned %d with length %d", ErrFailed, last, s.Len())
	}
	return expectUnderflow(ctx, l, "pop", func() error {
		_, err := s.Pop()
		return err
	})
}

// runQueue enqueues 1..n, then dequeues while checking that the front equals the number of dequeues plus one.
func runQueue(ctx context.Context, q adapter, n int, l Logger) (bool, error) {
	for v := 1; v <= n; v++ {
		if err := q.Enqueue(v); err != nil {
			return false, fmt.Errorf("enqueue %d: %w", v, err)
		}
	}
	if got := q.Len(); got != n {
		return false, fmt.Errorf("%w: length after enqueue is %d, expected %d", ErrFailed, got, n)
	}

	for dequeued := 0; dequeued < n-1; dequeued++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		front, err := q.Front()
		if err != nil {
			return false, fmt.Errorf("front: %w", err)
		}
		if front != dequeued+1 {
			return false, fmt.Errorf("%w: front is %d, expected %d", ErrFailed, front, dequeued+1)
		}
		if _, err := q.Dequeue(); err != nil {
			return false, fmt.Errorf("dequeue: %w", err)
		}
		l.Debug(ctx, "dequeued", logging.Field("value", front))
	}

	last, err := q.Dequeue()
	if err != nil {
		return false, fmt.Errorf("final dequeue: %w", err)
	}
	if last != n || !q.IsEmpty() {
		return false, fmt.Errorf("%w: final dequeue returned %d with length %d", ErrFailed, last, q.Len())
	}
	return expectUnderflow(ctx, l, "dequeue", func() error {
		_, err := q.Dequeue()
		return err
	})
}

// expectUnderflow reports whether fn signalled underflow on the emptied instance.
func expectUnderflow(ctx context.Context, l Logger, op string, fn func() error) (bool, error) {
	err := fn()
	if !errors.Is(err, adt.ErrUnderflow) {
		return false, fmt.Errorf("%w: %s on the emptied instance returned %v instead of underflow", ErrFailed, op, err)
	}
	l.Info(ctx, "underflow observed", logging.Field("op", op))
	return true, nil
}
