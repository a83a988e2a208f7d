package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Lzww0608/uuid4"
	"github.com/Lzww0608/uuid4/store"
)

type benchOptions struct {
	Count   int
	Workers int
	Shards  int
}

type benchResult struct {
	Generated  int
	Collisions int64
	Elapsed    time.Duration
}

// Rate returns UUIDs generated per second.
func (r benchResult) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Generated) / r.Elapsed.Seconds()
}

// seenSet is a set of UUIDs split into lock shards chosen by uuid4.Hash.
type seenSet struct {
	shards []seenShard
}

type seenShard struct {
	mu sync.Mutex
	m  map[uuid4.UUID]struct{}
}

func newSeenSet(shards, capacity int) *seenSet {
	if shards < 1 {
		shards = 1
	}
	s := &seenSet{shards: make([]seenShard, shards)}
	for i := range s.shards {
		s.shards[i].m = make(map[uuid4.UUID]struct{}, capacity/shards+1)
	}
	return s
}

// Add inserts u and reports whether it was new.
func (s *seenSet) Add(u uuid4.UUID) bool {
	sh := &s.shards[uuid4.Hash(u)%uint(len(s.shards))]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.m[u]; ok {
		return false
	}
	sh.m[u] = struct{}{}
	return true
}

// Len returns the number of distinct UUIDs added.
func (s *seenSet) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.Lock()
		n += len(s.shards[i].m)
		s.shards[i].mu.Unlock()
	}
	return n
}

// split divides total into n near-equal parts.
func split(total, n int) []int {
	parts := make([]int, n)
	for i := range parts {
		parts[i] = total / n
		if i < total%n {
			parts[i]++
		}
	}
	return parts
}

func runBench(ctx context.Context, opts benchOptions) (benchResult, error) {
	if opts.Count < 0 {
		return benchResult{}, fmt.Errorf("count must not be negative, got %d", opts.Count)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	seen := newSeenSet(opts.Shards, opts.Count)
	var collisions atomic.Int64

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, n := range split(opts.Count, opts.Workers) {
		n := n // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			gen := uuid4.NewGenerator()
			for i := 0; i < n; i++ {
				if i%65536 == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				if !seen.Add(gen.New()) {
					collisions.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}

	return benchResult{
		Generated:  opts.Count,
		Collisions: collisions.Load(),
		Elapsed:    time.Since(start),
	}, nil
}

type auditOptions struct {
	DSN     string
	Table   string
	Count   int
	Workers int
	Batch   int
}

type auditResult struct {
	Generated int
	Inserted  int
	Total     int64
	Elapsed   time.Duration
}

func runAudit(ctx context.Context, logger *slog.Logger, opts auditOptions) (auditResult, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Batch < 1 {
		opts.Batch = 1
	}

	reg, err := store.Open(ctx, store.Config{DSN: opts.DSN, Table: opts.Table, Logger: logger})
	if err != nil {
		return auditResult{}, err
	}
	defer reg.Close()
	if err := reg.EnsureSchema(ctx); err != nil {
		return auditResult{}, err
	}

	var inserted atomic.Int64
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, n := range split(opts.Count, opts.Workers) {
		n := n // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			gen := uuid4.NewGenerator()
			batch := make([]uuid4.UUID, 0, opts.Batch)
			for n > 0 {
				batch = batch[:0]
				for len(batch) < opts.Batch && n > 0 {
					batch = append(batch, gen.New())
					n--
				}
				k, err := reg.InsertBatch(gctx, batch)
				if err != nil {
					return err
				}
				inserted.Add(int64(k))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return auditResult{}, err
	}

	total, err := reg.Count(ctx)
	if err != nil {
		return auditResult{}, err
	}
	logger.Debug("audit finished", "inserted", inserted.Load(), "total", total)

	return auditResult{
		Generated: opts.Count,
		Inserted:  int(inserted.Load()),
		Total:     total,
		Elapsed:   time.Since(start),
	}, nil
}
