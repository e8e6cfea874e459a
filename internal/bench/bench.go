// Package bench measures how long index construction takes as the point set
// grows. Every build is a plain single-threaded octree construction; only
// independent builds run concurrently, to cut wall-clock time.
package bench

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/spatial3d/octree/internal/geom"
	"github.com/spatial3d/octree/internal/logging"
	"github.com/spatial3d/octree/pkg/container/octree"
)

type Config struct {
	Sizes   []int  `envconfig:"OCTREE_BENCH_SIZES" default:"1000,5000,10000,50000,100000"`
	Rounds  int    `envconfig:"OCTREE_BENCH_ROUNDS" default:"3"`
	Workers int    `envconfig:"OCTREE_BENCH_WORKERS" default:"4"`
	Plot    string `envconfig:"OCTREE_BENCH_PLOT" default:"octree-bench.png"`
}

// Result is the mean build time measured for one point-set size.
type Result struct {
	Size    int
	Elapsed time.Duration
	Stored  int
}

type Runner struct {
	runID uuid.UUID
	cfg   Config
}

func New(cfg Config) (*Runner, error) {
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("no sizes to bench")
	}
	if cfg.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	return &Runner{runID: uuid.New(), cfg: cfg}, nil
}

// Run builds one index per configured size, Rounds times each, over prefixes
// of points, and reports the mean build time per size in ascending size
// order.
func (r *Runner) Run(ctx context.Context, points []geom.Point3) ([]Result, error) {
	logger := logging.FromContext(ctx).With("run", r.runID)
	logger.Infow("starting bench run", "sizes", r.cfg.Sizes, "rounds", r.cfg.Rounds, "points", len(points))

	for _, size := range r.cfg.Sizes {
		if size < 1 || size > len(points) {
			return nil, fmt.Errorf("size %d out of range, have %d points", size, len(points))
		}
	}

	results := make([]Result, len(r.cfg.Sizes))
	group, ctx := errgroup.WithContext(ctx)
	if r.cfg.Workers > 0 {
		group.SetLimit(r.cfg.Workers)
	}
	for i, size := range r.cfg.Sizes {
		i, size := i, size
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.measure(points[:size])
			logger.Infow("size done", "size", size, "elapsed", results[i].Elapsed)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("bench run: %w", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Size < results[j].Size })
	return results, nil
}

func (r *Runner) measure(points []geom.Point3) Result {
	var total time.Duration
	stored := 0
	for round := 0; round < r.cfg.Rounds; round++ {
		start := time.Now()
		tree := octree.New(points)
		total += time.Since(start)
		stored = tree.Len()
	}
	return Result{
		Size:    len(points),
		Elapsed: total / time.Duration(r.cfg.Rounds),
		Stored:  stored,
	}
}
