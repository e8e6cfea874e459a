package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spatial3d/octree/internal/bench"
	"github.com/spatial3d/octree/internal/buildinfo"
	"github.com/spatial3d/octree/internal/config"
	"github.com/spatial3d/octree/internal/geom"
	"github.com/spatial3d/octree/internal/logging"
	"github.com/spatial3d/octree/internal/pointfile"
	"github.com/spatial3d/octree/internal/shutdown"
	"github.com/spatial3d/octree/pkg/container/octree"
)

const usageText = `usage: octree <command> [flags]

commands:
  generate  write a random point file
  bench     measure index build time over growing point sets
  query     run a range query over a point file
  inspect   print the structure of the index built from a point file
  version   print build information
`

func main() {
	ctx, done := shutdown.New()
	defer done()

	logger := logging.FromContext(ctx)
	if err := run(ctx, os.Args[1:]); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Process()
	if err != nil {
		return fmt.Errorf("config.Process: %w", err)
	}
	ctx = logging.WithLogger(ctx, logging.NewLogger(cfg.Debug))

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "generate":
		return runGenerate(ctx, args[1:])
	case "bench":
		return runBench(ctx, cfg, args[1:])
	case "query":
		return runQuery(ctx, args[1:])
	case "inspect":
		return runInspect(ctx, args[1:])
	case "version":
		fmt.Printf("%s %s %s\n", buildinfo.Info.Name(), buildinfo.Info.Tag(), buildinfo.Info.Time())
		return nil
	default:
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	n := fs.Int("n", 100000, "number of points")
	span := fs.Float64("span", 1000, "points are drawn from [0, span) per axis")
	seed := fs.Uint("seed", 1, "generator seed")
	out := fs.String("out", "points.txt", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	points := pointfile.Generate(*n, float32(*span), uint32(*seed))
	if err := pointfile.WriteFile(*out, points); err != nil {
		return err
	}
	logging.FromContext(ctx).Infow("points written", "count", len(points), "file", *out)
	return nil
}

func runBench(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	input := fs.String("input", "", "point file; generated on the fly when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := logging.FromContext(ctx)

	var points []geom.Point3
	if *input != "" {
		var err error
		if points, err = pointfile.ReadFile(*input); err != nil {
			return err
		}
	} else {
		largest := 0
		for _, size := range cfg.Bench.Sizes {
			if size > largest {
				largest = size
			}
		}
		points = pointfile.Generate(largest, 1000, 1)
	}

	runner, err := bench.New(cfg.Bench)
	if err != nil {
		return err
	}
	results, err := runner.Run(ctx, points)
	if err != nil {
		return err
	}
	for _, result := range results {
		logger.Infow("result", "size", result.Size, "stored", result.Stored, "elapsed", result.Elapsed)
	}
	if cfg.Bench.Plot != "" {
		if err := bench.WritePlot(results, cfg.Bench.Plot); err != nil {
			return err
		}
		logger.Infow("plot written", "file", cfg.Bench.Plot)
	}
	return nil
}

func runQuery(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	input := fs.String("input", "points.txt", "point file")
	minArg := fs.String("min", "", "query box minimum corner, x,y,z")
	maxArg := fs.String("max", "", "query box maximum corner, x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}

	min, err := parseVec3(*minArg)
	if err != nil {
		return fmt.Errorf("-min: %w", err)
	}
	max, err := parseVec3(*maxArg)
	if err != nil {
		return fmt.Errorf("-max: %w", err)
	}

	points, err := pointfile.ReadFile(*input)
	if err != nil {
		return err
	}

	tree := octree.New(points)
	matches := tree.Query(octree.Box{Min: min, Max: max})
	logging.FromContext(ctx).Infow("query done", "indexed", tree.Len(), "matched", len(matches))
	for _, p := range matches {
		fmt.Println(p)
	}
	return nil
}

func runInspect(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	input := fs.String("input", "points.txt", "point file")
	capacity := fs.Int("capacity", 0, "node capacity override")
	dump := fs.Bool("dump", false, "dump the raw tree structure")
	if err := fs.Parse(args); err != nil {
		return err
	}

	points, err := pointfile.ReadFile(*input)
	if err != nil {
		return err
	}

	var opts []octree.Option
	if *capacity > 0 {
		opts = append(opts, octree.WithCapacity(*capacity))
	}
	tree := octree.New(points, opts...)
	bounds := tree.Bounds()
	logging.FromContext(ctx).Infow("index built",
		"input", len(points), "stored", tree.Len(), "depth", tree.Depth(),
		"min", bounds.Min, "max", bounds.Max)
	if *dump {
		spew.Fdump(os.Stdout, tree)
	}
	return nil
}

func parseVec3(arg string) (mgl32.Vec3, error) {
	fields := strings.Split(arg, ",")
	if len(fields) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected x,y,z, got %q", arg)
	}
	var vec mgl32.Vec3
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("parse %q: %w", field, err)
		}
		vec[i] = float32(value)
	}
	return vec, nil
}
