package pictureopt

import (
	"context"
	"time"

	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/egraph"
	"github.com/gogpu/pictureopt/internal/ir"
	"github.com/gogpu/pictureopt/internal/lift"
	"github.com/gogpu/pictureopt/internal/lower"
	"github.com/gogpu/pictureopt/internal/rewrite"
	"github.com/gogpu/pictureopt/metadata"
	"github.com/gogpu/pictureopt/program"
)

// Optimize lifts rec into Picture IR, saturates it under the rewrite
// catalog, extracts the cheapest equivalent term, and lowers the result
// back to a linear program. It is pure and single-threaded: no goroutine
// is spawned and no package-level state is mutated besides the logger
// configured via SetLogger.
//
// ctx is checked cooperatively between saturation rounds only; cancel it
// to stop saturation early (Optimize still extracts and lowers whatever
// the e-graph has found by that point, rather than failing the run).
// Bound saturation explicitly with WithMaxIterations/WithMaxNodes for
// deterministic behavior independent of wall-clock timing.
func Optimize(ctx context.Context, rec command.Record, opts ...Option) (program.Program, metadata.RunMetadata, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	var meta metadata.RunMetadata

	liftStart := time.Now()
	lifted, unsupported, err := liftRecord(rec, o.lenient)
	meta.LiftNanos = time.Since(liftStart).Nanoseconds()
	if err != nil {
		return nil, meta, err
	}
	meta.Unsupported = unsupported
	log.DebugContext(ctx, "lifted record", "commands", len(rec))

	saturateStart := time.Now()
	g := egraph.New()
	root := egraph.AddSurface(g, lifted)
	g.Rebuild()

	runner := egraph.NewRunner()
	if o.maxIterations > 0 {
		runner.MaxRounds = o.maxIterations
	}
	if o.maxNodes > 0 {
		runner.MaxNodes = o.maxNodes
	}
	stats := runner.Run(ctx, g, rewrite.AsRuleFuncs(rewrite.Catalog()))
	log.DebugContext(ctx, "saturation finished",
		"rounds", stats.Rounds, "stopped_why", stats.StoppedWhy,
		"classes", stats.ClassesEnd, "nodes", stats.NodesEnd)

	extractor := egraph.NewExtractor(g)
	extractor.Run()
	extracted, err := extractor.ToSurface(root)
	meta.SaturateNanos = time.Since(saturateStart).Nanoseconds()
	if err != nil {
		return nil, meta, err
	}

	lowerStart := time.Now()
	prog, err := lower.Lower(extracted)
	meta.LowerNanos = time.Since(lowerStart).Nanoseconds()
	if err != nil {
		return nil, meta, err
	}

	log.InfoContext(ctx, "optimize finished",
		"total_nanos", meta.TotalNanos(), "instructions", prog.Len())
	return prog, meta, nil
}

func liftRecord(rec command.Record, lenient bool) (ir.Surface, []metadata.UnsupportedCommand, error) {
	if lenient {
		return lift.LiftLenient(rec)
	}
	s, err := lift.Lift(rec)
	return s, nil, err
}
