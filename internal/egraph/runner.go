package egraph

import "context"

// RuleFunc applies one rewrite rule to g, unioning any e-classes it
// discovers to be equivalent. It returns true if it fired at least
// once. Callers must not call g.Rebuild(); the Runner does that between
// rounds.
type RuleFunc func(g *EGraph) bool

// RunnerStats summarizes one Runner.Run call. pictureopt.Optimize logs
// it once at slog.LevelDebug after the run; it is not copied into
// metadata.RunMetadata.
type RunnerStats struct {
	Rounds      int
	StoppedWhy  string
	ClassesEnd  int
	NodesEnd    int
}

// Runner drives a set of rules to a fixed point (no rule fires in an
// entire round) or until MaxRounds/MaxNodes is hit, whichever comes
// first — the same ban-and-replay-free saturation loop egg's Runner
// uses for simple, non-explosive rule sets.
type Runner struct {
	MaxRounds int
	MaxNodes  int
}

// NewRunner returns a Runner with sane defaults (bounded, never runs
// forever on a rule set that never reaches a fixed point).
func NewRunner() *Runner {
	return &Runner{MaxRounds: 64, MaxNodes: 200_000}
}

// Run applies rules to g in rounds until none fire, or a bound is
// reached. ctx is checked between rounds only, matching the single
// pass/round granularity the rest of the optimizer pipeline uses for
// cancellation.
func (r *Runner) Run(ctx context.Context, g *EGraph, rules []RuleFunc) RunnerStats {
	stats := RunnerStats{StoppedWhy: "saturated"}
	for round := 0; ; round++ {
		if r.MaxRounds > 0 && round >= r.MaxRounds {
			stats.StoppedWhy = "max_rounds"
			break
		}
		if r.MaxNodes > 0 && g.NumNodes() >= r.MaxNodes {
			stats.StoppedWhy = "max_nodes"
			break
		}
		select {
		case <-ctx.Done():
			stats.StoppedWhy = "context"
			stats.Rounds = round
			stats.ClassesEnd = g.NumClasses()
			stats.NodesEnd = g.NumNodes()
			return stats
		default:
		}

		fired := false
		for _, rule := range rules {
			if rule(g) {
				fired = true
			}
		}
		g.Rebuild()
		stats.Rounds = round + 1
		if !fired {
			break
		}
	}
	stats.ClassesEnd = g.NumClasses()
	stats.NodesEnd = g.NumNodes()
	return stats
}
