package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"chunk-life/internal/pattern"
	"chunk-life/internal/universe"
)

type scenario struct {
	pattern string
	seed    int64
}

func (s scenario) String() string {
	if s.pattern == "soup" {
		return fmt.Sprintf("soup/%d", s.seed)
	}
	return s.pattern
}

type scenarioResult struct {
	scenario    scenario
	generations uint64
	population  int
	peakChunks  int
	chunkEvals  int
	cellEvals   int
	created     int
	elapsed     time.Duration
	err         error
}

// cellsPerSecond is the evaluation throughput of the run.
func (r scenarioResult) cellsPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.cellEvals) / r.elapsed.Seconds()
}

func scenarios(names []string, seeds int) []scenario {
	var out []scenario
	for _, name := range names {
		if name != "soup" {
			out = append(out, scenario{pattern: name})
			continue
		}
		for seed := 1; seed <= seeds; seed++ {
			out = append(out, scenario{pattern: name, seed: int64(seed)})
		}
	}
	return out
}

// margin keeps small patterns off the chunk borders of the origin chunk.
const margin = 2

func runScenario(sc scenario, steps, maxChunks int) scenarioResult {
	res := scenarioResult{scenario: sc}
	factory, ok := pattern.Lookup(sc.pattern)
	if !ok {
		res.err = fmt.Errorf("unknown pattern %q", sc.pattern)
		return res
	}
	u := universe.New(universe.WithMaxChunks(maxChunks), universe.WithLogger(log.New(io.Discard, "", 0)))
	if err := pattern.Place(u, factory(pattern.Options{Seed: sc.seed, Density: 0.35, Width: 32, Height: 32}), margin, margin); err != nil {
		res.err = err
		return res
	}

	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := u.Step(); err != nil {
			res.err = err
			break
		}
		last := u.LastStep()
		res.chunkEvals += last.ChunkEvals
		res.cellEvals += last.CellEvals
		res.created += last.ChunksCreated
		res.peakChunks = max(res.peakChunks, u.Len())
	}
	res.elapsed = time.Since(start)
	res.generations = u.Generation()
	res.population = u.Population()
	return res
}
