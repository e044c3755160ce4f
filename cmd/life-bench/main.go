package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"chunk-life/internal/pattern"
)

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 4, "number of random soups")
	maxChunks := flag.Int("max-chunks", 1<<14, "abort a scenario once this many chunks exist (0 = unlimited)")
	names := flag.String("patterns", strings.Join(pattern.Names(), ","), "comma separated patterns to run")
	flag.Parse()

	sets := scenarios(strings.Split(*names, ","), *seeds)
	fmt.Printf("Running %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *steps, *maxChunks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	failed := 0
	for res := range results {
		all = append(all, res)
		if res.err != nil {
			failed++
			log.Printf("%s stopped at generation %d: %v", res.scenario, res.generations, res.err)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].cellsPerSecond() > all[j].cellsPerSecond() })
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) %-14s gen=%d pop=%d chunks=%d created=%d chunkEvals=%d cellEvals=%d %.0f cells/s\n",
			i+1, res.scenario, res.generations, res.population, res.peakChunks, res.created, res.chunkEvals, res.cellEvals, res.cellsPerSecond())
	}
	if failed > 0 {
		log.Fatalf("%d of %d scenarios failed", failed, len(all))
	}
}
