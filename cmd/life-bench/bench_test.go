package main

import (
	"errors"
	"testing"

	"chunk-life/internal/universe"
)

func TestScenariosExpandSoupSeeds(t *testing.T) {
	got := scenarios([]string{"block", "soup"}, 3)
	if len(got) != 4 {
		t.Fatalf("scenarios = %v, want block plus three soups", got)
	}
	if got[0].String() != "block" || got[3].String() != "soup/3" {
		t.Fatalf("unexpected scenario names: %v", got)
	}
}

func TestRunScenarioBlock(t *testing.T) {
	res := runScenario(scenario{pattern: "block"}, 10, 0)
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if res.generations != 10 || res.population != 4 || res.peakChunks != 1 || res.created != 0 {
		t.Fatalf("unexpected block result: %+v", res)
	}
	if res.cellEvals != 10*64 {
		t.Fatalf("cell evaluations = %d, want 640", res.cellEvals)
	}
}

func TestRunScenarioReportsChunkLimit(t *testing.T) {
	res := runScenario(scenario{pattern: "gosper-gun"}, 5, 1)
	if !errors.Is(res.err, universe.ErrChunkLimit) {
		t.Fatalf("err = %v, want ErrChunkLimit", res.err)
	}
}

func TestRunScenarioUnknownPattern(t *testing.T) {
	if res := runScenario(scenario{pattern: "nope"}, 1, 0); res.err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}
