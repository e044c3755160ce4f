package universe

import (
	"strconv"

	"chunk-life/internal/core"
)

// Parameters reports the universe counters for status displays.
func (u *Universe) Parameters() core.ParameterSnapshot {
	last := u.last
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Universe",
			Params: []core.Parameter{
				uintParam("generation", "Generation", u.generation),
				intParam("chunks", "Chunks", len(u.chunks)),
				intParam("population", "Population", u.Population()),
				intParam("max_chunks", "Chunk limit", u.maxChunks),
			},
		},
		{
			Name: "Last step",
			Params: []core.Parameter{
				intParam("chunk_evals", "Chunk evaluations", last.ChunkEvals),
				intParam("cell_evals", "Cell evaluations", last.CellEvals),
				intParam("chunks_created", "Chunks created", last.ChunksCreated),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}
