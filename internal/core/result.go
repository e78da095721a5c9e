package core

import (
	"fmt"
	"strings"
)

// OutputColumn is the result column iPLUGR512K writes its XML fragments to.
const OutputColumn = "OUT151"

// Chunk is one fragment of the procedure output.
type Chunk struct {
	out string
}

// Output returns the fragment text.
func (c Chunk) Output() string {
	return c.out
}

func chunkFromRow(row Row) (Chunk, error) {
	v, ok := row.Value(OutputColumn)
	if !ok {
		return Chunk{}, fmt.Errorf("%w: %s", ErrMissingOutputColumn, OutputColumn)
	}
	return Chunk{out: v}, nil
}

func chunksFromRows(rows []Row) ([]Chunk, error) {
	chunks := make([]Chunk, 0, len(rows))
	for _, row := range rows {
		c, err := chunkFromRow(row)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// joinChunks concatenates fragments in fetch order without a separator.
func joinChunks(chunks []Chunk) string {
	if len(chunks) == 1 {
		return chunks[0].Output()
	}
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Output())
	}
	return b.String()
}
