package edgeio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

// Write serializes list to w in the shared edge-list text format. When
// withCount is true, the first emitted line is the decimal edge count.
func Write[V grade.Value](w io.Writer, list *edge.List[V], format FormatValue[V], withCount bool) error {
	bw := bufio.NewWriter(w)

	if withCount {
		if _, err := fmt.Fprintln(bw, list.Len()); err != nil {
			return fmt.Errorf("edgeio: %w", err)
		}
	}
	for _, e := range list.Edges {
		_, err := fmt.Fprintf(bw, "%d %d %s %s\n", e.Edge.U, e.Edge.V, format(e.Grade.G0), format(e.Grade.G1))
		if err != nil {
			return fmt.Errorf("edgeio: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgeio: %w", err)
	}
	return nil
}
