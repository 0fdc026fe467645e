// File: reduce.go
// Role: Reduce, the outer removal driver (C8): order, budget, the
//       single-threaded edge loop, and adjacency mutation.

package reduce

import (
	"time"

	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/domination"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

// Reduce removes filtration-dominated (or strongly filtration-dominated,
// per mode) edges from list, returning a new edge.List holding the
// survivors. maxValue must be an actual largest value of V (or a
// reserved stand-in); it is threaded into every region build.
//
// On budget exhaustion, Reduce returns a clone of the original input
// list, untouched: a timeout is indistinguishable from "nothing was
// removed" (see package doc).
func Reduce[V grade.Value](list *edge.List[V], mode Mode, order EdgeOrder, maxValue V, opts ...Option) (*edge.List[V], error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	working := list.Clone()
	switch order {
	case ReverseLexicographic:
		working.SortReverseLex()
	case Maintain:
	}

	idx := adjacency.FromEdgeList(working)
	survivors := make([]edge.Filtered[V], 0, working.Len())

	start := time.Now()
	for _, e := range working.Edges {
		if options.Budget != nil && time.Since(start) > *options.Budget {
			return list.Clone(), nil
		}

		dominated, err := isDominated(idx, e, mode, maxValue, options)
		if err != nil {
			return nil, err
		}
		if dominated {
			idx.DeleteEdge(e.Edge.U, e.Edge.V)
		} else {
			survivors = append(survivors, e)
		}
	}

	return &edge.List[V]{NVertices: working.NVertices, Edges: survivors}, nil
}

func isDominated[V grade.Value](idx *adjacency.Index[V], e edge.Filtered[V], mode Mode, maxValue V, options Options) (bool, error) {
	switch mode {
	case Strong:
		return domination.Strong(idx, e), nil
	case Full:
		if options.Parallel {
			return domination.FullParallel(idx, e, maxValue, options.Workers)
		}
		return domination.Full(idx, e, maxValue), nil
	default:
		return domination.Full(idx, e, maxValue), nil
	}
}
