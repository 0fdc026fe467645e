// File: full_parallel.go
// Role: FullParallel is Full with its two embarrassingly-parallel
//       phases (per-neighbor region builds, per-test-grade coverage
//       checks) run over a bounded worker pool, grounded on the
//       errgroup.SetLimit pattern used for bounded fan-out.

package domination

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
	"github.com/katalvlaran/bidom/region"
)

// FullParallel is Full, but region construction and test-grade coverage
// checking are each distributed across workers inflight goroutines. It
// is a pure read-over-idx phase: safe to call concurrently with other
// readers, never with a concurrent AddEdge/DeleteEdge on idx.
func FullParallel[V grade.Value](idx *adjacency.Index[V], e edge.Filtered[V], maxValue V, workers int) (bool, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	neighbors := idx.CommonNeighbors(e)
	if len(neighbors) == 0 {
		return false, nil
	}

	regions := make([]*region.Region[V], len(neighbors))
	{
		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(workers)
		for i, nb := range neighbors {
			i, nb := i, nb
			g.Go(func() error {
				regions[i] = region.Build(idx, e, nb.Vertex, nb.Grade, maxValue)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return false, err
		}
	}

	for _, r := range regions {
		if r.IsEmpty() {
			return true, nil // strong shortcut.
		}
	}

	firstDomination := make([]grade.Grade[V], 0, len(neighbors)+1)
	firstDomination = append(firstDomination, e.Grade)
	for _, nb := range neighbors {
		firstDomination = append(firstDomination, e.Grade.Join(nb.Grade))
	}
	testGrades := joinClosure(firstDomination)

	var escaped atomic.Bool
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for _, t := range testGrades {
		t := t
		g.Go(func() error {
			if escaped.Load() {
				return nil
			}
			if coveredByEvery(regions, t) {
				escaped.Store(true)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	return !escaped.Load(), nil
}
