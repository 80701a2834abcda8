package dagpath

import (
	"fmt"
	"math"

	"github.com/katalmir/dagwalk/core"
	"github.com/katalmir/dagwalk/topo"
)

// Extremes computes, for every node reachable from start, the shortest or
// longest sum-of-edge-weights distance from start, keyed by node ID.
// Unreached nodes are absent from the result, never reported as ±Inf.
//
// Returns ErrNilNode for a nil start, ErrUnknownMode for an invalid mode,
// or a context error when canceled via WithContext.
func Extremes(start *core.Node, mode Mode, opts ...Option) (map[string]float64, error) {
	// 1. Validate inputs
	if start == nil {
		return nil, ErrNilNode
	}
	if mode != Shortest && mode != Longest {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	// 2. Resolve options
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. One topological sort fixes the relaxation sequence
	order, err := topo.Sort(start, topo.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}

	// 4. Initialize every ordered node to the worst value for the mode.
	//    Distances live in this call-owned map; nodes stay untouched.
	worst := math.Inf(1)
	if mode == Longest {
		worst = math.Inf(-1)
	}
	dist := make(map[string]float64, len(order))
	for _, n := range order {
		dist[n.ID()] = worst
	}
	dist[start.ID()] = 0

	// 5. Single relaxation pass in topological order: each node's distance
	//    is final before its outgoing edges are relaxed.
	for _, n := range order {
		dn := dist[n.ID()]
		if math.IsInf(dn, 0) {
			continue
		}
		for _, e := range n.Outgoing() {
			id := e.To.ID()
			cand := dn + e.Weight
			if better(mode, cand, dist[id]) {
				dist[id] = cand
			}
		}
	}

	// 6. Every node in the order has a path from start, so no infinities
	//    survive relaxation; drop any that would, rather than leak them.
	for id, v := range dist {
		if math.IsInf(v, 0) {
			delete(dist, id)
		}
	}

	return dist, nil
}

// Between computes the single distance start→target under mode. A target
// with no path from start yields ErrNotReached.
func Between(start, target *core.Node, mode Mode, opts ...Option) (float64, error) {
	if target == nil {
		return 0, ErrNilNode
	}
	dist, err := Extremes(start, mode, opts...)
	if err != nil {
		return 0, err
	}
	d, ok := dist[target.ID()]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotReached, target.ID())
	}

	return d, nil
}

// better reports whether cand improves on cur under the given mode.
func better(mode Mode, cand, cur float64) bool {
	if mode == Shortest {
		return cand < cur
	}

	return cand > cur
}
