// Package traverse: level-order breadth-first traversal.
package traverse

import "github.com/katalmir/dagwalk/core"

// bfsWalker encapsulates state during one BFS call.
type bfsWalker struct {
	opts    Options      // resolved traversal options
	onEnter VisitFunc    // enqueue-time callback (may be nil)
	track   tracker      // visitation record, reset on every exit path
	queue   []*core.Node // FIFO frontier: all depth-k nodes precede depth-k+1
	aborted bool         // set once any callback returns Abort
}

// BFS performs a level-order walk from start. onEnter fires when a node is
// first discovered and enqueued (not when it is dequeued); the OnExit hook
// fires once the node has finished expanding its neighbors. All nodes at
// distance k are processed before any node at distance k+1, same-level
// ties broken by the discovering node's edge insertion order.
//
// A nil start is a no-op. Abort from any callback ends the walk with a nil
// error. The only non-nil error is a context cancellation.
func BFS(start *core.Node, onEnter VisitFunc, opts ...Option) error {
	// 1. Absent start: nothing to do, no callback fires
	if start == nil {
		return nil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &bfsWalker{opts: o, onEnter: onEnter}

	// 3. Cleanup runs on every exit path, panicking callbacks included
	defer w.track.reset()

	// 4. Seed the frontier with the start node, then drain it
	w.enqueue(start)
	if w.aborted {
		return nil
	}

	return w.loop()
}

// enqueue marks n visited, fires onEnter, and schedules n for expansion.
// Stop ends n's callback pair on the spot: n stays visited but is neither
// expanded nor exited. Abort flags the whole traversal for termination.
func (w *bfsWalker) enqueue(n *core.Node) {
	w.track.mark(n)
	if w.onEnter != nil {
		switch w.onEnter(n, w.opts.Env) {
		case Stop:
			return
		case Abort:
			w.aborted = true
			return
		}
	}
	w.queue = append(w.queue, n)
}

// loop drains the frontier queue until it empties, a callback aborts, or
// the context is canceled.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check once per frontier node
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		n := w.queue[0]
		w.queue = w.queue[1:]

		// discover unvisited neighbors left to right
		for _, e := range n.Outgoing() {
			if e.To.Visited() {
				continue
			}
			w.enqueue(e.To)
			if w.aborted {
				return nil
			}
		}

		// the node's frontier work is done; fire its exit hook
		if w.opts.OnExit != nil {
			if w.opts.OnExit(n, w.opts.Env) == Abort {
				return nil
			}
		}
	}

	return nil
}
