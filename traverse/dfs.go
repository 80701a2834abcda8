// Package traverse: recursive depth-first traversal.
package traverse

import "github.com/katalmir/dagwalk/core"

// dfsWalker encapsulates state during one DFS call.
type dfsWalker struct {
	opts    Options   // resolved traversal options
	onEnter VisitFunc // pre-order callback (may be nil)
	track   tracker   // visitation record, reset on every exit path
}

// DFS performs a depth-first walk from start: a node is entered pre-order,
// each unvisited outgoing neighbor is recursed into in edge insertion
// order, and the OnExit hook fires post-order once the subtree is done.
//
// A nil start is a no-op. Abort from any callback ends the walk with a nil
// error. The only non-nil error is a context cancellation.
func DFS(start *core.Node, onEnter VisitFunc, opts ...Option) error {
	// 1. Absent start: nothing to do, no callback fires
	if start == nil {
		return nil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &dfsWalker{opts: o, onEnter: onEnter}

	// 3. Cleanup runs on every exit path, panicking callbacks included
	defer w.track.reset()

	// 4. Recurse; the abort flag is drained here, cancellation surfaces
	_, err := w.visit(start)

	return err
}

// visit processes one node: mark, enter, recurse, exit. The bool result
// propagates Abort up the recursion as an early-return chain.
func (w *dfsWalker) visit(n *core.Node) (abort bool, err error) {
	// 1. Cancellation check at every frame
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 2. Mark first so callbacks observe the node as visited
	w.track.mark(n)

	// 3. Pre-order callback; Stop skips descent and this node's OnExit
	if w.onEnter != nil {
		switch w.onEnter(n, w.opts.Env) {
		case Stop:
			return false, nil
		case Abort:
			return true, nil
		}
	}

	// 4. Recurse into unvisited neighbors in edge insertion order
	for _, e := range n.Outgoing() {
		if e.To.Visited() {
			continue
		}
		if abort, err = w.visit(e.To); abort || err != nil {
			return abort, err
		}
	}

	// 5. Post-order callback; Stop here is a local no-op, Abort unwinds
	if w.opts.OnExit != nil {
		if w.opts.OnExit(n, w.opts.Env) == Abort {
			return true, nil
		}
	}

	return false, nil
}
