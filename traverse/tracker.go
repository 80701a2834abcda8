package traverse

import "github.com/katalmir/dagwalk/core"

// tracker records every node a single traversal marks visited so the
// marks can be undone on any exit path. Each traversal call owns its own
// tracker, so nested traversals (topo sort inside path analysis) never
// clear each other's state.
type tracker struct {
	marked []*core.Node
}

// mark flags n as visited and records it for later reset.
// Callers only invoke mark on unvisited nodes, so no node is recorded twice.
func (t *tracker) mark(n *core.Node) {
	n.SetVisited(true)
	t.marked = append(t.marked, n)
}

// reset clears the visited flag of every recorded node. Idempotent:
// a second call finds an empty record and does nothing.
func (t *tracker) reset() {
	for _, n := range t.marked {
		n.SetVisited(false)
	}
	t.marked = t.marked[:0]
}
