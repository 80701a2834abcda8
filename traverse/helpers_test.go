package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalmir/dagwalk/core"
)

// buildDiamond creates the four-task diamond used across traversal tests:
// task1→task2, task1→task3, task2→task4, task3→task4 (edges in that order).
func buildDiamond(t *testing.T) *core.DAG {
	t.Helper()
	d := core.New()
	for _, id := range []string{"task1", "task2", "task3", "task4"} {
		_, err := d.AddNode(id)
		require.NoError(t, err)
	}
	for _, e := range [][2]string{
		{"task1", "task2"},
		{"task1", "task3"},
		{"task2", "task4"},
		{"task3", "task4"},
	} {
		_, err := d.Connect(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return d
}

// mustNode fetches a node by ID or fails the test.
func mustNode(t *testing.T, d *core.DAG, id string) *core.Node {
	t.Helper()
	n, err := d.Node(id)
	require.NoError(t, err)

	return n
}

// requireAllUnvisited asserts the no-residual-state invariant: outside an
// in-progress traversal, every node's visited flag is false.
func requireAllUnvisited(t *testing.T, d *core.DAG) {
	t.Helper()
	for _, n := range d.Nodes() {
		require.False(t, n.Visited(), "node %s left marked visited", n.ID())
	}
}
