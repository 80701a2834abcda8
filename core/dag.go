// Package core: the DAG container and its construction primitives.
package core

import "fmt"

// DAG is the in-memory graph container. It owns every Node and records
// node insertion order so Nodes() iterates deterministically.
type DAG struct {
	nodes map[string]*Node
	order []*Node // insertion order of nodes
}

// New creates an empty DAG.
// Complexity: O(1).
func New() *DAG {
	return &DAG{nodes: make(map[string]*Node)}
}

// AddNode creates a node with the given identity and registers it.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode when the
// identity is already taken.
// Complexity: O(1).
func (d *DAG) AddNode(id string) (*Node, error) {
	// 1. Validate identity
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if _, exists := d.nodes[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	// 2. Register in both the catalog and the insertion-order list
	n := &Node{id: id}
	d.nodes[id] = n
	d.order = append(d.order, n)

	return n, nil
}

// AddNodeWithPayload creates a node carrying an initial payload cell.
// Equivalent to AddNode followed by PushPayload.
func (d *DAG) AddNodeWithPayload(id string, payload any) (*Node, error) {
	n, err := d.AddNode(id)
	if err != nil {
		return nil, err
	}
	n.PushPayload(payload)

	return n, nil
}

// Connect creates a directed weighted edge fromID→toID and appends it to
// the source's outgoing list and the target's incoming list, preserving
// call order on both sides.
//
// Connect does not check that the edge keeps the graph acyclic; that is
// the caller's contract with the traversal packages.
// Returns ErrNodeNotFound when either endpoint is unknown.
// Complexity: O(1).
func (d *DAG) Connect(fromID, toID string, weight float64) (*Edge, error) {
	// 1. Resolve both endpoints before touching either list
	from, ok := d.nodes[fromID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, fromID)
	}
	to, ok := d.nodes[toID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, toID)
	}

	// 2. Append symmetrically: outgoing on the source, incoming on the target
	e := &Edge{From: from, To: to, Weight: weight}
	from.outgoing = append(from.outgoing, e)
	to.incoming = append(to.incoming, e)

	return e, nil
}

// Node looks a node up by identity.
// Returns ErrNodeNotFound when the identity is unknown.
// Complexity: O(1).
func (d *DAG) Node(id string) (*Node, error) {
	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n, nil
}

// HasNode reports whether id names a node in the graph.
func (d *DAG) HasNode(id string) bool {
	_, ok := d.nodes[id]

	return ok
}

// Len reports the number of nodes.
func (d *DAG) Len() int { return len(d.order) }

// Nodes returns every node in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
func (d *DAG) Nodes() []*Node {
	out := make([]*Node, len(d.order))
	copy(out, d.order)

	return out
}
