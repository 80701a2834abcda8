// Package core: Node and Edge declarations, sentinel errors, and the
// node-level accessors the traversal packages rely on.
package core

import "errors"

// Sentinel errors for core DAG operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node is a vertex of the DAG.
//
// Identity is immutable after creation. The visited flag is transient,
// algorithm-owned state: outside an in-progress traversal it is always
// false, and the traversal packages guarantee they restore it on every
// exit path. The payload slot is a small stack so nested decorations can
// be pushed and popped without clobbering caller data.
type Node struct {
	id       string
	visited  bool
	outgoing []*Edge
	incoming []*Edge
	payload  []any // stack; top of stack is the last element
}

// Edge is a weighted directed connection From→To.
//
// Weight is consumed only by path analysis; DFS and BFS ignore it.
// Edges are non-owning: both endpoints belong to the DAG.
type Edge struct {
	// From is the source node.
	From *Node

	// To is the destination node.
	To *Node

	// Weight is the cost of traversing this edge. Any real value is legal,
	// negative weights included.
	Weight float64
}

// ID returns the node's immutable identity.
func (n *Node) ID() string { return n.id }

// Visited reports the transient visitation flag.
// It is false whenever no traversal of this graph is in progress.
func (n *Node) Visited() bool { return n.visited }

// SetVisited toggles the visitation flag.
//
// The flag is owned by the traversal engine; callers must not toggle it.
// It is exported only so the traverse package (and algorithm packages
// built on it) can manage visitation state through the public surface.
func (n *Node) SetVisited(v bool) { n.visited = v }

// Outgoing returns the node's outgoing edges in Connect call order.
// The returned slice is a copy; mutating it does not affect the graph.
func (n *Node) Outgoing() []*Edge {
	out := make([]*Edge, len(n.outgoing))
	copy(out, n.outgoing)

	return out
}

// Incoming returns the node's incoming edges in Connect call order.
// The returned slice is a copy; mutating it does not affect the graph.
func (n *Node) Incoming() []*Edge {
	in := make([]*Edge, len(n.incoming))
	copy(in, n.incoming)

	return in
}

// OutDegree reports the number of outgoing edges without copying.
func (n *Node) OutDegree() int { return len(n.outgoing) }

// InDegree reports the number of incoming edges without copying.
func (n *Node) InDegree() int { return len(n.incoming) }

// PushPayload pushes v onto the node's payload stack.
func (n *Node) PushPayload(v any) { n.payload = append(n.payload, v) }

// PopPayload removes and returns the top payload value.
// The second result is false when the stack is empty.
func (n *Node) PopPayload() (any, bool) {
	if len(n.payload) == 0 {
		return nil, false
	}
	top := n.payload[len(n.payload)-1]
	n.payload = n.payload[:len(n.payload)-1]

	return top, true
}

// Payload returns the top payload value without removing it.
// The second result is false when the stack is empty.
func (n *Node) Payload() (any, bool) {
	if len(n.payload) == 0 {
		return nil, false
	}

	return n.payload[len(n.payload)-1], true
}
