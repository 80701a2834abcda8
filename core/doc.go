// Package core defines the central DAG, Node, and Edge types and the thin
// construction primitives the traversal packages consume.
//
// What:
//
//   - Node: stable identity, ordered outgoing/incoming edge lists, a
//     transient visited flag owned by traversal algorithms, and an opaque
//     payload stack for caller scratch data.
//   - Edge: a weighted, directed connection between two nodes. Edges do
//     not own their endpoints; the DAG owns every node.
//   - DAG: the container. AddNode / Connect build topology; Node looks a
//     node up by identity.
//
// Why:
//   - Keep data entry dead simple and algorithm-free: all traversal and
//     path analysis lives in traverse/, topo/ and dagpath/, which consume
//     only the structural accessors declared here.
//
// Ordering contract:
//   - Outgoing and incoming edge lists preserve Connect call order. That
//     order is the tie-break for DFS recursion and BFS frontier expansion,
//     so a fixed construction sequence yields deterministic traversals.
//
// Acyclicity contract:
//   - Connect does not check for cycles. Feeding a cyclic graph to the
//     traversal packages is outside their contract; see their docs.
//
// Concurrency:
//   - A DAG instance is not safe for concurrent use. The traversal model
//     is single-threaded and synchronous (one traversal at a time per
//     graph), so construction and queries carry no locking overhead.
//
// Errors:
//
//   - ErrEmptyNodeID    node ID is the empty string
//   - ErrDuplicateNode  AddNode called twice with the same ID
//   - ErrNodeNotFound   lookup or Connect referenced an unknown ID
package core
