// Package topo computes topological (reverse-postorder) orderings of a
// core DAG, built on the traverse package's DFS hook protocol.
//
// What:
//
//   - Sort(start): the ordering of every node reachable from start such
//     that each edge's source precedes its target. Implemented as a DFS
//     whose exit hook accumulates postorder, reversed on completion.
//   - SortRoots(starts): a combined ordering across several roots. Nodes
//     already emitted by an earlier root are skipped by returning Stop
//     from the enter callback, so the concatenated postorder stays valid.
//
// Nodes unreachable from the given root(s) are silently excluded — the
// ordering is computed relative to its roots, not the whole graph. Callers
// needing whole-graph coverage pass one root per component to SortRoots.
//
// Repeatability is a contract, not an accident: because traversal always
// reverts its visitation marks, calling Sort twice on an unmodified graph
// yields identical output both times.
//
// Cycles reachable from a root are outside the contract; the result order
// is then not a valid topological order. No detection is performed.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package topo
