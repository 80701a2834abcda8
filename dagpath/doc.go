// Package dagpath computes single-source shortest and longest path
// distances over the weighted edges of a core DAG.
//
// What:
//
//   - Extremes(start, mode): for every node reachable from start, the
//     minimal (Shortest) or maximal (Longest) sum of edge weights along
//     any path from start, keyed by node ID.
//   - Between(start, target, mode): the single distance start→target,
//     with ErrNotReached when no path exists.
//
// How:
//
// One topological sort, then one linear relaxation pass in that order.
// Because a node's distance is final before it is used as a relaxation
// source, no priority queue and no iteration to a fixpoint are needed —
// unlike general-graph shortest-path algorithms. Edge weights may be any
// real number, negatives included: acyclicity, not non-negativity, is
// what makes the single pass correct. Longest paths, NP-hard on general
// graphs, are symmetric here (flip the comparison).
//
// Distances live in a mapping owned by the call; node payload and any
// other caller-visible state are untouched, and visitation marks from the
// inner topological sort are reverted before the call returns. Queries on
// one graph therefore compose freely.
//
// Cycles reachable from start are outside the contract: distances are
// then unspecified. No detection is performed.
//
// Errors:
//
//   - ErrNilNode       start or target is nil
//   - ErrUnknownMode   mode is neither Shortest nor Longest
//   - ErrNotReached    Between's target has no path from start
//   - context errors   via WithContext
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dagpath
