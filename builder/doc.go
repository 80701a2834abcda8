// Package builder assembles deterministic DAG fixtures for tests, demos,
// and programmatic topology generation.
//
// Two entry styles:
//
//   - Build(nodes, edges): declarative records — every node as a
//     (identity, payload) pair, every edge as (from, to, weight).
//   - BuildDAG(cons...): composable Constructor closures (Chain, Fanout,
//     Diamond) applied in order to one fresh DAG.
//
// Design contract:
//
//   - Determinism: the same records or constructor sequence always yields
//     an identical graph, edge order included — which fixes traversal
//     order downstream.
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic.
//   - Acyclicity is the caller's responsibility in Build; the shipped
//     constructors only ever emit acyclic topologies.
package builder
