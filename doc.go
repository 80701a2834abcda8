// Package dagwalk is an embeddable traversal and path-analysis core for
// directed acyclic graphs — the algorithmic heart of task schedulers,
// build dependency resolvers and similar tools.
//
// What dagwalk brings together:
//
//   - Core primitives: nodes with stable identities, ordered weighted
//     edges, and an opaque payload slot for caller scratch data
//   - Traversals: DFS and BFS sharing one callback protocol with
//     Continue/Stop/Abort control signals
//   - Topological sort: reverse-postorder sequencing from any root
//   - Path analysis: single-source shortest and longest distances over
//     weighted DAG edges in one topological relaxation pass
//   - Builders: deterministic fixture topologies for tests and demos
//
// Why choose dagwalk?
//
//   - Side-effect-free – every public call reverses its bookkeeping
//     before returning, so one graph serves many independent queries
//   - Deterministic – traversal order follows edge insertion order
//   - Extensible – thread your own environment value through callbacks
//     without the engine knowing its shape
//
// Everything is organized under four subpackages plus the builders:
//
//	core/     — Node, Edge, DAG container and construction primitives
//	traverse/ — DFS, BFS, the Signal protocol and visitation bookkeeping
//	topo/     — topological (reverse-postorder) ordering
//	dagpath/  — shortest/longest distance analysis over edge weights
//	builder/  — deterministic DAG constructors for fixtures
//
// Quick ASCII example:
//
//	    A──▶B──▶D
//	    │       ▲
//	    └──▶C───┘
//
//	a four-node diamond: DFS from A enters (A B D C), BFS enters (A B C D).
//
// Cycles are out of contract: every algorithm assumes its input is acyclic
// and documents that assumption rather than policing it.
//
//	go get github.com/katalmir/dagwalk
package dagwalk
