// Package traverse implements depth-first and breadth-first traversal of a
// core DAG under one shared callback protocol.
//
// What:
//
//   - DFS(start, onEnter, opts...): recursive depth-first walk. onEnter
//     fires pre-order when a node is first reached; the optional OnExit
//     hook fires post-order after every descendant has been explored.
//   - BFS(start, onEnter, opts...): level-order walk. onEnter fires when a
//     node is enqueued into the next frontier; OnExit fires once the node
//     has finished expanding its neighbors.
//   - Signal: each callback returns Continue, Stop, or Abort, and the
//     engine honors the signal immediately after the callback returns.
//
// Signal semantics (both orders):
//
//   - Continue proceeds normally.
//   - Stop is local to the current node's callback pair: the node's
//     descendants are not explored and its OnExit does not fire, but
//     siblings already discovered and the rest of the frontier proceed.
//   - Abort terminates the whole traversal from any depth, skips all
//     remaining work, and returns normally (Abort is a control signal,
//     not a failure).
//
// Guarantees:
//
//   - Every reachable node is visited at most once; callbacks never fire
//     on an already-visited node.
//   - Tie-break order is edge insertion order, so traversal order is
//     deterministic for a fixed construction sequence.
//   - Visited flags are reset on every exit path — normal completion,
//     Stop, Abort, context cancellation, even a panicking callback — so
//     repeated traversals of one graph are independent and callers may
//     treat every entry point as free of observable mutation.
//   - A nil start node is a no-op: the call returns immediately and no
//     callback fires.
//
// Cycles are outside the contract: the visited check keeps traversal of a
// cyclic graph from looping forever, but no further behavior is specified.
//
// Options:
//
//   - WithOnExit(fn)    post-order (DFS) / post-expansion (BFS) hook.
//   - WithEnv(env)      opaque value threaded through to every callback.
//   - WithContext(ctx)  cancellation; a canceled traversal still resets
//     visited flags before returning ctx.Err().
//
// Complexity:
//
//   - Time:   O(V + E) plus callback cost.
//   - Memory: O(V) for the recursion stack (DFS) or queue (BFS) and the
//     visitation record.
package traverse
