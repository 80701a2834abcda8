package topo

import (
	"context"

	"github.com/katalmir/dagwalk/core"
	"github.com/katalmir/dagwalk/traverse"
)

// Option configures optional behavior for Sort and SortRoots.
type Option func(*options)

// options holds settings for the sort, currently only cancellation.
type options struct {
	ctx context.Context
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Sort returns the nodes reachable from start in topological order: for
// every reachable edge u→v, u appears before v. A nil start yields an
// empty order. The only non-nil error is a context cancellation.
func Sort(start *core.Node, opts ...Option) ([]*core.Node, error) {
	// 1. Resolve options
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. DFS with a postorder-accumulating exit hook
	var post []*core.Node
	err := traverse.DFS(start, nil,
		traverse.WithOnExit(func(n *core.Node, _ any) traverse.Signal {
			post = append(post, n)

			return traverse.Continue
		}),
		traverse.WithContext(o.ctx),
	)
	if err != nil {
		return nil, err
	}

	// 3. Reverse postorder is a topological order on a DAG
	reverse(post)

	return post, nil
}

// SortRoots returns one combined topological order covering every node
// reachable from any of the given roots. Each node appears exactly once,
// and all forward-edge constraints across the whole covered region hold.
//
// Roots already covered by an earlier root contribute nothing; nil roots
// are skipped. The only non-nil error is a context cancellation.
func SortRoots(starts []*core.Node, opts ...Option) ([]*core.Node, error) {
	// 1. Resolve options
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// done survives across per-root traversals; the enter callback answers
	// Stop for nodes an earlier root already emitted, which skips both
	// their descent and their exit hook (mark-and-skip).
	done := make(map[*core.Node]bool)
	var post []*core.Node

	// 2. Drive DFS from every not-yet-covered root
	for _, s := range starts {
		if s == nil || done[s] {
			continue
		}
		err := traverse.DFS(s,
			func(n *core.Node, _ any) traverse.Signal {
				if done[n] {
					return traverse.Stop
				}

				return traverse.Continue
			},
			traverse.WithOnExit(func(n *core.Node, _ any) traverse.Signal {
				done[n] = true
				post = append(post, n)

				return traverse.Continue
			}),
			traverse.WithContext(o.ctx),
		)
		if err != nil {
			return nil, err
		}
	}

	// 3. Reverse the shared postorder across all roots
	reverse(post)

	return post, nil
}

// reverse flips order in place.
func reverse(order []*core.Node) {
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
}
