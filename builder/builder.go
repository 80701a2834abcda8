package builder

import (
	"errors"
	"fmt"

	"github.com/katalmir/dagwalk/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrConstructFailed wraps any constructor failure surfaced by BuildDAG.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrTooFewNodes is returned when a topology parameter is below the
	// constructor's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")
)

// NodeSpec declares one node as an (identity, payload) record.
// A nil Payload creates the node with an empty payload stack.
type NodeSpec struct {
	ID      string
	Payload any
}

// EdgeSpec declares one weighted edge between previously declared nodes.
type EdgeSpec struct {
	From, To string
	Weight   float64
}

// Build assembles a DAG from explicit records: all nodes first, then all
// edges in declaration order (which fixes traversal tie-break order).
// Errors from core (duplicate IDs, unknown endpoints) are returned as-is.
func Build(nodes []NodeSpec, edges []EdgeSpec) (*core.DAG, error) {
	d := core.New()
	for _, ns := range nodes {
		var err error
		if ns.Payload != nil {
			_, err = d.AddNodeWithPayload(ns.ID, ns.Payload)
		} else {
			_, err = d.AddNode(ns.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("Build: node %q: %w", ns.ID, err)
		}
	}
	for _, es := range edges {
		if _, err := d.Connect(es.From, es.To, es.Weight); err != nil {
			return nil, fmt.Errorf("Build: edge %s→%s: %w", es.From, es.To, err)
		}
	}

	return d, nil
}

// Constructor applies one deterministic topology mutation to a DAG.
// Constructors must validate parameters early, emit nodes and edges in a
// stable documented order, and return sentinel errors rather than panic.
type Constructor func(d *core.DAG) error

// BuildDAG creates a fresh DAG and applies every constructor in order.
// The first failure is wrapped and returned; no partial cleanup is
// attempted.
func BuildDAG(cons ...Constructor) (*core.DAG, error) {
	d := core.New()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDAG: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d); err != nil {
			return nil, fmt.Errorf("BuildDAG: %w", err)
		}
	}

	return d, nil
}

// Chain builds a linear pipeline prefix0→prefix1→…→prefix{n-1} with unit
// weights. Requires n ≥ 2.
// Emission order: nodes ascending, then edges ascending.
func Chain(prefix string, n int) Constructor {
	return func(d *core.DAG) error {
		if n < 2 {
			return fmt.Errorf("%w: Chain needs n ≥ 2, got %d", ErrTooFewNodes, n)
		}
		for i := 0; i < n; i++ {
			if _, err := d.AddNode(fmt.Sprintf("%s%d", prefix, i)); err != nil {
				return err
			}
		}
		for i := 0; i < n-1; i++ {
			from := fmt.Sprintf("%s%d", prefix, i)
			to := fmt.Sprintf("%s%d", prefix, i+1)
			if _, err := d.Connect(from, to, 1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Fanout builds one source "Src" with n unit-weight out-edges to leaves
// "F1"…"Fn". Requires n ≥ 1.
func Fanout(n int) Constructor {
	return func(d *core.DAG) error {
		if n < 1 {
			return fmt.Errorf("%w: Fanout needs n ≥ 1, got %d", ErrTooFewNodes, n)
		}
		if _, err := d.AddNode("Src"); err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			id := fmt.Sprintf("F%d", i)
			if _, err := d.AddNode(id); err != nil {
				return err
			}
			if _, err := d.Connect("Src", id, 1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Diamond builds "Src" → "M1"…"Mw" → "Sink" with unit weights, the classic
// fan-out/fan-in shape. Requires width ≥ 1.
// Emission order: Src, middles ascending, Sink; then Src→Mi, then Mi→Sink.
func Diamond(width int) Constructor {
	return func(d *core.DAG) error {
		if width < 1 {
			return fmt.Errorf("%w: Diamond needs width ≥ 1, got %d", ErrTooFewNodes, width)
		}
		if _, err := d.AddNode("Src"); err != nil {
			return err
		}
		for i := 1; i <= width; i++ {
			if _, err := d.AddNode(fmt.Sprintf("M%d", i)); err != nil {
				return err
			}
		}
		if _, err := d.AddNode("Sink"); err != nil {
			return err
		}
		for i := 1; i <= width; i++ {
			if _, err := d.Connect("Src", fmt.Sprintf("M%d", i), 1); err != nil {
				return err
			}
		}
		for i := 1; i <= width; i++ {
			if _, err := d.Connect(fmt.Sprintf("M%d", i), "Sink", 1); err != nil {
				return err
			}
		}

		return nil
	}
}
