package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalmir/dagwalk/core"
)

func TestAddNode_Basic(t *testing.T) {
	d := core.New()
	n, err := d.AddNode("A")
	require.NoError(t, err)
	assert.Equal(t, "A", n.ID())
	assert.False(t, n.Visited())
	assert.Equal(t, 1, d.Len())
	assert.True(t, d.HasNode("A"))
}

func TestAddNode_EmptyID(t *testing.T) {
	d := core.New()
	n, err := d.AddNode("")
	assert.Nil(t, n)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestAddNode_Duplicate(t *testing.T) {
	d := core.New()
	_, err := d.AddNode("A")
	require.NoError(t, err)

	n, err := d.AddNode("A")
	assert.Nil(t, n)
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
	assert.Equal(t, 1, d.Len(), "failed AddNode must not register anything")
}

func TestAddNodeWithPayload(t *testing.T) {
	d := core.New()
	n, err := d.AddNodeWithPayload("A", 42)
	require.NoError(t, err)

	top, ok := n.Payload()
	assert.True(t, ok)
	assert.Equal(t, 42, top)
}

func TestConnect_UnknownEndpoints(t *testing.T) {
	d := core.New()
	_, err := d.AddNode("A")
	require.NoError(t, err)

	e, err := d.Connect("A", "B", 1)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	e, err = d.Connect("X", "A", 1)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestConnect_SymmetricLists(t *testing.T) {
	d := core.New()
	a, err := d.AddNode("A")
	require.NoError(t, err)
	b, err := d.AddNode("B")
	require.NoError(t, err)

	e, err := d.Connect("A", "B", 2.5)
	require.NoError(t, err)
	assert.Same(t, a, e.From)
	assert.Same(t, b, e.To)
	assert.Equal(t, 2.5, e.Weight)

	require.Len(t, a.Outgoing(), 1)
	require.Len(t, b.Incoming(), 1)
	assert.Same(t, e, a.Outgoing()[0])
	assert.Same(t, e, b.Incoming()[0])
	assert.Equal(t, 1, a.OutDegree())
	assert.Equal(t, 1, b.InDegree())
	assert.Empty(t, a.Incoming())
	assert.Empty(t, b.Outgoing())
}

func TestConnect_PreservesInsertionOrder(t *testing.T) {
	d := core.New()
	for _, id := range []string{"hub", "x", "y", "z"} {
		_, err := d.AddNode(id)
		require.NoError(t, err)
	}
	// Out-edges in a deliberate non-alphabetical order.
	for _, to := range []string{"z", "x", "y"} {
		_, err := d.Connect("hub", to, 0)
		require.NoError(t, err)
	}

	hub, err := d.Node("hub")
	require.NoError(t, err)
	var got []string
	for _, e := range hub.Outgoing() {
		got = append(got, e.To.ID())
	}
	assert.Equal(t, []string{"z", "x", "y"}, got, "outgoing order must follow Connect order")
}

func TestNode_Lookup(t *testing.T) {
	d := core.New()
	_, err := d.AddNode("A")
	require.NoError(t, err)

	n, err := d.Node("A")
	require.NoError(t, err)
	assert.Equal(t, "A", n.ID())

	n, err = d.Node("missing")
	assert.Nil(t, n)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNodes_InsertionOrder(t *testing.T) {
	d := core.New()
	ids := []string{"t3", "t1", "t2"}
	for _, id := range ids {
		_, err := d.AddNode(id)
		require.NoError(t, err)
	}

	var got []string
	for _, n := range d.Nodes() {
		got = append(got, n.ID())
	}
	assert.Equal(t, ids, got)
}

func TestPayloadStack(t *testing.T) {
	d := core.New()
	n, err := d.AddNode("A")
	require.NoError(t, err)

	// Empty stack behavior.
	_, ok := n.Payload()
	assert.False(t, ok)
	_, ok = n.PopPayload()
	assert.False(t, ok)

	// LIFO discipline: a nested push never clobbers the earlier cell.
	n.PushPayload("user data")
	n.PushPayload(3.14)

	top, ok := n.Payload()
	assert.True(t, ok)
	assert.Equal(t, 3.14, top)

	popped, ok := n.PopPayload()
	assert.True(t, ok)
	assert.Equal(t, 3.14, popped)

	top, ok = n.Payload()
	assert.True(t, ok)
	assert.Equal(t, "user data", top, "prior payload must be restored after pop")
}

func TestOutgoing_ReturnsCopy(t *testing.T) {
	d := core.New()
	_, err := d.AddNode("A")
	require.NoError(t, err)
	_, err = d.AddNode("B")
	require.NoError(t, err)
	_, err = d.Connect("A", "B", 0)
	require.NoError(t, err)

	a, err := d.Node("A")
	require.NoError(t, err)
	out := a.Outgoing()
	out[0] = nil
	assert.NotNil(t, a.Outgoing()[0], "mutating the returned slice must not affect the graph")
}
