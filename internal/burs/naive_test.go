package burs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addGrammar builds a small cover grammar over Reg/Int leaves and a single
// binary ADD operator: reg -> Reg (0), const -> Int (0), the chain rule
// reg -> const (1), and reg -> ADD(reg, reg) (1), so an Int leaf reaches
// reg only through the chain.
func addGrammar() *Rules {
	rs := &Rules{}
	rs.Add(&Rule{LHS: "reg", Op: "Reg", Cost: 0})
	rs.Add(&Rule{LHS: "const", Op: "Int", Cost: 0})
	rs.Add(&Rule{LHS: "reg", RHS: "const", Cost: 1})
	rs.Add(&Rule{LHS: "reg", Op: "ADD", Args: []string{"reg", "reg"}, Cost: 1})
	return rs
}

func TestNaiveMatcherCoversLeaf(t *testing.T) {
	tr := NewOpTree()
	tr.Add("@", "Reg", nil)
	require.NoError(t, tr.Finish())

	m := NewNaiveMatcher(addGrammar())
	st := m.MatchTree(tr)

	r, cost := st.GetMatch("reg")
	require.NotNil(t, r)
	assert.Equal(t, 0, cost)
}

func TestNaiveMatcherCoversAddOfRegisters(t *testing.T) {
	tr := NewOpTree()
	tr.Add("@", "ADD", []string{"ra", "rb"})
	require.NoError(t, tr.Finish())

	m := NewNaiveMatcher(addGrammar())
	st := m.MatchTree(tr)

	r, cost := st.GetMatch("reg")
	require.NotNil(t, r)
	assert.Equal(t, "ADD", r.Op)
	assert.Equal(t, 1, cost)
}

func TestNaiveMatcherPrefersChainOverImmediate(t *testing.T) {
	tr := NewOpTree()
	tr.Add("@", "Int", nil)
	require.NoError(t, tr.Finish())

	m := NewNaiveMatcher(addGrammar())
	st := m.MatchTree(tr)

	_, regCost := st.GetMatch("reg")
	_, constCost := st.GetMatch("const")
	assert.Equal(t, 0, constCost)
	assert.Equal(t, 1, regCost)
}

func TestApplyEmitsBeforeAndAfterPerRule(t *testing.T) {
	tr := NewOpTree()
	tr.Add("@", "ADD", []string{"ra", "rb"})
	require.NoError(t, tr.Finish())

	m := NewNaiveMatcher(addGrammar())
	m.MatchTree(tr)

	var emitted []string
	lookup := func(n *OpNode) *State { return m.states[n.Index] }
	err := Apply(tr, lookup, "reg", func(ev Event, n *OpNode, r *Rule, goal string) {
		emitted = append(emitted, r.String())
	})
	require.NoError(t, err)
	assert.Len(t, emitted, 6) // Before+After for ra leaf, rb leaf, ADD
}

func TestApplyFailsOnUncoveredGoal(t *testing.T) {
	tr := NewOpTree()
	tr.Add("@", "Reg", nil)
	require.NoError(t, tr.Finish())

	m := NewNaiveMatcher(addGrammar())
	m.MatchTree(tr)

	lookup := func(n *OpNode) *State { return m.states[n.Index] }
	err := Apply(tr, lookup, "nonexistent", func(Event, *OpNode, *Rule, string) {})
	assert.Error(t, err)
}
