package burs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableCoversLeafStates(t *testing.T) {
	tb := BuildTable(addGrammar())
	regIdx, ok := tb.LeafState["Reg"]
	require.True(t, ok)
	r, cost := tb.States[regIdx].GetMatch("reg")
	require.NotNil(t, r)
	assert.Equal(t, 0, cost)
}

func TestBuildTableDiscoversAddTransition(t *testing.T) {
	tb := BuildTable(addGrammar())
	regIdx := tb.LeafState["Reg"]
	resultIdx, ok := tb.Transition("ADD", []int{regIdx, regIdx})
	require.True(t, ok)
	r, cost := tb.States[resultIdx].GetMatch("reg")
	require.NotNil(t, r)
	assert.Equal(t, "ADD", r.Op)
	// table states are normalized, so the only entry has cost 0
	assert.Equal(t, 0, cost)
}

func TestTableMatcherAgreesWithNaiveMatcher(t *testing.T) {
	tr := NewOpTree()
	tr.Add("@", "ADD", []string{"ra", "rb"})
	require.NoError(t, tr.Finish())

	naive := NewNaiveMatcher(addGrammar())
	naiveRoot := naive.MatchTree(tr)

	tb := BuildTable(addGrammar())
	tm := NewTableMatcher(tb)
	tableRoot := tm.MatchTree(tr)

	// naive states carry absolute costs; table states are normalized
	naiveRoot.Normalize()
	naiveRule, naiveCost := naiveRoot.GetMatch("reg")
	tableRule, tableCost := tableRoot.GetMatch("reg")
	assert.Equal(t, naiveCost, tableCost)
	assert.Equal(t, naiveRule.Op, tableRule.Op)
}

func TestApplyIdenticalAcrossNaiveAndTableVariants(t *testing.T) {
	tr := NewOpTree()
	tr.Add("@", "ADD", []string{"ra", "rb"})
	require.NoError(t, tr.Finish())

	naive := NewNaiveMatcher(addGrammar())
	naive.MatchTree(tr)
	var naiveEmitted []string
	err := Apply(tr, func(n *OpNode) *State { return naive.states[n.Index] }, "reg",
		func(ev Event, n *OpNode, r *Rule, goal string) { naiveEmitted = append(naiveEmitted, r.String()) })
	require.NoError(t, err)

	tb := BuildTable(addGrammar())
	tm := NewTableMatcher(tb)
	tm.MatchTree(tr)
	var tableEmitted []string
	err = Apply(tr, tm.Lookup(), "reg",
		func(ev Event, n *OpNode, r *Rule, goal string) { tableEmitted = append(tableEmitted, r.String()) })
	require.NoError(t, err)

	assert.Equal(t, naiveEmitted, tableEmitted)
}
