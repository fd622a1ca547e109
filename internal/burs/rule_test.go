package burs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesAddAssignsSequentialIndex(t *testing.T) {
	rs := &Rules{}
	r0 := rs.Add(&Rule{LHS: "reg", Op: "Reg"})
	r1 := rs.Add(&Rule{LHS: "reg", RHS: "const"})
	assert.Equal(t, 0, r0.Index)
	assert.Equal(t, 1, r1.Index)
}

func TestRulesGenNameIsUniqueAndPrefixed(t *testing.T) {
	rs := &Rules{}
	n1 := rs.GenName("Add")
	n2 := rs.GenName("Add")
	assert.NotEqual(t, n1, n2)
	assert.Contains(t, n1, "Add")
	assert.Contains(t, n2, "Add")
}

func TestRulesOpsAndLeaves(t *testing.T) {
	rs := addGrammar()
	ops := rs.Ops()
	assert.Len(t, ops, 3) // Reg, Int, ADD

	leaves := rs.Leaves()
	assert.ElementsMatch(t, []string{"Reg", "Int"}, leaves)
}

func TestRuleIsChainVsIsOp(t *testing.T) {
	chain := &Rule{LHS: "reg", RHS: "const"}
	op := &Rule{LHS: "reg", Op: "ADD", Args: []string{"reg", "reg"}}
	assert.True(t, chain.IsChain())
	assert.False(t, chain.IsOp())
	assert.True(t, op.IsOp())
	assert.False(t, op.IsChain())
}
