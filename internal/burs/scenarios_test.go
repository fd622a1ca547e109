package burs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioGrammar mirrors the spec's worked ADD-cover example exactly:
// reg -> Reg (0), reg -> Add(reg,reg) (1), goal -> reg (0).
func scenarioGrammar() *Rules {
	rs := &Rules{}
	rs.Add(&Rule{LHS: "reg", Op: "Reg", Cost: 0})
	rs.Add(&Rule{LHS: "reg", Op: "Add", Args: []string{"reg", "reg"}, Cost: 1})
	rs.Add(&Rule{LHS: "goal", RHS: "reg", Cost: 0})
	return rs
}

func collect(t *OpTree, lookup StateLookup, goal string) []string {
	var trace []string
	Apply(t, lookup, goal, func(ev Event, n *OpNode, r *Rule, g string) {
		label := "before"
		if ev == After {
			label = "after"
		}
		trace = append(trace, fmt.Sprintf("%s(%d,%s)", label, n.Index, r.String()))
	})
	return trace
}

func TestScenarioAddCoverBeforeAfterOrder(t *testing.T) {
	tr := NewOpTree()
	tr.Add("a", "Reg", nil)
	tr.Add("b", "Reg", nil)
	tr.Add("@", "Add", []string{"a", "b"})
	require.NoError(t, tr.Finish())

	m := NewNaiveMatcher(scenarioGrammar())
	root := m.MatchTree(tr)
	_, cost := root.GetMatch("goal")
	assert.Equal(t, 1, cost)

	var events []Event
	lookup := func(n *OpNode) *State { return m.states[n.Index] }
	err := Apply(tr, lookup, "goal", func(ev Event, n *OpNode, r *Rule, goal string) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	// before(@,goal->reg) before(@,reg->Add) before(a,reg->Reg) after(a,..)
	// before(b,reg->Reg) after(b,..) after(@,reg->Add) after(@,goal->reg)
	expected := []Event{Before, Before, Before, After, Before, After, After, After}
	assert.Equal(t, expected, events)
}

func TestScenarioChainRulePropagation(t *testing.T) {
	rs := scenarioGrammar()
	rs.Add(&Rule{LHS: "addr", RHS: "reg", Cost: 0})
	// replace goal->reg with goal->addr so the cheaper chain path must be
	// discovered through an intermediate non-terminal.
	rs.List[2] = &Rule{Index: 2, LHS: "goal", RHS: "addr", Cost: 0}

	tr := NewOpTree()
	tr.Add("@", "Reg", nil)
	require.NoError(t, tr.Finish())

	m := NewNaiveMatcher(rs)
	root := m.MatchTree(tr)
	r, cost := root.GetMatch("goal")
	require.NotNil(t, r)
	assert.Equal(t, 0, cost)

	var ruleNames []string
	lookup := func(n *OpNode) *State { return m.states[n.Index] }
	err := Apply(tr, lookup, "goal", func(ev Event, n *OpNode, r *Rule, goal string) {
		if ev == Before {
			ruleNames = append(ruleNames, r.LHS+"->"+goalOf(r))
		}
	})
	require.NoError(t, err)
	// goal->addr, addr->reg, reg->Reg, outermost to innermost in Before order
	assert.Equal(t, []string{"goal->addr", "addr->reg", "reg->Reg"}, ruleNames)
}

func goalOf(r *Rule) string {
	if r.IsChain() {
		return r.RHS
	}
	return r.Op
}
