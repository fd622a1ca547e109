package burs

// TableMatcher walks an OpTree against a precomputed Table, looking up
// each node's state index in O(1) instead of recomputing it, the payoff
// of variant B over variant A when the same grammar matches many trees.
// Grounded on match_table_full.py:Matcher.
type TableMatcher struct {
	table    *Table
	stateIdx map[int]int // OpNode.Index -> Table.States index
}

// NewTableMatcher prepares t for matching against tbl.
func NewTableMatcher(tbl *Table) *TableMatcher {
	return &TableMatcher{table: tbl, stateIdx: map[int]int{}}
}

// MatchTree resolves every node's state index bottom-up via table lookups
// only (no rule re-evaluation) and returns the root's State.
func (m *TableMatcher) MatchTree(t *OpTree) *State {
	var idx int
	for _, n := range t.Nodes() {
		idx = m.matchNode(n)
	}
	return m.table.States[idx]
}

func (m *TableMatcher) matchNode(n *OpNode) int {
	if len(n.Succs) == 0 {
		idx, ok := m.table.LeafState[n.Op]
		if !ok {
			idx = 0
		}
		m.stateIdx[n.Index] = idx
		return idx
	}

	args := make([]int, len(n.Succs))
	for i, s := range n.Succs {
		args[i] = m.stateIdx[s.Index]
	}
	idx, ok := m.table.Transition(n.Op, args)
	if !ok {
		idx = 0
	}
	m.stateIdx[n.Index] = idx
	return idx
}

// Lookup returns a StateLookup usable with Apply, valid after MatchTree
// has been run over the same tree.
func (m *TableMatcher) Lookup() StateLookup {
	return func(n *OpNode) *State {
		return m.table.States[m.stateIdx[n.Index]]
	}
}
