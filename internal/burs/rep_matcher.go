package burs

// RepTableMatcher walks an OpTree against a RepTable, looking up each
// node's result state index via representer-projected argument keys
// instead of raw argument-state keys. Grounded on
// match_table_rep.py:Matcher.
type RepTableMatcher struct {
	rt       *RepTable
	stateIdx map[int]int
}

// NewRepTableMatcher prepares rt for matching.
func NewRepTableMatcher(rt *RepTable) *RepTableMatcher {
	return &RepTableMatcher{rt: rt, stateIdx: map[int]int{}}
}

// MatchTree resolves every node's state index bottom-up and returns the
// root's State.
func (m *RepTableMatcher) MatchTree(t *OpTree) *State {
	var idx int
	for _, n := range t.Nodes() {
		idx = m.matchNode(n)
	}
	return m.rt.Table.States[idx]
}

func (m *RepTableMatcher) matchNode(n *OpNode) int {
	if len(n.Succs) == 0 {
		idx, ok := m.rt.Table.LeafState[n.Op]
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
	idx, ok := m.rt.Transition(n.Op, args)
	if !ok {
		idx = 0
	}
	m.stateIdx[n.Index] = idx
	return idx
}

// Lookup returns a StateLookup usable with Apply, valid after MatchTree
// has run over the same tree.
func (m *RepTableMatcher) Lookup() StateLookup {
	return func(n *OpNode) *State {
		return m.rt.Table.States[m.stateIdx[n.Index]]
	}
}
