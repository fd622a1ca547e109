package burs

// NaiveMatcher computes, for every OpNode, the full State bottom-up by
// direct recursion over the operator tree with no table precomputation
// (spec §4.7, variant A). Grounded on match_naive.py:Matcher.
type NaiveMatcher struct {
	rules   *Rules
	byOp    map[string][]*Rule // operator rules keyed by Op
	byChain map[string][]*Rule // chain rules keyed by RHS
	states  map[int]*State     // OpNode.Index -> computed State
}

// NewNaiveMatcher prepares rs for per-node matching.
func NewNaiveMatcher(rs *Rules) *NaiveMatcher {
	m := &NaiveMatcher{
		rules:   rs,
		byOp:    map[string][]*Rule{},
		byChain: map[string][]*Rule{},
		states:  map[int]*State{},
	}
	for _, r := range rs.List {
		if r.IsOp() {
			m.byOp[r.Op] = append(m.byOp[r.Op], r)
		} else {
			m.byChain[r.RHS] = append(m.byChain[r.RHS], r)
		}
	}
	return m
}

// MatchTree computes the State of every node in t, bottom-up, and returns
// the root's State.
func (m *NaiveMatcher) MatchTree(t *OpTree) *State {
	var st *State
	for _, n := range t.Nodes() {
		st = m.matchNode(n)
	}
	return st
}

// Lookup returns a StateLookup usable with Apply, valid after MatchTree
// has run over the same tree.
func (m *NaiveMatcher) Lookup() StateLookup {
	return func(n *OpNode) *State { return m.states[n.Index] }
}

// matchNode computes n's State from its already-computed children,
// grounded on Matcher.match_node: first apply every operator rule whose
// Op/arity matches n directly (cost = rule cost + each arg's cost for its
// required non-terminal), then saturate with chain rules until no entry
// improves.
func (m *NaiveMatcher) matchNode(n *OpNode) *State {
	st := NewState(n.Index)

	for _, r := range m.byOp[n.Op] {
		if len(r.Args) != len(n.Succs) {
			continue
		}
		cost := r.Cost
		ok := true
		for i, argName := range r.Args {
			childSt := m.states[n.Succs[i].Index]
			_, c := childSt.GetMatch(argName)
			if c >= MaxCost {
				ok = false
				break
			}
			cost += c
		}
		if ok {
			st.AddRule(r, cost)
		}
	}

	m.saturateChains(st)
	m.states[n.Index] = st
	return st
}

// saturateChains repeatedly applies chain rules LHS -> RHS (cost) while
// any entry improves, mirroring the fixpoint loop in match_node/closure.
func (m *NaiveMatcher) saturateChains(st *State) {
	for {
		changed := false
		for rhs, rules := range m.byChain {
			_, rhsCost := st.GetMatch(rhs)
			if rhsCost >= MaxCost {
				continue
			}
			for _, r := range rules {
				if st.AddRule(r, rhsCost+r.Cost) {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}
